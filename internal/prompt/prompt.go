// Package prompt asks the commit questions. The interactive implementation
// uses huh forms, run one stage at a time so follow-up questions are only
// asked when their answer can matter.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"czjira/internal/core"

	"github.com/charmbracelet/huh"
)

var ErrAborted = errors.New("prompt aborted")

// Prompter collects one AnswerSet. initial pre-fills the questions, which
// is how "edit answers" re-opens a previous session.
type Prompter interface {
	Prompt(ctx context.Context, initial core.AnswerSet) (core.AnswerSet, error)
}

// StaticPrompter returns fixed answers, e.g. from command line flags.
type StaticPrompter struct {
	Answers core.AnswerSet
}

func (p StaticPrompter) Prompt(_ context.Context, _ core.AnswerSet) (core.AnswerSet, error) {
	return p.Answers.Normalize(), nil
}

type FormPrompter struct {
	Choices    []core.Choice
	Accessible bool
}

func NewFormPrompter(choices []core.Choice) *FormPrompter {
	return &FormPrompter{Choices: choices}
}

func (p *FormPrompter) Prompt(ctx context.Context, initial core.AnswerSet) (core.AnswerSet, error) {
	a := initial
	if a.Type == "" && len(p.Choices) > 0 {
		a.Type = p.Choices[0].Value
	}

	if err := p.run(ctx, changeForm(p.Choices, &a)); err != nil {
		return core.AnswerSet{}, err
	}

	if a.IsBreaking {
		if err := p.run(ctx, breakingForm(&a.Breaking)); err != nil {
			return core.AnswerSet{}, err
		}
	}

	if err := p.run(ctx, issueForm(&a.Issue)); err != nil {
		return core.AnswerSet{}, err
	}

	if a.HasIssue() {
		if err := p.run(ctx, ticketForm(&a.Status, &a.Comment)); err != nil {
			return core.AnswerSet{}, err
		}
	}

	return a.Normalize(), nil
}

func (p *FormPrompter) run(ctx context.Context, form *huh.Form) error {
	form = form.
		WithTheme(Theme()).
		WithShowHelp(false).
		WithAccessible(p.Accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return ErrAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

// Banner is printed before the first question.
func Banner(width int) string {
	return fmt.Sprintf("Line 1 will be cropped at %d characters. All other lines will be wrapped after %d characters.", width, width)
}

func validateSubject(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a short description is required")
	}
	return nil
}
