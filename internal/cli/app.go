package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"czjira/internal/core"
	"czjira/internal/draft"
	"czjira/internal/git"
	"czjira/internal/prompt"
	"czjira/internal/tui"

	"github.com/rs/zerolog/log"
)

var (
	ErrNothingStaged  = errors.New("no staged changes, stage files first or pass --all")
	ErrNotInteractive = errors.New("not running in a terminal, pass answers with --type and --subject")
	ErrNoDraftStore   = errors.New("draft store is unavailable")
)

// Committer is the slice of git the commit flow needs.
type Committer interface {
	StageAll(ctx context.Context) error
	StagedFiles(ctx context.Context) ([]string, error)
	Sink(opts git.CommitOptions) core.CommitSink
}

type DraftStore interface {
	Save(ctx context.Context, d *draft.Draft) error
	Latest(ctx context.Context, repo string) (*draft.Draft, error)
	List(ctx context.Context, repo string, limit int) ([]*draft.Draft, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, repo string) (int64, error)
}

// App runs one prompt, review and commit cycle.
type App struct {
	Core     *core.Core
	Repo     Committer
	RepoRoot string
	Drafts   DraftStore
	Prompter prompt.Prompter

	Review   func(message string, files []string) (tui.MenuAction, error)
	Copy     func(content string) error
	Progress func(message string) (stop func())

	Out         io.Writer
	Interactive bool
}

type RunOptions struct {
	DryRun   bool
	Force    bool
	StageAll bool
	Retry    bool
	Commit   git.CommitOptions

	// Answers given on the command line; nil means ask interactively.
	Answers *core.AnswerSet
}

func (a *App) Run(ctx context.Context, opts RunOptions) error {
	var files []string
	if !opts.DryRun {
		var err error
		if files, err = a.stagedFiles(ctx, opts); err != nil {
			return err
		}
	}

	answers, draftID, err := a.initialAnswers(ctx, opts)
	if err != nil {
		return err
	}
	message := a.Core.Compose(answers)

	if opts.DryRun {
		fmt.Fprintln(a.Out, message)
		return nil
	}

	if a.Interactive && !opts.Force {
	review:
		for {
			action, err := a.Review(message, files)
			if err != nil {
				return err
			}
			log.Debug().Stringer("action", action).Msg("Review finished")

			switch action {
			case tui.CommitThis:
				break review
			case tui.CopyToClipboard:
				if err := a.Copy(message); err != nil {
					return err
				}
				log.Info().Msg("Commit message copied to clipboard.")
				return nil
			case tui.EditAnswers:
				if answers, err = a.Prompter.Prompt(ctx, answers); err != nil {
					return err
				}
				message = a.Core.Compose(answers)
			default:
				log.Info().Msg("Commit aborted.")
				return nil
			}
		}
	}

	return a.commit(ctx, answers, draftID, opts.Commit)
}

func (a *App) stagedFiles(ctx context.Context, opts RunOptions) ([]string, error) {
	if opts.StageAll {
		if err := a.Repo.StageAll(ctx); err != nil {
			return nil, err
		}
	}

	files, err := a.Repo.StagedFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 && !opts.Commit.Amend {
		return nil, ErrNothingStaged
	}
	return files, nil
}

// initialAnswers returns the answers to compose from and, on retry, the id
// of the draft they came from.
func (a *App) initialAnswers(ctx context.Context, opts RunOptions) (core.AnswerSet, string, error) {
	switch {
	case opts.Retry:
		if a.Drafts == nil {
			return core.AnswerSet{}, "", ErrNoDraftStore
		}
		d, err := a.Drafts.Latest(ctx, a.RepoRoot)
		if err != nil {
			return core.AnswerSet{}, "", fmt.Errorf("no draft to retry for %s: %w", a.RepoRoot, err)
		}
		log.Debug().Str("draft", d.ID).Time("created", d.CreatedAt).Msg("Retrying draft")
		return d.Answers, d.ID, nil

	case opts.Answers != nil:
		if err := core.Validate(*opts.Answers, a.Core.Types()); err != nil {
			return core.AnswerSet{}, "", err
		}
		answers, err := prompt.StaticPrompter{Answers: *opts.Answers}.Prompt(ctx, core.AnswerSet{})
		return answers, "", err

	case !a.Interactive:
		return core.AnswerSet{}, "", ErrNotInteractive
	}

	fmt.Fprintln(a.Out, tui.StyleDim.Render(prompt.Banner(a.Core.Width())))
	answers, err := a.Prompter.Prompt(ctx, core.AnswerSet{})
	if err != nil {
		return core.AnswerSet{}, "", err
	}
	return answers, "", nil
}

func (a *App) commit(ctx context.Context, answers core.AnswerSet, draftID string, opts git.CommitOptions) error {
	stop := a.Progress("Committing...")
	message, err := a.Core.Submit(ctx, answers, a.Repo.Sink(opts))
	stop()

	if err != nil {
		// The new draft replaces the one being retried.
		if a.saveDraft(ctx, answers, message, err) {
			a.dropDraft(ctx, draftID)
		}
		return err
	}

	a.dropDraft(ctx, draftID)
	log.Info().Msg("Commit successfully created!")
	return nil
}

func (a *App) dropDraft(ctx context.Context, id string) {
	if id == "" || a.Drafts == nil {
		return
	}
	if err := a.Drafts.Delete(ctx, id); err != nil {
		log.Warn().Err(err).Str("draft", id).Msg("Failed to delete retried draft")
	}
}

func (a *App) saveDraft(ctx context.Context, answers core.AnswerSet, message string, cause error) bool {
	if a.Drafts == nil || message == "" {
		return false
	}

	d := &draft.Draft{
		Repo:    a.RepoRoot,
		Message: message,
		Answers: answers,
		Reason:  cause.Error(),
	}
	if err := a.Drafts.Save(ctx, d); err != nil {
		log.Warn().Err(err).Msg("Failed to save draft")
		return false
	}
	log.Info().Str("draft", d.ID).Msg("Message saved, run czjira --retry to use it again")
	return true
}
