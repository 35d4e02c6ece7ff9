package prompt

import (
	"czjira/internal/core"

	"github.com/charmbracelet/huh"
)

func typeOptions(choices []core.Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Name, c.Value))
	}
	return opts
}

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(core.IssueStatuses))
	for _, st := range core.IssueStatuses {
		opts = append(opts, huh.NewOption(st.Name, st.Tag))
	}
	return opts
}

// changeForm asks for the conventional-commit part of the message.
func changeForm(choices []core.Choice, a *core.AnswerSet) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the type of change that you're committing:").
				Options(typeOptions(choices)...).
				Value(&a.Type),
			huh.NewInput().
				Title("What is the scope of this change (e.g. component or file name)?").
				Description("press enter to skip").
				Value(&a.Scope),
			huh.NewInput().
				Title("Write a short, imperative tense description of the change:").
				Value(&a.Subject).
				Validate(validateSubject),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Provide a longer description of the change:").
				Description("press enter to skip").
				Value(&a.Body),
			huh.NewConfirm().
				Title("Are there any breaking changes?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.IsBreaking),
		),
	)
}

func breakingForm(breaking *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Describe the breaking changes:").
				Value(breaking),
		),
	)
}

func issueForm(issue *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What is the ticket for this commit? (e.g. JIRA-1234)").
				Description("press enter to skip").
				Value(issue),
		),
	)
}

func ticketForm(status, comment *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What is the status of the ticket (e.g. In Progress, Done)?").
				Options(statusOptions()...).
				Value(status),
			huh.NewInput().
				Title("Is there a comment for the Jira ticket?").
				Description("press enter to skip").
				Value(comment),
		),
	)
}
