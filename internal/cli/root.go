package cli

import (
	"context"
	"errors"
	"fmt"

	"czjira/internal/config"
	"czjira/internal/core"
	"czjira/internal/draft"
	"czjira/internal/git"
	"czjira/internal/prompt"
	"czjira/internal/tui"
	"czjira/internal/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string

	dryRun   bool
	force    bool
	stageAll bool
	retry    bool
	noVerify bool
	amend    bool

	accessible bool

	answers core.AnswerSet
}

// NewRootCmd creates the "czjira" command and its subcommands.
func NewRootCmd(version string) *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:           "czjira",
		Short:         "Compose conventional commit messages with Jira smart-commit footers",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd.Context(), o.configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			app := e.newApp(cmd, o.accessible)
			return app.Run(cmd.Context(), o.runOptions(cmd))
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "path to a JSON config file")

	f := root.Flags()
	f.BoolVar(&o.dryRun, "dry-run", false, "print the composed message instead of committing")
	f.BoolVarP(&o.force, "force", "f", false, "commit without the review menu")
	f.BoolVarP(&o.stageAll, "all", "a", false, "stage all changes before committing")
	f.BoolVar(&o.retry, "retry", false, "reuse the last message whose commit failed")
	f.BoolVar(&o.noVerify, "no-verify", false, "skip git commit hooks")
	f.BoolVar(&o.amend, "amend", false, "amend the previous commit")
	f.BoolVar(&o.accessible, "accessible", false, "ask questions as plain prompts for screen readers")

	f.StringVar(&o.answers.Type, "type", "", "commit type (non-interactive)")
	f.StringVar(&o.answers.Scope, "scope", "", "commit scope")
	f.StringVar(&o.answers.Subject, "subject", "", "short imperative description (non-interactive)")
	f.StringVar(&o.answers.Body, "body", "", "longer description")
	f.StringVar(&o.answers.Breaking, "breaking", "", "describe a breaking change")
	f.StringVar(&o.answers.Issue, "issue", "", "ticket id, e.g. JIRA-1234")
	f.StringVar(&o.answers.Status, "status", "", "ticket transition: to-do, in-progress, in-testing, done")
	f.StringVar(&o.answers.Comment, "comment", "", "ticket comment")

	root.MarkFlagsMutuallyExclusive("retry", "type")
	root.MarkFlagsMutuallyExclusive("retry", "subject")

	root.AddCommand(
		newTypesCmd(o),
		newDraftsCmd(o),
	)

	return root
}

func (o *rootOptions) runOptions(cmd *cobra.Command) RunOptions {
	opts := RunOptions{
		DryRun:   o.dryRun,
		Force:    o.force,
		StageAll: o.stageAll,
		Retry:    o.retry,
		Commit: git.CommitOptions{
			NoVerify: o.noVerify,
			Amend:    o.amend,
		},
	}

	flags := cmd.Flags()
	if flags.Changed("type") || flags.Changed("subject") {
		answers := o.answers
		answers.IsBreaking = flags.Changed("breaking")
		if st, ok := core.LookupStatus(answers.Status); ok {
			answers.Status = st.Tag
		}
		opts.Answers = &answers
	}
	return opts
}

// env is the wiring shared by every command.
type env struct {
	cfg    config.Config
	core   *core.Core
	repo   git.Repo
	root   string
	drafts *draft.Store
}

func setup(ctx context.Context, configPath string) (*env, error) {
	repo := git.Repo{}
	root, err := repo.RepoRoot(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Not inside a git repository")
		root = ""
	}

	cfg, err := config.Resolve(configPath, root)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().
		Str("config", cfg.Path).
		Int("types", len(cfg.Types)).
		Int("width", cfg.MaxLineWidth).
		Str("repo", root).
		Msg("Configuration loaded")

	return &env{
		cfg:  cfg,
		core: core.NewCore(core.NewComposer(cfg.MaxLineWidth), cfg.Types),
		repo: repo,
		root: root,
	}, nil
}

// openDrafts opens the draft store on first use.
func (e *env) openDrafts() (*draft.Store, error) {
	if e.drafts != nil {
		return e.drafts, nil
	}
	s, err := draft.Open(e.cfg.DraftDB)
	if err != nil {
		return nil, fmt.Errorf("opening draft store %s: %w", e.cfg.DraftDB, err)
	}
	e.drafts = s
	return s, nil
}

func (e *env) Close() {
	if e.drafts != nil {
		if err := e.drafts.Close(); err != nil {
			log.Debug().Err(err).Msg("Closing draft store")
		}
	}
}

func (e *env) newApp(cmd *cobra.Command, accessible bool) *App {
	prompter := prompt.NewFormPrompter(e.core.Choices())
	prompter.Accessible = accessible || e.cfg.Accessible

	app := &App{
		Core:        e.core,
		Repo:        e.repo,
		RepoRoot:    e.root,
		Prompter:    prompter,
		Review:      tui.Review,
		Copy:        tui.WriteClipboard,
		Progress:    spinnerProgress,
		Out:         cmd.OutOrStdout(),
		Interactive: utils.IsTTY(),
	}

	if s, err := e.openDrafts(); err != nil {
		log.Warn().Err(err).Msg("Drafts disabled")
	} else {
		app.Drafts = s
	}
	return app
}

func spinnerProgress(message string) func() {
	s := tui.NewSpinner()
	s.Start(message)
	return s.Stop
}

// Execute runs the root command and reports failures the way the rest of
// the tool logs.
func Execute(ctx context.Context, version string) int {
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			log.Info().Msg("Commit aborted.")
			return 130
		}
		log.Error().Err(err).Msg("czjira failed")
		return 1
	}
	return 0
}
