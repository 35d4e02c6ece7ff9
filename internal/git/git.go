package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"czjira/internal/core"

	"github.com/rs/zerolog/log"
)

var ErrNothingToCommit = errors.New("nothing to commit")

// Repo runs git commands in Dir. An empty Dir means the working directory.
type Repo struct {
	Dir string
}

type CommitOptions struct {
	NoVerify bool
	Amend    bool
}

func (r Repo) command(ctx context.Context, args ...string) *exec.Cmd {
	if r.Dir != "" {
		args = append([]string{"-C", r.Dir}, args...)
	}
	return exec.CommandContext(ctx, "git", args...)
}

func (r Repo) RepoRoot(ctx context.Context) (string, error) {
	output, err := r.command(ctx, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

func (r Repo) StagedFiles(ctx context.Context) ([]string, error) {
	output, err := r.command(ctx, "--no-pager", "diff", "--cached", "--name-only").Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return parseFileList(string(output)), nil
}

func parseFileList(output string) []string {
	var files []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files
}

func (r Repo) StageAll(ctx context.Context) error {
	output, err := r.command(ctx, "add", "-A").CombinedOutput()
	if err != nil {
		return fmt.Errorf("git add failed: %v\nOutput: %s", err, string(output))
	}
	log.Debug().Msg("Git add executed successfully")
	return nil
}

// Commit runs git commit with message fed through stdin.
func (r Repo) Commit(ctx context.Context, message string, opts CommitOptions) error {
	args := []string{"commit", "-F", "-"}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}
	if opts.Amend {
		args = append(args, "--amend")
	}

	cmd := r.command(ctx, args...)
	cmd.Stdin = strings.NewReader(message)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(out.String())
		if strings.Contains(output, "nothing to commit") || strings.Contains(output, "no changes added to commit") {
			return ErrNothingToCommit
		}
		return fmt.Errorf("git commit failed: %v\nOutput: %s", err, output)
	}
	log.Debug().Str("dir", r.Dir).Msg("Git commit executed successfully")
	return nil
}

// Sink adapts Commit to the composer's commit callback.
func (r Repo) Sink(opts CommitOptions) core.CommitSink {
	return core.CommitSinkFunc(func(ctx context.Context, message string) error {
		return r.Commit(ctx, message, opts)
	})
}
