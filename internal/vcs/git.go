package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes a git command in a repository and returns its stdout.
type Runner interface {
	Run(ctx context.Context, repoRoot string, args ...string) (string, error)
}

// ExecRunner runs git through os/exec.
type ExecRunner struct{}

// Run implements Runner. Stderr is folded into the returned error so that
// callers logging a failure show what git actually said.
func (ExecRunner) Run(ctx context.Context, repoRoot string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoRoot}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
	}
	return stdout.String(), nil
}

// Git is the Publisher backed by the git command line.
type Git struct {
	runner Runner
}

// NewGit creates a Git publisher. A nil runner defaults to ExecRunner.
func NewGit(runner Runner) *Git {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Git{runner: runner}
}

// CommitAndPush implements Publisher: stage changedFile, commit, push.
// It no-ops successfully when the repository reports no pending changes, and
// refuses to run while git lock files are present (another git process is
// active in the log repository).
func (g *Git) CommitAndPush(ctx context.Context, repoRoot, changedFile, message string) error {
	if hasLockFiles(repoRoot) {
		return fmt.Errorf("vcs: lock files present in %s, skipping publish", repoRoot)
	}

	status, err := g.runner.Run(ctx, repoRoot, "status", "--porcelain")
	if err != nil {
		return fmt.Errorf("vcs: status: %w", err)
	}
	if strings.TrimSpace(status) == "" {
		return nil
	}

	rel, err := filepath.Rel(repoRoot, changedFile)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("vcs: %s is outside repository %s", changedFile, repoRoot)
	}
	if _, err := g.runner.Run(ctx, repoRoot, "add", rel); err != nil {
		return fmt.Errorf("vcs: add: %w", err)
	}
	if _, err := g.runner.Run(ctx, repoRoot, "commit", "-m", message); err != nil {
		return fmt.Errorf("vcs: commit: %w", err)
	}
	if _, err := g.runner.Run(ctx, repoRoot, "push"); err != nil {
		return fmt.Errorf("vcs: push: %w", err)
	}
	return nil
}

func hasLockFiles(repoRoot string) bool {
	matches, err := filepath.Glob(filepath.Join(repoRoot, ".git", "*.lock"))
	return err == nil && len(matches) > 0
}
