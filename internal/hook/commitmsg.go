package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/starford/logbook/internal/apperr"
	"github.com/starford/logbook/internal/journal"
	"github.com/starford/logbook/internal/vcs"
)

// preCommitConfig is the marker file of the pre-commit framework.
const preCommitConfig = ".pre-commit-config.yaml"

// stage1Stdout receives the stdout of foreign gate hooks. Their output passes
// through as git would show it; only aggregation output stays off stdout.
var stage1Stdout io.Writer = os.Stdout

// CommitMsgChain builds the dispatch chain for a commit-msg firing in the
// repository at repoRoot, with msgFile holding the commit message.
//
// Stage 1 (abort-on-failure): a prior hook preserved by the installer under
// "<event>.local" in hooksDir, then the pre-commit framework when the
// repository carries its config file and the tool is installed. Stage 2
// (warn-on-failure): the aggregation path.
func CommitMsgChain(repoRoot, msgFile, hooksDir string, svc *journal.Service, logger *slog.Logger) *Dispatcher {
	var steps []Step

	if chained := filepath.Join(hooksDir, "commit-msg.local"); isExecutable(chained) {
		steps = append(steps, Step{
			Name:   "chained-hook",
			Policy: PolicyAbort,
			Run: func(ctx context.Context) error {
				return runHookScript(ctx, repoRoot, chained, msgFile)
			},
		})
	}

	if hasPreCommitConfig(repoRoot) {
		if tool, err := exec.LookPath("pre-commit"); err == nil {
			steps = append(steps, Step{
				Name:   "pre-commit",
				Policy: PolicyAbort,
				Run: func(ctx context.Context) error {
					cmd := exec.CommandContext(ctx, tool,
						"run", "--hook-stage", "commit-msg",
						"--commit-msg-filename", msgFile)
					cmd.Dir = repoRoot
					cmd.Stdout = stage1Stdout
					cmd.Stderr = os.Stderr
					return cmd.Run()
				},
			})
		}
	}

	steps = append(steps, Step{
		Name:   "aggregate",
		Policy: PolicyWarn,
		Run: func(ctx context.Context) error {
			return aggregate(ctx, repoRoot, msgFile, svc, logger)
		},
	})

	return NewDispatcher(logger, steps...)
}

// aggregate reads the commit message and records it. The duplicate and skip
// sentinels are expected outcomes, not failures.
func aggregate(ctx context.Context, repoRoot, msgFile string, svc *journal.Service, logger *slog.Logger) error {
	data, err := os.ReadFile(msgFile)
	if err != nil {
		return fmt.Errorf("read commit message: %w", err)
	}

	ref := headRef(ctx, repoRoot)
	err = svc.RecordCommit(ctx, repoRoot, ref, string(data))
	if errors.Is(err, apperr.ErrSkipped) || errors.Is(err, apperr.ErrDuplicateEntry) {
		logger.Info("nothing to record", slog.String("reason", err.Error()))
		return nil
	}
	return err
}

// headRef returns the abbreviated HEAD commit, or a placeholder that the
// recorder will skip (unborn branch, not a repository).
func headRef(ctx context.Context, repoRoot string) string {
	out, err := vcs.ExecRunner{}.Run(ctx, repoRoot, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "no-sha"
	}
	return strings.TrimSpace(out)
}

func runHookScript(ctx context.Context, repoRoot, script string, args ...string) error {
	cmd := exec.CommandContext(ctx, script, args...)
	cmd.Dir = repoRoot
	cmd.Stdout = stage1Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func hasPreCommitConfig(repoRoot string) bool {
	_, err := os.Stat(filepath.Join(repoRoot, preCommitConfig))
	return err == nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Mode()&0o111 != 0
}
