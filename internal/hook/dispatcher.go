// Package hook implements the commit-msg dispatch chain and its installer.
//
// A chain is an ordered list of named steps with independent failure
// policies. Gate steps (a pre-existing third-party hook) abort the git
// operation on failure with their exit code propagated verbatim; the
// aggregation step is best-effort and only ever warns.
package hook

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
)

// Policy decides what a step failure does to the chain.
type Policy int

const (
	// PolicyAbort stops the chain and propagates the failure to git.
	PolicyAbort Policy = iota
	// PolicyWarn records the failure on stderr and continues; the git
	// operation is never blocked.
	PolicyWarn
)

// Step is one named stage of the dispatch chain.
type Step struct {
	Name   string
	Policy Policy
	Run    func(ctx context.Context) error
}

// Dispatcher runs a chain of steps.
type Dispatcher struct {
	steps  []Step
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given steps.
func NewDispatcher(logger *slog.Logger, steps ...Step) *Dispatcher {
	return &Dispatcher{steps: steps, logger: logger}
}

// Run executes the steps in order. The returned error is the first failure
// of a PolicyAbort step; PolicyWarn failures are logged and swallowed.
func (d *Dispatcher) Run(ctx context.Context) error {
	for _, step := range d.steps {
		err := step.Run(ctx)
		if err == nil {
			continue
		}
		if step.Policy == PolicyAbort {
			d.logger.Error("hook step failed",
				slog.String("step", step.Name),
				slog.String("error", err.Error()))
			return err
		}
		d.logger.Warn("hook step failed, continuing",
			slog.String("step", step.Name),
			slog.String("error", err.Error()))
	}
	return nil
}

// ExitCode extracts the exit code a failed chain should propagate to git.
// A failing external hook's code is passed through verbatim; any other
// failure maps to 1, and nil to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
