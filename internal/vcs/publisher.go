// Package vcs replicates log updates to a git repository.
//
// Publishing is a convenience step: the local file write is the durable
// source of truth, so every failure here is reported and swallowed by the
// caller rather than blocking the user's commit.
package vcs

import "context"

// Publisher stages, commits, and pushes a changed log file.
type Publisher interface {
	// CommitAndPush records changedFile in the repository at repoRoot with
	// the given message and pushes to the default remote.
	CommitAndPush(ctx context.Context, repoRoot, changedFile, message string) error
}

// Noop is a Publisher that does nothing. Used when no log repository is
// configured and in tests.
type Noop struct{}

// CommitAndPush implements Publisher.
func (Noop) CommitAndPush(context.Context, string, string, string) error { return nil }
