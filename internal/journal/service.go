// Package journal coordinates the aggregation path: resolve the project,
// load today's log, apply the entry, persist atomically, publish.
//
// Two near-simultaneous commits into the same daily file can race: both load
// before either saves, and one entry is silently dropped. The atomic rename
// in storage bounds the damage to a lost entry, never a corrupt file; the
// load happens immediately before apply+save to keep the window small. No
// cross-process lock is held.
package journal

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/logbook/internal"
	"github.com/starford/logbook/internal/apperr"
	"github.com/starford/logbook/internal/daylog"
	"github.com/starford/logbook/internal/entryfmt"
	"github.com/starford/logbook/internal/project"
	"github.com/starford/logbook/internal/storage"
	"github.com/starford/logbook/internal/vcs"
)

// Service is the aggregation engine.
type Service struct {
	cfg       *internal.Config
	resolver  *project.Resolver
	store     *daylog.Store
	publisher vcs.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a Service over cfg. By default it uses the filesystem
// store, the git publisher, the default slog logger, and the wall clock;
// options override each for tests.
func NewService(cfg *internal.Config, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg,
		resolver:  project.NewResolver(cfg),
		store:     daylog.NewStore(storage.NewFS()),
		publisher: vcs.NewGit(nil),
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve maps a working directory to its project.
func (s *Service) Resolve(cwd string) project.Project {
	return s.resolver.Resolve(cwd)
}

// LogPath returns the daily file path for a project on a date:
// <log repo or base dir>/<project name>/<YYYY-MM-DD>.md.
func (s *Service) LogPath(p project.Project, date time.Time) string {
	root := p.LogRepo
	if root == "" {
		root = s.cfg.App.BaseDir
	}
	return filepath.Join(root, p.Name, daylog.Filename(date))
}

// RecordCommit appends a commit-derived entry for the repository at repoPath
// to today's log. The entry's section is the repository's short name and its
// text is the first line of message, annotated with the abbreviated ref.
//
// Returns apperr.ErrSkipped for placeholder refs and for commits made inside
// the global log repository itself (loop prevention), and
// apperr.ErrDuplicateEntry when the exact entry is already present. Both are
// no-op signals, not failures.
func (s *Service) RecordCommit(ctx context.Context, repoPath, ref, message string) error {
	if !entryfmt.ValidRef(ref) {
		return fmt.Errorf("%w: no valid commit ref", apperr.ErrSkipped)
	}
	if s.insideLogRepo(repoPath) {
		return fmt.Errorf("%w: commit inside log repository", apperr.ErrSkipped)
	}

	subject := firstLine(message)
	if subject == "" {
		return fmt.Errorf("%w: empty commit message", apperr.ErrSkipped)
	}

	p := s.resolver.Resolve(repoPath)
	section := filepath.Base(repoPath)

	return s.record(ctx, p, func(d *daylog.DailyLog) bool {
		return entryfmt.ApplyCommit(d, section, ref, subject)
	})
}

// AddNote appends a free-form manual entry under the "other" section of the
// log for the project owning cwd. Returns apperr.ErrDuplicateEntry when the
// exact note is already present today.
func (s *Service) AddNote(ctx context.Context, cwd, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("note text is empty")
	}

	p := s.resolver.Resolve(cwd)
	return s.record(ctx, p, func(d *daylog.DailyLog) bool {
		return entryfmt.ApplyManual(d, text)
	})
}

// record runs one load→apply→save→publish cycle. The load happens here, not
// earlier, to minimize the cross-process race window.
func (s *Service) record(ctx context.Context, p project.Project, apply func(*daylog.DailyLog) bool) error {
	date := s.now()
	path := s.LogPath(p, date)

	d, src := s.store.Load(path)
	if src == daylog.SourceSkeleton {
		s.logger.Debug("starting from skeleton", slog.String("path", path))
	}

	if !apply(d) {
		return fmt.Errorf("%w in %s log", apperr.ErrDuplicateEntry, p.Name)
	}

	if err := s.store.Save(path, d); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.logger.Info("updated log",
		slog.String("project", p.Name),
		slog.String("path", path))

	if p.LogRepo == "" {
		return nil
	}
	msg := fmt.Sprintf("Update %s logs for %s", p.Name, date.Format("2006-01-02"))
	if err := s.publisher.CommitAndPush(ctx, p.LogRepo, path, msg); err != nil {
		// The local write already succeeded and is the durable record.
		s.logger.Warn("publish failed",
			slog.String("repo", p.LogRepo),
			slog.String("error", err.Error()))
	}
	return nil
}

// insideLogRepo reports whether repoPath is the global log repository.
func (s *Service) insideLogRepo(repoPath string) bool {
	if s.cfg.GlobalLogRepo == "" {
		return false
	}
	a, err1 := filepath.Abs(s.cfg.GlobalLogRepo)
	b, err2 := filepath.Abs(repoPath)
	return err1 == nil && err2 == nil && filepath.Clean(a) == filepath.Clean(b)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
