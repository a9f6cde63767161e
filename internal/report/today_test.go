package report

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/logbook/internal"
	"github.com/starford/logbook/internal/journal"
	"github.com/starford/logbook/internal/testutil"
	"github.com/starford/logbook/internal/vcs"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToday_ConfigurationOrder(t *testing.T) {
	logRepo := t.TempDir()
	cfg := testutil.Config(t)
	cfg.GlobalLogRepo = logRepo
	cfg.Projects = internal.ProjectSet{
		{Name: "zulu", Root: "/z"},
		{Name: "alpha", Root: "/a"},
	}

	clock, day := testutil.FixedClock()
	svc := journal.NewService(cfg,
		journal.WithPublisher(vcs.Noop{}),
		journal.WithClock(clock),
		journal.WithLogger(quietLogger()))

	log := "# What I did\n\n## %s\n- entry\n\n# Whats next\n\n\n# What Broke or Got Weird\n"
	testutil.WriteFile(t, filepath.Join(logRepo, "zulu", day+".md"),
		strings.Replace(log, "%s", "zulu", 1))
	testutil.WriteFile(t, filepath.Join(logRepo, "alpha", day+".md"),
		strings.Replace(log, "%s", "alpha", 1))

	var out strings.Builder
	if err := Today(context.Background(), cfg, svc, clock(), &out); err != nil {
		t.Fatalf("Today: %v", err)
	}

	got := out.String()
	zi := strings.Index(got, "zulu / zulu")
	ai := strings.Index(got, "alpha / alpha")
	if zi < 0 || ai < 0 {
		t.Fatalf("projects missing:\n%s", got)
	}
	// Output follows configuration order, not file-system or alphabetical order.
	if zi > ai {
		t.Errorf("order wrong:\n%s", got)
	}
	if !strings.Contains(got, "  - entry") {
		t.Errorf("entries missing:\n%s", got)
	}
}

func TestToday_NoEntries(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Projects = internal.ProjectSet{{Name: "quiet", Root: "/q"}}
	cfg.GlobalLogRepo = t.TempDir()

	clock, _ := testutil.FixedClock()
	svc := journal.NewService(cfg, journal.WithClock(clock), journal.WithLogger(quietLogger()))

	var out strings.Builder
	if err := Today(context.Background(), cfg, svc, clock(), &out); err != nil {
		t.Fatalf("Today: %v", err)
	}
	if !strings.Contains(out.String(), "no entries") {
		t.Errorf("output = %q", out.String())
	}
}
