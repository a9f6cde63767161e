// Package report renders read-only views over daily logs.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/logbook/internal"
	"github.com/starford/logbook/internal/daylog"
	"github.com/starford/logbook/internal/journal"
	"github.com/starford/logbook/internal/project"
	"github.com/starford/logbook/internal/storage"
)

// scanLimit bounds concurrent file reads in Today.
const scanLimit = 4

// Today writes every configured project's entries for date to w, in
// configuration order. Projects without a log file for the date are omitted.
// Files are read concurrently; output order stays deterministic.
func Today(ctx context.Context, cfg *internal.Config, svc *journal.Service, date time.Time, w io.Writer) error {
	store := daylog.NewStore(storage.NewFS())
	sections := make([]string, len(cfg.Projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanLimit)
	for i, declared := range cfg.Projects {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			p := project.Project{Name: declared.Name, Root: declared.Root, LogRepo: declared.LogRepo}
			if p.LogRepo == "" {
				p.LogRepo = cfg.GlobalLogRepo
			}
			d, src := store.Load(svc.LogPath(p, date))
			if src == daylog.SourceSkeleton {
				return nil
			}
			sections[i] = formatProject(declared.Name, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	wrote := false
	for _, s := range sections {
		if s == "" {
			continue
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		_, err := fmt.Fprintf(w, "no entries for %s\n", date.Format("2006-01-02"))
		return err
	}
	return nil
}

func formatProject(name string, d *daylog.DailyLog) string {
	var b strings.Builder
	for _, section := range d.Sections() {
		entries := d.Entries(section)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s / %s\n", name, section)
		for _, e := range entries {
			b.WriteString("  ")
			b.WriteString(e)
			b.WriteString("\n")
		}
	}
	return b.String()
}
