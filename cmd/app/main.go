package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/logbook/internal"
	"github.com/starford/logbook/internal/apperr"
	"github.com/starford/logbook/internal/hook"
	"github.com/starford/logbook/internal/journal"
	"github.com/starford/logbook/internal/report"
	"github.com/starford/logbook/pkg/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "logbook",
		Usage: "Aggregate per-commit messages and notes into daily markdown logs, grouped by project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "~/.logbook/config.yml",
				Value:       internal.DefaultConfigPath(),
				Sources:     cli.EnvVars("LOGBOOK_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			hookCmd(),
			noteCmd(),
			installCmd(),
			todayCmd(),
			watchCmd(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setup loads configuration and wires the stderr logger. Absent or broken
// configuration degrades to defaults with a warning; it must never block a
// commit.
func setup(cmd *cli.Command) (*internal.Config, *slog.Logger) {
	cfg := internal.NewDefaultConfig()
	if err := config.LoadOptional(cmd.String("config"), cfg); err != nil {
		fmt.Fprintf(os.Stderr, "logbook: config ignored: %v\n", err)
		cfg = internal.NewDefaultConfig()
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return cfg, logger
}

func hookCmd() *cli.Command {
	return &cli.Command{
		Name:  "hook",
		Usage: "Git hook entry points (invoked by git, not directly)",
		Commands: []*cli.Command{
			{
				Name:      "commit-msg",
				Usage:     "commit-msg stage dispatcher",
				ArgsUsage: "<commit-msg-file>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 1 {
						return cli.Exit("usage: logbook hook commit-msg <commit-msg-file>", 1)
					}
					cfg, logger := setup(cmd)

					repoRoot, err := os.Getwd()
					if err != nil {
						// Without a working directory there is nothing to
						// aggregate; do not block the commit.
						fmt.Fprintf(os.Stderr, "logbook: %v\n", err)
						return nil
					}

					svc := journal.NewService(cfg, journal.WithLogger(logger))
					chain := hook.CommitMsgChain(repoRoot, cmd.Args().First(), hook.DefaultHooksDir(), svc, logger)
					if err := chain.Run(ctx); err != nil {
						return cli.Exit("", hook.ExitCode(err))
					}
					return nil
				},
			},
		},
	}
}

func noteCmd() *cli.Command {
	return &cli.Command{
		Name:      "note",
		Usage:     "Add a manual entry to today's log under the \"other\" section",
		ArgsUsage: "<text...>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(text) == "" {
				return cli.Exit("usage: logbook note <text...>", 1)
			}
			cfg, logger := setup(cmd)

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("working directory: %w", err)
			}
			svc := journal.NewService(cfg, journal.WithLogger(logger))
			err = svc.AddNote(ctx, cwd, text)
			if errors.Is(err, apperr.ErrDuplicateEntry) {
				fmt.Println("entry already recorded today")
				return nil
			}
			return err
		},
	}
}

func installCmd() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the git hook chain, preserving any pre-existing hook",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, logger := setup(cmd)

			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable: %w", err)
			}
			ins := &hook.Installer{
				HooksDir:   hook.DefaultHooksDir(),
				Executable: exe,
				Logger:     logger,
			}
			return ins.Install()
		},
	}
}

func todayCmd() *cli.Command {
	return &cli.Command{
		Name:  "today",
		Usage: "Print today's entries across all configured projects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger := setup(cmd)
			svc := journal.NewService(cfg, journal.WithLogger(logger))
			return report.Today(ctx, cfg, svc, time.Now(), os.Stdout)
		},
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Follow today's log for the current project, reprinting it on change",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger := setup(cmd)

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("working directory: %w", err)
			}
			svc := journal.NewService(cfg, journal.WithLogger(logger))
			path := svc.LogPath(svc.Resolve(cwd), time.Now())
			dir := filepath.Dir(path)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log dir: %w", err)
			}

			printLog := func(string) {
				data, err := os.ReadFile(path)
				if err != nil {
					return
				}
				fmt.Println(string(data))
			}
			printLog(path)
			return report.Watch(ctx, dir, logger, func(changed string) {
				if changed == path {
					printLog(changed)
				}
			})
		},
	}
}
