package hook

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// scriptMarker identifies hook scripts written by the installer, so a
// reinstall overwrites our own script but never a foreign one.
const scriptMarker = "# logbook dispatcher"

// Events the installer manages.
var events = []string{"commit-msg"}

// Installer writes dispatcher hook scripts into a global hooks directory and
// points git's core.hooksPath at it.
type Installer struct {
	// HooksDir is the directory registered as core.hooksPath.
	HooksDir string
	// Executable is the logbook binary the hook scripts invoke.
	Executable string
	Logger     *slog.Logger
}

// Install sets up the hook chain. A pre-existing hook file for an event is
// preserved under "<event>.local" and invoked as the first chain step on
// every firing; it is never overwritten.
func (ins *Installer) Install() error {
	if err := os.MkdirAll(ins.HooksDir, 0o755); err != nil {
		return fmt.Errorf("create hooks dir: %w", err)
	}

	for _, event := range events {
		if err := ins.installEvent(event); err != nil {
			return err
		}
	}

	out, err := exec.Command("git", "config", "--global", "core.hooksPath", ins.HooksDir).CombinedOutput()
	if err != nil {
		return fmt.Errorf("set core.hooksPath: %w: %s", err, strings.TrimSpace(string(out)))
	}
	ins.Logger.Info("hooks installed", slog.String("dir", ins.HooksDir))
	return nil
}

func (ins *Installer) installEvent(event string) error {
	target := filepath.Join(ins.HooksDir, event)

	if existing, err := os.ReadFile(target); err == nil && !strings.Contains(string(existing), scriptMarker) {
		preserved := filepath.Join(ins.HooksDir, event+".local")
		if _, err := os.Stat(preserved); err == nil {
			return fmt.Errorf("both %s and %s exist, refusing to overwrite", target, preserved)
		}
		if err := os.Rename(target, preserved); err != nil {
			return fmt.Errorf("preserve existing %s hook: %w", event, err)
		}
		ins.Logger.Info("preserved existing hook",
			slog.String("event", event),
			slog.String("as", preserved))
	}

	script := fmt.Sprintf("#!/bin/sh\n%s\nexec %q hook %s \"$@\"\n", scriptMarker, ins.Executable, event)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		return fmt.Errorf("write %s hook: %w", event, err)
	}
	return nil
}

// DefaultHooksDir returns ~/.git-hooks.
func DefaultHooksDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".git-hooks")
}
