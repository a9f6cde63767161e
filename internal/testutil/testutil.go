// Package testutil provides shared test helpers for configs and log trees.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/starford/logbook/internal"
)

// Config returns a Config whose base dir is a temp directory.
func Config(t *testing.T) *internal.Config {
	t.Helper()
	cfg := internal.NewDefaultConfig()
	cfg.App.BaseDir = t.TempDir()
	return cfg
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of path.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// FixedClock returns a clock pinned to a known date.
func FixedClock() (func() time.Time, string) {
	at := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }, "2025-08-31"
}
