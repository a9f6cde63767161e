package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/logbook/internal"
)

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()
	p := filepath.Join(parts...)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestResolve_LongestRootWins(t *testing.T) {
	base := t.TempDir()
	root := mkdir(t, base, "r")
	sub := mkdir(t, base, "r", "sub")
	cwd := mkdir(t, base, "r", "sub", "x")

	cfg := internal.NewDefaultConfig()
	cfg.Projects = internal.ProjectSet{
		{Name: "mono", Root: root},
		{Name: "pkg", Root: sub},
	}

	got := NewResolver(cfg).Resolve(cwd)
	if got.Name != "pkg" {
		t.Errorf("resolved %q, want pkg", got.Name)
	}
	if got.AdHoc {
		t.Error("configured project marked ad-hoc")
	}
}

func TestResolve_IdenticalRootsFirstDeclaredWins(t *testing.T) {
	root := t.TempDir()
	cfg := internal.NewDefaultConfig()
	cfg.Projects = internal.ProjectSet{
		{Name: "first", Root: root},
		{Name: "second", Root: root + string(os.PathSeparator)},
	}

	got := NewResolver(cfg).Resolve(root)
	if got.Name != "first" {
		t.Errorf("resolved %q, want first", got.Name)
	}
}

func TestResolve_ExactRootMatch(t *testing.T) {
	root := t.TempDir()
	cfg := internal.NewDefaultConfig()
	cfg.Projects = internal.ProjectSet{{Name: "demo", Root: root}}

	if got := NewResolver(cfg).Resolve(root); got.Name != "demo" {
		t.Errorf("resolved %q, want demo", got.Name)
	}
}

func TestResolve_SiblingDoesNotMatch(t *testing.T) {
	base := t.TempDir()
	mkdir(t, base, "proj")
	other := mkdir(t, base, "projother")

	cfg := internal.NewDefaultConfig()
	cfg.Projects = internal.ProjectSet{{Name: "proj", Root: filepath.Join(base, "proj")}}

	got := NewResolver(cfg).Resolve(other)
	if got.Name == "proj" {
		t.Error("prefix-similar sibling matched project root")
	}
	if !got.AdHoc {
		t.Error("fallback not marked ad-hoc")
	}
}

func TestResolve_FallbackNamedAfterGitRoot(t *testing.T) {
	base := t.TempDir()
	repo := mkdir(t, base, "myrepo")
	mkdir(t, repo, ".git")
	cwd := mkdir(t, repo, "deep", "inside")

	cfg := internal.NewDefaultConfig()
	cfg.GlobalLogRepo = filepath.Join(base, "logs")

	got := NewResolver(cfg).Resolve(cwd)
	if got.Name != "myrepo" {
		t.Errorf("ad-hoc name = %q, want myrepo", got.Name)
	}
	if got.LogRepo != cfg.GlobalLogRepo {
		t.Errorf("ad-hoc log repo = %q", got.LogRepo)
	}
}

func TestResolve_FallbackNeverFails(t *testing.T) {
	cwd := t.TempDir()
	cfg := internal.NewDefaultConfig()

	got := NewResolver(cfg).Resolve(cwd)
	if got.Name == "" || got.Root == "" {
		t.Errorf("empty resolution: %+v", got)
	}
	if got.Name != filepath.Base(normalize(cwd)) {
		t.Errorf("ad-hoc name = %q", got.Name)
	}
}

func TestResolve_ProjectLogRepoOverridesGlobal(t *testing.T) {
	root := t.TempDir()
	cfg := internal.NewDefaultConfig()
	cfg.GlobalLogRepo = "/global/logs"
	cfg.Projects = internal.ProjectSet{{Name: "demo", Root: root, LogRepo: "/own/logs"}}

	if got := NewResolver(cfg).Resolve(root); got.LogRepo != "/own/logs" {
		t.Errorf("log repo = %q, want /own/logs", got.LogRepo)
	}
}
