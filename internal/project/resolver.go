// Package project maps working directories to configured projects.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/starford/logbook/internal"
)

// Project is a resolved project: where its working tree lives and where its
// logs go. LogRepo is empty when logs live in place under the base dir.
type Project struct {
	Name    string
	Root    string
	LogRepo string
	// AdHoc marks a project synthesized from the directory name rather than
	// declared in configuration.
	AdHoc bool
}

// Resolver selects the project owning a working directory.
type Resolver struct {
	cfg *internal.Config
}

// NewResolver creates a Resolver over the given configuration.
func NewResolver(cfg *internal.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve maps cwd to a project. Among configured projects whose root is an
// ancestor of (or equal to) cwd, the longest root wins, so a nested
// sub-package declaration beats the enclosing monorepo. Ties on identical
// normalized roots go to the first declared project. When nothing matches, an
// ad-hoc project named after the enclosing git repository (or cwd itself) is
// synthesized with the global log repo. Resolve never fails.
func (r *Resolver) Resolve(cwd string) Project {
	dir := normalize(cwd)

	var best *internal.DeclaredProject
	bestLen := -1
	for i := range r.cfg.Projects {
		p := &r.cfg.Projects[i]
		root := normalize(p.Root)
		if !isAncestor(root, dir) {
			continue
		}
		// Strictly longer only: first declared wins on identical roots.
		if len(root) > bestLen {
			best = p
			bestLen = len(root)
		}
	}
	if best != nil {
		logRepo := best.LogRepo
		if logRepo == "" {
			logRepo = r.cfg.GlobalLogRepo
		}
		return Project{Name: best.Name, Root: normalize(best.Root), LogRepo: logRepo}
	}

	return Project{
		Name:    adHocName(dir),
		Root:    dir,
		LogRepo: r.cfg.GlobalLogRepo,
		AdHoc:   true,
	}
}

// normalize resolves symlinks and strips trailing separators so that two
// spellings of one directory compare equal.
func normalize(p string) string {
	cleaned := filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(cleaned); err == nil {
		return resolved
	}
	return cleaned
}

// isAncestor reports whether root equals dir or is one of its ancestors.
func isAncestor(root, dir string) bool {
	if root == dir {
		return true
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) && !filepath.IsAbs(rel)
}

// adHocName returns the base name of the nearest enclosing git repository
// root, falling back to the base name of dir itself.
func adHocName(dir string) string {
	if root, ok := gitRoot(dir); ok {
		return filepath.Base(root)
	}
	return filepath.Base(dir)
}

// gitRoot walks up from dir looking for a .git entry.
func gitRoot(dir string) (string, bool) {
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, ".git")); err == nil {
			return d, true
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", false
		}
		d = parent
	}
}
