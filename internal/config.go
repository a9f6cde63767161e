// Package internal provides the application configuration model.
package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	App           ApplicationConfig `yaml:"app"`
	GlobalLogRepo string            `yaml:"global_log_repo"`
	Projects      ProjectSet        `yaml:"projects"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c.GlobalLogRepo, absolutePathRule(true)); err != nil {
		return fmt.Errorf("global_log_repo: %w", err)
	}
	return c.Projects.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	// BaseDir is where in-place logs live for projects without a log
	// repository, one subdirectory per project.
	BaseDir string `yaml:"base_dir"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseDir, validation.Required),
	)
}

// DeclaredProject is one configured project.
type DeclaredProject struct {
	Name    string
	Root    string
	LogRepo string
}

// Validate validates a declared project.
func (p DeclaredProject) Validate() error {
	if err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Root, validation.Required),
	); err != nil {
		return err
	}
	if err := validation.Validate(p.Root, absolutePathRule(false)); err != nil {
		return fmt.Errorf("project %s: root: %w", p.Name, err)
	}
	if err := validation.Validate(p.LogRepo, absolutePathRule(true)); err != nil {
		return fmt.Errorf("project %s: log_repo: %w", p.Name, err)
	}
	return nil
}

// ProjectSet holds configured projects in declaration order. Order matters:
// when two declared roots normalize identically, resolution picks the first
// declared one.
type ProjectSet []DeclaredProject

// UnmarshalYAML decodes the "projects" mapping while preserving key order.
// Each value is either a scalar root path or a mapping {root, log_repo}.
func (s *ProjectSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("projects must be a mapping, got %s", node.Tag)
	}
	out := make(ProjectSet, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		p := DeclaredProject{Name: key.Value}
		switch val.Kind {
		case yaml.ScalarNode:
			p.Root = val.Value
		case yaml.MappingNode:
			var body struct {
				Root    string `yaml:"root"`
				LogRepo string `yaml:"log_repo"`
			}
			if err := val.Decode(&body); err != nil {
				return fmt.Errorf("project %s: %w", key.Value, err)
			}
			p.Root = body.Root
			p.LogRepo = body.LogRepo
		default:
			return fmt.Errorf("project %s: unsupported value kind", key.Value)
		}
		out = append(out, p)
	}
	*s = out
	return nil
}

// Validate validates every declared project.
func (s ProjectSet) Validate() error {
	for _, p := range s {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func absolutePathRule(optional bool) validation.Rule {
	return validation.By(func(value interface{}) error {
		p, _ := value.(string)
		if p == "" {
			if optional {
				return nil
			}
			return fmt.Errorf("path is empty")
		}
		if !filepath.IsAbs(p) {
			return fmt.Errorf("path %q is not absolute", p)
		}
		return nil
	})
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			BaseDir:  filepath.Join(home, ".logbook", "projects"),
		},
	}
}

// DefaultConfigPath returns the default config file location,
// ~/.logbook/config.yml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".logbook", "config.yml")
}
