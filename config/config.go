// Package config loads transformime.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/sonnes/transformime/core"
	"github.com/sonnes/transformime/renderers"
)

// Config represents the transformime.yaml configuration.
type Config struct {
	// Renderers selects and orders default renderers by mimetype, least
	// rich first. Empty means the full default set.
	Renderers []string `yaml:"renderers"`
	// Style is the chroma style for highlighted output.
	Style string `yaml:"style"`
	// Redact lists redaction rule sets: "secrets", "pii".
	Redact []string `yaml:"redact"`
	// Log is the log level.
	Log string `yaml:"log"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Style:  renderers.DefaultStyle,
		Redact: []string{"secrets", "pii"},
		Log:    "error",
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Style == "" {
		cfg.Style = renderers.DefaultStyle
	}
	if cfg.Log == "" {
		cfg.Log = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that can be checked without building anything.
func (c *Config) Validate() error {
	if !renderers.ValidStyle(c.Style) {
		return fmt.Errorf("unknown style %q", c.Style)
	}
	if _, err := log.ParseLevel(c.Log); err != nil {
		return err
	}
	for _, r := range c.Redact {
		if r != "secrets" && r != "pii" {
			return fmt.Errorf("unknown redaction rule %q", r)
		}
	}
	return nil
}

// BuildRenderers returns the renderer list the config describes.
func (c *Config) BuildRenderers() ([]core.Renderer, error) {
	set := renderers.New(renderers.Options{Style: c.Style})
	if len(c.Renderers) == 0 {
		return set, nil
	}
	return renderers.Select(set, c.Renderers)
}

// RedactEnabled reports whether the named rule set is on.
func (c *Config) RedactEnabled(name string) bool {
	return contains(c.Redact, name)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
