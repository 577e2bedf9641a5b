// Package config loads paperstats settings from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AOShei/paperstats/pkg/analysis"
	"github.com/AOShei/paperstats/pkg/report"
)

// Config is the top-level configuration.
type Config struct {
	// Variant picks the base policy ("strict" or "simple"); Policy fields
	// set in the same file override it.
	Variant  string          `yaml:"variant"`
	Policy   analysis.Policy `yaml:"policy"`
	Jobs     int             `yaml:"jobs"`
	Format   report.Format   `yaml:"format"`
	LogLevel string          `yaml:"log_level"` // debug | info | warn | error
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// First pass: the variant decides the policy the second pass overlays.
	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if head.Variant == "" {
		head.Variant = "strict"
	}
	base, err := analysis.Preset(head.Variant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg := &Config{Variant: head.Variant, Policy: base}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// UseVariant replaces the policy with the named preset.
func (c *Config) UseVariant(name string) error {
	p, err := analysis.Preset(name)
	if err != nil {
		return err
	}
	c.Variant = name
	c.Policy = p
	return nil
}

func (c *Config) applyDefaults() {
	if c.Variant == "" {
		c.Variant = "strict"
		c.Policy = analysis.Strict()
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return fmt.Errorf("policy: %w", err)
	}
	switch c.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("format: invalid value %q", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log_level: invalid value %q", s)
}
