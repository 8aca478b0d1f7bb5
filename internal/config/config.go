// Package config loads aoc2018 settings from YAML with environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
type Config struct {
	// InputDir holds dayNN.txt files.
	InputDir string `yaml:"input_dir"`

	// HistoryDB is the SQLite answer history used by solve --record/--check.
	HistoryDB string `yaml:"history_db"`

	// Format is the solve output format: text, json or value.
	Format string `yaml:"format"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// ValidFormats are the accepted output formats.
var ValidFormats = map[string]bool{
	"text":  true,
	"json":  true,
	"value": true,
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "inputs",
		HistoryDB: filepath.Join(homeDir(), ".aoc2018", "history.db"),
		Format:    "text",
		LogLevel:  "info",
	}
}

// DefaultPath is $AOC_CONFIG or ~/.aoc2018/config.yaml.
func DefaultPath() string {
	if env := os.Getenv("AOC_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(homeDir(), ".aoc2018", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.HistoryDB = expandHome(cfg.HistoryDB)
	cfg.InputDir = expandHome(cfg.InputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if !ValidFormats[c.Format] {
		return fmt.Errorf("invalid format %q (use text, json or value)", c.Format)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AOC_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("AOC_HISTORY_DB"); v != "" {
		c.HistoryDB = v
	}
	if v := os.Getenv("AOC_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("AOC_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

func homeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

func expandHome(p string) string {
	if p == "~" {
		return homeDir()
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir(), p[2:])
	}
	return p
}
