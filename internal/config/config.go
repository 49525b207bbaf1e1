// Package config loads application settings from an optional YAML file,
// with environment variables taking precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the planner server.
type Config struct {
	Addr     string `yaml:"addr"`
	DBPath   string `yaml:"db_path"`
	Env      string `yaml:"env"`
	ReportTo string `yaml:"report_to"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Addr:   ":8080",
		DBPath: "planner.db",
		Env:    "development",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
// Keys absent from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from PLANNER_* environment variables.
// Env vars win over both defaults and file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PLANNER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("PLANNER_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("PLANNER_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("PLANNER_REPORT_TO"); v != "" {
		c.ReportTo = v
	}
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.Env != "development" && c.Env != "production" {
		return fmt.Errorf("env must be 'development' or 'production', got %q", c.Env)
	}
	return nil
}
