// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the CampusVibes
// client.
//
// Configuration is layered, lowest precedence first:
//   - built-in defaults
//   - a .env file in the working directory, if present
//   - a YAML config file (CAMPUSVIBES_CONFIG or --config)
//   - CAMPUSVIBES_* environment variables
//
// The YAML file is optional; the client runs against the default
// backend with no configuration at all.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/campusvibes/campusvibes/lib/session"
)

// DefaultAPIURL is the backend used when nothing else is configured.
const DefaultAPIURL = "http://localhost:3000"

// Config is the client configuration.
type Config struct {
	// API configures the backend connection.
	API APIConfig `yaml:"api"`

	// SessionFile is where the signed-in session is persisted.
	// Empty means the standard per-user config location.
	SessionFile string `yaml:"session_file"`

	// LogOutput is a file path for structured logs. Empty disables
	// file logging; logs still go to stderr.
	LogOutput string `yaml:"log_output"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// URL is the backend base URL.
	URL string `yaml:"url"`

	// Timeout bounds each request. Zero means the client default.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL: DefaultAPIURL,
		},
		SessionFile: session.FilePath(),
	}
}

// Load builds the configuration from all layers. path is the YAML
// file from --config; when empty, CAMPUSVIBES_CONFIG is consulted,
// and when that is unset no file is read.
func Load(path string) (*Config, error) {
	// A .env in the working directory seeds the environment without
	// overriding variables already set.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CAMPUSVIBES_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvironment()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironment overlays CAMPUSVIBES_* variables on the loaded
// values. Malformed durations are ignored rather than fatal.
func (c *Config) applyEnvironment() {
	if value := os.Getenv("CAMPUSVIBES_API_URL"); value != "" {
		c.API.URL = value
	}
	if value := os.Getenv("CAMPUSVIBES_API_TIMEOUT"); value != "" {
		if timeout, err := time.ParseDuration(value); err == nil {
			c.API.Timeout = timeout
		}
	}
	if value := os.Getenv("CAMPUSVIBES_SESSION_FILE"); value != "" {
		c.SessionFile = value
	}
	if value := os.Getenv("CAMPUSVIBES_LOG_OUTPUT"); value != "" {
		c.LogOutput = value
	}
}

func (c *Config) validate() error {
	if c.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	return nil
}
