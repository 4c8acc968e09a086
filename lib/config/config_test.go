// Copyright 2026 The CampusVibes Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	t.Setenv("CAMPUSVIBES_CONFIG", "")
	t.Setenv("CAMPUSVIBES_API_URL", "")
	t.Setenv("CAMPUSVIBES_API_TIMEOUT", "")
	t.Setenv("CAMPUSVIBES_SESSION_FILE", "")
	t.Setenv("CAMPUSVIBES_LOG_OUTPUT", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.URL != DefaultAPIURL {
		t.Errorf("API.URL = %q, want %q", cfg.API.URL, DefaultAPIURL)
	}
	if cfg.SessionFile == "" {
		t.Error("SessionFile should default to the standard location")
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("CAMPUSVIBES_API_URL", "")
	t.Setenv("CAMPUSVIBES_API_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "campusvibes.yaml")
	content := "api:\n  url: https://api.campusvibes.example\n  timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.URL != "https://api.campusvibes.example" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want 5s", cfg.API.Timeout)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusvibes.yaml")
	if err := os.WriteFile(path, []byte("api:\n  url: https://from-file.example\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAMPUSVIBES_API_URL", "https://from-env.example")
	t.Setenv("CAMPUSVIBES_API_TIMEOUT", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.URL != "https://from-env.example" {
		t.Errorf("API.URL = %q, want env value", cfg.API.URL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("explicit config path that does not exist should fail")
	}
}

func TestValidateRejectsEmptyURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusvibes.yaml")
	if err := os.WriteFile(path, []byte("api:\n  url: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CAMPUSVIBES_API_URL", "")

	cfg := Default()
	cfg.API.URL = ""
	if err := cfg.validate(); err == nil {
		t.Fatal("empty api.url should fail validation")
	}
}
