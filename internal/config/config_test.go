package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `app:
  name: "fixturedesk"
  environment: "development"
  port: 8080
  base_url: "http://localhost:8080"

database:
  driver: "sqlite"
  filename: "build/data/test.db"

scheduler:
  overdue_sweep_minutes: 15
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.App.Name != "fixturedesk" {
		t.Errorf("expected app name, got %q", cfg.App.Name)
	}
	if cfg.ListenAddr() != ":8080" {
		t.Errorf("expected listen addr :8080, got %q", cfg.ListenAddr())
	}
	if cfg.Scheduler.OverdueSweepMinutes != 15 {
		t.Errorf("expected sweep interval 15, got %d", cfg.Scheduler.OverdueSweepMinutes)
	}
}

func TestLoadDefaultsSweepInterval(t *testing.T) {
	path := writeConfig(t, `app:
  name: "fixturedesk"
  port: 8080

database:
  driver: "sqlite"
  filename: "build/data/test.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Scheduler.OverdueSweepMinutes != 60 {
		t.Errorf("expected default sweep interval 60, got %d", cfg.Scheduler.OverdueSweepMinutes)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing app name", "app:\n  port: 8080\ndatabase:\n  driver: \"sqlite\"\n  filename: \"x.db\"\n"},
		{"missing port", "app:\n  name: \"x\"\ndatabase:\n  driver: \"sqlite\"\n  filename: \"x.db\"\n"},
		{"unsupported driver", "app:\n  name: \"x\"\n  port: 8080\ndatabase:\n  driver: \"postgres\"\n"},
		{"sqlite without filename", "app:\n  name: \"x\"\n  port: 8080\ndatabase:\n  driver: \"sqlite\"\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
