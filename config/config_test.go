package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newViper(t, ""))
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.HTTPServer.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %s, want 10s", cfg.HTTPServer.ShutdownTimeout)
	}
	if cfg.Board.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Board.Timezone)
	}
	if cfg.Board.SessionTTL != 2*time.Hour {
		t.Errorf("SessionTTL = %s, want 2h", cfg.Board.SessionTTL)
	}
	if cfg.Board.DefaultCategory != "General" || cfg.Board.DefaultPriority != "Medium" {
		t.Errorf("defaults = %q/%q, want General/Medium", cfg.Board.DefaultCategory, cfg.Board.DefaultPriority)
	}
	if cfg.RateLimit.RequestsPerMin != 120 {
		t.Errorf("RequestsPerMin = %d, want 120", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoad_File(t *testing.T) {
	yaml := `
environment:
  name: production
http_server:
  port: 9090
  mode: release
board:
  timezone: Asia/Ho_Chi_Minh
  session_ttl: 30m
  max_sessions: 5
  default_category: Work
  default_priority: High
rate_limit:
  requests_per_min: 0
`
	cfg, err := load(newViper(t, yaml))
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.Environment.Name != "production" {
		t.Errorf("Environment = %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.Mode != "release" {
		t.Errorf("HTTPServer = %+v", cfg.HTTPServer)
	}
	if cfg.Board.Timezone != "Asia/Ho_Chi_Minh" {
		t.Errorf("Timezone = %q", cfg.Board.Timezone)
	}
	if cfg.Board.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s, want 30m", cfg.Board.SessionTTL)
	}
	if cfg.Board.MaxSessions != 5 {
		t.Errorf("MaxSessions = %d, want 5", cfg.Board.MaxSessions)
	}
	if cfg.Board.DefaultCategory != "Work" || cfg.Board.DefaultPriority != "High" {
		t.Errorf("defaults = %q/%q", cfg.Board.DefaultCategory, cfg.Board.DefaultPriority)
	}
	if cfg.RateLimit.RequestsPerMin != 0 {
		t.Errorf("RequestsPerMin = %d, want 0", cfg.RateLimit.RequestsPerMin)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "port out of range", yaml: "http_server:\n  port: 70000\n"},
		{name: "negative max sessions", yaml: "board:\n  max_sessions: -1\n"},
		{name: "negative rate", yaml: "rate_limit:\n  requests_per_min: -5\n"},
		{name: "malformed yaml", yaml: "board: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(newViper(t, tt.yaml)); err == nil {
				t.Error("load() error = nil, want error")
			}
		})
	}
}
