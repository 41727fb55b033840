package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "API_KEY", "GEMINI_API_KEY", "GRID_SIZE", "STARTING_CURRENCY"} {
		t.Setenv(key, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Port != "8080" {
		t.Errorf("Port %q, want 8080", cfg.Server.Port)
	}
	if cfg.Room.GridSize != 40 || cfg.Room.Width != 20 || cfg.Room.Height != 16 {
		t.Errorf("Room %+v, want 40/20/16", cfg.Room)
	}
	if cfg.Profile.StartingCurrency != 2000 {
		t.Errorf("StartingCurrency %d, want 2000", cfg.Profile.StartingCurrency)
	}
	if cfg.Assistant.Timeout() != 20*time.Second {
		t.Errorf("Timeout %v, want 20s", cfg.Assistant.Timeout())
	}
	if cfg.Assistant.APIKey != "" {
		t.Error("APIKey should default to empty")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port %q, want 8080", cfg.Server.Port)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Room.GridSize != 40 {
		t.Errorf("GridSize %d, want 40", cfg.Room.GridSize)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cozy.yaml")
	data := []byte(`
server:
  port: "9090"
room:
  grid_size: 32
assistant:
  api_key: from-file
  timeout_seconds: 5
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port %q, want 9090", cfg.Server.Port)
	}
	if cfg.Room.GridSize != 32 {
		t.Errorf("GridSize %d, want 32", cfg.Room.GridSize)
	}
	if cfg.Room.Width != 20 {
		t.Errorf("Width %d, want default 20", cfg.Room.Width)
	}
	if cfg.Assistant.APIKey != "from-file" {
		t.Errorf("APIKey %q, want from-file", cfg.Assistant.APIKey)
	}
	if cfg.Assistant.Timeout() != 5*time.Second {
		t.Errorf("Timeout %v, want 5s", cfg.Assistant.Timeout())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("GRID_SIZE", "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "7000" {
		t.Errorf("Port %q, want 7000", cfg.Server.Port)
	}
	if cfg.Assistant.APIKey != "gemini-key" {
		t.Errorf("APIKey %q, want gemini-key", cfg.Assistant.APIKey)
	}
	if cfg.Room.GridSize != 40 {
		t.Errorf("GridSize %d, want 40 when env is unparsable", cfg.Room.GridSize)
	}

	t.Setenv("API_KEY", "api-key")
	cfg, _ = Load("")
	if cfg.Assistant.APIKey != "api-key" {
		t.Errorf("APIKey %q, want API_KEY to win", cfg.Assistant.APIKey)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on invalid YAML")
	}
}
