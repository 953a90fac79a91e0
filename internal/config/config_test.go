package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zombar/searchintel/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "searchintel.db" {
		t.Errorf("db path = %s", cfg.Database.Path)
	}
	if !cfg.Ollama.Enabled {
		t.Error("ollama should default to enabled")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: "9090"
database:
  path: /tmp/test.db
ollama:
  enabled: false
analyzer:
  maxConcurrency: 4
  metrics:
    bias:
      enabled: true
      mode: ai
      fallbackToLocal: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %s, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("db path = %s", cfg.Database.Path)
	}
	if cfg.Ollama.Enabled {
		t.Error("ollama should be disabled by file")
	}
	if cfg.Analyzer.MaxConcurrency != 4 {
		t.Errorf("maxConcurrency = %d, want 4", cfg.Analyzer.MaxConcurrency)
	}
	if got := cfg.Analyzer.Metrics[models.MetricBias].Mode; string(got) != "ai" {
		t.Errorf("bias mode = %s, want ai", got)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed YAML must error")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("USE_OLLAMA", "false")
	t.Setenv("MAX_CONCURRENCY", "16")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("port = %s, environment must win over file", cfg.Server.Port)
	}
	if cfg.Ollama.Enabled {
		t.Error("USE_OLLAMA=false must disable ollama")
	}
	if cfg.Analyzer.MaxConcurrency != 16 {
		t.Errorf("maxConcurrency = %d, want 16", cfg.Analyzer.MaxConcurrency)
	}
}
