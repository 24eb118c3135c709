package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENDPOINT", "TIMEOUT_SECONDS", "DEFAULT_CURRENCY", "LANG", "PROXY"} {
		t.Setenv(envPrefix+key, "")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPrefix+"CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.Endpoint != "http://127.0.0.1:8000/api/salary" {
		t.Fatalf("Endpoint = %q", cfg.Endpoint)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv(envPrefix+"CONFIG_DIR", dir)

	content := `{
  // estimation service behind the gateway
  endpoint: "https://salary.example.com/api/salary",
  timeout_seconds: 5,
  language: "th",
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "https://salary.example.com/api/salary" || cfg.TimeoutSeconds != 5 || cfg.Language != "th" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DefaultCurrency != "THB" {
		t.Fatalf("DefaultCurrency = %q, want default THB", cfg.DefaultCurrency)
	}

	t.Setenv(envPrefix+"ENDPOINT", "http://10.0.0.2:8000/api/salary")
	t.Setenv(envPrefix+"TIMEOUT_SECONDS", "not-a-number")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Endpoint != "http://10.0.0.2:8000/api/salary" {
		t.Fatalf("env should override file, got %q", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 5 {
		t.Fatalf("invalid env int should keep file value, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadRejectsInvalidEndpoint(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPrefix+"CONFIG_DIR", t.TempDir())
	t.Setenv(envPrefix+"ENDPOINT", "127.0.0.1:8000/api/salary")

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestInitWritesDefaultsOnce(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv(envPrefix+"CONFIG_DIR", dir)

	created, err := Init()
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if len(created) != 1 || created[0] != filepath.Join(dir, ConfigFileName) {
		t.Fatalf("Init() created = %v", created)
	}

	created, err = Init()
	if err != nil {
		t.Fatalf("Init() (2nd) error = %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("Init() (2nd) created = %v, want none", created)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() after Init = %+v", cfg)
	}
}

func TestServiceConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutSeconds = 7
	cfg.Proxy = " http://proxy:3128 "

	svc := cfg.Service()
	if svc.Timeout != 7*time.Second {
		t.Fatalf("Timeout = %v", svc.Timeout)
	}
	if svc.Proxy != "http://proxy:3128" {
		t.Fatalf("Proxy = %q", svc.Proxy)
	}
}
