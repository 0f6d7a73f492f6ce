package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearMealieEnv unsets the override variables while keeping t.Setenv's
// automatic restore in place.
func clearMealieEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"MEALIE_URL", "MEALIE_TOKEN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearMealieEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != defaultURL {
		t.Fatalf("URL = %q, want %q", cfg.URL, defaultURL)
	}
	if cfg.Token != "" {
		t.Fatalf("Token = %q, want empty", cfg.Token)
	}
	if cfg.Timeout != defaultTimeoutSeconds*time.Second {
		t.Fatalf("Timeout = %v, want %ds", cfg.Timeout, defaultTimeoutSeconds)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearMealieEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "  https://mealie.example.com/mealie  "
token = "  abc123  "
timeout_seconds = 30
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != "https://mealie.example.com/mealie" {
		t.Fatalf("URL = %q", cfg.URL)
	}
	if cfg.Token != "abc123" {
		t.Fatalf("Token = %q, want abc123", cfg.Token)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("Timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearMealieEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "   "
timeout_seconds = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != defaultURL {
		t.Fatalf("URL = %q, want %q", cfg.URL, defaultURL)
	}
	if cfg.Timeout != defaultTimeoutSeconds*time.Second {
		t.Fatalf("Timeout = %v, want default", cfg.Timeout)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearMealieEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearMealieEnv(t)
	t.Setenv("MEALIE_URL", "https://env.example.com")
	t.Setenv("MEALIE_TOKEN", "env-token")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
url = "https://file.example.com"
token = "file-token"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.URL != "https://env.example.com" {
		t.Fatalf("URL = %q, want env override", cfg.URL)
	}
	if cfg.Token != "env-token" {
		t.Fatalf("Token = %q, want env override", cfg.Token)
	}
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearMealieEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`url = "https://file.example.com"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MEALIE_TOKEN=dotenv-token\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Token != "dotenv-token" {
		t.Fatalf("Token = %q, want dotenv-token", cfg.Token)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
