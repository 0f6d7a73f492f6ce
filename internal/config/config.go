package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the connection settings Ladle needs for a Mealie server.
type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/ladle/config.toml"
	defaultURL            = "http://127.0.0.1:9925"
	defaultTimeoutSeconds = 10
)

// Load locates and parses the ladle config, falling back to defaults when
// missing. A .env file next to the config plus the MEALIE_URL and
// MEALIE_TOKEN variables override the file, so the API token can stay out
// of the TOML.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{URL: defaultURL, Timeout: defaultTimeoutSeconds * time.Second}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg, filepath.Dir(resolved))
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		URL            string `toml:"url"`
		Token          string `toml:"token"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.URL = strings.TrimSpace(raw.URL)
	if cfg.URL == "" {
		cfg.URL = defaultURL
	}

	cfg.Token = strings.TrimSpace(raw.Token)

	if raw.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}

	applyEnv(&cfg, filepath.Dir(resolved))

	return cfg, nil
}

// applyEnv overlays environment values onto the config. A missing .env file
// is fine; explicitly exported variables still apply.
func applyEnv(cfg *Config, dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	if v := strings.TrimSpace(os.Getenv("MEALIE_URL")); v != "" {
		cfg.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("MEALIE_TOKEN")); v != "" {
		cfg.Token = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
