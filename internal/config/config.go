package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields foreman reads from its config file.
type Config struct {
	APIBase      string
	Records      int
	FetchTimeout time.Duration
	Theme        string
	PresetsPath  string
}

const (
	defaultConfigPath   = "~/.config/foreman/config.toml"
	defaultPresetsPath  = "~/.config/foreman/presets.yaml"
	defaultAPIBase      = "127.0.0.1:8432"
	defaultRecords      = 25000
	defaultFetchTimeout = 3 * time.Second
)

// Load locates and parses the foreman config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
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
		APIBase        string `toml:"api_base"`
		Records        int    `toml:"records"`
		FetchTimeoutMS int    `toml:"fetch_timeout_ms"`
		Theme          string `toml:"theme"`
		Presets        string `toml:"presets"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBase); v != "" {
		cfg.APIBase = v
	}
	if raw.Records > 0 {
		cfg.Records = raw.Records
	}
	if raw.FetchTimeoutMS > 0 {
		cfg.FetchTimeout = time.Duration(raw.FetchTimeoutMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(raw.Presets); v != "" {
		cfg.PresetsPath = mustExpand(v)
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		APIBase:      defaultAPIBase,
		Records:      defaultRecords,
		FetchTimeout: defaultFetchTimeout,
		PresetsPath:  mustExpand(defaultPresetsPath),
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
