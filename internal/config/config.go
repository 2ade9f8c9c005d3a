package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings codemarket reads at startup.
type Config struct {
	SeedPath     string
	LogPath      string
	Currency     string
	PreviewLines int
	LockSoldRows bool
}

const (
	defaultConfigPath   = "~/.config/codemarket/config.toml"
	defaultSeedPath     = "~/.config/codemarket/seed.toml"
	defaultLogPath      = "~/.local/state/codemarket/codemarket.log"
	defaultCurrency     = "KRW"
	defaultPreviewLines = 2
	maxPreviewLines     = 10
)

// Load locates and parses the config, falling back to defaults when missing.
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
		SeedPath     string `toml:"seed_path"`
		LogPath      string `toml:"log_path"`
		Currency     string `toml:"currency"`
		PreviewLines int    `toml:"preview_lines"`
		LockSoldRows bool   `toml:"lock_sold_rows"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if seed := strings.TrimSpace(raw.SeedPath); seed != "" {
		cfg.SeedPath = mustExpand(seed)
	}
	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if currency := strings.TrimSpace(raw.Currency); currency != "" {
		cfg.Currency = currency
	}
	switch {
	case raw.PreviewLines <= 0:
	case raw.PreviewLines > maxPreviewLines:
		cfg.PreviewLines = maxPreviewLines
	default:
		cfg.PreviewLines = raw.PreviewLines
	}
	cfg.LockSoldRows = raw.LockSoldRows

	return cfg, nil
}

// WithSeedPath returns cfg with the seed catalog overridden, when path is set.
func (c Config) WithSeedPath(path string) Config {
	if strings.TrimSpace(path) == "" {
		return c
	}
	c.SeedPath = mustExpand(path)
	return c
}

func defaults() Config {
	return Config{
		SeedPath:     mustExpand(defaultSeedPath),
		LogPath:      mustExpand(defaultLogPath),
		Currency:     defaultCurrency,
		PreviewLines: defaultPreviewLines,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
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
