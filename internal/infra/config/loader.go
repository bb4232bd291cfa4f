// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"atl/internal/domain"
)

// ConfigFileName is the name of the optional global config file.
const ConfigFileName = "config.toml"

// fileConfig mirrors the TOML schema. Zero values mean "not set".
type fileConfig struct {
	BaseURL  string `toml:"base_url"`
	Email    string `toml:"email"`
	APIToken string `toml:"api_token"`
	Timeout  int    `toml:"timeout"` // seconds
}

// Loader loads configuration from the global TOML file and the
// environment. Environment variables take precedence over the file;
// defaults fill the rest.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/atl)
}

// NewLoader creates a new Loader using the default global config
// directory.
func NewLoader() *Loader {
	return &Loader{globalConfDir: defaultGlobalConfigDir()}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir string) *Loader {
	return &Loader{globalConfDir: globalConfDir}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "atl")
}

// Load returns the merged configuration (defaults <- file <- env) and
// validates that the mandatory credentials are present. Validation
// failures surface here, before any network call is attempted.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	file, err := l.loadFile()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if file != nil {
		applyFile(cfg, file)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads and parses the global config file.
func (l *Loader) loadFile() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	path := filepath.Join(l.globalConfDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &file, nil
}

// applyFile copies set file values onto cfg.
func applyFile(cfg *domain.Config, file *fileConfig) {
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.Email != "" {
		cfg.Email = file.Email
	}
	if file.APIToken != "" {
		cfg.APIToken = file.APIToken
	}
	if file.Timeout > 0 {
		cfg.Timeout = time.Duration(file.Timeout) * time.Second
	}
}

// applyEnv copies set environment variables onto cfg.
func applyEnv(cfg *domain.Config) error {
	if v := os.Getenv("ATLASSIAN_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ATLASSIAN_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("ATLASSIAN_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("ATLASSIAN_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse ATLASSIAN_TIMEOUT: %w", err)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}
	return nil
}
