package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"secretclip/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultClearAfter is how long a copied secret stays on the clipboard.
	DefaultClearAfter = 30

	envBackend    = "SECRETCLIP_BACKEND"
	envClearAfter = "SECRETCLIP_CLEAR_AFTER"
	envLogLevel   = "SECRETCLIP_LOG_LEVEL"
)

// Config holds the complete configuration
type Config struct {
	Clipboard ClipboardConfig `yaml:"clipboard"`
	LogLevel  string          `yaml:"log_level,omitempty"`
}

type ClipboardConfig struct {
	// Backend names the preferred clipboard tool. Empty means auto-detect.
	Backend string `yaml:"backend,omitempty"`
	// ClearAfter is the number of seconds before the clipboard is wiped.
	// Zero or less disables clearing.
	ClearAfter *int `yaml:"clear_after,omitempty"`
}

// ClearAfterSeconds returns the configured delay, falling back to the default.
func (c ClipboardConfig) ClearAfterSeconds() int {
	if c.ClearAfter == nil {
		return DefaultClearAfter
	}
	return *c.ClearAfter
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	clearAfter := DefaultClearAfter
	return &Config{
		Clipboard: ClipboardConfig{ClearAfter: &clearAfter},
	}
}

// Load loads the configuration file and applies environment overrides
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "secretclip", "config.yaml"), nil
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return saveToPath(configPath, cfg)
}

func saveToPath(configPath string, cfg *Config) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvironmentOverrides(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// No file is fine, defaults and env vars apply
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config
func applyEnvironmentOverrides(cfg *Config) error {
	if value := os.Getenv(envBackend); value != "" {
		cfg.Clipboard.Backend = value
	}
	if value := os.Getenv(envClearAfter); value != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("%s must be a whole number of seconds, got '%s'", envClearAfter, value))
		}
		cfg.Clipboard.ClearAfter = &parsed
	}
	if value := os.Getenv(envLogLevel); value != "" {
		cfg.LogLevel = value
	}
	return nil
}

// validateConfig rejects values no command could make sense of. An unknown
// backend name is allowed: selection falls back to auto-detection.
func validateConfig(cfg *Config) error {
	if strings.ContainsAny(cfg.Clipboard.Backend, " \t\n") {
		return errors.ConfigError(fmt.Sprintf("clipboard backend '%s' must not contain whitespace", cfg.Clipboard.Backend))
	}
	return nil
}
