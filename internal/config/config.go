// Package config provides user-level gitup configuration,
// including reading and writing the gitup configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user configuration stored at ~/.gitup/config.json
type Config struct {
	Host  *string `json:"host,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Path returns the configuration file location. GITUP_CONFIG_FILE
// overrides the default ~/.gitup/config.json.
func Path() (string, error) {
	if path := os.Getenv("GITUP_CONFIG_FILE"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(home, ".gitup", "config.json"), nil
}

// Load reads the configuration file
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Save writes the configuration file, creating its directory if needed
func Save(config *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, configJSON, 0600)
}

// Host returns the GitHub hostname to talk to. GITUP_HOST takes
// precedence over the configured host; the default is github.com.
func Host() (string, error) {
	if host := os.Getenv("GITUP_HOST"); host != "" {
		return host, nil
	}

	config, err := Load()
	if err != nil {
		return "", err
	}

	if config.Host != nil && *config.Host != "" {
		return *config.Host, nil
	}

	return "github.com", nil
}

// SetHost updates the hostname in the config
func SetHost(host string) error {
	config, err := Load()
	if err != nil {
		config = &Config{}
	}

	config.Host = &host

	return Save(config)
}

// ColorMode returns the configured color mode: always, never, or auto.
// Defaults to auto when unset.
func ColorMode() (string, error) {
	config, err := Load()
	if err != nil {
		return "", err
	}

	if config.Color != nil {
		switch *config.Color {
		case "always", "never", "auto":
			return *config.Color, nil
		default:
			return "", fmt.Errorf("invalid color mode %q: expected always, never, or auto", *config.Color)
		}
	}

	return "auto", nil
}
