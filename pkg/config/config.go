// Package config loads optional on-disk defaults for agent-browser
// clients. The file lives at ~/.agent-browser/config.yaml; a missing file
// yields the built-in defaults, so loading never requires setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CloseConfig is the retry policy for closing all sessions.
type CloseConfig struct {
	// Retries is how many passes to make over remaining sessions.
	Retries int `yaml:"retries"`

	// DelayMS is the pause between passes, in milliseconds.
	DelayMS int `yaml:"delay_ms"`
}

// Config mirrors the client's construction options. Zero values mean
// "unset"; the client keeps its own default for those fields.
type Config struct {
	// Binary is the agent-browser executable name or path.
	Binary string `yaml:"binary"`

	// Session is the default session name.
	Session string `yaml:"session"`

	// ExecutablePath is a custom browser executable.
	ExecutablePath string `yaml:"executable_path"`

	// Headers are default HTTP headers applied on navigation.
	Headers map[string]string `yaml:"headers"`

	// Headed shows the browser window.
	Headed bool `yaml:"headed"`

	// Debug enables tool debug output and command logging.
	Debug bool `yaml:"debug"`

	// CDPPort connects via an existing Chrome DevTools Protocol port.
	CDPPort int `yaml:"cdp_port"`

	// AllowedURLs are glob patterns restricting navigation.
	AllowedURLs []string `yaml:"allowed_urls"`

	// Close is the session-sweep retry policy.
	Close CloseConfig `yaml:"close"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Close: CloseConfig{
			Retries: 2,
			DelayMS: 500,
		},
	}
}

// DefaultPath returns ~/.agent-browser/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".agent-browser", "config.yaml"), nil
}

// Load reads the config file at path, or the default path when path is
// empty. A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
