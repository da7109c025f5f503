// Package userconfig holds launcher tunables that are edited by hand or
// via the `lantern config` command. Tunables live in config.toml next to
// the settings file and never hold launcher state.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lantern-launcher/lantern/internal/settings"
)

const configFileName = "config.toml"

// Config represents user-configurable tunables.
type Config struct {
	// DownloadTimeout bounds a single archive download. "0s" disables the
	// overall timeout, which is the default since release archives are large.
	DownloadTimeout string `toml:"download_timeout"`

	// LogLevel is the default verbosity when no flag is given.
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// ReleasesRepo is the GitHub owner/repo queried for available releases.
	ReleasesRepo string `toml:"releases_repo"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		DownloadTimeout: "0s",
		LogLevel:        "info",
		ReleasesRepo:    "open-goal/jak-project",
	}
}

// DefaultPath returns the tunables file location, sharing the directory
// used by the settings store.
func DefaultPath() (string, error) {
	settingsPath, err := settings.DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(settingsPath), configFileName), nil
}

// Load reads the tunables file, falling back to defaults when it is missing.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads tunables from a specific file path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the tunables to the default location.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return fmt.Errorf("failed to locate config path: %w", err)
	}
	return c.SaveToPath(path)
}

// SaveToPath writes tunables to a specific file path.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Timeout parses DownloadTimeout. Invalid values fall back to no timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.DownloadTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "download_timeout":
		return c.DownloadTimeout, true
	case "log_level":
		return c.LogLevel, true
	case "releases_repo":
		return c.ReleasesRepo, true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "download_timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid value for download_timeout: must be a duration like 30s or 5m")
		}
		c.DownloadTimeout = value
		return nil
	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error":
			c.LogLevel = strings.ToLower(value)
			return nil
		}
		return fmt.Errorf("invalid value for log_level: must be debug, info, warn or error")
	case "releases_repo":
		parts := strings.Split(value, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("invalid value for releases_repo: must be owner/repo")
		}
		c.ReleasesRepo = value
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"download_timeout": "Overall timeout for one archive download (0s disables)",
		"log_level":        "Default log verbosity (debug/info/warn/error)",
		"releases_repo":    "GitHub owner/repo queried for available releases",
	}
}
