package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name searched for in the
// current and home directories.
const DefaultConfigFile = ".homophones"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .homophones configuration file.
// Zero values mean "not set" and leave the corresponding Config field alone.
type File struct {
	// BaseURL overrides the dictionary page prefix.
	BaseURL string `yaml:"base_url,omitempty"`

	// Selector overrides the homophone selector.
	Selector string `yaml:"selector,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout overrides the per-request timeout (e.g. "45s").
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// RetryBackoff overrides the wait before a retry (e.g. "5s").
	RetryBackoff time.Duration `yaml:"retry_backoff,omitempty"`

	// MaxRetries overrides the retry count. A pointer because 0 is a
	// meaningful value (no retry).
	MaxRetries *int `yaml:"max_retries,omitempty"`

	// MaxBodySize overrides the page size limit in bytes.
	MaxBodySize int64 `yaml:"max_body_size,omitempty"`

	// Proxy sets a SOCKS5 proxy in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cf, nil
}

// Apply copies every value set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf.BaseURL != "" {
		cfg.BaseURL = cf.BaseURL
	}
	if cf.Selector != "" {
		cfg.Selector = cf.Selector
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	if cf.Timeout != 0 {
		cfg.Timeout = cf.Timeout
	}
	if cf.RetryBackoff != 0 {
		cfg.RetryBackoff = cf.RetryBackoff
	}
	if cf.MaxRetries != nil {
		cfg.MaxRetries = *cf.MaxRetries
	}
	if cf.MaxBodySize != 0 {
		cfg.MaxBodySize = cf.MaxBodySize
	}
	if cf.Proxy != "" {
		cfg.ProxyAddress = cf.Proxy
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .homophones in the current directory
// 3. Look for .homophones in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	return ""
}
