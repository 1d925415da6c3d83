package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/homophones/internal/dictionary"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "homophones"

	// DefaultTimeout bounds a single dictionary request. A request that
	// exceeds it counts as a transport failure and is retried.
	DefaultTimeout = 30 * time.Second

	// DefaultBaseURL is the dictionary page prefix.
	DefaultBaseURL = dictionary.DefaultBaseURL

	// DefaultSelector matches homophone elements on a dictionary page.
	DefaultSelector = dictionary.DefaultSelector

	// DefaultUserAgent identifies the tool in HTTP requests.
	DefaultUserAgent = dictionary.DefaultUserAgent

	// DefaultRetryBackoff is the wait before retrying a failed lookup. It is
	// long on purpose: the usual cause is the dictionary site throttling us.
	DefaultRetryBackoff = dictionary.DefaultBackoff

	// DefaultMaxRetries is how many times a failed lookup is retried.
	DefaultMaxRetries = dictionary.DefaultMaxRetries

	// DefaultMaxBodySize limits the page size read per lookup.
	DefaultMaxBodySize = dictionary.DefaultMaxBodySize
)

// Config holds all configuration options for a run.
// It is populated from defaults, the config file and CLI flags, and passed
// through the application rather than kept in global state.
//
// Design decision: We use a single flat struct. The number of options is
// small and nesting would add ceremony without benefit.
type Config struct {
	// Inputs are the word list files, read in order.
	Inputs []string

	// PairsPath is where the (word, homophone) pairs are written.
	// Empty means the pairs output is not requested.
	PairsPath string

	// SinglesPath is where the sorted unique word list is written.
	// Empty means the singles output is not requested.
	SinglesPath string

	// SummaryPath is where the optional Markdown run summary is written.
	SummaryPath string

	// Force allows overwriting outputs that already exist.
	Force bool

	// BaseURL is the dictionary page prefix; the escaped word is appended.
	BaseURL string

	// Selector is the CSS selector matching homophone elements.
	Selector string

	// UserAgent is the User-Agent header sent with lookups.
	UserAgent string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RetryBackoff is the wait before a retry.
	RetryBackoff time.Duration

	// MaxRetries is how many times a failed lookup is retried.
	MaxRetries int

	// MaxBodySize is the maximum response body size in bytes to read.
	MaxBodySize int64

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:      DefaultBaseURL,
		Selector:     DefaultSelector,
		UserAgent:    DefaultUserAgent,
		Timeout:      DefaultTimeout,
		RetryBackoff: DefaultRetryBackoff,
		MaxRetries:   DefaultMaxRetries,
		MaxBodySize:  DefaultMaxBodySize,
	}
}

// XDGConfigDir returns the XDG config directory for homophones.
// On Linux: ~/.config/homophones
// On macOS: ~/Library/Application Support/homophones
// On Windows: %APPDATA%\homophones
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Outputs returns the requested output paths in write order.
func (c *Config) Outputs() []string {
	var outputs []string
	for _, p := range []string{c.PairsPath, c.SinglesPath, c.SummaryPath} {
		if p != "" {
			outputs = append(outputs, p)
		}
	}
	return outputs
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
//
// Design decision: Output checks (including the existence check) happen
// here, before any network activity, so a run that would fail to write its
// results does not spend minutes looking words up first.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.PairsPath == "" && c.SinglesPath == "" {
		return ErrNoOutput
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.RetryBackoff < 0 {
		return ErrInvalidBackoff
	}

	if c.MaxRetries < 0 {
		return ErrInvalidRetries
	}

	if err := dictionary.ValidateBaseURL(c.BaseURL); err != nil {
		return err
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	return c.validateOutputs()
}

// validateOutputs rejects shared output paths and, unless Force is set,
// outputs that already exist.
func (c *Config) validateOutputs() error {
	seen := make(map[string]bool)
	for _, p := range c.Outputs() {
		key := filepath.Clean(p)
		if seen[key] {
			return fmt.Errorf("%w: %s", ErrDuplicateOutput, p)
		}
		seen[key] = true

		if c.Force {
			continue
		}
		_, err := os.Stat(p)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, p)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot check output %s: %w", p, err)
		}
	}
	return nil
}
