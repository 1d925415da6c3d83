package config

import (
	"errors"

	"github.com/nao1215/homophones/internal/dictionary"
)

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling. Validate wraps them with the
// offending value where one exists.
var (
	// ErrNoInput is returned when no word list file is given.
	ErrNoInput = errors.New("no input specified: provide at least one word list file")

	// ErrNoOutput is returned when neither the pairs nor the singles output
	// is requested. The Markdown summary alone does not count.
	ErrNoOutput = errors.New("no output specified: use --pairs and/or --singles")

	// ErrOutputExists is returned when a requested output already exists and
	// overwriting was not allowed with --force.
	ErrOutputExists = errors.New("output file already exists (use --force to overwrite)")

	// ErrDuplicateOutput is returned when two outputs share a path.
	ErrDuplicateOutput = errors.New("the same path is used for more than one output")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBackoff is returned when the retry backoff is negative.
	// Use 0 to retry immediately.
	ErrInvalidBackoff = errors.New("invalid retry backoff: must be non-negative")

	// ErrInvalidRetries is returned when the retry count is negative.
	ErrInvalidRetries = errors.New("invalid max retries: must be non-negative")

	// ErrInvalidBaseURL is returned when the base URL is not an absolute
	// http or https URL. It is the error the fetcher reports for the same
	// problem, so either can be matched with errors.Is.
	ErrInvalidBaseURL = dictionary.ErrInvalidBaseURL

	// ErrInvalidMaxBodySize is returned when the max body size is not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")
)
