package dictionary

import (
	"errors"
	"fmt"
)

// Dictionary configuration errors.
var (
	// ErrInvalidSelector is returned when the homophone selector cannot be
	// compiled.
	ErrInvalidSelector = errors.New("invalid homophone selector")

	// ErrInvalidBaseURL is returned when the lookup base URL is not an
	// absolute http or https URL.
	ErrInvalidBaseURL = errors.New("invalid base URL: must be an absolute http or https URL")

	// ErrInvalidProxyAddress is returned when the proxy address format is
	// invalid. Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)

// FatalFetchError is returned by Fetcher.Lookup when a word could not be
// retrieved even after retrying, or when the failure was not retryable in
// the first place. It is meant to abort the whole run.
type FatalFetchError struct {
	// Word is the word being looked up.
	Word string

	// URL is the lookup target built from the word.
	URL string

	// Attempts is the number of retrievals made before giving up.
	Attempts int

	// Err is the cause reported by the last attempt.
	Err error
}

// Error implements the error interface.
func (e *FatalFetchError) Error() string {
	return fmt.Sprintf("lookup of %q failed after %d attempt(s): %v", e.Word, e.Attempts, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FatalFetchError) Unwrap() error {
	return e.Err
}
