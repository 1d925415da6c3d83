package dictionary

import "net/http"

// Outcome classifies a single retrieval.
type Outcome int

const (
	// OutcomeSuccess means a response arrived. The status code may still
	// indicate that the word has no page.
	OutcomeSuccess Outcome = iota

	// OutcomeRetryable means the request failed at the transport level and
	// may succeed if tried again.
	OutcomeRetryable

	// OutcomeFatal means the request cannot succeed by retrying, for example
	// because the request could not be built or the context was cancelled.
	OutcomeFatal
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeRetryable:
		return "retryable"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Attempt is the result of one retrieval.
type Attempt struct {
	// Outcome classifies the attempt.
	Outcome Outcome

	// StatusCode is the HTTP status. Only set for OutcomeSuccess.
	StatusCode int

	// Body is the (size-limited) response body. Only read for 2xx responses.
	Body []byte

	// Err is the cause of a retryable or fatal attempt.
	Err error
}

// success builds an OutcomeSuccess attempt.
func success(status int, body []byte) Attempt {
	return Attempt{Outcome: OutcomeSuccess, StatusCode: status, Body: body}
}

// retryable builds an OutcomeRetryable attempt.
func retryable(err error) Attempt {
	return Attempt{Outcome: OutcomeRetryable, Err: err}
}

// fatal builds an OutcomeFatal attempt.
func fatal(err error) Attempt {
	return Attempt{Outcome: OutcomeFatal, Err: err}
}

// Found reports whether the attempt returned a page for the word.
func (a Attempt) Found() bool {
	return a.Outcome == OutcomeSuccess &&
		a.StatusCode >= http.StatusOK && a.StatusCode < http.StatusMultipleChoices
}
