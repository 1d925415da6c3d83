package dictionary

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Defaults used by NewFetcher.
const (
	// DefaultBaseURL is the page prefix a word is appended to.
	DefaultBaseURL = "https://en.wiktionary.org/wiki/"

	// DefaultUserAgent identifies the tool to the dictionary site.
	DefaultUserAgent = "homophones/1.0 (+https://github.com/nao1215/homophones)"

	// DefaultBackoff is the wait before retrying a failed retrieval.
	DefaultBackoff = 20 * time.Second

	// DefaultMaxRetries is how many times a failed retrieval is retried.
	DefaultMaxRetries = 1

	// DefaultMaxBodySize limits how much of a page is read.
	DefaultMaxBodySize int64 = 5 * 1024 * 1024
)

// Fetcher looks up words one at a time and extracts their homophones.
//
// A Fetcher is not safe for concurrent use. Lookups are sequential so the
// dictionary site sees at most one request in flight.
type Fetcher struct {
	// client performs the HTTP requests.
	client *http.Client

	// baseURL is the prefix the escaped word is appended to.
	baseURL string

	// selector is the CSS selector source; compiled into parser by NewFetcher.
	selector string

	// parser extracts homophones from a page.
	parser *Parser

	// userAgent is the User-Agent header to use.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64

	// maxRetries is how many extra attempts a retryable failure gets.
	maxRetries int

	// backoff is the fixed wait before each retry.
	backoff time.Duration

	// logger receives retry and lookup diagnostics.
	logger *slog.Logger

	// stats accumulates lookup counters.
	stats FetcherStats
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL sets the page prefix a word is appended to.
func WithBaseURL(baseURL string) FetcherOption {
	return func(f *Fetcher) {
		f.baseURL = baseURL
	}
}

// WithSelector sets the CSS selector that matches homophone elements.
func WithSelector(selector string) FetcherOption {
	return func(f *Fetcher) {
		f.selector = selector
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		f.maxBodySize = size
	}
}

// WithMaxRetries sets how many times a retryable failure is retried.
// 0 disables retrying.
func WithMaxRetries(n int) FetcherOption {
	return func(f *Fetcher) {
		f.maxRetries = n
	}
}

// WithBackoff sets the wait before each retry.
func WithBackoff(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.backoff = d
	}
}

// WithLogger sets the logger for retry and lookup diagnostics.
func WithLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher that uses client for every request.
//
// Design decision: We take the client from the caller so timeouts and the
// optional proxy are configured in one place (NewHTTPClient) and tests can
// pass an httptest client or a failing transport.
func NewFetcher(client *http.Client, opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{
		client:      client,
		baseURL:     DefaultBaseURL,
		selector:    DefaultSelector,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		maxRetries:  DefaultMaxRetries,
		backoff:     DefaultBackoff,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := ValidateBaseURL(f.baseURL); err != nil {
		return nil, err
	}
	if f.maxRetries < 0 {
		return nil, fmt.Errorf("max retries must not be negative, got %d", f.maxRetries)
	}
	if f.maxBodySize <= 0 {
		return nil, fmt.Errorf("max body size must be positive, got %d", f.maxBodySize)
	}

	parser, err := NewParser(f.selector)
	if err != nil {
		return nil, err
	}
	f.parser = parser

	return f, nil
}

// ValidateBaseURL checks that baseURL is an absolute http(s) URL.
// The error wraps ErrInvalidBaseURL.
func ValidateBaseURL(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	return nil
}

// URLFor returns the lookup target for word: the base URL followed by the
// path-escaped word. "they're" becomes ".../they%27re".
func (f *Fetcher) URLFor(word string) string {
	return f.baseURL + url.PathEscape(word)
}

// Lookup returns the homophones of word in page order.
//
// A nil slice with a nil error means the word has no homophones: its page
// does not exist (non-2xx status) or the selector matched nothing. A
// transport failure is retried after the backoff; if the last allowed
// attempt still fails, Lookup returns a *FatalFetchError.
func (f *Fetcher) Lookup(ctx context.Context, word string) ([]string, error) {
	target := f.URLFor(word)
	f.stats.Lookups++

	var last Attempt
	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if attempt > 0 {
			f.logger.Warn("lookup failed, retrying",
				"word", word,
				"error", last.Err,
				"backoff", f.backoff,
				"attempt", attempt+1)
			f.stats.Retries++

			if err := wait(ctx, f.backoff); err != nil {
				return nil, &FatalFetchError{Word: word, URL: target, Attempts: attempt, Err: err}
			}
		}

		last = f.retrieve(ctx, target)
		f.logger.Debug("attempt finished",
			"word", word,
			"attempt", attempt+1,
			"outcome", last.Outcome.String())

		switch last.Outcome {
		case OutcomeSuccess:
			return f.extract(word, target, last)
		case OutcomeFatal:
			return nil, &FatalFetchError{Word: word, URL: target, Attempts: attempt + 1, Err: last.Err}
		case OutcomeRetryable:
			// Try again if the budget allows.
		}
	}

	return nil, &FatalFetchError{Word: word, URL: target, Attempts: f.maxRetries + 1, Err: last.Err}
}

// retrieve performs one GET and classifies the result.
func (f *Fetcher) retrieve(ctx context.Context, target string) Attempt {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fatal(fmt.Errorf("failed to build request: %w", err))
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fatal(ctxErr)
		}
		return retryable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024)) //nolint:errcheck // best effort
		return success(resp.StatusCode, nil)
	}

	// One extra byte tells a page of exactly maxBodySize from a longer one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fatal(ctxErr)
		}
		return retryable(fmt.Errorf("failed to read response body: %w", err))
	}
	if int64(len(body)) > f.maxBodySize {
		body = body[:f.maxBodySize]
		f.logger.Warn("page truncated at size limit, homophones may be missing",
			"url", target,
			"limit", f.maxBodySize)
	}

	return success(resp.StatusCode, body)
}

// extract turns a successful attempt into the word's homophones.
func (f *Fetcher) extract(word, target string, a Attempt) ([]string, error) {
	if !a.Found() {
		f.stats.NotFound++
		f.logger.Debug("no dictionary entry", "word", word, "status", a.StatusCode)
		return nil, nil
	}

	homophones, err := f.parser.Extract(bytes.NewReader(a.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to extract homophones from %s: %w", target, err)
	}
	if len(homophones) == 0 {
		f.logger.Debug("no homophones on page", "word", word, "selector", f.parser.Selector())
		return nil, nil
	}

	f.stats.Found++
	f.logger.Debug("found homophones", "word", word, "count", len(homophones))
	return homophones, nil
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Stats returns the lookup counters accumulated so far.
func (f *Fetcher) Stats() FetcherStats {
	return f.stats
}

// FetcherStats contains lookup statistics.
type FetcherStats struct {
	// Lookups is the number of words looked up.
	Lookups int

	// Found is the number of words with at least one homophone.
	Found int

	// NotFound is the number of words whose page does not exist.
	NotFound int

	// Retries is the number of retries performed after transport failures.
	Retries int
}
