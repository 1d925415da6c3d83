// Package dictionary looks up words on an online dictionary and extracts
// the homophones listed on each word's page.
//
// # Components
//
//   - Fetcher: retrieves the page for a word with bounded retry and hands
//     the body to the Parser
//   - Parser: runs a CSS selector over the parsed HTML and returns the
//     trimmed text of every match in document order
//   - NewHTTPClient: builds the *http.Client used by the Fetcher, optionally
//     routed through a SOCKS5 proxy
//
// # Retry policy
//
// Every retrieval produces an Attempt whose Outcome is success, retryable
// or fatal. A retryable outcome (a transport error such as a refused
// connection or a timeout) is retried after a fixed backoff, at most
// MaxRetries times. When the last allowed attempt is still retryable the
// lookup fails with a *FatalFetchError and the caller is expected to abort
// the run; a transport failure is never reported as "no homophones".
//
// A response with a non-success status code is a successful retrieval that
// simply has no homophones, the same as a page where the selector matches
// nothing.
//
// # Usage
//
//	client, _ := dictionary.NewHTTPClient(30*time.Second, "")
//	fetcher, _ := dictionary.NewFetcher(client)
//	homophones, err := fetcher.Lookup(ctx, "there")
package dictionary
