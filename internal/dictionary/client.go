package dictionary

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// maxRedirects bounds how many redirects a lookup follows. Dictionary sites
// commonly redirect alternate spellings to a canonical page.
const maxRedirects = 10

// NewHTTPClient creates the HTTP client used for dictionary lookups.
//
// When proxyAddress is non-empty, every connection is dialed through the
// SOCKS5 proxy at that "host:port" address. The proxy is not contacted
// here; a proxy that is down shows up as a retryable transport error on the
// first lookup.
//
// Design decision: The timeout is set on the client rather than on each
// request so a stalled server counts as one transport failure for the
// retry policy instead of hanging the run.
func NewHTTPClient(timeout time.Duration, proxyAddress string) (*http.Client, error) {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("unexpected default transport type %T", http.DefaultTransport)
	}
	transport = transport.Clone()
	transport.MaxIdleConnsPerHost = 2
	transport.IdleConnTimeout = 30 * time.Second

	if proxyAddress != "" {
		if !isValidProxyAddress(proxyAddress) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProxyAddress, proxyAddress)
		}

		dialer, err := proxy.SOCKS5("tcp", proxyAddress, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}

		// Environment proxies must not bypass the SOCKS5 dialer.
		transport.Proxy = nil
		transport.DialContext = contextDialer(dialer)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}, nil
}

// contextDialer adapts a proxy.Dialer to the DialContext signature used by
// http.Transport. The SOCKS5 dialer from x/net implements ContextDialer, so
// the fallback only runs for custom dialers.
func contextDialer(d proxy.Dialer) func(ctx context.Context, network, address string) (net.Conn, error) {
	if cd, ok := d.(proxy.ContextDialer); ok {
		return cd.DialContext
	}

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		type dialResult struct {
			conn net.Conn
			err  error
		}
		resultCh := make(chan dialResult, 1)

		go func() {
			conn, err := d.Dial(network, address)
			resultCh <- dialResult{conn, err}
		}()

		select {
		case result := <-resultCh:
			return result.conn, result.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// isValidProxyAddress checks if the address is in "host:port" format with
// a port between 1 and 65535. No scheme, no path.
func isValidProxyAddress(address string) bool {
	host, port, found := strings.Cut(address, ":")
	if !found || host == "" || strings.Contains(port, ":") {
		return false
	}

	portNum, err := strconv.Atoi(port)
	if err != nil || strings.HasPrefix(port, "+") || strings.HasPrefix(port, "-") {
		return false
	}

	return portNum >= 1 && portNum <= 65535
}
