// Package fetch retrieves pages over HTTP for the site scanner.
// One scan performs exactly one fetch; redirects are followed and the
// post-redirect URL is reported separately from the requested one.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single page fetch. A hung server fails the scan
// instead of stalling it.
const DefaultTimeout = 20 * time.Second

// DefaultUserAgent identifies the scanner to target sites.
const DefaultUserAgent = "Mozilla/5.0 (compatible; VisibilityScanner/1.0)"

// Result holds the outcome of one page fetch. StatusCode may be any value,
// including non-2xx: sites often return meaningful content on 403/404 pages,
// so a bad status is data, not a failure.
type Result struct {
	RequestedURL string
	FinalURL     string
	StatusCode   int
	ContentType  string
	HTML         string
}

// Error represents a failed fetch: the target was unreachable
// (network, DNS, timeout) or the URL was unusable.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for scanning.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Page retrieves a URL and returns its body along with the final
// post-redirect URL and status code. Non-2xx responses are returned as a
// normal Result; only transport-level failures produce an error.
func Page(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	// resp.Request carries the URL the final response came from,
	// after any redirect chain.
	finalURL := urlStr
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &Result{
		RequestedURL: urlStr,
		FinalURL:     finalURL,
		StatusCode:   resp.StatusCode,
		ContentType:  resp.Header.Get("Content-Type"),
		HTML:         string(bodyBytes),
	}, nil
}
