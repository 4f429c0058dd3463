// Package fetch retrieves job postings over HTTP, optionally through a
// headless browser, and reduces their HTML to plain text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single HTTP fetch.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when Options.UserAgent is empty.
	DefaultUserAgent = "ats-optimizer/1.0"
	// DefaultMaxBytes caps how much of a response body is read.
	DefaultMaxBytes = 5 << 20
)

// Result is a fetched page.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Options configures a Fetcher. Zero fields take the defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	MaxBytes  int64
	Logger    *zap.Logger
}

// RenderFunc returns the rendered HTML of a page.
type RenderFunc func(ctx context.Context, rawURL string) (string, error)

// Fetcher fetches pages with a shared HTTP client.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
	logger    *zap.Logger
	render    RenderFunc
}

// New returns a Fetcher for opts.
func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	f := &Fetcher{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxBytes,
		logger:    opts.Logger,
	}
	f.render = func(ctx context.Context, rawURL string) (string, error) {
		return RenderWithBrowser(ctx, rawURL, opts.Timeout, f.logger)
	}
	return f
}

// WithRenderer replaces the headless browser used by JobPosting.
func (f *Fetcher) WithRenderer(render RenderFunc) *Fetcher {
	f.render = render
	return f
}

// Get retrieves rawURL. Only http and https are accepted. A non-200 response
// returns both the Result and an *Error.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Result, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	result := &Result{
		URL:         rawURL,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	if resp.StatusCode != http.StatusOK {
		return result, &Error{URL: rawURL, StatusCode: resp.StatusCode, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	f.logger.Debug("fetched page",
		zap.String("url", rawURL),
		zap.Int("bytes", len(body)),
		zap.String("content_type", result.ContentType),
	)
	return result, nil
}

// JobPosting fetches a job posting and returns its main text. With
// useBrowser, a page whose HTTP text is too short is rendered in a headless
// browser; a render failure keeps the HTTP text.
func (f *Fetcher) JobPosting(ctx context.Context, rawURL string, useBrowser bool) (string, error) {
	platform := DetectPlatform(rawURL)
	sel := selectorsFor(platform)

	result, err := f.Get(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text, err := ExtractMainText(result.HTML, sel.content, sel.noise...)
	if err != nil {
		return "", &Error{URL: rawURL, StatusCode: result.StatusCode, Message: "content extraction failed", Cause: err}
	}
	f.logger.Debug("extracted posting text",
		zap.String("url", rawURL),
		zap.String("platform", string(platform)),
		zap.String("title", Title(result.HTML)),
		zap.Int("chars", len(text)),
	)

	if !useBrowser || !ShouldUseBrowser(text) {
		return text, nil
	}

	f.logger.Info("posting text is short, rendering in browser",
		zap.String("url", rawURL),
		zap.Int("chars", len(text)),
	)
	rendered, err := f.render(ctx, rawURL)
	if err != nil {
		f.logger.Warn("browser rendering failed, keeping HTTP text", zap.Error(err))
		return text, nil
	}
	browserText, err := ExtractMainText(rendered, sel.content, sel.noise...)
	if err != nil || len(browserText) <= len(text) {
		return text, nil
	}
	return browserText, nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &Error{URL: rawURL, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &Error{URL: rawURL, Message: "invalid URL: scheme must be http or https"}
	}
	if parsed.Host == "" {
		return &Error{URL: rawURL, Message: "invalid URL: missing host"}
	}
	return nil
}
