// Package extractor fetches article pages and extracts their body text.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Semior001/newspos/pkg/logx"
	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is sent to the article sites to look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// DefaultTimeout bounds the whole page request.
const DefaultTimeout = 10 * time.Second

// MaxBodySize is the number of page bytes read at most, the rest is dropped.
const MaxBodySize = 10 << 20

// secretHeaders are masked in the request logs.
var secretHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// FetchError is returned when the page could not be retrieved.
type FetchError struct {
	URL string
	Err error
}

// Error implements error interface.
func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error { return e.Err }

// Page is the article extracted from the web page.
type Page struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Site  string `json:"site,omitempty"`
	// Text is the body of the article, might be empty
	// if nothing could be extracted.
	Text string `json:"text"`
}

// ClientOpts defines how the pages are requested.
type ClientOpts struct {
	// UserAgent is DefaultUserAgent if empty.
	UserAgent string
	Timeout   time.Duration
	// LogBody adds the beginning of every response body to debug logs.
	LogBody bool
}

// NewHTTPClient makes a client that identifies itself with the given
// user agent and gives up after the timeout.
func NewHTTPClient(lg *slog.Logger, opts ClientOpts) *http.Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	rq := requester.New(http.Client{Timeout: opts.Timeout},
		middleware.Header("User-Agent", ua),
		logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{
			Level:         slog.LevelDebug,
			SecretHeaders: secretHeaders,
			WithBody:      opts.LogBody,
		}),
	)
	return rq.Client()
}

// Extractor fetches pages and extracts article text from them.
type Extractor struct {
	log *slog.Logger
	cl  *http.Client
}

// New makes new Extractor.
func New(lg *slog.Logger, cl *http.Client) *Extractor {
	return &Extractor{log: lg, cl: cl}
}

// Fetch downloads the page and extracts the article from it.
// Any failure to get the page is returned as *FetchError.
func (e *Extractor) Fetch(ctx context.Context, u string) (Page, error) {
	e.log.DebugContext(ctx, "fetching article", slog.String("url", u))

	body, err := e.get(ctx, u)
	if err != nil {
		return Page{}, &FetchError{URL: u, Err: err}
	}

	pageURL, _ := url.Parse(u)
	meta := metadata(bytes.NewReader(body), pageURL)

	text, err := ExtractText(bytes.NewReader(body))
	if err != nil {
		return Page{}, fmt.Errorf("extract text: %w", err)
	}

	e.log.DebugContext(ctx, "article extracted",
		slog.String("url", u),
		slog.String("title", meta.Title),
		slog.Int("chars", len(text)),
	)

	return Page{URL: u, Title: meta.Title, Site: meta.Site, Text: text}, nil
}

func (e *Extractor) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := e.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			e.log.WarnContext(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return nil, fmt.Errorf("bad status code: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// pages are decoded to utf-8 by the content type or meta charset
	rd, err := charset.NewReader(io.LimitReader(resp.Body, MaxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("detect charset: %w", err)
	}

	body, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}
