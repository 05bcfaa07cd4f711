// Package service glues article extraction and part-of-speech analysis
// into a single request.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/Semior001/newspos/app/extractor"
	"github.com/Semior001/newspos/app/pos"
	"github.com/Semior001/newspos/app/report"
)

// ErrEmptyText is returned when the page has no text to analyze.
var ErrEmptyText = errors.New("could not extract text from the article")

// ErrInvalidURL is returned for anything but an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid url")

//go:generate moq -out mock_fetcher.go . Fetcher

// Fetcher retrieves the article from the page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (extractor.Page, error)
}

// Service is a main application service.
type Service struct {
	log      *slog.Logger
	fetcher  Fetcher
	analyzer *pos.Analyzer
}

// NewService creates new service.
func NewService(lg *slog.Logger, fetcher Fetcher, analyzer *pos.Analyzer) *Service {
	return &Service{log: lg, fetcher: fetcher, analyzer: analyzer}
}

// Analyze fetches the article and reports parts of speech used in it.
func (s *Service) Analyze(ctx context.Context, u string) (report.Report, error) {
	if err := ValidateURL(u); err != nil {
		return report.Report{}, err
	}

	page, err := s.fetcher.Fetch(ctx, u)
	if err != nil {
		// the caller's deadline is not a fault of the article site,
		// the client's own timeout is
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report.Report{}, fmt.Errorf("get article: %w", ctxErr)
		}
		return report.Report{}, fmt.Errorf("get article: %w", err)
	}

	if page.Text == "" {
		return report.Report{}, ErrEmptyText
	}

	s.log.InfoContext(ctx, "article fetched",
		slog.String("url", u),
		slog.Int("chars", len(page.Text)),
	)

	a, err := s.analyzer.Analyze(page.Text)
	if err != nil {
		return report.Report{}, err
	}

	return report.Build(page, a), nil
}

// ValidateURL checks that u is an absolute http or https URL.
func ValidateURL(u string) error {
	parsed, err := url.ParseRequestURI(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: no host", ErrInvalidURL)
	}
	return nil
}

// UserMessage explains the error of Analyze to the user.
func UserMessage(err error) string {
	var (
		fetchErr    *extractor.FetchError
		analysisErr *pos.AnalysisError
	)

	switch {
	case errors.Is(err, ErrInvalidURL):
		return "Please enter a valid URL, like https://example.com/article"
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("Error fetching article: %v", fetchErr.Err)
	case errors.Is(err, ErrEmptyText):
		return "Could not extract text from the article. Please try a different URL."
	case errors.As(err, &analysisErr):
		return fmt.Sprintf("Could not analyze the article text: %v", analysisErr.Err)
	case errors.Is(err, context.DeadlineExceeded):
		return "Analysis took too long, please try again later."
	default:
		return "Something went wrong, please try again."
	}
}

// IsFetchError tells whether the article page could not be retrieved.
func IsFetchError(err error) bool {
	var fetchErr *extractor.FetchError
	return errors.As(err, &fetchErr)
}
