package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Semior001/newspos/app/extractor"
	"github.com/Semior001/newspos/app/pos"
	"github.com/Semior001/newspos/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wordTagger() *pos.TaggerMock {
	return &pos.TaggerMock{TagFunc: func(text string) ([]pos.Token, error) {
		var res []pos.Token
		for _, w := range strings.Fields(text) {
			tag := "NN"
			if strings.EqualFold(w, "the") {
				tag = "DT"
			}
			res = append(res, pos.Token{Word: w, Tag: tag})
		}
		return res, nil
	}}
}

func newService(tagger pos.Tagger) *Service {
	lg := slog.New(logx.NoOp())
	ext := extractor.New(lg, extractor.NewHTTPClient(lg, extractor.ClientOpts{Timeout: extractor.DefaultTimeout}))
	return NewService(lg, ext, pos.NewAnalyzer(lg, tagger))
}

func TestService_Analyze(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article><p>The cat</p><p>the dog</p></article></body></html>`))
	}))
	defer ts.Close()

	tagger := wordTagger()
	rep, err := newService(tagger).Analyze(context.Background(), ts.URL)
	require.NoError(t, err)

	require.Len(t, tagger.TagCalls(), 1)
	assert.Equal(t, "The cat the dog", tagger.TagCalls()[0].Text)

	assert.Equal(t, ts.URL, rep.URL)
	assert.Equal(t, 15, rep.Chars)
	assert.Equal(t, 4, rep.TotalTokens)
	assert.Equal(t, 2, rep.UniqueTags)
	assert.Equal(t, "DT", rep.MostCommon)
}

func TestService_AnalyzeFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	tagger := wordTagger()
	_, err := newService(tagger).Analyze(context.Background(), ts.URL)

	var ferr *extractor.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.NotEmpty(t, ferr.Error())
	assert.Empty(t, tagger.TagCalls(), "analyzer must not be called after a failed fetch")
}

func slowServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		_, _ = w.Write([]byte(`<html><body><article><p>The late cat</p></article></body></html>`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestService_AnalyzeDeadline(t *testing.T) {
	t.Run("caller deadline", func(t *testing.T) {
		ts := slowServer(t, 300*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		tagger := wordTagger()
		_, err := newService(tagger).Analyze(ctx, ts.URL)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, IsFetchError(err))
		assert.Equal(t, "Analysis took too long, please try again later.", UserMessage(err))
		assert.Empty(t, tagger.TagCalls())
	})

	t.Run("client timeout", func(t *testing.T) {
		ts := slowServer(t, 300*time.Millisecond)

		lg := slog.New(logx.NoOp())
		ext := extractor.New(lg, extractor.NewHTTPClient(lg, extractor.ClientOpts{Timeout: 50 * time.Millisecond}))
		tagger := wordTagger()

		_, err := NewService(lg, ext, pos.NewAnalyzer(lg, tagger)).Analyze(context.Background(), ts.URL)
		require.Error(t, err)
		assert.True(t, IsFetchError(err), "site not responding in time is a fetch failure")
		assert.Contains(t, UserMessage(err), "Error fetching article:")
		assert.Empty(t, tagger.TagCalls())
	})
}

func TestService_AnalyzeEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>no paragraphs</div></body></html>`))
	}))
	defer ts.Close()

	tagger := wordTagger()
	_, err := newService(tagger).Analyze(context.Background(), ts.URL)
	require.ErrorIs(t, err, ErrEmptyText)
	assert.Empty(t, tagger.TagCalls())
}

func TestService_AnalyzeTaggerFailure(t *testing.T) {
	lg := slog.New(logx.NoOp())
	fetcher := &FetcherMock{FetchFunc: func(ctx context.Context, url string) (extractor.Page, error) {
		return extractor.Page{URL: url, Text: "some text"}, nil
	}}
	tagger := &pos.TaggerMock{TagFunc: func(string) ([]pos.Token, error) {
		return nil, errors.New("bad unicode")
	}}

	_, err := NewService(lg, fetcher, pos.NewAnalyzer(lg, tagger)).Analyze(context.Background(), "https://example.com")

	var aerr *pos.AnalysisError
	require.ErrorAs(t, err, &aerr)
	assert.Len(t, fetcher.FetchCalls(), 1)
}

func TestService_AnalyzeInvalidURL(t *testing.T) {
	lg := slog.New(logx.NoOp())
	fetcher := &FetcherMock{}

	_, err := NewService(lg, fetcher, pos.NewAnalyzer(lg, wordTagger())).Analyze(context.Background(), "not a url")
	require.ErrorIs(t, err, ErrInvalidURL)
	assert.Empty(t, fetcher.FetchCalls())
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://example.com/article"))
	assert.NoError(t, ValidateURL("http://example.com"))
	assert.ErrorIs(t, ValidateURL(""), ErrInvalidURL)
	assert.ErrorIs(t, ValidateURL("example.com/article"), ErrInvalidURL)
	assert.ErrorIs(t, ValidateURL("ftp://example.com/file"), ErrInvalidURL)
	assert.ErrorIs(t, ValidateURL("https:///path"), ErrInvalidURL)
}

func TestUserMessage(t *testing.T) {
	tbl := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: x", ErrInvalidURL), "Please enter a valid URL, like https://example.com/article"},
		{
			fmt.Errorf("get article: %w", &extractor.FetchError{URL: "u", Err: errors.New("bad status code: 404 Not Found")}),
			"Error fetching article: bad status code: 404 Not Found",
		},
		{ErrEmptyText, "Could not extract text from the article. Please try a different URL."},
		{&pos.AnalysisError{Err: errors.New("boom")}, "Could not analyze the article text: boom"},
		{context.DeadlineExceeded, "Analysis took too long, please try again later."},
		{errors.New("whatever"), "Something went wrong, please try again."},
	}

	for _, tt := range tbl {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestIsFetchError(t *testing.T) {
	assert.True(t, IsFetchError(fmt.Errorf("wrap: %w", &extractor.FetchError{URL: "u", Err: errors.New("x")})))
	assert.False(t, IsFetchError(ErrEmptyText))
}
