// Package pos tags words of a text with parts of speech and aggregates
// the tags into frequency statistics.
package pos

import (
	"fmt"
	"log/slog"
)

// Token is a word of the text with its part-of-speech tag.
type Token struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

//go:generate moq -out mock_tagger.go . Tagger

// Tagger splits text into tokens and assigns a tag to each of them.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

// AnalysisError is returned when the tagger fails to process the text.
type AnalysisError struct {
	Err error
}

// Error implements error interface.
func (e *AnalysisError) Error() string { return fmt.Sprintf("analyze text: %v", e.Err) }

// Unwrap returns the underlying error.
func (e *AnalysisError) Unwrap() error { return e.Err }

// Analysis is the result of tagging a text.
type Analysis struct {
	// Tokens are in the order of their appearance in the text.
	Tokens    []Token
	Frequency *Frequency
}

// Analyzer tags texts and counts tags.
type Analyzer struct {
	log    *slog.Logger
	tagger Tagger
}

// NewAnalyzer makes new Analyzer.
func NewAnalyzer(lg *slog.Logger, tagger Tagger) *Analyzer {
	return &Analyzer{log: lg, tagger: tagger}
}

// Analyze tags the text and counts occurrences of every tag.
func (a *Analyzer) Analyze(text string) (res Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = Analysis{}, &AnalysisError{Err: fmt.Errorf("tagger panicked: %v", r)}
		}
	}()

	tokens, err := a.tagger.Tag(text)
	if err != nil {
		return Analysis{}, &AnalysisError{Err: err}
	}

	freq := NewFrequency()
	for _, tok := range tokens {
		freq.Add(tok.Tag)
	}

	a.log.Debug("text analyzed",
		slog.Int("tokens", len(tokens)),
		slog.Int("tags", freq.Len()),
	)

	return Analysis{Tokens: tokens, Frequency: freq}, nil
}
