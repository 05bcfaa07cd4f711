package pos

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Semior001/newspos/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitTagger tags "word/TAG" pairs separated by spaces.
func splitTagger() *TaggerMock {
	return &TaggerMock{TagFunc: func(text string) ([]Token, error) {
		var res []Token
		for _, f := range strings.Fields(text) {
			word, tag, _ := strings.Cut(f, "/")
			res = append(res, Token{Word: word, Tag: tag})
		}
		return res, nil
	}}
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer(slog.New(logx.NoOp()), splitTagger())

	res, err := a.Analyze("The/DT cat/NN sat/VBD ./. The/DT dog/NN ran/VBD fast/RB ./.")
	require.NoError(t, err)

	require.Len(t, res.Tokens, 9)
	assert.Equal(t, Token{Word: "The", Tag: "DT"}, res.Tokens[0])
	assert.Equal(t, Token{Word: "fast", Tag: "RB"}, res.Tokens[7])

	assert.Equal(t, 2, res.Frequency.Count("DT"))
	assert.Equal(t, 2, res.Frequency.Count("NN"))
	assert.Equal(t, 2, res.Frequency.Count("VBD"))
	assert.Equal(t, 2, res.Frequency.Count("."))
	assert.Equal(t, 1, res.Frequency.Count("RB"))
	assert.Equal(t, 0, res.Frequency.Count("JJ"))
	assert.Equal(t, 5, res.Frequency.Len())
}

func TestAnalyzer_AnalyzeInvariants(t *testing.T) {
	a := NewAnalyzer(slog.New(logx.NoOp()), splitTagger())

	for _, text := range []string{
		"",
		"a/X",
		"a/X b/Y c/X d/Z e/Y f/X",
		"x/A x/A x/A x/A x/A x/A x/A",
	} {
		t.Run(text, func(t *testing.T) {
			res, err := a.Analyze(text)
			require.NoError(t, err)

			assert.Equal(t, len(res.Tokens), res.Frequency.Total())

			sum := 0
			for _, tc := range res.Frequency.Ranked() {
				assert.Positive(t, tc.Count)
				sum += tc.Count
			}
			assert.Equal(t, len(res.Tokens), sum)

			for _, tok := range res.Tokens {
				assert.GreaterOrEqual(t, res.Frequency.Count(tok.Tag), 1)
			}
		})
	}
}

func TestAnalyzer_AnalyzeIdempotent(t *testing.T) {
	a := NewAnalyzer(slog.New(logx.NoOp()), splitTagger())

	const text = "a/X b/Y c/X"
	first, err := a.Analyze(text)
	require.NoError(t, err)
	second, err := a.Analyze(text)
	require.NoError(t, err)

	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Equal(t, first.Frequency.Ranked(), second.Frequency.Ranked())
}

func TestAnalyzer_AnalyzeErrors(t *testing.T) {
	t.Run("tagger error", func(t *testing.T) {
		a := NewAnalyzer(slog.New(logx.NoOp()), &TaggerMock{TagFunc: func(string) ([]Token, error) {
			return nil, errors.New("boom")
		}})

		_, err := a.Analyze("text")
		var aerr *AnalysisError
		require.ErrorAs(t, err, &aerr)
		assert.EqualError(t, aerr.Err, "boom")
	})

	t.Run("tagger panic", func(t *testing.T) {
		a := NewAnalyzer(slog.New(logx.NoOp()), &TaggerMock{TagFunc: func(string) ([]Token, error) {
			panic("malformed input")
		}})

		_, err := a.Analyze("text")
		var aerr *AnalysisError
		require.ErrorAs(t, err, &aerr)
		assert.Contains(t, err.Error(), "malformed input")
	})
}

func TestFrequency_Ranked(t *testing.T) {
	f := NewFrequency()
	for _, tag := range []string{"B", "A", "C", "A", "B", "D", "C"} {
		f.Add(tag)
	}

	// B, A and C share count 2 and keep first-seen order
	assert.Equal(t, []TagCount{
		{Tag: "B", Count: 2},
		{Tag: "A", Count: 2},
		{Tag: "C", Count: 2},
		{Tag: "D", Count: 1},
	}, f.Ranked())

	assert.Equal(t, []TagCount{{Tag: "B", Count: 2}, {Tag: "A", Count: 2}}, f.MostCommon(2))
	assert.Len(t, f.MostCommon(10), 4)
	assert.Len(t, f.MostCommon(-1), 4)
	assert.Empty(t, NewFrequency().MostCommon(10))
}

func TestExamples(t *testing.T) {
	tokens := []Token{
		{"the", "DT"}, {"cat", "NN"}, {"the", "DT"}, {"a", "DT"},
		{"the", "DT"}, {"an", "DT"}, {"this", "DT"}, {"dog", "NN"},
	}

	ex := Examples(tokens, 5)
	assert.Equal(t, []string{"the", "the", "a", "the", "an"}, ex["DT"])
	assert.Equal(t, []string{"cat", "dog"}, ex["NN"])
	assert.Nil(t, ex["VB"])
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Determiner", Describe("DT"))
	assert.Equal(t, "Possessive pronoun", Describe("PRP$"))
	assert.Equal(t, OtherDescription, Describe("UH"))
	assert.Equal(t, OtherDescription, Describe(""))
}
