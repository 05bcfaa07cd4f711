package pos

import (
	"log/slog"
	"testing"

	"github.com/Semior001/newspos/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProseTagger_Tag(t *testing.T) {
	toks, err := ProseTagger{}.Tag("The cat sat. The dog ran fast.")
	require.NoError(t, err)

	words := make([]string, 0, len(toks))
	for _, tok := range toks {
		words = append(words, tok.Word)
	}
	assert.Contains(t, words, "The")
	assert.Contains(t, words, "cat")
	assert.Contains(t, words, "sat")
	assert.Contains(t, words, ".")

	for _, tok := range toks {
		if tok.Word == "The" {
			assert.Equal(t, "DT", tok.Tag)
		}
	}
}

func TestProseTagger_Analyze(t *testing.T) {
	a := NewAnalyzer(slog.New(logx.NoOp()), ProseTagger{})

	const text = "The cat sat. The dog ran fast."
	res, err := a.Analyze(text)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Frequency.Count("DT"))
	assert.Equal(t, len(res.Tokens), res.Frequency.Total())

	again, err := a.Analyze(text)
	require.NoError(t, err)
	assert.Equal(t, res.Tokens, again.Tokens)
	assert.Equal(t, res.Frequency.Ranked(), again.Frequency.Ranked())
}

func TestLoadModel_Once(t *testing.T) {
	m1, err := loadModel()
	require.NoError(t, err)
	m2, err := loadModel()
	require.NoError(t, err)
	assert.Same(t, m1, m2)
}
