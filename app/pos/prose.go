package pos

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"
)

// model is shared by all ProseTagger instances, loading it
// takes a while, so it is done once per process.
var model struct {
	once sync.Once
	m    *prose.Model
	err  error
}

func loadModel() (*prose.Model, error) {
	model.once.Do(func() {
		doc, err := prose.NewDocument("warm up",
			prose.WithSegmentation(false),
			prose.WithExtraction(false),
		)
		if err != nil {
			model.err = fmt.Errorf("load tagger model: %w", err)
			return
		}
		model.m = doc.Model
	})
	return model.m, model.err
}

// ProseTagger tokenizes english text and tags it with Penn Treebank tags
// by the averaged perceptron tagger.
type ProseTagger struct{}

// Tag splits text into tokens and tags them.
func (ProseTagger) Tag(text string) ([]Token, error) {
	m, err := loadModel()
	if err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text,
		prose.UsingModel(m),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	ptoks := doc.Tokens()
	res := make([]Token, 0, len(ptoks))
	for _, tok := range ptoks {
		res = append(res, Token{Word: tok.Text, Tag: tok.Tag})
	}
	return res, nil
}
