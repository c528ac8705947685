package rewriting

import (
	"testing"

	"github.com/jonathan/autoresume/internal/lexicon"
	"github.com/jonathan/autoresume/internal/tagging"
)

// stubTagger tags every word with the same tag
type stubTagger struct {
	tag string
	err error
}

func (s stubTagger) Tag(sentence string) ([]tagging.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []tagging.Token{{Text: sentence, Tag: s.tag}}, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(lexicon.MustDefault(), stubTagger{tag: "NN"})
}
