// Package tagging provides coarse part-of-speech tagging used as a fallback
// when a sentence carries no classification keyword.
package tagging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/tag"
	"github.com/jdkato/prose/tokenize"
)

// Token is a word with its Penn Treebank tag
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// IsVerb reports whether the token carries a VB* tag
func (t Token) IsVerb() bool { return strings.HasPrefix(t.Tag, "VB") }

// IsNoun reports whether the token carries a NN* tag
func (t Token) IsNoun() bool { return strings.HasPrefix(t.Tag, "NN") }

// Tagger assigns part-of-speech tags to the words of a sentence
type Tagger interface {
	Tag(sentence string) ([]Token, error)
}

// Loader builds the underlying tagger. It is called until it succeeds.
type Loader func() (Tagger, error)

// Lazy defers model loading until first use. It is safe for concurrent use.
type Lazy struct {
	mu     sync.Mutex
	load   Loader
	tagger Tagger
}

// NewLazy wraps a loader
func NewLazy(load Loader) *Lazy {
	return &Lazy{load: load}
}

// NewProse returns a lazily initialized tagger backed by the prose averaged perceptron model
func NewProse() *Lazy {
	return NewLazy(LoadProse)
}

// EnsureReady loads the model if it is not loaded yet. Calls after a
// successful load are no-ops; a failed load is returned and retried next time.
func (l *Lazy) EnsureReady() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.tagger != nil {
		return nil
	}
	tagger, err := l.load()
	if err != nil {
		return err
	}
	l.tagger = tagger
	return nil
}

// Tag implements Tagger
func (l *Lazy) Tag(sentence string) ([]Token, error) {
	if err := l.EnsureReady(); err != nil {
		return nil, err
	}
	return l.tagger.Tag(sentence)
}

// proseTagger adapts the prose perceptron tagger
type proseTagger struct {
	tokenizer *tokenize.TreebankWordTokenizer
	tagger    *tag.PerceptronTagger
}

// LoadProse decodes the bundled prose model. Decoding panics on a corrupt
// model, which is reported as a ResourceError.
func LoadProse() (t Tagger, err error) {
	defer func() {
		if r := recover(); r != nil {
			t = nil
			err = &ResourceError{Resource: "prose perceptron model", Cause: fmt.Errorf("%v", r)}
		}
	}()

	tagger := tag.NewPerceptronTagger()
	if tagger == nil {
		return nil, &ResourceError{Resource: "prose perceptron model"}
	}
	return &proseTagger{
		tokenizer: tokenize.NewTreebankWordTokenizer(),
		tagger:    tagger,
	}, nil
}

func (p *proseTagger) Tag(sentence string) ([]Token, error) {
	words := p.tokenizer.Tokenize(sentence)
	if len(words) == 0 {
		return nil, nil
	}
	tagged := p.tagger.Tag(words)
	out := make([]Token, 0, len(tagged))
	for _, tok := range tagged {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}
