package tagging

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTagger struct {
	tokens []Token
}

func (s stubTagger) Tag(string) ([]Token, error) { return s.tokens, nil }

func TestLazy_RetriesAfterFailure(t *testing.T) {
	calls := 0
	lazy := NewLazy(func() (Tagger, error) {
		calls++
		if calls == 1 {
			return nil, &ResourceError{Resource: "model", Cause: errors.New("not found")}
		}
		return stubTagger{tokens: []Token{{Text: "ran", Tag: "VBD"}}}, nil
	})

	_, err := lazy.Tag("ran")
	require.Error(t, err)
	var resErr *ResourceError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "model", resErr.Resource)
	assert.Contains(t, err.Error(), "not found")

	tokens, err := lazy.Tag("ran")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Text: "ran", Tag: "VBD"}}, tokens)
	assert.Equal(t, 2, calls)
}

func TestLazy_EnsureReadyIdempotent(t *testing.T) {
	calls := 0
	lazy := NewLazy(func() (Tagger, error) {
		calls++
		return stubTagger{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, lazy.EnsureReady())
		}()
	}
	wg.Wait()
	require.NoError(t, lazy.EnsureReady())
	assert.Equal(t, 1, calls)
}

func TestToken_Categories(t *testing.T) {
	assert.True(t, Token{Tag: "VBG"}.IsVerb())
	assert.False(t, Token{Tag: "NN"}.IsVerb())
	assert.True(t, Token{Tag: "NNS"}.IsNoun())
	assert.False(t, Token{Tag: "JJ"}.IsNoun())
}

func TestResourceError(t *testing.T) {
	err := &ResourceError{Resource: "model"}
	assert.Equal(t, "tagger resource model unavailable", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestProse_TagsEnglish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping model load in short mode")
	}
	tagger := NewProse()
	tokens, err := tagger.Tag("The team shipped a new website")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)

	var verbs, nouns int
	for _, tok := range tokens {
		if tok.IsVerb() {
			verbs++
		}
		if tok.IsNoun() {
			nouns++
		}
	}
	assert.Positive(t, verbs)
	assert.Positive(t, nouns)
}
