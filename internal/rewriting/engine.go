// Package rewriting turns free-text self-descriptions into verb-led resume
// bullets and assembles them into STAR and XYZ narratives.
package rewriting

import (
	"sync"

	"github.com/jonathan/autoresume/internal/lexicon"
	"github.com/jonathan/autoresume/internal/tagging"
)

// Bullet caps per template
const (
	MaxGenericBullets = 4
	MaxStarBullets    = 3
	DefaultXyzBullets = 2
)

// Engine holds the read-only rule tables and the fallback tagger.
// It is safe for concurrent use.
type Engine struct {
	lex    *lexicon.Lexicon
	tagger tagging.Tagger
}

// New creates an engine over the given tables. A nil tagger disables the
// part-of-speech fallback in Classify.
func New(lex *lexicon.Lexicon, tagger tagging.Tagger) *Engine {
	if lex == nil {
		lex = lexicon.MustDefault()
	}
	return &Engine{lex: lex, tagger: tagger}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return New(lexicon.MustDefault(), tagging.NewProse())
})

// Default returns the shared engine built from the embedded lexicon and the prose tagger
func Default() *Engine {
	return defaultEngine()
}

// Lexicon returns the tables the engine was built with
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

// RewriteToBullets rewrites text with the default engine
func RewriteToBullets(text string) []string {
	return Default().RewriteToBullets(text)
}

// MakeStarBullets builds a STAR group with the default engine
func MakeStarBullets(text, role, org string, tools []string) []string {
	return Default().MakeStarBullets(text, role, org, tools)
}

// MakeXyzBullets builds XYZ bullets with the default engine
func MakeXyzBullets(text string, tools []string, maxBullets int) []string {
	return Default().MakeXyzBullets(text, tools, maxBullets)
}
