// Package lexicon provides the rule tables used by the rewrite engine.
// Tables are stored as JSON and embedded at compile time; a custom table file
// can be loaded from disk to extend the vocabulary without touching code.
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/autoresume/internal/types"
)

//go:embed lexicon.json
var defaultTables []byte

// cache stores the parsed default lexicon. A failed load is not cached.
var (
	cached   *Lexicon
	cacheMu  sync.RWMutex
	loadFunc = func() ([]byte, error) { return defaultTables, nil }
)

// ImpactRule maps a set of context keywords to a qualitative outcome phrase
type ImpactRule struct {
	Phrase   string   `json:"phrase"`
	Keywords []string `json:"keywords"`
}

// tables mirrors the on-disk JSON layout
type tables struct {
	FallbackVerb         string              `json:"fallback_verb"`
	ActionVerbs          []string            `json:"action_verbs"`
	Pronouns             []string            `json:"pronouns"`
	Auxiliaries          []string            `json:"auxiliaries"`
	WeakOpeners          []string            `json:"weak_openers"`
	FramingOpeners       []string            `json:"framing_openers"`
	IrregularVerbs       map[string]string   `json:"irregular_verbs"`
	NonGerunds           []string            `json:"non_gerunds"`
	ToolConnectors       []string            `json:"tool_connectors"`
	StrictToolConnectors []string            `json:"strict_tool_connectors"`
	ToolBlockers         []string            `json:"tool_blockers"`
	Technologies         map[string]string   `json:"technologies"`
	Keywords             map[string][]string `json:"keywords"`
	ImpactRules          []ImpactRule        `json:"impact_rules"`
	DefaultImpact        string              `json:"default_impact"`
}

// Lexicon is the compiled, read-only form of the rule tables.
// All lookups expect lower-case keys. A Lexicon is never mutated after
// Parse returns and is safe for concurrent use.
type Lexicon struct {
	FallbackVerb string
	// WeakOpeners is ordered longest phrase first so "helped to" wins over "helped".
	WeakOpeners   []string
	ImpactRules   []ImpactRule
	DefaultImpact string

	actionVerbs    map[string]bool
	pronouns       map[string]bool
	auxiliaries    map[string]bool
	framing        map[string]bool
	pastOf         map[string]string
	baseOf         map[string]string
	nonGerunds     map[string]bool
	connectors     map[string]bool
	strict         map[string]bool
	blockers       map[string]bool
	technologies   map[string]string
	keywords       map[types.SentenceRole]map[string]bool
	longestTechLen int
}

// Default returns the embedded lexicon, parsing it on first use.
func Default() (*Lexicon, error) {
	cacheMu.RLock()
	if cached != nil {
		lex := cached
		cacheMu.RUnlock()
		return lex, nil
	}
	cacheMu.RUnlock()

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cached != nil {
		return cached, nil
	}

	data, err := loadFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded lexicon: %w", err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cached = lex
	return lex, nil
}

// MustDefault returns the embedded lexicon, panicking if it cannot be parsed.
// The embedded tables are part of the binary, so a failure here is a build defect.
func MustDefault() *Lexicon {
	lex, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load lexicon: %v", err))
	}
	return lex
}

// LoadFile parses a lexicon table file from disk
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// ClearCache drops the cached default lexicon. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cached = nil
	cacheMu.Unlock()
}

// Parse compiles raw JSON tables into a Lexicon
func Parse(data []byte) (*Lexicon, error) {
	var t tables
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	if strings.TrimSpace(t.FallbackVerb) == "" {
		return nil, fmt.Errorf("lexicon: fallback_verb is required")
	}
	if strings.TrimSpace(t.DefaultImpact) == "" {
		return nil, fmt.Errorf("lexicon: default_impact is required")
	}
	if len(t.ActionVerbs) == 0 {
		return nil, fmt.Errorf("lexicon: action_verbs must not be empty")
	}

	lex := &Lexicon{
		FallbackVerb:  strings.TrimSpace(t.FallbackVerb),
		DefaultImpact: strings.TrimSpace(t.DefaultImpact),
		actionVerbs:   toSet(t.ActionVerbs),
		pronouns:      toSet(t.Pronouns),
		auxiliaries:   toSet(t.Auxiliaries),
		framing:       toSet(t.FramingOpeners),
		nonGerunds:    toSet(t.NonGerunds),
		connectors:    toSet(t.ToolConnectors),
		strict:        toSet(t.StrictToolConnectors),
		blockers:      toSet(t.ToolBlockers),
		pastOf:        make(map[string]string, len(t.IrregularVerbs)),
		baseOf:        make(map[string]string, len(t.IrregularVerbs)),
		technologies:  make(map[string]string, len(t.Technologies)),
		keywords:      make(map[types.SentenceRole]map[string]bool, len(t.Keywords)),
	}

	for base, past := range t.IrregularVerbs {
		base, past = strings.ToLower(base), strings.ToLower(past)
		lex.pastOf[base] = past
		// "read" and "put" map to themselves; first writer wins for shared past forms
		if _, exists := lex.baseOf[past]; !exists || past == base {
			lex.baseOf[past] = base
		}
	}

	for name, canonical := range t.Technologies {
		key := strings.ToLower(strings.TrimSpace(name))
		lex.technologies[key] = canonical
		if n := len(strings.Fields(key)); n > lex.longestTechLen {
			lex.longestTechLen = n
		}
	}

	for role, words := range t.Keywords {
		r := types.SentenceRole(strings.ToLower(role))
		if !r.IsValid() {
			return nil, fmt.Errorf("lexicon: unknown keyword role %q", role)
		}
		lex.keywords[r] = toSet(words)
	}

	lex.WeakOpeners = make([]string, 0, len(t.WeakOpeners))
	for _, phrase := range t.WeakOpeners {
		if phrase = strings.ToLower(strings.TrimSpace(phrase)); phrase != "" {
			lex.WeakOpeners = append(lex.WeakOpeners, phrase)
		}
	}
	sort.SliceStable(lex.WeakOpeners, func(i, j int) bool {
		return len(strings.Fields(lex.WeakOpeners[i])) > len(strings.Fields(lex.WeakOpeners[j]))
	})

	for _, rule := range t.ImpactRules {
		if strings.TrimSpace(rule.Phrase) == "" {
			return nil, fmt.Errorf("lexicon: impact rule with empty phrase")
		}
		kws := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kws = append(kws, strings.ToLower(kw))
		}
		lex.ImpactRules = append(lex.ImpactRules, ImpactRule{Phrase: rule.Phrase, Keywords: kws})
	}

	return lex, nil
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = true
		}
	}
	return set
}

// IsActionVerb reports whether word is a recognized past-tense action verb
func (l *Lexicon) IsActionVerb(word string) bool { return l.actionVerbs[strings.ToLower(word)] }

// IsPronoun reports whether word is a first-person pronoun, contractions
// such as "I'm" or "we’ve" included
func (l *Lexicon) IsPronoun(word string) bool {
	return l.pronouns[strings.ReplaceAll(strings.ToLower(word), "’", "'")]
}

// Auxiliaries returns the auxiliary phrases, longest first
func (l *Lexicon) Auxiliaries() []string {
	out := make([]string, 0, len(l.auxiliaries))
	for a := range l.auxiliaries {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// IsFraming reports whether a stripped weak opener frames an assignment
// ("tasked with"), after which a bare infinitive is promoted to past tense
func (l *Lexicon) IsFraming(phrase string) bool { return l.framing[strings.ToLower(phrase)] }

// IrregularPast returns the past tense of an irregular base verb
func (l *Lexicon) IrregularPast(base string) (string, bool) {
	past, ok := l.pastOf[strings.ToLower(base)]
	return past, ok
}

// IrregularBase returns the base form of an irregular past-tense verb
func (l *Lexicon) IrregularBase(past string) (string, bool) {
	base, ok := l.baseOf[strings.ToLower(past)]
	return base, ok
}

// IsNonGerund reports whether an "-ing" word is a noun or preposition
func (l *Lexicon) IsNonGerund(word string) bool { return l.nonGerunds[strings.ToLower(word)] }

// IsToolConnector reports whether word can introduce a tool clause
func (l *Lexicon) IsToolConnector(word string) bool { return l.connectors[strings.ToLower(word)] }

// IsStrictConnector reports whether a connector needs a known technology after it
func (l *Lexicon) IsStrictConnector(word string) bool { return l.strict[strings.ToLower(word)] }

// IsToolBlocker reports whether word, placed before a connector, marks it as non-tool usage
func (l *Lexicon) IsToolBlocker(word string) bool { return l.blockers[strings.ToLower(word)] }

// Technology returns the canonical spelling of a known technology name
func (l *Lexicon) Technology(name string) (string, bool) {
	canonical, ok := l.technologies[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// MatchTechnology reports how many leading words form a known technology
// name, preferring the longest match ("github actions" over "github").
// Returns 0 when none does.
func (l *Lexicon) MatchTechnology(words []string) int {
	limit := l.longestTechLen
	if len(words) < limit {
		limit = len(words)
	}
	for n := limit; n > 0; n-- {
		if _, ok := l.technologies[strings.ToLower(strings.Join(words[:n], " "))]; ok {
			return n
		}
	}
	return 0
}

// HasKeyword reports whether token belongs to the keyword set for role
func (l *Lexicon) HasKeyword(role types.SentenceRole, token string) bool {
	return l.keywords[role][strings.ToLower(token)]
}
