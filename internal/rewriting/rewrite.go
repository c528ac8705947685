package rewriting

import (
	"strings"

	"github.com/jonathan/autoresume/internal/segment"
	"github.com/jonathan/autoresume/internal/types"
)

// fallbackObject completes the fallback verb when stripping left nothing behind
const fallbackObject = "assigned responsibilities"

// Clause is a sentence rewritten into a verb-led main clause
type Clause struct {
	// Text is the main clause without terminal punctuation
	Text string `json:"text"`
	// Tools are canonical technology names from the tool clause and the tools hint
	Tools []string `json:"tools,omitempty"`
	// Tail is a trailing phrase cut from the tool clause, with its leading separator
	Tail string `json:"tail,omitempty"`
}

// Sentence joins the clause, its tool phrase and tail
func (c Clause) Sentence() string {
	var b strings.Builder
	b.WriteString(c.Text)
	if len(c.Tools) > 0 {
		b.WriteString(" using ")
		b.WriteString(strings.Join(c.Tools, ", "))
	}
	b.WriteString(c.Tail)
	return b.String()
}

// Bullet renders the clause as "• Text using Tools." with exactly one period
func (c Clause) Bullet() string {
	return formatBullet(c.Sentence())
}

func formatBullet(sentence string) string {
	sentence = strings.TrimRight(strings.TrimSpace(sentence), ".!?;:, ")
	return types.BulletMarker + capitalize(sentence) + "."
}

// Rewrite normalizes one sentence into a verb-led clause. tools is an
// optional hint merged after any tools found in the sentence. The boolean
// is false only when the sentence has no letter or digit.
func (e *Engine) Rewrite(sentence string, tools []string) (Clause, bool) {
	cleaned := cleanSentence(sentence)
	if !segment.HasContent(cleaned) {
		return Clause{}, false
	}
	words := e.dropDanglingConnector(strings.Fields(cleaned))

	words, leading := e.leadingTools(words)
	words, extracted, tail := e.extractTools(words)

	words, framed := e.stripOpeners(words)
	if framed {
		words = e.promoteFramedVerb(words)
	}
	words, _ = e.stripOpeners(words)
	words = e.activate(words)
	words = e.collapseRepeatedGerunds(words)
	if len(words) > 0 && e.isGerund(words[0]) {
		words = e.pastTenseChain(words)
	}
	words = e.promoteActionVerb(words)

	text := strings.TrimRight(strings.Join(words, " "), ",;: ")
	return Clause{
		Text:  capitalize(text),
		Tools: e.mergeTools(leading, extracted, tools),
		Tail:  tail,
	}, true
}

// cleanSentence collapses whitespace and strips list markers and terminal punctuation
func cleanSentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimLeft(s, "•·*-–— ")
	return strings.TrimRight(s, ".!?;:, ")
}

// hasPrefixWords reports how many leading words match phrase, case-insensitively.
// Returns 0 when phrase does not match.
func hasPrefixWords(words []string, phrase string) int {
	parts := strings.Fields(phrase)
	if len(parts) == 0 || len(parts) > len(words) {
		return 0
	}
	for i, p := range parts {
		w := strings.ToLower(words[i])
		// punctuation may only trail the last word of the phrase
		if i == len(parts)-1 {
			w = strings.TrimRight(w, ",:")
		}
		if w != p {
			return 0
		}
	}
	return len(parts)
}

// stripOpeners removes leading pronouns, auxiliaries and weak phrases until
// none is left. framed reports whether an assignment frame such as
// "tasked with" was removed.
func (e *Engine) stripOpeners(words []string) (rest []string, framed bool) {
	auxiliaries := e.lex.Auxiliaries()
	for changed := true; changed && len(words) > 0; {
		changed = false
		if e.lex.IsPronoun(bare(words[0])) {
			words = words[1:]
			changed = true
			continue
		}
		for _, aux := range auxiliaries {
			if n := hasPrefixWords(words, aux); n > 0 {
				words = words[n:]
				changed = true
				break
			}
		}
		if changed {
			continue
		}
		for _, phrase := range e.lex.WeakOpeners {
			if n := hasPrefixWords(words, phrase); n > 0 {
				words = words[n:]
				framed = framed || e.lex.IsFraming(phrase)
				changed = true
				break
			}
		}
	}
	return words, framed
}

// promoteFramedVerb turns the verb left behind by "tasked with creating" or
// "tasked to build" into past tense
func (e *Engine) promoteFramedVerb(words []string) []string {
	if len(words) == 0 {
		return words
	}
	if e.isGerund(words[0]) {
		return e.pastTenseChain(words)
	}
	w := bare(words[0])
	if e.lex.IsActionVerb(w) {
		return words
	}
	if _, irregular := e.lex.IrregularPast(w); irregular || e.lex.IsActionVerb(regularPast(w)) {
		out := append([]string(nil), words...)
		out[0] = swapCore(out[0], e.pastOfBase(w))
		return out
	}
	return words
}

// chainBreakers end a coordinated verb list: "creating a tool for tracking, ..."
var chainBreakers = map[string]bool{
	"for": true, "of": true, "in": true, "to": true, "by": true, "with": true,
	"on": true, "at": true, "from": true, "about": true, "into": true, "while": true,
}

// pastTenseChain converts the leading gerund and any gerunds coordinated
// with it ("creating and managing", "designing, testing") to past tense
func (e *Engine) pastTenseChain(words []string) []string {
	out := append([]string(nil), words...)
	out[0] = swapCore(out[0], e.pastOfGerund(out[0]))
	for j := 1; j < len(out); j++ {
		prev := bare(out[j-1])
		if chainBreakers[prev] {
			break
		}
		coordinated := prev == "and" || prev == "or" || out[j-1] == "&" || strings.HasSuffix(out[j-1], ",")
		if coordinated && e.isGerund(out[j]) {
			out[j] = swapCore(out[j], e.pastOfGerund(out[j]))
		}
	}
	return out
}

// activate drops "was"/"were" before an action-verb participle
func (e *Engine) activate(words []string) []string {
	out := make([]string, 0, len(words))
	for i, w := range words {
		lw := strings.ToLower(w)
		if (lw == "was" || lw == "were") && i+1 < len(words) && e.lex.IsActionVerb(bare(words[i+1])) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// collapseRepeatedGerunds rewrites ", managing X, managing Y" as ", managing X and Y"
func (e *Engine) collapseRepeatedGerunds(words []string) []string {
	out := append([]string(nil), words...)
	for j := 1; j < len(out); j++ {
		if !e.isGerund(out[j]) || !strings.HasSuffix(out[j-1], ",") {
			continue
		}
		target := bare(out[j])
		for i := 0; i < j-1; i++ {
			if bare(out[i]) != target || (i > 0 && !strings.HasSuffix(out[i-1], ",")) {
				continue
			}
			out[j-1] = strings.TrimSuffix(out[j-1], ",")
			out[j] = "and"
			break
		}
	}
	return out
}

// promoteActionVerb makes the clause start with an action verb, moving the
// earliest one to the front or prefixing the fallback verb
func (e *Engine) promoteActionVerb(words []string) []string {
	if len(words) == 0 {
		return strings.Fields(e.lex.FallbackVerb + " " + fallbackObject)
	}
	if e.isVerbLed(words[0]) {
		return words
	}
	for i, w := range words {
		if e.lex.IsActionVerb(bare(w)) {
			return words[i:]
		}
	}
	out := make([]string, 0, len(words)+1)
	out = append(out, e.lex.FallbackVerb)
	first := words[0]
	if e.isOrdinaryCapitalized(first) {
		first = strings.ToLower(first[:1]) + first[1:]
	}
	return append(append(out, first), words[1:]...)
}

// nonActionIrregulars are irregular past forms that never open a bullet
var nonActionIrregulars = map[string]bool{"be": true, "have": true, "do": true}

// isVerbLed reports whether word can open a bullet: a known action verb, an
// irregular past form, or a regular past form ending in -ed
func (e *Engine) isVerbLed(word string) bool {
	w := bare(word)
	if e.lex.IsActionVerb(w) {
		return true
	}
	if base, ok := e.lex.IrregularBase(w); ok && base != w && !nonActionIrregulars[base] {
		return true
	}
	return len(w) > 3 && strings.HasSuffix(w, "ed") && !strings.HasSuffix(w, "eed")
}

// isOrdinaryCapitalized reports whether word is capitalized only because it
// opened the sentence, as opposed to a name or acronym
func (e *Engine) isOrdinaryCapitalized(word string) bool {
	core := strings.TrimRight(word, wordPunct)
	if len(core) < 2 || core[0] < 'A' || core[0] > 'Z' {
		return false
	}
	if core[1:] != strings.ToLower(core[1:]) {
		return false
	}
	_, known := e.lex.Technology(core)
	return !known
}

// RewriteToBullets rewrites each sentence of text into a bullet, dropping
// case-insensitive duplicates and keeping at most MaxGenericBullets
func (e *Engine) RewriteToBullets(text string) []string {
	bullets := make([]string, 0, MaxGenericBullets)
	seen := make(map[string]bool)
	for sentence := range segment.Sentences(text) {
		clause, ok := e.Rewrite(sentence, nil)
		if !ok {
			continue
		}
		bullets = appendUnique(bullets, seen, clause.Bullet())
		if len(bullets) == MaxGenericBullets {
			break
		}
	}
	return bullets
}

func appendUnique(bullets []string, seen map[string]bool, bullet string) []string {
	key := strings.ToLower(bullet)
	if seen[key] {
		return bullets
	}
	seen[key] = true
	return append(bullets, bullet)
}
