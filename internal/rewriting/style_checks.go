package rewriting

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/autoresume/internal/types"
)

var digitPattern = regexp.MustCompile(`\d`)

// ValidateStyle checks a rendered bullet against the structural rules every
// generated bullet satisfies
func (e *Engine) ValidateStyle(bullet string) types.StyleChecks {
	result := types.StyleChecks{}

	result.Marker = strings.HasPrefix(bullet, types.BulletMarker)
	body := strings.TrimSpace(strings.TrimPrefix(bullet, types.BulletMarker))

	result.Terminated = strings.HasSuffix(body, ".") && !strings.HasSuffix(body, "..")

	first, _ := utf8.DecodeRuneInString(body)
	result.Capitalized = unicode.IsUpper(first)

	words := strings.Fields(body)
	if len(words) > 0 {
		result.StrongVerb = e.checkStrongVerb(words[0])
	}
	result.NoPronoun = e.checkNoPronoun(words)
	result.Quantified = checkQuantifiedImpact(body)

	return result
}

// checkStrongVerb checks if the opening word is an action verb or past-tense form
func (e *Engine) checkStrongVerb(word string) bool {
	return e.isVerbLed(word)
}

// checkNoPronoun rejects a pronoun or auxiliary opening and a standalone "I" anywhere
func (e *Engine) checkNoPronoun(words []string) bool {
	if len(words) == 0 {
		return false
	}
	first := bare(words[0])
	if e.lex.IsPronoun(first) {
		return false
	}
	for _, aux := range e.lex.Auxiliaries() {
		if hasPrefixWords(words, aux) > 0 {
			return false
		}
	}
	for _, w := range words {
		if strings.Trim(w, wordPunct) == "I" {
			return false
		}
	}
	return true
}

// checkQuantifiedImpact checks if text contains numbers or metrics
func checkQuantifiedImpact(text string) bool {
	return digitPattern.MatchString(text) || strings.Contains(text, "%")
}
