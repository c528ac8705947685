package rewriting

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/autoresume/internal/segment"
	"github.com/jonathan/autoresume/internal/types"
)

// keywordPriority is the order keyword sets are checked in. Results win over
// incidental action verbs in the same sentence.
var keywordPriority = []types.SentenceRole{
	types.RoleResult,
	types.RoleAction,
	types.RoleTask,
	types.RoleSituation,
}

var multiplierPattern = regexp.MustCompile(`^\d+(?:\.\d+)?x$`)

// tokenize lower-cases text and splits it into word tokens, keeping
// %, hyphens and apostrophes inside tokens
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '%' || r == '-' || r == '\'' || r == '/' || r == '+' || r == '#' || r == '.')
	})
}

// Classify assigns a narrative role to a sentence. Keyword sets are checked
// in priority order; without a keyword the part-of-speech tagger decides.
// A tagger that cannot load returns a *tagging.ResourceError and is retried
// on the next call.
func (e *Engine) Classify(sentence string) (types.SentenceRole, error) {
	tokens := tokenize(sentence)
	for i, tok := range tokens {
		tokens[i] = strings.Trim(tok, ".")
	}

	for _, role := range keywordPriority {
		for _, tok := range tokens {
			if e.lex.HasKeyword(role, tok) {
				return role, nil
			}
			if role == types.RoleResult && (strings.Contains(tok, "%") || multiplierPattern.MatchString(tok)) {
				return role, nil
			}
		}
	}

	if e.tagger == nil || !segment.HasContent(sentence) {
		return types.RoleUnclassified, nil
	}
	tagged, err := e.tagger.Tag(sentence)
	if err != nil {
		return types.RoleUnclassified, err
	}
	nouns := false
	for _, tok := range tagged {
		if tok.IsVerb() {
			return types.RoleAction, nil
		}
		nouns = nouns || tok.IsNoun()
	}
	if nouns {
		return types.RoleSituation, nil
	}
	return types.RoleUnclassified, nil
}

// ClassifyText classifies every sentence of text in order
func (e *Engine) ClassifyText(text string) ([]types.ClassifiedSentence, error) {
	var out []types.ClassifiedSentence
	for sentence := range segment.Sentences(text) {
		role, err := e.Classify(sentence)
		if err != nil {
			return nil, err
		}
		out = append(out, types.ClassifiedSentence{Text: sentence, Role: role})
	}
	return out, nil
}
