package rewriting

import "strings"

// ImpactPhrase picks a qualitative outcome phrase for text from the first
// impact rule with a matching keyword. The vocabulary is closed and never
// carries a number.
func (e *Engine) ImpactPhrase(text string) string {
	tokens := tokenize(text)
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[strings.Trim(tok, ".")] = true
	}
	joined := " " + strings.Join(tokens, " ") + " "

	for _, rule := range e.lex.ImpactRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(kw, " ") {
				if strings.Contains(joined, " "+kw+" ") {
					return rule.Phrase
				}
				continue
			}
			if set[kw] {
				return rule.Phrase
			}
		}
	}
	return e.lex.DefaultImpact
}
