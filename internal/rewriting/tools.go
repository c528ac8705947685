package rewriting

import (
	"strings"

	"github.com/jonathan/autoresume/internal/parsing"
	"github.com/jonathan/autoresume/internal/types"
)

// leadingTools peels an opening tool clause off the sentence: "Using Python,
// I built ..." or "Using Python I built ...". The run of technologies must
// end at a comma, a pronoun or the end of the sentence. A sentence that is
// only a tool clause becomes "Used <tools>" and reports no tools.
func (e *Engine) leadingTools(words []string) (rest []string, tools []string) {
	tools, j := e.toolRun(words)
	if len(tools) == 0 {
		return words, nil
	}
	if j == len(words) {
		return strings.Fields("Used " + joinTools(tools)), nil
	}
	if !strings.HasSuffix(words[j-1], ",") && !e.lex.IsPronoun(bare(words[j])) {
		return words, nil
	}
	return words[j:], tools
}

// toolRun matches a connector followed by a list of known technologies
// ("with react and docker,") and returns the canonical tools and the index
// of the first word after the list
func (e *Engine) toolRun(words []string) ([]string, int) {
	if len(words) < 2 || !e.lex.IsToolConnector(bare(words[0])) {
		return nil, 0
	}
	var names []string
	j := 1
	for j < len(words) {
		if len(names) > 0 && (bare(words[j]) == "and" || words[j] == "&") && j+1 < len(words) {
			j++
		}
		n := e.lex.MatchTechnology(bareWords(words[j:]))
		if n == 0 {
			break
		}
		names = append(names, strings.Join(bareWords(words[j:j+n]), " "))
		j += n
		if strings.HasSuffix(words[j-1], ",") && j < len(words) && e.lex.MatchTechnology(bareWords(words[j:])) == 0 {
			break
		}
	}
	return parsing.NormalizeTools(e.lex, names), j
}

// onlyTools returns the tools of a clause that is nothing but a tool
// clause ("using React and Docker"), or nil
func (e *Engine) onlyTools(clause string) []string {
	words := strings.Fields(cleanSentence(clause))
	tools, j := e.toolRun(words)
	if j != len(words) {
		return nil
	}
	return tools
}

// dropDanglingConnector trims a tool connector left with nothing to connect
// ("Built a tool using"). Strict connectors stay: "logged in" is a phrase.
func (e *Engine) dropDanglingConnector(words []string) []string {
	for len(words) > 1 {
		last := bare(words[len(words)-1])
		if !e.lex.IsToolConnector(last) || e.lex.IsStrictConnector(last) {
			break
		}
		words = words[:len(words)-1]
	}
	return words
}

// joinTools renders a tool list as prose: "Go", "Go and Docker", "Go, Docker and Helm"
func joinTools(tools []string) string {
	if len(tools) < 2 {
		return strings.Join(tools, "")
	}
	return strings.Join(tools[:len(tools)-1], ", ") + " and " + tools[len(tools)-1]
}

// extractTools finds the earliest tool clause ("using Python and Docker")
// and returns the words before it, the canonical tool names and any trailing
// purpose or participle phrase cut from the tool list. When no tool clause is
// found, words is returned unchanged.
func (e *Engine) extractTools(words []string) (main []string, tools []string, tail string) {
	for i := 1; i < len(words)-1; i++ {
		connector := bare(words[i])
		if !e.lex.IsToolConnector(connector) {
			continue
		}
		// "tasked with", "worked with the team"
		if e.lex.IsToolBlocker(bare(words[i-1])) {
			continue
		}
		// "with managing", "through building"
		if e.isGerund(words[i+1]) {
			continue
		}
		rest := words[i+1:]
		if e.lex.IsStrictConnector(connector) && e.lex.MatchTechnology(bareWords(rest)) == 0 {
			continue
		}

		toolWords, tail := e.splitTail(rest)
		tools = e.splitTools(strings.Join(toolWords, " "))
		if len(tools) == 0 {
			continue
		}

		main = append([]string(nil), words[:i]...)
		last := len(main) - 1
		main[last] = strings.TrimRight(main[last], ",;:")
		return main, tools, tail
	}
	return words, nil, ""
}

// splitTail cuts ", reducing X" or " to ship Y" off a tool list
func (e *Engine) splitTail(rest []string) ([]string, string) {
	for j := 1; j < len(rest); j++ {
		switch w := bare(rest[j]); {
		case w == "to" || w == "for":
			return rest[:j], " " + strings.Join(rest[j:], " ")
		case strings.HasSuffix(rest[j-1], ",") && e.isGerund(rest[j]):
			head := append([]string(nil), rest[:j]...)
			head[j-1] = strings.TrimSuffix(head[j-1], ",")
			return head, ", " + strings.Join(rest[j:], " ")
		}
	}
	return rest, ""
}

// splitTools splits a tool phrase on commas and "and", canonicalizing each item
func (e *Engine) splitTools(phrase string) []string {
	var out []string
	for _, item := range types.SplitToolString(phrase) {
		item = strings.Trim(item, wordPunct+" ")
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return parsing.NormalizeTools(e.lex, out)
}

// mergeTools concatenates tool lists, canonicalizing and dropping repeats
func (e *Engine) mergeTools(lists ...[]string) []string {
	var all []string
	for _, l := range lists {
		all = append(all, l...)
	}
	return parsing.NormalizeTools(e.lex, all)
}

func bareWords(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = bare(w)
	}
	return out
}
