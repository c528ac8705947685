// Package parsing normalizes the loosely formatted fields of a raw resume:
// technology names, skill lists and date ranges.
package parsing

import (
	"strings"

	"github.com/jonathan/autoresume/internal/lexicon"
)

func orDefault(lex *lexicon.Lexicon) *lexicon.Lexicon {
	if lex != nil {
		return lex
	}
	return lexicon.MustDefault()
}

// CanonicalTool maps a known technology name to its canonical spelling.
// Unknown names are returned trimmed but otherwise unchanged.
func CanonicalTool(lex *lexicon.Lexicon, name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if canonical, ok := orDefault(lex).Technology(name); ok {
		return canonical
	}
	return name
}

// NormalizeSkillName normalizes a skill name to its canonical form.
// Unlike CanonicalTool it also fixes the case of unknown single words,
// since skill lists are displayed on their own.
func NormalizeSkillName(lex *lexicon.Lexicon, skillName string) string {
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	if canonical, ok := orDefault(lex).Technology(normalized); ok {
		return canonical
	}

	lower := strings.ToLower(normalized)
	upper := strings.ToUpper(normalized)

	// Multi-word and mixed-case names are kept as typed
	if strings.Contains(normalized, " ") || (normalized != upper && normalized != lower) {
		return normalized
	}

	// Short all-caps words are usually acronyms (SQL, AWS)
	if normalized == upper {
		if len(normalized) <= 4 {
			return normalized
		}
		return normalized[:1] + strings.ToLower(normalized[1:])
	}

	return strings.ToUpper(normalized[:1]) + normalized[1:]
}

// NormalizeTools canonicalizes and deduplicates a tool list, keeping first occurrences
func NormalizeTools(lex *lexicon.Lexicon, tools []string) []string {
	if len(tools) == 0 {
		return nil
	}
	out := make([]string, 0, len(tools))
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		canonical := CanonicalTool(lex, tool)
		key := strings.ToLower(canonical)
		if canonical == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, canonical)
	}
	return out
}

// NormalizeSkills normalizes every skill name per category and drops
// duplicates and empty categories
func NormalizeSkills(lex *lexicon.Lexicon, skills map[string][]string) map[string][]string {
	out := make(map[string][]string, len(skills))
	for category, items := range skills {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}
		seen := make(map[string]bool, len(items))
		var normalized []string
		for _, item := range items {
			name := NormalizeSkillName(lex, item)
			key := strings.ToLower(name)
			if name == "" || seen[key] {
				continue
			}
			seen[key] = true
			normalized = append(normalized, name)
		}
		if len(normalized) > 0 {
			out[category] = normalized
		}
	}
	return out
}
