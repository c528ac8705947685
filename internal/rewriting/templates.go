package rewriting

import (
	"slices"
	"strings"

	"github.com/jonathan/autoresume/internal/segment"
)

// fallbackAction stands in for a missing or repeated action sentence
const fallbackAction = "Implemented improvements"

// MakeStarBullets builds a Situation/Task, Action, Result group of exactly
// three bullets, or none when text holds no sentence. role is used verbatim
// if the first sentence rewrites to nothing; org names whose objectives the
// result bullet supported; tools are appended to the action bullet.
func (e *Engine) MakeStarBullets(text, role, org string, tools []string) []string {
	clauses := slices.Collect(segment.Clauses(text))
	if len(clauses) == 0 {
		return []string{}
	}

	first, ok := e.Rewrite(clauses[0], nil)
	situation := first.Bullet()
	if !ok {
		situation = formatBullet(role)
		if strings.TrimSpace(role) == "" {
			situation = formatBullet(e.lex.FallbackVerb + " " + fallbackObject)
		}
	}

	action := ""
	if len(clauses) > 1 {
		if second, ok := e.Rewrite(clauses[1], tools); ok {
			action = second.Bullet()
		}
	}
	if action == "" || strings.EqualFold(action, situation) {
		action = Clause{Text: fallbackAction, Tools: e.mergeTools(tools)}.Bullet()
	}

	subject := strings.TrimSpace(org)
	if subject == "" {
		subject = "team"
	}
	impact := e.ImpactPhrase(text + " " + strings.Join(tools, " "))
	result := formatBullet("Supported " + subject + " objectives by " + impact)

	return []string{situation, action, result}
}

// MakeXyzBullets builds "accomplished X by doing Y using Z" bullets. The
// first bullet joins the first two sentences with "by"; a third sentence
// becomes a second "Documented and validated" bullet. maxBullets <= 0 means
// DefaultXyzBullets.
func (e *Engine) MakeXyzBullets(text string, tools []string, maxBullets int) []string {
	if maxBullets <= 0 {
		maxBullets = DefaultXyzBullets
	}
	clauses := slices.Collect(segment.Clauses(text))
	if len(clauses) == 0 {
		return []string{}
	}

	what, ok := e.Rewrite(clauses[0], nil)
	if !ok {
		return []string{}
	}
	what.Text = trimTrailingBy(what.Text)

	var b strings.Builder
	b.WriteString(what.Text)
	allTools := [][]string{what.Tools}
	tail := what.Tail
	toolJoin := " using "
	if len(clauses) > 1 {
		howText := stripLeadingBy(clauses[1])
		if only := e.onlyTools(howText); len(only) > 0 {
			// "By using React." folds into the tool list
			allTools = append(allTools, only)
		} else if how, ok := e.Rewrite(howText, nil); ok {
			gerund := e.gerundClause(how.Text)
			b.WriteString(" by ")
			b.WriteString(gerund)
			allTools = append(allTools, how.Tools)
			tail += how.Tail
			if first, _, _ := strings.Cut(gerund, " "); e.lex.IsToolConnector(bare(first)) {
				toolJoin = " and "
			}
		}
	}
	allTools = append(allTools, tools)
	if merged := e.mergeTools(allTools...); len(merged) > 0 {
		b.WriteString(toolJoin)
		b.WriteString(strings.Join(merged, ", "))
	}
	b.WriteString(tail)

	impact := e.ImpactPhrase(text + " " + strings.Join(tools, " "))
	if !strings.Contains(strings.ToLower(text), impact) {
		b.WriteString(", ")
		b.WriteString(impact)
	}

	seen := make(map[string]bool)
	bullets := appendUnique(make([]string, 0, maxBullets), seen, formatBullet(b.String()))

	if len(clauses) > 2 && len(bullets) < maxBullets {
		if rest, ok := e.Rewrite(clauses[2], nil); ok {
			if object := dropLeadingWord(rest.Sentence()); object != "" {
				bullets = appendUnique(bullets, seen, formatBullet("Documented and validated "+object))
			}
		}
	}
	if len(bullets) > maxBullets {
		bullets = bullets[:maxBullets]
	}
	return bullets
}

// gerundClause turns "Taught students HTML" into "teaching students HTML"
func (e *Engine) gerundClause(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	words[0] = e.gerundOfPast(words[0])
	for j := 1; j+1 < len(words); j++ {
		// "created and managed" -> "creating and managing"
		if bare(words[j]) != "and" || !e.lex.IsActionVerb(bare(words[j+1])) {
			continue
		}
		words[j+1] = swapCore(words[j+1], e.gerundOfPast(words[j+1]))
	}
	return strings.Join(words, " ")
}

func stripLeadingBy(clause string) string {
	for {
		words := strings.Fields(clause)
		if len(words) == 0 || !strings.EqualFold(words[0], "by") {
			return clause
		}
		clause = strings.Join(words[1:], " ")
	}
}

func trimTrailingBy(text string) string {
	words := strings.Fields(text)
	for len(words) > 1 && strings.EqualFold(words[len(words)-1], "by") {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func dropLeadingWord(text string) string {
	_, rest, found := strings.Cut(strings.TrimSpace(text), " ")
	if !found {
		return ""
	}
	return strings.TrimSpace(rest)
}
