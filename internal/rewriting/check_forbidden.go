package rewriting

import (
	"strings"

	"github.com/jonathan/autoresume/internal/types"
)

// checkForbiddenPhrasesInText checks plain text for forbidden phrases
// Returns a list of forbidden phrases found in the text (case-insensitive)
func checkForbiddenPhrasesInText(text string, tabooPhrases []string) []string {
	if len(tabooPhrases) == 0 {
		return nil
	}

	normalizedText := strings.ToLower(text)

	var foundPhrases []string
	seen := make(map[string]bool)

	for _, phrase := range tabooPhrases {
		normalizedPhrase := strings.ToLower(strings.TrimSpace(phrase))
		if normalizedPhrase == "" || seen[normalizedPhrase] {
			continue
		}
		if strings.Contains(normalizedText, normalizedPhrase) {
			foundPhrases = append(foundPhrases, phrase)
			seen[normalizedPhrase] = true
		}
	}

	return foundPhrases
}

// CheckForbiddenPhrasesInBullets checks all bullets for forbidden phrases
// Returns a map of bullet text → list of forbidden phrases found
func CheckForbiddenPhrasesInBullets(bullets []string, tabooPhrases []string) map[string][]string {
	if len(bullets) == 0 {
		return nil
	}

	result := make(map[string][]string)
	for _, bullet := range bullets {
		if found := checkForbiddenPhrasesInText(bullet, tabooPhrases); len(found) > 0 {
			result[bullet] = found
		}
	}
	return result
}

// Lint runs the style and taboo checks over every bullet of a resume, in document order
func (e *Engine) Lint(resume *types.Resume, tabooPhrases []string) []types.BulletReport {
	if resume == nil {
		return nil
	}
	sections := []struct {
		name    string
		entries []types.Entry
	}{
		{"experience", resume.Experience},
		{"projects", resume.Projects},
		{"extracurriculars", resume.Extracurriculars},
	}

	var reports []types.BulletReport
	for _, section := range sections {
		for _, entry := range section.entries {
			for _, bullet := range entry.Bullets {
				reports = append(reports, types.BulletReport{
					Section:      section.name,
					Title:        entry.Title,
					Text:         bullet,
					StyleChecks:  e.ValidateStyle(bullet),
					TabooPhrases: checkForbiddenPhrasesInText(bullet, tabooPhrases),
				})
			}
		}
	}
	return reports
}
