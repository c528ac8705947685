package rendering

import "strings"

// latexReplacer covers the ten LaTeX special characters plus the typographic
// characters the rewrite engine and date normalizer emit
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	"•", `\textbullet{}`,
	"–", "--",
	"—", "---",
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	return latexReplacer.Replace(text)
}
