// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/autoresume/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBuildSummary outputs per-section entry and bullet counts plus the first bullets of a built resume.
func (p *Printer) PrintBuildSummary(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	if resume.Contact.FullName != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Contact.FullName))
	}
	sb.WriteString(fmt.Sprintf("Education: %d  Skill groups: %d\n\n", len(resume.Education), len(resume.Skills)))

	sections := []struct {
		name    string
		entries []types.Entry
	}{
		{"Experience", resume.Experience},
		{"Projects", resume.Projects},
		{"Extracurriculars", resume.Extracurriculars},
	}
	for _, s := range sections {
		bullets := 0
		for _, e := range s.entries {
			bullets += len(e.Bullets)
		}
		sb.WriteString(fmt.Sprintf("%-17s %d entries, %d bullets\n", s.name+":", len(s.entries), bullets))
	}

	all := resume.AllBullets()
	if len(all) > 0 {
		sb.WriteString("\n")
		count := min(len(all), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(all[i])
			sb.WriteString("\n")
		}
		if len(all) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more bullets\n", len(all)-maxItemsToShow))
		}
	}

	p.printBox("BUILT RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLintReports outputs the bullets that failed a style check or carry a taboo phrase.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintLintReports(reports []types.BulletReport) {
	var failing []types.BulletReport
	for _, r := range reports {
		if !r.StyleChecks.OK() || len(r.TabooPhrases) > 0 {
			failing = append(failing, r)
		}
	}

	if len(failing) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ %d BULLETS PASSED", len(reports)))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d bullets need attention:\n\n", len(failing), len(reports)))

	for i, r := range failing {
		sb.WriteString(fmt.Sprintf("⚠ %s / %s\n", r.Section, r.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", r.Text))

		var marks []string
		if !r.StyleChecks.StrongVerb {
			marks = append(marks, "✗verb")
		}
		if !r.StyleChecks.NoPronoun {
			marks = append(marks, "✗pronoun")
		}
		if !r.StyleChecks.Marker || !r.StyleChecks.Terminated || !r.StyleChecks.Capitalized {
			marks = append(marks, "✗format")
		}
		if len(r.TabooPhrases) > 0 {
			marks = append(marks, "✗taboo: "+strings.Join(r.TabooPhrases, ", "))
		}
		sb.WriteString(fmt.Sprintf("  [%s]\n", strings.Join(marks, " ")))
		if i < len(failing)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LINT", strings.TrimSuffix(sb.String(), "\n"))
}
