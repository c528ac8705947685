package parsing

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/jonathan/autoresume/internal/segment"
)

// RangeSeparator joins the two ends of a normalized date range
const RangeSeparator = " – "

var (
	spacedSeparator = regexp.MustCompile(`(?i)\s+(?:-{1,2}|–|—|to|until)\s+`)
	dashSeparator   = regexp.MustCompile(`\s*[–—]\s*`)
	openEnd         = regexp.MustCompile(`(?i)(?:\s+(?:to|until)|\s*(?:-{1,2}|–|—))$`)
	isoMonth        = regexp.MustCompile(`^\d{4}-\d{1,2}(?:-\d{1,2})?$`)
	bareYear        = regexp.MustCompile(`^\d{4}$`)
	monthAbbrevFix  = strings.NewReplacer("Sept.", "Sep", "Sept ", "Sep ", "sept ", "sep ")
)

// dateLayouts are tried in order before falling back to dateparse
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan. 2006",
	"Jan, 2006",
	"January, 2006",
	"01/2006",
	"1/2006",
	"2006-01",
	"2006-1",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var presentWords = map[string]bool{
	"present": true, "current": true, "currently": true, "now": true, "ongoing": true, "today": true,
}

// NormalizeDateRange rewrites a free-text date or date range into
// "Mon YYYY – Mon YYYY" form, with open ranges ending in "Present".
// A trailing separator ("Aug 2025 –", "Jan 2024 to") also reads as an open
// range. A bare year is kept as is. Text that cannot be parsed passes through trimmed.
func NormalizeDateRange(s string) string {
	s = strings.Join(strings.Fields(segment.Normalize(s)), " ")
	if s == "" {
		return ""
	}
	if loc := openEnd.FindStringIndex(s); loc != nil && loc[0] > 0 {
		s = s[:loc[0]] + " - Present"
	}

	start, end, ok := splitRange(s)
	if !ok {
		return normalizeDate(s)
	}
	start, end = normalizeDate(start), normalizeDate(end)
	switch {
	case start == "":
		return end
	case end == "":
		return start
	default:
		return start + RangeSeparator + end
	}
}

func splitRange(s string) (string, string, bool) {
	if parts := spacedSeparator.Split(s, 2); len(parts) == 2 {
		return parts[0], parts[1], true
	}
	if parts := dashSeparator.Split(s, 2); len(parts) == 2 {
		return parts[0], parts[1], true
	}
	// Unspaced hyphen: "2019-2021" or "May 2020-June 2021", but not "2020-01"
	if isoMonth.MatchString(s) {
		return "", "", false
	}
	if parts := strings.Split(s, "-"); len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
	}
	return "", "", false
}

// normalizeDate formats a single date as "Mon YYYY"
func normalizeDate(s string) string {
	s = strings.TrimSpace(strings.Trim(s, ",;"))
	if s == "" {
		return ""
	}
	if presentWords[strings.ToLower(s)] {
		return "Present"
	}
	if bareYear.MatchString(s) {
		return s
	}

	candidate := monthAbbrevFix.Replace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format("Jan 2006")
		}
	}
	if t, err := dateparse.ParseAny(candidate); err == nil {
		return t.Format("Jan 2006")
	}
	return s
}
