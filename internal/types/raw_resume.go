// Package types provides type definitions for structured data used throughout the autoresume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RawResume is the structured record collected from the user before rewriting
type RawResume struct {
	Contact          Contact     `json:"contact"`
	Education        []Education `json:"education" validate:"dive"`
	Skills           SkillSet    `json:"skills"`
	Experience       []RawEntry  `json:"experience" validate:"dive"`
	Projects         []RawEntry  `json:"projects" validate:"dive"`
	Extracurriculars []RawEntry  `json:"extracurriculars" validate:"dive"`
}

// Validate checks field formats (email, GPA, required titles) using the validator
func (r *RawResume) Validate() error {
	return validator.New().Struct(r)
}

// Contact holds the header information printed above every section
type Contact struct {
	FullName  string `json:"full_name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// Education is passed through to the output with its dates normalized
type Education struct {
	School   string `json:"school" validate:"required"`
	Degree   string `json:"degree,omitempty"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
	Date     string `json:"date,omitempty"`
	GPA      string `json:"gpa,omitempty" validate:"omitempty,numeric"`
}

// RawEntry is one experience, project or extracurricular item as entered by the user
type RawEntry struct {
	Title        string   `json:"title" validate:"required"`
	Company      string   `json:"company,omitempty"`
	Organization string   `json:"organization,omitempty"`
	Location     string   `json:"location,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Date         string   `json:"date,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Description  string   `json:"description,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Tools        ToolList `json:"tools,omitempty"`
}

// Org returns the company, falling back to the organization field
func (e RawEntry) Org() string {
	if strings.TrimSpace(e.Company) != "" {
		return strings.TrimSpace(e.Company)
	}
	return strings.TrimSpace(e.Organization)
}

// DateText returns whichever date field the user filled in.
// start_date/end_date are joined with an en dash when no free-text range is given.
func (e RawEntry) DateText() string {
	if s := strings.TrimSpace(e.Dates); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Date); s != "" {
		return s
	}
	start := strings.TrimSpace(e.StartDate)
	end := strings.TrimSpace(e.EndDate)
	switch {
	case start != "" && end != "":
		return start + " – " + end
	case start != "":
		return start
	default:
		return end
	}
}

var bulletMarkerPattern = regexp.MustCompile(`^(?:[•\-*–·]\s*)+`)

// SourceText returns the free text the rewrite engine should consume.
// Pre-split bullets win over summary, summary wins over description.
// Bullets are stripped of list markers and terminated so each stays its own sentence.
func (e RawEntry) SourceText() string {
	return e.sourceText(e.Summary, e.Description)
}

// ExtracurricularText is SourceText with description preferred over
// summary, the field extracurricular entries are usually written in.
func (e RawEntry) ExtracurricularText() string {
	return e.sourceText(e.Description, e.Summary)
}

func (e RawEntry) sourceText(first, second string) string {
	if len(e.Bullets) > 0 {
		parts := make([]string, 0, len(e.Bullets))
		for _, b := range e.Bullets {
			b = strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(strings.TrimSpace(b), ""))
			if b == "" {
				continue
			}
			if !strings.ContainsAny(b[len(b)-1:], ".!?") {
				b += "."
			}
			parts = append(parts, b)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	if s := strings.TrimSpace(first); s != "" {
		return s
	}
	return strings.TrimSpace(second)
}

var toolSplitPattern = regexp.MustCompile(`\s*,\s*|\s+and\s+|\s*;\s*`)

// ToolList is a tools hint that may arrive as a single string or a list of strings.
// Any other JSON shape decodes to an empty list instead of an error.
type ToolList []string

// UnmarshalJSON implements json.Unmarshaler
func (t *ToolList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = nil
		return nil
	}
	*t = coerceToolList(raw)
	return nil
}

func coerceToolList(raw any) ToolList {
	switch v := raw.(type) {
	case string:
		return SplitToolString(v)
	case []any:
		out := make(ToolList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// SplitToolString splits "Python, Docker and Git" into its items
func SplitToolString(s string) ToolList {
	var out ToolList
	for _, part := range toolSplitPattern.Split(strings.TrimSpace(s), -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SkillSet maps a skill category to its items. Categories given as a single
// string are split like a tool list; other shapes are dropped.
type SkillSet map[string][]string

// UnmarshalJSON implements json.Unmarshaler
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}
	out := make(SkillSet, len(raw))
	for category, value := range raw {
		items := coerceToolList(value)
		if len(items) == 0 {
			continue
		}
		out[category] = []string(items)
	}
	*s = out
	return nil
}
