package rendering

import (
	"sort"
	"strings"

	"github.com/jonathan/autoresume/internal/types"
)

// ContactSeparator joins the contact line fields
const ContactSeparator = " • "

// TemplateData is the layout-ready view of a resume passed to both templates
type TemplateData struct {
	Name             string
	ContactLine      string
	Education        []types.Education
	Experience       []EntryView
	Projects         []EntryView
	Skills           []SkillRow
	Extracurriculars []EntryView
}

// EntryView is an entry with its tools joined and bullet markers removed
type EntryView struct {
	Title    string
	Company  string
	Location string
	Dates    string
	Tools    string
	Bullets  []string
}

// SkillRow is one "Category: a, b, c" line
type SkillRow struct {
	Category string
	Items    string
}

// SectionView groups entries under a heading for the shared "entries" template
type SectionView struct {
	ID      string
	Title   string
	Entries []EntryView
}

func section(title string, entries []EntryView) SectionView {
	return SectionView{
		ID:      strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Title:   title,
		Entries: entries,
	}
}

// ContactLine joins location, email, phone, LinkedIn, GitHub and portfolio,
// skipping empty fields
func ContactLine(c types.Contact) string {
	var parts []string
	for _, field := range []string{c.Location, c.Email, c.Phone, c.LinkedIn, c.GitHub, c.Portfolio} {
		if field = strings.TrimSpace(field); field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, ContactSeparator)
}

// NewTemplateData builds the view for a resume. Skill categories are sorted by name.
func NewTemplateData(resume *types.Resume) *TemplateData {
	if resume == nil {
		return &TemplateData{}
	}
	return &TemplateData{
		Name:             strings.TrimSpace(resume.Contact.FullName),
		ContactLine:      ContactLine(resume.Contact),
		Education:        resume.Education,
		Experience:       entryViews(resume.Experience),
		Projects:         entryViews(resume.Projects),
		Skills:           skillRows(resume.Skills),
		Extracurriculars: entryViews(resume.Extracurriculars),
	}
}

func entryViews(entries []types.Entry) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		bullets := make([]string, 0, len(e.Bullets))
		for _, b := range e.Bullets {
			if b = strings.TrimSpace(strings.TrimPrefix(b, types.BulletMarker)); b != "" {
				bullets = append(bullets, b)
			}
		}
		views = append(views, EntryView{
			Title:    e.Title,
			Company:  e.Company,
			Location: e.Location,
			Dates:    e.Dates,
			Tools:    strings.Join(e.Tools, ", "),
			Bullets:  bullets,
		})
	}
	return views
}

func skillRows(skills map[string][]string) []SkillRow {
	categories := make([]string, 0, len(skills))
	for category, items := range skills {
		if len(items) > 0 {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	rows := make([]SkillRow, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, SkillRow{Category: category, Items: strings.Join(skills[category], ", ")})
	}
	return rows
}
