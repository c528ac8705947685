// Package types provides type definitions for structured data used throughout the autoresume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the structured, bullet-ready document produced by the builder
type Resume struct {
	Contact          Contact             `json:"contact"`
	Education        []Education         `json:"education"`
	Skills           map[string][]string `json:"skills"`
	Experience       []Entry             `json:"experience"`
	Projects         []Entry             `json:"projects"`
	Extracurriculars []Entry             `json:"extracurriculars"`
}

// Entry is a rendered experience, project or extracurricular item
type Entry struct {
	Title    string   `json:"title"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	Tools    []string `json:"tools,omitempty"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

// AllBullets returns every bullet in document order
func (r *Resume) AllBullets() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, section := range [][]Entry{r.Experience, r.Projects, r.Extracurriculars} {
		for _, e := range section {
			out = append(out, e.Bullets...)
		}
	}
	return out
}
