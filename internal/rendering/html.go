package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/autoresume/internal/types"
)

//go:embed templates/resume.html
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("resume.html").Funcs(template.FuncMap{
	"section": section,
}).Parse(htmlTemplateSource))

// RenderHTML renders a resume as a single self-contained HTML page
func RenderHTML(resume *types.Resume) (string, error) {
	if resume == nil {
		return "", &RenderError{Format: formatHTML, Message: "resume is nil"}
	}

	var result strings.Builder
	if err := htmlTemplate.Execute(&result, NewTemplateData(resume)); err != nil {
		return "", &TemplateError{Format: formatHTML, Message: "execute failed", Cause: err}
	}
	return result.String(), nil
}
