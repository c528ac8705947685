package rendering

import (
	_ "embed"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/autoresume/internal/types"
)

//go:embed templates/resume.tex
var defaultLaTeXTemplate string

// RenderLaTeX renders a resume as a LaTeX document. An empty templatePath uses
// the built-in template; a custom template receives the same TemplateData and
// the "escape" and "section" functions.
func RenderLaTeX(resume *types.Resume, templatePath string) (string, error) {
	if resume == nil {
		return "", &RenderError{Format: formatLaTeX, Message: "resume is nil"}
	}

	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, NewTemplateData(resume)); err != nil {
		return "", &TemplateError{Format: formatLaTeX, Path: templatePath, Message: "execute failed", Cause: err}
	}

	return result.String(), nil
}

// parseTemplate reads and parses a LaTeX template file
func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultLaTeXTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{Format: formatLaTeX, Path: templatePath, Message: "template file not found", Cause: err}
			}
			return nil, &TemplateError{Format: formatLaTeX, Path: templatePath, Message: "read failed", Cause: err}
		}
		content = string(data)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape":  EscapeLaTeX,
		"section": section,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{Format: formatLaTeX, Path: templatePath, Message: "parse failed", Cause: err}
	}

	return tmpl, nil
}
