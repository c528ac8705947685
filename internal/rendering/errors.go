// Package rendering lays a built resume out as LaTeX, HTML or PDF.
package rendering

import "fmt"

// Output formats named in rendering errors
const (
	formatLaTeX = "latex"
	formatHTML  = "html"
	formatPDF   = "pdf"
)

// TemplateError is a template that could not be read, parsed or executed.
// Path is empty for the built-in templates.
type TemplateError struct {
	Format  string
	Path    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	source := "built-in"
	if e.Path != "" {
		source = e.Path
	}
	msg := fmt.Sprintf("%s template (%s): %s", e.Format, source, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is a failure outside template handling: a nil resume or a failed PDF print
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s render: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s render: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
