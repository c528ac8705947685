// Package experience loads raw resume records and builds bullet-ready resumes from them.
package experience

import "fmt"

// LoadError represents an error during file I/O, decoding or schema validation.
// Path is empty when the record did not come from a file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := "load error"
	if e.Path != "" {
		prefix = "load " + e.Path
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// BuildError represents an error while building one section of the resume
type BuildError struct {
	Section string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("build error in %s: %s: %v", e.Section, e.Message, e.Cause)
	}
	return fmt.Sprintf("build error in %s: %s", e.Section, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
