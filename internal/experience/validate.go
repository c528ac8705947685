package experience

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/autoresume/internal/types"
)

// ValidateResume checks field formats on a loaded record and returns one
// human-readable issue per failing field. A nil raw resume yields no issues.
func ValidateResume(raw *types.RawResume) []string {
	if raw == nil {
		return nil
	}
	err := raw.Validate()
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	issues := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		issues = append(issues, describeFieldError(fe))
	}
	return issues
}

func describeFieldError(fe validator.FieldError) string {
	// Namespace is "RawResume.Experience[0].Title"; drop the root type name
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s %q is not a valid email address", field, fe.Value())
	case "url":
		return fmt.Sprintf("%s %q is not a valid URL", field, fe.Value())
	case "numeric":
		return fmt.Sprintf("%s %q is not a number", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
