package tagging

import "fmt"

// ResourceError represents a failure to initialize the tagger model.
// The failure is not cached; the next call retries initialization.
type ResourceError struct {
	Resource string
	Cause    error
}

func (e *ResourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tagger resource %s unavailable: %v", e.Resource, e.Cause)
	}
	return fmt.Sprintf("tagger resource %s unavailable", e.Resource)
}

func (e *ResourceError) Unwrap() error {
	return e.Cause
}
