package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/autoresume/internal/experience"
	"github.com/jonathan/autoresume/internal/tagging"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Field: "text", Message: "required"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("decode: %w", &ErrValidation{Field: "body"}), http.StatusBadRequest},
		{"load error", &experience.LoadError{Message: "input does not match raw resume schema"}, http.StatusBadRequest},
		{"not found", &ErrBuildNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"store disabled", &ErrStoreDisabled{}, http.StatusNotFound},
		{"tagger", &tagging.ResourceError{Resource: "model"}, http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, "validation error: text - required", (&ErrValidation{Field: "text", Message: "required"}).Error())
	assert.Equal(t, "build not found: 6ba7b810-9dad-11d1-80b4-00c04fd430c8", (&ErrBuildNotFound{ID: id}).Error())
	assert.Equal(t, "build storage is not configured", (&ErrStoreDisabled{}).Error())
}
