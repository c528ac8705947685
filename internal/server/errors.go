// Package server provides the HTTP JSON API over the rewrite engine and the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/autoresume/internal/experience"
	"github.com/jonathan/autoresume/internal/tagging"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrBuildNotFound indicates no stored build has the requested ID
type ErrBuildNotFound struct {
	ID uuid.UUID
}

func (e *ErrBuildNotFound) Error() string {
	return fmt.Sprintf("build not found: %s", e.ID)
}

// ErrStoreDisabled indicates a persistence endpoint was called without a database
type ErrStoreDisabled struct{}

func (e *ErrStoreDisabled) Error() string {
	return "build storage is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		notFoundErr   *ErrBuildNotFound
		storeErr      *ErrStoreDisabled
		loadErr       *experience.LoadError
		resourceErr   *tagging.ResourceError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &loadErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.As(err, &storeErr):
		return http.StatusNotFound
	case errors.As(err, &resourceErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
