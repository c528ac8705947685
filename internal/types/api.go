// Package types provides type definitions for structured data used throughout the autoresume system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxRequestBullets bounds the XYZ bullet count a client may ask for
const MaxRequestBullets = 4

// TextRequest carries free text for the generic rewrite and classify endpoints
type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

// StarRequest is the request body for a STAR bullet group
type StarRequest struct {
	Text  string   `json:"text" validate:"required"`
	Role  string   `json:"role,omitempty"`
	Org   string   `json:"org,omitempty"`
	Tools ToolList `json:"tools,omitempty"`
}

// XyzRequest is the request body for XYZ bullets
type XyzRequest struct {
	Text       string   `json:"text" validate:"required"`
	Tools      ToolList `json:"tools,omitempty"`
	MaxBullets int      `json:"max_bullets,omitempty" validate:"gte=0,lte=4"`
}

// BulletsResponse wraps a generated bullet list
type BulletsResponse struct {
	Bullets []string `json:"bullets"`
}

// ClassifyResponse lists each sentence with its narrative role
type ClassifyResponse struct {
	Sentences []ClassifiedSentence `json:"sentences"`
}

// BuildResponse is returned after building a resume. ID is set when the build was persisted.
type BuildResponse struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Resume   *Resume    `json:"resume"`
	Warnings []string   `json:"warnings,omitempty"`
}

// BuildRecord is a persisted build
type BuildRecord struct {
	ID        uuid.UUID  `json:"id"`
	Input     *RawResume `json:"input"`
	Output    *Resume    `json:"output"`
	CreatedAt time.Time  `json:"created_at"`
}

// BuildSummary is a build listing entry
type BuildSummary struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate validates the TextRequest using the validator.
func (r *TextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the StarRequest using the validator.
func (r *StarRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the XyzRequest using the validator.
func (r *XyzRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
