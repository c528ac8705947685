// Package types provides type definitions for structured data used throughout the autoresume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SentenceRole is the narrative role a sentence plays in a STAR story
type SentenceRole string

// Sentence role constants, in classification priority order.
const (
	RoleResult       SentenceRole = "result"
	RoleAction       SentenceRole = "action"
	RoleTask         SentenceRole = "task"
	RoleSituation    SentenceRole = "situation"
	RoleUnclassified SentenceRole = "unclassified"
)

// ClassifiedSentence pairs a sentence with its role
type ClassifiedSentence struct {
	Text string       `json:"text"`
	Role SentenceRole `json:"role"`
}

// IsValid reports whether r is one of the known roles
func (r SentenceRole) IsValid() bool {
	switch r {
	case RoleResult, RoleAction, RoleTask, RoleSituation, RoleUnclassified:
		return true
	}
	return false
}
