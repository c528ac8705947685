// Package types provides type definitions for structured data used throughout the autoresume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BulletMarker prefixes every rendered bullet
const BulletMarker = "• "

// StyleChecks represents style validation results for a rendered bullet
type StyleChecks struct {
	Marker      bool `json:"marker"`
	Terminated  bool `json:"terminated"`
	Capitalized bool `json:"capitalized"`
	StrongVerb  bool `json:"strong_verb"`
	NoPronoun   bool `json:"no_pronoun"`
	Quantified  bool `json:"quantified"`
}

// OK reports whether the bullet satisfies every structural rule.
// Quantified is informational only since the engine never invents metrics.
func (s StyleChecks) OK() bool {
	return s.Marker && s.Terminated && s.Capitalized && s.StrongVerb && s.NoPronoun
}

// BulletReport is the lint result for a single bullet
type BulletReport struct {
	Section      string      `json:"section"`
	Title        string      `json:"title"`
	Text         string      `json:"text"`
	StyleChecks  StyleChecks `json:"style_checks"`
	TabooPhrases []string    `json:"taboo_phrases,omitempty"`
}
