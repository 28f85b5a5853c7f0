// Package types provides type definitions for structured data used throughout the career-helper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Bullet represents a single tailored resume claim parsed from the bullets
// section. MappedTo holds the requirement tags from the trailing
// "(maps to: ...)" annotation; it is empty when the annotation is absent.
type Bullet struct {
	Text        string   `json:"text"`
	LeadingVerb string   `json:"leading_verb"`
	MappedTo    []string `json:"mapped_to,omitempty"`
	LengthChars int      `json:"length_chars"`
}
