// Package types provides type definitions for structured data used throughout the career-helper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section names as they appear in violations, metadata, and artifacts
const (
	SectionBullets     = "bullets"
	SectionCoverLetter = "cover_letter"
	SectionSkillsGaps  = "skills_gaps"
)

// SectionText holds the extracted text of one section and whether its header
// was located at all. Text is trimmed of surrounding whitespace.
type SectionText struct {
	Name    string `json:"name"`
	Text    string `json:"text"`
	Present bool   `json:"present"`
}

// Sections is the result of splitting a raw completion into the three
// expected regions. A section whose header was not found has Present=false
// and empty Text; the siblings are still populated independently.
type Sections struct {
	Bullets     SectionText `json:"bullets"`
	CoverLetter SectionText `json:"cover_letter"`
	SkillsGaps  SectionText `json:"skills_gaps"`
}
