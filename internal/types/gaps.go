// Package types provides type definitions for structured data used throughout the career-helper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillsGap represents one posting requirement missing from the resume,
// paired with its remediation steps (1-2 short actionable strings).
type SkillsGap struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}
