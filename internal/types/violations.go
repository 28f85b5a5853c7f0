// Package types provides type definitions for structured data used throughout the career-helper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Rule identifiers for quality-gate violations. These appear in run metadata
// and in repair prompts, so they are stable strings rather than iota values.
const (
	RuleMissingSection             = "missing_section"
	RuleTooFewBullets              = "too_few_bullets"
	RuleTruncatedBullets           = "truncated_bullets"
	RuleWeakOpening                = "weak_opening"
	RuleMissingMapping             = "missing_mapping"
	RuleInsufficientQuantification = "insufficient_quantification"
	RuleBulletTruncated            = "bullet_truncated"
	RuleCoverLetterTooShort        = "cover_letter_too_short"
	RuleTrimmedCoverLetter         = "trimmed_cover_letter"
	RuleInsufficientStructure      = "insufficient_structure"
	RuleNoGaps                     = "no_gaps"
	RuleTruncatedGaps              = "truncated_gaps"
)

// Severity levels for violations
const (
	SeverityError   = "error"   // Hard fail: the section cannot be accepted
	SeverityWarning = "warning" // Repaired in place or surfaced for reporting only
)

// Violation represents a single quality-gate failure
type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Details  string `json:"details"`
	Section  string `json:"section,omitempty"`

	// Fields for locating the offending item within a section
	LineNumber *int    `json:"line_number,omitempty"`
	ItemText   *string `json:"item_text,omitempty"`
}

// Violations represents a collection of quality-gate failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Rules returns the distinct rule identifiers present, in first-seen order.
func (v *Violations) Rules() []string {
	seen := make(map[string]bool)
	rules := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		if !seen[violation.Rule] {
			seen[violation.Rule] = true
			rules = append(rules, violation.Rule)
		}
	}
	return rules
}

// HasRule reports whether any violation carries the given rule identifier.
func (v *Violations) HasRule(rule string) bool {
	for _, violation := range v.Violations {
		if violation.Rule == rule {
			return true
		}
	}
	return false
}
