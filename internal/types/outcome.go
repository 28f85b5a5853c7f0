// Package types provides type definitions for structured data used throughout the career-helper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ValidationResult is the per-section verdict produced by a validator. The
// Text field carries the normalized (possibly truncated or repaired) section
// content; validators never mutate a result in place, they return a fresh one
// per pass.
type ValidationResult struct {
	Section    string     `json:"section"`
	Pass       bool       `json:"pass"`
	Text       string     `json:"text"`
	Violations Violations `json:"violations"`

	// Counts recorded for run metadata
	BulletCount int `json:"bullet_count,omitempty"`
	WordCount   int `json:"word_count,omitempty"`
	GapCount    int `json:"gap_count,omitempty"`
}

// Rules returns the rule identifiers violated for this section.
func (r *ValidationResult) Rules() []string {
	return r.Violations.Rules()
}

// RunOutcome aggregates the three section verdicts plus the overall
// accept/reject decision for one tailoring attempt. RetriesUsed is filled in
// by the orchestrator, which owns the retry loop.
type RunOutcome struct {
	Bullets     ValidationResult `json:"bullets"`
	CoverLetter ValidationResult `json:"cover_letter"`
	SkillsGaps  ValidationResult `json:"skills_gaps"`

	Accept       bool `json:"accept"`
	WithWarnings bool `json:"with_warnings"`
	RetriesUsed  int  `json:"retries_used"`
}

// Results returns the three section results in canonical order.
func (o *RunOutcome) Results() []*ValidationResult {
	return []*ValidationResult{&o.Bullets, &o.CoverLetter, &o.SkillsGaps}
}

// AllViolations flattens every section's violations into one list, in
// section order. Used for repair prompts and metadata.
func (o *RunOutcome) AllViolations() []Violation {
	var all []Violation
	for _, result := range o.Results() {
		all = append(all, result.Violations.Violations...)
	}
	return all
}
