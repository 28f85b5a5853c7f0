// Package gate enforces mechanical quality gates on split model output:
// bullet count and shape, cover letter length, and skills-gap structure.
// Validators repair what they can (truncation) and report everything else as
// violations; they never call the model or touch disk.
package gate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the thresholds the validators enforce. It is supplied by the
// orchestrator; the gate never reads the environment directly.
type Config struct {
	MinBullets     int `json:"min_bullets" validate:"min=1"`
	MaxBullets     int `json:"max_bullets" validate:"gtefield=MinBullets"`
	MaxBulletChars int `json:"max_bullet_chars" validate:"min=40"`
	MinQuantified  int `json:"min_quantified" validate:"min=0"`

	MinCoverWords int `json:"min_cover_words" validate:"min=1"`
	MaxCoverWords int `json:"max_cover_words" validate:"gtefield=MinCoverWords"`
	MinParagraphs int `json:"min_paragraphs" validate:"min=1"`

	MinGaps        int `json:"min_gaps" validate:"min=1"`
	MaxGaps        int `json:"max_gaps" validate:"gtefield=MinGaps"`
	MaxStepsPerGap int `json:"max_steps_per_gap" validate:"min=1"`

	RetryBudget int `json:"retry_budget" validate:"min=0"`

	// Strict rejects a run outright once the retry budget is exhausted.
	// When false, the best-available outcome is accepted with warnings
	// unless a section hard-failed.
	Strict bool `json:"strict"`

	// Replaceable heuristics. The defaults are approximate by design; tests
	// and callers may swap them without changing validator structure.
	IsActionVerb TokenPredicate `json:"-" validate:"-"`
	HasNumeral   TokenPredicate `json:"-" validate:"-"`
}

var configValidator = validator.New()

// DefaultConfig returns the standard gate thresholds: 3-6 bullets capped at
// 240 chars, a 250-350 word cover letter window, 2-5 gaps with up to 2 steps
// each, and a single retry.
func DefaultConfig() *Config {
	return &Config{
		MinBullets:     3,
		MaxBullets:     6,
		MaxBulletChars: 240,
		MinQuantified:  2,
		MinCoverWords:  250,
		MaxCoverWords:  350,
		MinParagraphs:  3,
		MinGaps:        2,
		MaxGaps:        5,
		MaxStepsPerGap: 2,
		RetryBudget:    1,
		IsActionVerb:   DefaultActionVerb,
		HasNumeral:     ContainsNumeral,
	}
}

// Validate checks threshold consistency and fills in default heuristics for
// nil predicates.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid gate config: %w", err)
	}
	if c.IsActionVerb == nil {
		c.IsActionVerb = DefaultActionVerb
	}
	if c.HasNumeral == nil {
		c.HasNumeral = ContainsNumeral
	}
	return nil
}
