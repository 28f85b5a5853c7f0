package gate

import (
	"fmt"

	"github.com/jonathan/career-helper/internal/split"
	"github.com/jonathan/career-helper/internal/types"
)

// Engine composes the splitter and the three section validators into a
// single quality gate. It is stateless: every Evaluate call recomputes a
// fresh RunOutcome from scratch, so retried completions never reuse prior
// section results.
type Engine struct {
	cfg *Config
}

// New creates a gate engine, validating the config. A nil config uses the
// defaults.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the thresholds the engine enforces.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Evaluate splits a raw completion and runs every section validator,
// aggregating the verdicts. Overall accept requires that no section
// hard-failed; warnings alone never flip the decision. Empty or entirely
// unrecognizable input yields an error rather than a failing outcome.
func (e *Engine) Evaluate(raw string) (*types.RunOutcome, error) {
	sections, err := split.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to split completion: %w", err)
	}

	outcome := &types.RunOutcome{
		Bullets:     ValidateBullets(sections.Bullets, e.cfg),
		CoverLetter: ValidateCoverLetter(sections.CoverLetter, e.cfg),
		SkillsGaps:  ValidateSkillsGaps(sections.SkillsGaps, e.cfg),
	}

	outcome.Accept = outcome.Bullets.Pass && outcome.CoverLetter.Pass && outcome.SkillsGaps.Pass
	outcome.WithWarnings = outcome.Accept && len(outcome.AllViolations()) > 0
	return outcome, nil
}

// missingSectionResult is the hard-fail verdict for a section whose header
// was never located. Siblings are validated independently.
func missingSectionResult(name string) types.ValidationResult {
	return types.ValidationResult{
		Section: name,
		Pass:    false,
		Violations: types.Violations{Violations: []types.Violation{{
			Rule:     types.RuleMissingSection,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("section %q not found in completion", name),
			Section:  name,
		}}},
	}
}

func addViolation(result *types.ValidationResult, v types.Violation) {
	v.Section = result.Section
	result.Violations.Violations = append(result.Violations.Violations, v)
}

func strPtr(s string) *string {
	return &s
}
