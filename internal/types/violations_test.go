package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolations_Rules_DistinctFirstSeen(t *testing.T) {
	v := Violations{Violations: []Violation{
		{Rule: RuleWeakOpening},
		{Rule: RuleTooFewBullets},
		{Rule: RuleWeakOpening},
	}}

	assert.Equal(t, []string{RuleWeakOpening, RuleTooFewBullets}, v.Rules())
}

func TestViolations_HasRule(t *testing.T) {
	v := Violations{Violations: []Violation{{Rule: RuleNoGaps}}}

	assert.True(t, v.HasRule(RuleNoGaps))
	assert.False(t, v.HasRule(RuleMissingSection))
}

func TestRunOutcome_AllViolations_SectionOrder(t *testing.T) {
	o := RunOutcome{
		Bullets: ValidationResult{Violations: Violations{Violations: []Violation{
			{Rule: RuleWeakOpening, Section: SectionBullets},
		}}},
		SkillsGaps: ValidationResult{Violations: Violations{Violations: []Violation{
			{Rule: RuleNoGaps, Section: SectionSkillsGaps},
		}}},
	}

	all := o.AllViolations()
	assert.Len(t, all, 2)
	assert.Equal(t, RuleWeakOpening, all[0].Rule)
	assert.Equal(t, RuleNoGaps, all[1].Rule)
}

func TestRunOutcome_Results_CanonicalOrder(t *testing.T) {
	o := RunOutcome{
		Bullets:     ValidationResult{Section: SectionBullets},
		CoverLetter: ValidationResult{Section: SectionCoverLetter},
		SkillsGaps:  ValidationResult{Section: SectionSkillsGaps},
	}

	results := o.Results()
	assert.Equal(t, SectionBullets, results[0].Section)
	assert.Equal(t, SectionCoverLetter, results[1].Section)
	assert.Equal(t, SectionSkillsGaps, results[2].Section)
}
