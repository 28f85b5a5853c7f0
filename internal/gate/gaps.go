package gate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-helper/internal/types"
)

var (
	// gapPattern matches a top-level (unindented) list line naming a gap
	gapPattern = regexp.MustCompile(`^[-*+•]\s+(.+)$`)
	// stepPattern matches an indented list line holding a remediation step
	stepPattern = regexp.MustCompile(`^\s+[-*+•]\s+(.+)$`)
)

// ValidateSkillsGaps enforces the gap rules: a gap needs 1-2 remediation
// steps (stepless gaps are dropped, extra steps truncated), and the section
// needs at least one gap after drops. Overflow past the gap cap is repaired
// by truncation.
func ValidateSkillsGaps(section types.SectionText, cfg *Config) types.ValidationResult {
	if !section.Present {
		return missingSectionResult(types.SectionSkillsGaps)
	}

	result := types.ValidationResult{
		Section: types.SectionSkillsGaps,
		Pass:    true,
	}

	gaps := parseGaps(section.Text)

	// Truncate over-long step lists; drop gaps with no steps at all. The
	// drops happen before the count rule so they can re-trigger it.
	kept := gaps[:0]
	for _, gap := range gaps {
		if len(gap.Steps) == 0 {
			continue
		}
		if len(gap.Steps) > cfg.MaxStepsPerGap {
			gap.Steps = gap.Steps[:cfg.MaxStepsPerGap]
			addViolation(&result, types.Violation{
				Rule:     types.RuleTruncatedGaps,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("gap %q had too many steps, kept first %d", gap.Name, cfg.MaxStepsPerGap),
			})
		}
		kept = append(kept, gap)
	}
	gaps = kept

	if len(gaps) == 0 {
		result.Pass = false
		addViolation(&result, types.Violation{
			Rule:     types.RuleNoGaps,
			Severity: types.SeverityError,
			Details:  "no usable skills gaps found",
		})
	}
	if len(gaps) > cfg.MaxGaps {
		dropped := len(gaps) - cfg.MaxGaps
		gaps = gaps[:cfg.MaxGaps]
		addViolation(&result, types.Violation{
			Rule:     types.RuleTruncatedGaps,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("kept first %d gaps, dropped %d", cfg.MaxGaps, dropped),
		})
	}

	result.GapCount = len(gaps)
	result.Text = renderGaps(gaps)
	return result
}

// parseGaps walks the section line by line: an unindented list line opens a
// new gap, an indented list line adds a step to the current gap. Anything
// else is discarded.
func parseGaps(text string) []types.SkillsGap {
	var gaps []types.SkillsGap
	for _, line := range strings.Split(text, "\n") {
		if m := gapPattern.FindStringSubmatch(line); m != nil {
			name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ":"))
			if name == "" {
				continue
			}
			gaps = append(gaps, types.SkillsGap{Name: name})
			continue
		}
		if m := stepPattern.FindStringSubmatch(line); m != nil && len(gaps) > 0 {
			step := strings.TrimSpace(m[1])
			if step == "" {
				continue
			}
			current := &gaps[len(gaps)-1]
			current.Steps = append(current.Steps, step)
		}
	}
	return gaps
}

func renderGaps(gaps []types.SkillsGap) string {
	var sb strings.Builder
	for i, gap := range gaps {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- " + gap.Name + "\n")
		for _, step := range gap.Steps {
			sb.WriteString("  - " + step + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
