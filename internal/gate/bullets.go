package gate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-helper/internal/types"
)

var (
	// listItemPattern matches a markdown list line and captures its content
	listItemPattern = regexp.MustCompile(`^\s*[-*+•]\s+(.+)$`)
	// mappingPattern matches the trailing "(maps to: ...)" annotation
	mappingPattern = regexp.MustCompile(`(?i)\(\s*maps\s+to:?\s*([^)]*)\)`)
)

// ValidateBullets enforces the bullet rules in order: count, leading verb,
// mapping annotation, numeric coverage, length. Only the count rule can fail
// the section; everything else is repaired in place or surfaced as a
// warning for the gate decision.
func ValidateBullets(section types.SectionText, cfg *Config) types.ValidationResult {
	if !section.Present {
		return missingSectionResult(types.SectionBullets)
	}

	result := types.ValidationResult{
		Section: types.SectionBullets,
		Pass:    true,
	}

	bullets := parseBullets(section.Text)

	// Rule 1: count. Too many is repaired by truncation; too few is the
	// only hard fail, and the parsed content is still returned.
	if len(bullets) > cfg.MaxBullets {
		dropped := len(bullets) - cfg.MaxBullets
		bullets = bullets[:cfg.MaxBullets]
		addViolation(&result, types.Violation{
			Rule:     types.RuleTruncatedBullets,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("kept first %d bullets, dropped %d", cfg.MaxBullets, dropped),
		})
	}
	if len(bullets) < cfg.MinBullets {
		result.Pass = false
		addViolation(&result, types.Violation{
			Rule:     types.RuleTooFewBullets,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("found %d well-formed bullets, need at least %d", len(bullets), cfg.MinBullets),
		})
	}

	// Rules 2-3: leading verb and mapping annotation, flagged per bullet
	for i := range bullets {
		b := &bullets[i]
		if !cfg.IsActionVerb(b.LeadingVerb) {
			addViolation(&result, types.Violation{
				Rule:     types.RuleWeakOpening,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("bullet %d opens with %q, expected an action verb", i+1, b.LeadingVerb),
				ItemText: strPtr(b.Text),
			})
		}
		if len(b.MappedTo) == 0 {
			addViolation(&result, types.Violation{
				Rule:     types.RuleMissingMapping,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("bullet %d has no \"(maps to: ...)\" annotation", i+1),
				ItemText: strPtr(b.Text),
			})
		}
	}

	// Rule 4: numeric coverage across the kept bullets
	quantified := 0
	for _, b := range bullets {
		if cfg.HasNumeral(b.Text) {
			quantified++
		}
	}
	if quantified < cfg.MinQuantified {
		addViolation(&result, types.Violation{
			Rule:     types.RuleInsufficientQuantification,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("%d bullets contain a numeral, want at least %d", quantified, cfg.MinQuantified),
		})
	}

	// Rule 5: per-bullet length, repaired at a word boundary
	for i := range bullets {
		b := &bullets[i]
		if b.LengthChars > cfg.MaxBulletChars {
			b.Text = truncateAtWordBoundary(b.Text, cfg.MaxBulletChars)
			b.LengthChars = len([]rune(b.Text))
			addViolation(&result, types.Violation{
				Rule:     types.RuleBulletTruncated,
				Severity: types.SeverityWarning,
				Details:  fmt.Sprintf("bullet %d exceeded %d chars and was truncated", i+1, cfg.MaxBulletChars),
				ItemText: strPtr(b.Text),
			})
		}
	}

	result.BulletCount = len(bullets)
	result.Text = renderBullets(bullets)
	return result
}

// parseBullets extracts well-formed bullets from the section text. Lines
// without a list marker, and markers with empty content, are discarded.
func parseBullets(text string) []types.Bullet {
	var bullets []types.Bullet
	for _, line := range strings.Split(text, "\n") {
		m := listItemPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[1])
		if content == "" {
			continue
		}
		bullets = append(bullets, types.Bullet{
			Text:        content,
			LeadingVerb: firstToken(content),
			MappedTo:    parseMapping(content),
			LengthChars: len([]rune(content)),
		})
	}
	return bullets
}

// parseMapping extracts requirement tags from the "(maps to: ...)"
// parenthetical. Returns nil when the annotation is absent or empty.
func parseMapping(text string) []string {
	m := mappingPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(m[1], ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func firstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	// Markdown emphasis around the opening word is common in model output
	return strings.Trim(fields[0], "*_`")
}

func renderBullets(bullets []types.Bullet) string {
	lines := make([]string, 0, len(bullets))
	for _, b := range bullets {
		lines = append(lines, "- "+b.Text)
	}
	return strings.Join(lines, "\n")
}
