package gate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-helper/internal/types"
)

// sentenceEndPattern locates sentence boundaries: terminal punctuation,
// optionally followed by closing quotes or brackets, then whitespace or end
// of text.
var sentenceEndPattern = regexp.MustCompile(`[.!?]["')\]]*(\s+|$)`)

// ValidateCoverLetter enforces the word-count window on the cover letter.
// Overflow is repaired by trimming whole sentences from the end; a letter
// below the floor is a hard fail. Thin paragraph structure is flagged but
// never blocks acceptance.
func ValidateCoverLetter(section types.SectionText, cfg *Config) types.ValidationResult {
	if !section.Present {
		return missingSectionResult(types.SectionCoverLetter)
	}

	result := types.ValidationResult{
		Section: types.SectionCoverLetter,
		Pass:    true,
		Text:    strings.TrimSpace(section.Text),
	}

	words := len(strings.Fields(result.Text))

	switch {
	case words < cfg.MinCoverWords:
		result.Pass = false
		addViolation(&result, types.Violation{
			Rule:     types.RuleCoverLetterTooShort,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("cover letter has %d words, need at least %d", words, cfg.MinCoverWords),
		})
	case words > cfg.MaxCoverWords:
		result.Text = trimToSentences(result.Text, cfg.MaxCoverWords)
		addViolation(&result, types.Violation{
			Rule:     types.RuleTrimmedCoverLetter,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("cover letter had %d words, trimmed to %d", words, len(strings.Fields(result.Text))),
		})
	}

	if paragraphCount(result.Text) < cfg.MinParagraphs {
		addViolation(&result, types.Violation{
			Rule:     types.RuleInsufficientStructure,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("cover letter has fewer than %d paragraphs", cfg.MinParagraphs),
		})
	}

	result.WordCount = len(strings.Fields(result.Text))
	return result
}

// trimToSentences keeps the longest prefix of whole sentences whose total
// word count stays within maxWords. If even the first sentence overflows,
// it falls back to a plain word cut so the ceiling always holds.
func trimToSentences(text string, maxWords int) string {
	boundaries := sentenceEndPattern.FindAllStringIndex(text, -1)

	kept := -1
	for _, b := range boundaries {
		prefix := text[:b[1]]
		if len(strings.Fields(prefix)) > maxWords {
			break
		}
		kept = b[1]
	}

	if kept <= 0 {
		words := strings.Fields(text)
		return strings.Join(words[:maxWords], " ")
	}
	return strings.TrimSpace(text[:kept])
}

// paragraphCount counts blank-line-separated blocks.
func paragraphCount(text string) int {
	count := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}
