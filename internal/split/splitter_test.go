package split

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullCompletion = `## Tailored Bullets
- Built X (maps to: Y)
- Led Z, cut cost 10% (maps to: W)

## Cover Letter
Dear team,

I am writing to apply.

## Skills Gaps
- Kubernetes
  - Complete CKA course
`

func TestSplit_AllSectionsPresent(t *testing.T) {
	sections, err := Split(fullCompletion)
	require.NoError(t, err)

	assert.True(t, sections.Bullets.Present)
	assert.True(t, sections.CoverLetter.Present)
	assert.True(t, sections.SkillsGaps.Present)

	assert.Contains(t, sections.Bullets.Text, "Built X")
	assert.Contains(t, sections.Bullets.Text, "cut cost 10%")
	assert.NotContains(t, sections.Bullets.Text, "Dear team")

	assert.Contains(t, sections.CoverLetter.Text, "Dear team,")
	assert.Contains(t, sections.SkillsGaps.Text, "Kubernetes")
}

func TestSplit_CaseInsensitiveHeaders(t *testing.T) {
	raw := "## TAILORED BULLETS\n- A\n## cover letter\nHello\n## SKILLS GAPS & NEXT STEPS\n- B\n  - step"
	sections, err := Split(raw)
	require.NoError(t, err)

	assert.True(t, sections.Bullets.Present)
	assert.True(t, sections.CoverLetter.Present)
	assert.True(t, sections.SkillsGaps.Present)
}

func TestSplit_MissingSectionDoesNotAbortSiblings(t *testing.T) {
	raw := "## Cover Letter\nSome letter text.\n\n## Skills Gaps\n- Gap\n  - Step"
	sections, err := Split(raw)
	require.NoError(t, err)

	assert.False(t, sections.Bullets.Present)
	assert.Empty(t, sections.Bullets.Text)
	assert.True(t, sections.CoverLetter.Present)
	assert.True(t, sections.SkillsGaps.Present)
}

func TestSplit_DiscardsPreamble(t *testing.T) {
	raw := "Sure! Here is your tailored application:\n\n## Tailored Bullets\n- A (maps to: B)\n## Cover Letter\nText\n## Skills Gaps\n- G\n  - S"
	sections, err := Split(raw)
	require.NoError(t, err)

	assert.NotContains(t, sections.Bullets.Text, "Sure!")
	assert.Equal(t, "- A (maps to: B)", sections.Bullets.Text)
}

func TestSplit_NoHeadersAtAll(t *testing.T) {
	_, err := Split("just some prose with no headings whatsoever")
	require.Error(t, err)
	var splitErr *Error
	assert.ErrorAs(t, err, &splitErr)
}

func TestSplit_EmptyInput(t *testing.T) {
	_, err := Split("   \n\t\n")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestSplit_RepeatedHeaderFirstOccurrenceWins(t *testing.T) {
	raw := "## Cover Letter\nfirst version\n## Cover Letter\nsecond version"
	sections, err := Split(raw)
	require.NoError(t, err)
	assert.Equal(t, "first version", sections.CoverLetter.Text)
}

func TestSplit_HeaderDecorationsStripped(t *testing.T) {
	raw := "### **Tailored Bullets:**\n- A\n## Cover Letter\nText"
	sections, err := Split(raw)
	require.NoError(t, err)
	assert.True(t, sections.Bullets.Present)
	assert.Equal(t, "- A", sections.Bullets.Text)
}

func TestSplit_SectionRunsToEndOfInput(t *testing.T) {
	raw := "## Skills Gaps\n- Gap one\n  - Step\n- Gap two\n  - Step"
	sections, err := Split(raw)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(sections.SkillsGaps.Text, "- Step"))
	assert.False(t, sections.Bullets.Present)
}
