package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultActionVerb_AcceptsVerbs(t *testing.T) {
	for _, token := range []string{"Built", "led", "Reduced", "shipped", "Automated"} {
		assert.True(t, DefaultActionVerb(token), token)
	}
}

func TestDefaultActionVerb_RejectsWeakOpeners(t *testing.T) {
	for _, token := range []string{"The", "I", "Responsible", "was", "being", "with"} {
		assert.False(t, DefaultActionVerb(token), token)
	}
}

func TestDefaultActionVerb_AcceptsLeadingNumeral(t *testing.T) {
	assert.True(t, DefaultActionVerb("3x'd"))
	assert.True(t, DefaultActionVerb("10x"))
}

func TestDefaultActionVerb_StripsPunctuation(t *testing.T) {
	assert.True(t, DefaultActionVerb("**Built**"))
	assert.False(t, DefaultActionVerb("...the"))
	assert.False(t, DefaultActionVerb(""))
}

func TestContainsNumeral(t *testing.T) {
	assert.True(t, ContainsNumeral("cut cost 10%"))
	assert.False(t, ContainsNumeral("cut cost by ten percent"))
}

func TestTruncateAtWordBoundary(t *testing.T) {
	assert.Equal(t, "short", truncateAtWordBoundary("short", 40))

	long := "one two three four five"
	cut := truncateAtWordBoundary(long, 13)
	assert.Equal(t, "one two three", cut)
	// Fixed point: truncating the result again changes nothing
	assert.Equal(t, cut, truncateAtWordBoundary(cut, 13))
}

func TestTruncateAtWordBoundary_NoSpaceFallsBackToHardCut(t *testing.T) {
	assert.Equal(t, "aaaaa", truncateAtWordBoundary("aaaaaaaaaa", 5))
}
