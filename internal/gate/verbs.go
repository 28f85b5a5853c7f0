package gate

import (
	"regexp"
	"strings"
	"unicode"
)

// TokenPredicate is a replaceable heuristic applied to bullet text. Two are
// in use: "does this bullet open with an action verb" (applied to the first
// token) and "does this bullet contain a numeral" (applied to the full text).
type TokenPredicate func(string) bool

// weakOpeners lists tokens that indicate a bullet does NOT open with an
// action verb: articles, pronouns, prepositions, auxiliaries, and gerunds of
// being. Intentionally not comprehensive - anything outside the list is
// assumed to be a verb, which keeps the heuristic permissive for verbs we
// have never seen.
var weakOpeners = map[string]bool{
	"a": true, "an": true, "the": true,
	"i": true, "we": true, "my": true, "our": true, "me": true,
	"he": true, "she": true, "they": true, "it": true, "this": true, "that": true,
	"and": true, "or": true, "but": true, "also": true, "very": true,
	"in": true, "on": true, "at": true, "of": true, "for": true, "with": true, "to": true, "as": true, "by": true,
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "having": true,
	"has": true, "have": true, "had": true, "will": true, "would": true, "can": true, "could": true,
	"responsible": true, "duties": true, "tasked": true, "experience": true, "experienced": true,
	"there": true, "various": true, "some": true, "many": true,
}

var numeralPattern = regexp.MustCompile(`[0-9]`)

// DefaultActionVerb reports whether a bullet's first token reads as an
// action verb. Tokens opening with a digit are accepted: a quantified opener
// ("3x'd deploy frequency") is a stylistic variant, not a weak opening.
func DefaultActionVerb(token string) bool {
	token = strings.ToLower(strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
	if token == "" {
		return false
	}
	if unicode.IsDigit(rune(token[0])) {
		return true
	}
	return !weakOpeners[token]
}

// ContainsNumeral reports whether the text carries at least one digit.
func ContainsNumeral(text string) bool {
	return numeralPattern.MatchString(text)
}

// truncateAtWordBoundary cuts text to at most maxChars runes, preferring the
// last space before the limit so words are not split. Already-short text is
// returned unchanged, which keeps truncation a fixed point.
func truncateAtWordBoundary(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	cut := string(runes[:maxChars])
	if runes[maxChars] != ' ' {
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ")
}
