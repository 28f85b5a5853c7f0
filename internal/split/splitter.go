// Package split partitions raw model output into the three expected
// markdown sections: tailored bullets, cover letter, and skills gaps.
package split

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/career-helper/internal/types"
)

// ErrEmptyCompletion is returned when the raw completion is empty or
// whitespace-only. This is the one truly unrecoverable input: there is
// nothing to validate.
var ErrEmptyCompletion = fmt.Errorf("raw completion is empty")

// Error represents a split failure: none of the expected section headers
// could be located in the completion.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("split error: %s", e.Message)
}

// headerPattern matches a markdown heading line and captures its title.
// RE2 has no lookahead, so sections are located by scanning lines for
// recognized headings and slicing the text between consecutive matches.
var headerPattern = regexp.MustCompile(`^\s*#{1,6}\s*(.+?)\s*$`)

// headerSynonyms maps normalized heading titles to section names. Matching
// is case-insensitive; trailing punctuation and decorations are stripped
// before lookup.
var headerSynonyms = map[string]string{
	"tailored bullets":         types.SectionBullets,
	"bullets":                  types.SectionBullets,
	"cover letter":             types.SectionCoverLetter,
	"skills gaps":              types.SectionSkillsGaps,
	"skills gaps & next steps": types.SectionSkillsGaps,
	"gaps":                     types.SectionSkillsGaps,
}

// Split extracts the three sections from a raw completion. Each section's
// text is everything between its header and the next recognized header (or
// end of input), trimmed. A missing header leaves that section absent; the
// siblings are still extracted. If no header at all is recognized, Split
// returns a *Error.
func Split(raw string) (*types.Sections, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyCompletion
	}

	lines := strings.Split(raw, "\n")

	type marker struct {
		section   string
		startLine int // first line after the header
	}
	var markers []marker

	for i, line := range lines {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		section, ok := classifyHeader(m[1])
		if !ok {
			continue
		}
		markers = append(markers, marker{section: section, startLine: i + 1})
	}

	if len(markers) == 0 {
		return nil, &Error{Message: "no recognized section headers in completion"}
	}

	sections := &types.Sections{
		Bullets:     types.SectionText{Name: types.SectionBullets},
		CoverLetter: types.SectionText{Name: types.SectionCoverLetter},
		SkillsGaps:  types.SectionText{Name: types.SectionSkillsGaps},
	}

	for idx, mk := range markers {
		end := len(lines)
		if idx+1 < len(markers) {
			end = markers[idx+1].startLine - 1
		}
		text := strings.TrimSpace(strings.Join(lines[mk.startLine:end], "\n"))

		target := sectionFor(sections, mk.section)
		// First occurrence wins when the model repeats a header
		if target.Present {
			continue
		}
		target.Text = text
		target.Present = true
	}

	return sections, nil
}

// classifyHeader normalizes a heading title and resolves it against the
// synonym set. Returns the section name and whether the title is recognized.
func classifyHeader(title string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(title))
	normalized = strings.Trim(normalized, ":*_ ")
	// Collapse internal whitespace so "Tailored  Bullets" still matches
	normalized = strings.Join(strings.Fields(normalized), " ")

	section, ok := headerSynonyms[normalized]
	return section, ok
}

func sectionFor(s *types.Sections, name string) *types.SectionText {
	switch name {
	case types.SectionBullets:
		return &s.Bullets
	case types.SectionCoverLetter:
		return &s.CoverLetter
	default:
		return &s.SkillsGaps
	}
}
