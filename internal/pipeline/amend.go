package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-helper/internal/prompts"
	"github.com/jonathan/career-helper/internal/types"
)

// Amend turns the violations of a rejected attempt into a follow-up
// instruction block for the retry prompt. Pure string work: the gate engine
// stays free of prompt-formatting concerns.
func Amend(violations []types.Violation) string {
	if len(violations) == 0 {
		return ""
	}

	var sb strings.Builder
	seen := make(map[string]bool)
	for _, v := range violations {
		line := fmt.Sprintf("- [%s] %s: %s", v.Section, v.Rule, v.Details)
		if seen[line] {
			continue
		}
		seen[line] = true
		sb.WriteString(line + "\n")
	}

	preamble := prompts.MustGet("tailor.json", "repair_preamble")
	return prompts.Format(preamble, map[string]string{
		"Violations": strings.TrimRight(sb.String(), "\n"),
	})
}
