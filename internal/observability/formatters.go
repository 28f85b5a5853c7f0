// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-helper/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOutcome outputs the per-section verdicts and counts for a finished
// gate evaluation.
func (p *Printer) PrintOutcome(outcome *types.RunOutcome) {
	if outcome == nil {
		return
	}

	var sb strings.Builder

	verdict := "REJECTED"
	if outcome.Accept {
		verdict = "ACCEPTED"
		if outcome.WithWarnings {
			verdict = "ACCEPTED (with warnings)"
		}
	}
	sb.WriteString(fmt.Sprintf("Verdict:  %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Retries:  %d\n", outcome.RetriesUsed))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("%s %-13s %d bullets\n",
		passMark(outcome.Bullets.Pass), "bullets:", outcome.Bullets.BulletCount))
	sb.WriteString(fmt.Sprintf("%s %-13s %d words\n",
		passMark(outcome.CoverLetter.Pass), "cover letter:", outcome.CoverLetter.WordCount))
	sb.WriteString(fmt.Sprintf("%s %-13s %d gaps",
		passMark(outcome.SkillsGaps.Pass), "skills gaps:", outcome.SkillsGaps.GapCount))

	p.printBox("QUALITY GATE RESULT", sb.String())
}

func passMark(pass bool) string {
	if pass {
		return "✓"
	}
	return "✗"
}

// PrintViolations outputs any quality-gate violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	count := min(len(violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := violations[i]
		details := v.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ [%s] %s\n", v.Section, v.Rule))
		sb.WriteString(fmt.Sprintf("  %s\n", details))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(violations)-maxItemsToShow))
	}

	p.printBox("QUALITY GATE VIOLATIONS", sb.String())
}

// PrintBatchSummary outputs accepted/rejected/failed totals after a batch run.
func (p *Printer) PrintBatchSummary(total, accepted, rejected, failed int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs:      %d\n", total))
	sb.WriteString(fmt.Sprintf("Accepted:  %d\n", accepted))
	sb.WriteString(fmt.Sprintf("Rejected:  %d\n", rejected))
	sb.WriteString(fmt.Sprintf("Failed:    %d", failed))

	p.printBox("BATCH SUMMARY", sb.String())
}
