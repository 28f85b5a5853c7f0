// Package ingestion loads the tailoring inputs: the candidate's resume from
// disk and the job posting from disk or the web.
package ingestion

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jonathan/career-helper/internal/fetch"
)

// TrimMarker is appended when a posting is soft-trimmed to the char budget.
const TrimMarker = "\n...[trimmed]..."

// ReadTextFile reads a UTF-8 text/markdown file (resume or posting).
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// PostingFromFile loads a posting from a plain text file.
func PostingFromFile(path string) (string, error) {
	return ReadTextFile(path)
}

// PostingFromURL fetches a posting page and reduces it to plain text. When
// useBrowser is set and the static HTML yields too little text, the page is
// re-rendered in a headless browser before extraction.
func PostingFromURL(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	html, err := fetch.HTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := fetch.ExtractPostingText(html)
	if err != nil {
		return "", err
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[VERBOSE] Extracted only %d chars, retrying with browser rendering...", len(text))
		}
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr, verbose)
		if browserErr != nil {
			// Keep the HTTP content when the browser is unavailable
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v", browserErr)
			}
			return text, nil
		}
		if rendered, extractErr := fetch.ExtractPostingText(browserHTML); extractErr == nil {
			text = rendered
		}
	}

	return text, nil
}

// SoftTrim limits long posting text to a character budget, preferring to cut
// at the last newline before the limit so no line is split mid-sentence.
// Trimmed text gets an explicit marker so prompt readers can tell.
func SoftTrim(text string, maxChars int) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxChars {
		return text
	}

	cut := strings.LastIndex(text[:maxChars], "\n")
	if cut == -1 {
		cut = maxChars
	}
	return strings.TrimRight(text[:cut], " \t\n") + TrimMarker
}
