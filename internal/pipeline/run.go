// Package pipeline orchestrates one tailoring run end-to-end: load inputs,
// render prompts, call the generator, gate the output, retry with a repair
// amendment if needed, and persist accepted artifacts.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/career-helper/internal/artifacts"
	"github.com/jonathan/career-helper/internal/gate"
	"github.com/jonathan/career-helper/internal/ingestion"
	"github.com/jonathan/career-helper/internal/llm"
	"github.com/jonathan/career-helper/internal/prompts"
	"github.com/jonathan/career-helper/internal/types"
)

// DefaultPostingMaxChars is the soft trim budget for posting text.
const DefaultPostingMaxChars = 4500

// Options holds configuration for one tailoring run.
type Options struct {
	Role    string
	Company string

	// Posting source: exactly one of PostingPath / PostingURL
	PostingPath string
	PostingURL  string
	ResumePath  string

	PostingMaxChars int
	UseBrowser      bool
	Verbose         bool

	OutputBase string // base outputs directory, default "outputs"
	Tier       llm.ModelTier
	Gate       *gate.Config
}

// Result is what one run produced. OutDir is empty when the run was
// rejected and nothing was written.
type Result struct {
	Outcome *types.RunOutcome
	Meta    *artifacts.Metadata
	OutDir  string
}

func (o *Options) validate() error {
	if o.Role == "" || o.Company == "" {
		return fmt.Errorf("role and company are required")
	}
	if o.ResumePath == "" {
		return fmt.Errorf("resume path is required")
	}
	if (o.PostingPath == "") == (o.PostingURL == "") {
		return fmt.Errorf("exactly one of posting path or posting URL is required")
	}
	return nil
}

// Run executes one tailoring request against the generator. Generator and
// writer errors propagate unchanged; a rejected run is not an error, it is a
// Result whose Outcome.Accept is false and whose OutDir is empty.
func Run(ctx context.Context, client llm.Client, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.PostingMaxChars == 0 {
		opts.PostingMaxChars = DefaultPostingMaxChars
	}
	if opts.OutputBase == "" {
		opts.OutputBase = "outputs"
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierStandard
	}

	engine, err := gate.New(opts.Gate)
	if err != nil {
		return nil, err
	}
	cfg := engine.Config()

	// Load inputs
	resume, err := ingestion.ReadTextFile(opts.ResumePath)
	if err != nil {
		return nil, err
	}

	var posting string
	if opts.PostingURL != "" {
		posting, err = ingestion.PostingFromURL(ctx, opts.PostingURL, opts.UseBrowser, opts.Verbose)
	} else {
		posting, err = ingestion.PostingFromFile(opts.PostingPath)
	}
	if err != nil {
		return nil, err
	}
	posting = ingestion.SoftTrim(posting, opts.PostingMaxChars)

	// Render prompts
	systemPrompt, err := prompts.Get("tailor.json", "tailor_system")
	if err != nil {
		return nil, err
	}
	userPrompt, err := prompts.Render(prompts.MustGet("tailor.json", "tailor_user"), map[string]string{
		"Role":    opts.Role,
		"Company": opts.Company,
		"Posting": posting,
		"Resume":  resume,
	})
	if err != nil {
		return nil, err
	}

	writer := artifacts.NewWriter(opts.OutputBase)

	// Generate-and-gate loop, bounded by the retry budget. Every retry
	// re-evaluates the fresh completion from scratch; prior sections are
	// never reused.
	var (
		outcome    *types.RunOutcome
		completion *llm.Completion
		amendment  string
	)
	for attempt := 0; attempt <= cfg.RetryBudget; attempt++ {
		prompt := userPrompt
		if amendment != "" {
			prompt = userPrompt + "\n\n" + amendment
		}

		completion, err = client.Complete(ctx, systemPrompt, prompt, opts.Tier)
		if err != nil {
			return nil, err
		}

		if rawErr := writer.WriteRaw(completion.Text); rawErr != nil && opts.Verbose {
			log.Printf("[VERBOSE] failed to save raw completion: %v", rawErr)
		}

		outcome, err = engine.Evaluate(completion.Text)
		if err != nil {
			// Empty or headerless completion. Retry if budget remains;
			// otherwise surface the hard error.
			if attempt < cfg.RetryBudget {
				if opts.Verbose {
					log.Printf("[VERBOSE] attempt %d unusable: %v, retrying...", attempt+1, err)
				}
				amendment = ""
				continue
			}
			return nil, err
		}
		outcome.RetriesUsed = attempt

		if outcome.Accept {
			break
		}
		if attempt < cfg.RetryBudget {
			amendment = Amend(outcome.AllViolations())
			if opts.Verbose {
				log.Printf("[VERBOSE] attempt %d rejected (%v), retrying with repair instructions...",
					attempt+1, ruleSummary(outcome))
			}
		}
	}

	// Strict mode additionally rejects runs that only passed with warnings.
	accepted := outcome.Accept && !(cfg.Strict && outcome.WithWarnings)

	result := &Result{Outcome: outcome}
	if !accepted {
		return result, nil
	}

	meta := artifacts.NewMetadata(outcome, opts.Role, opts.Company, completion,
		artifacts.HashInputs(systemPrompt, userPrompt, resume, posting))
	outDir := writer.OutputDir(opts.Company, opts.Role)
	if err := writer.Write(outDir, outcome, meta); err != nil {
		return nil, err
	}

	result.Meta = meta
	result.OutDir = outDir
	return result, nil
}

func ruleSummary(outcome *types.RunOutcome) []string {
	var rules []string
	for _, result := range outcome.Results() {
		rules = append(rules, result.Rules()...)
	}
	return rules
}
