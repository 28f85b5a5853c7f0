package batch

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-helper/internal/gate"
	"github.com/jonathan/career-helper/internal/llm"
	"github.com/jonathan/career-helper/internal/pipeline"
)

// DefaultWorkers is the default concurrency for batch runs. Generator rate
// limits make a small pool the right default.
const DefaultWorkers = 2

// Options configures a batch run. Per-job pipeline options are derived from
// these shared settings plus each manifest row.
type Options struct {
	Workers         int
	ContinueOnError bool
	DryRun          bool

	PostingMaxChars int
	UseBrowser      bool
	Verbose         bool
	OutputBase      string
	Tier            llm.ModelTier
	Gate            *gate.Config
}

// JobResult pairs a manifest row with what running it produced. Exactly one
// of Result / Err is set, except for rejected runs where Result is set and
// Result.Outcome.Accept is false.
type JobResult struct {
	Job    Job
	Result *pipeline.Result
	Err    error
}

// Summary aggregates a finished batch.
type Summary struct {
	Total    int
	Accepted int
	Rejected int
	Failed   int
	Results  []JobResult
}

// Run executes every job with a bounded worker pool. With ContinueOnError a
// failing job is recorded and the rest proceed; otherwise the first failure
// cancels the remaining jobs. Rejected runs are never treated as failures.
func Run(ctx context.Context, client llm.Client, jobs []Job, opts Options) (*Summary, error) {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	if opts.DryRun {
		for i, job := range jobs {
			log.Printf("[DRY RUN] job %d: %s at %s (posting: %s, resume: %s)",
				i+1, job.Role, job.Company, job.Posting, job.Resume)
		}
		return &Summary{Total: len(jobs)}, nil
	}

	results := make([]JobResult, len(jobs))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.Workers)

	for i, job := range jobs {
		group.Go(func() error {
			result, err := runJob(groupCtx, client, job, opts)

			mu.Lock()
			results[i] = JobResult{Job: job, Result: result, Err: err}
			mu.Unlock()

			if err != nil {
				if opts.ContinueOnError {
					log.Printf("[ERROR] job %s at %s failed: %v", job.Role, job.Company, err)
					return nil
				}
				return fmt.Errorf("job %s at %s: %w", job.Role, job.Company, err)
			}
			return nil
		})
	}

	err := group.Wait()

	summary := &Summary{Total: len(jobs), Results: results}
	for _, jr := range results {
		switch {
		case jr.Err != nil:
			summary.Failed++
		case jr.Result == nil:
			// Cancelled before it ran
		case jr.Result.OutDir != "":
			summary.Accepted++
		default:
			summary.Rejected++
		}
	}
	return summary, err
}

func runJob(ctx context.Context, client llm.Client, job Job, opts Options) (*pipeline.Result, error) {
	runOpts := pipeline.Options{
		Role:            job.Role,
		Company:         job.Company,
		ResumePath:      job.Resume,
		PostingMaxChars: opts.PostingMaxChars,
		UseBrowser:      opts.UseBrowser,
		Verbose:         opts.Verbose,
		OutputBase:      opts.OutputBase,
		Tier:            opts.Tier,
		Gate:            opts.Gate,
	}
	if job.IsURL() {
		runOpts.PostingURL = job.Posting
	} else {
		runOpts.PostingPath = job.Posting
	}
	return pipeline.Run(ctx, client, runOpts)
}
