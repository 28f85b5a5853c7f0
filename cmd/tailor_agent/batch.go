package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-helper/internal/batch"
	"github.com/jonathan/career-helper/internal/config"
	"github.com/jonathan/career-helper/internal/llm"
	"github.com/jonathan/career-helper/internal/observability"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Tailor many applications from a CSV manifest",
	Long: `Runs one tailoring job per row of a CSV manifest with the header role,company,posting,resume. Jobs run concurrently with a bounded worker pool; each job gets its own output directory.

The posting column accepts a local file path or an http(s) URL.`,
	RunE: runBatchCmd,
}

var (
	batchConfigPath      string
	batchFile            string
	batchWorkers         int
	batchContinueOnError bool
	batchDryRun          bool
	batchOutputDir       string
	batchAPIKey          string
	batchModelTier       string
	batchUseBrowser      bool
	batchVerbose         bool
	batchStrict          bool
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to CSV manifest (required)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Worker pool size (default 2)")
	batchCmd.Flags().BoolVar(&batchContinueOnError, "continue-on-error", false, "Record failing jobs and keep going instead of aborting")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "List the jobs without calling the model")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Base outputs directory (default \"outputs\")")
	batchCmd.Flags().StringVar(&batchModelTier, "model-tier", "", "Model tier: lite, standard, or advanced")
	batchCmd.Flags().BoolVar(&batchUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed debug information")
	batchCmd.Flags().BoolVar(&batchStrict, "strict", false, "Reject runs that only passed with warnings")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	if err := batchCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if batchConfigPath != "" {
		loaded, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = batchOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = batchModelTier
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = batchUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = batchStrict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	jobs, err := batch.LoadJobs(batchFile)
	if err != nil {
		return err
	}
	if err := batch.ValidatePaths(jobs); err != nil {
		return err
	}

	opts := batch.Options{
		Workers:         cfg.Workers,
		ContinueOnError: batchContinueOnError,
		DryRun:          batchDryRun,
		PostingMaxChars: cfg.PostingMaxChars,
		UseBrowser:      cfg.UseBrowser,
		Verbose:         cfg.Verbose,
		OutputBase:      cfg.OutputDir,
		Tier:            llm.ModelTier(cfg.ModelTier),
		Gate:            cfg.GateConfig(),
	}

	var client llm.Client
	if !batchDryRun {
		client, err = newClient(ctx, cfg)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	summary, runErr := batch.Run(ctx, client, jobs, opts)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchSummary(summary.Total, summary.Accepted, summary.Rejected, summary.Failed)

	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", summary.Failed, summary.Total)
	}
	return nil
}
