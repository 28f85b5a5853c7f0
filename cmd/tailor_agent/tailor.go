package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-helper/internal/config"
	"github.com/jonathan/career-helper/internal/llm"
	"github.com/jonathan/career-helper/internal/observability"
	"github.com/jonathan/career-helper/internal/pipeline"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Tailor one application to a job posting",
	Long: `Generates tailored resume bullets, a cover letter, and a skills-gap plan for a single job posting, then runs the output through the quality gate. Artifacts are only written when the gate accepts.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	tailorConfigPath  string
	tailorRole        string
	tailorCompany     string
	tailorPosting     string
	tailorPostingURL  string
	tailorResume      string
	tailorOutputDir   string
	tailorAPIKey      string
	tailorModelTier   string
	tailorUseBrowser  bool
	tailorVerbose     bool
	tailorStrict      bool
	tailorRetryBudget int
	tailorMaxChars    int
)

func init() {
	// Config file flag (processed first)
	tailorCmd.Flags().StringVar(&tailorConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	tailorCmd.Flags().StringVarP(&tailorRole, "role", "r", "", "Role title being applied for")
	tailorCmd.Flags().StringVarP(&tailorCompany, "company", "c", "", "Company name")
	tailorCmd.Flags().StringVarP(&tailorPosting, "posting", "p", "", "Path to job posting text file (mutually exclusive with --posting-url)")
	tailorCmd.Flags().StringVar(&tailorPostingURL, "posting-url", "", "URL to fetch job posting from (mutually exclusive with --posting)")
	tailorCmd.Flags().StringVar(&tailorResume, "resume", "", "Path to resume text/markdown file")
	tailorCmd.Flags().StringVarP(&tailorOutputDir, "output-dir", "o", "", "Base outputs directory (default \"outputs\")")
	tailorCmd.Flags().StringVar(&tailorModelTier, "model-tier", "", "Model tier: lite, standard, or advanced")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed debug information")
	tailorCmd.Flags().BoolVar(&tailorStrict, "strict", false, "Reject runs that only passed with warnings")
	tailorCmd.Flags().IntVar(&tailorRetryBudget, "retry-budget", -1, "Number of repair retries after a rejected attempt")
	tailorCmd.Flags().IntVar(&tailorMaxChars, "posting-max-chars", 0, "Soft trim budget for posting text")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(tailorCmd)
}

func runTailorCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, tailorConfigPath)
	if err != nil {
		return err
	}

	// Validate required fields
	if cfg.Role == "" || cfg.Company == "" {
		return fmt.Errorf("--role and --company are required (via flag or config)")
	}
	if cfg.Posting == "" && cfg.PostingURL == "" {
		return fmt.Errorf("either --posting or --posting-url must be provided (via flag or config)")
	}
	if cfg.Posting != "" && cfg.PostingURL != "" {
		return fmt.Errorf("--posting and --posting-url are mutually exclusive; provide only one")
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := pipeline.Run(ctx, client, pipeline.Options{
		Role:            cfg.Role,
		Company:         cfg.Company,
		PostingPath:     cfg.Posting,
		PostingURL:      cfg.PostingURL,
		ResumePath:      cfg.Resume,
		PostingMaxChars: cfg.PostingMaxChars,
		UseBrowser:      cfg.UseBrowser,
		Verbose:         cfg.Verbose,
		OutputBase:      cfg.OutputDir,
		Tier:            llm.ModelTier(cfg.ModelTier),
		Gate:            cfg.GateConfig(),
	})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintOutcome(result.Outcome)
		printer.PrintViolations(result.Outcome.AllViolations())
	}

	if result.OutDir == "" {
		rules := ruleList(result)
		return fmt.Errorf("output rejected by quality gate after %d retries: %s",
			result.Outcome.RetriesUsed, strings.Join(rules, ", "))
	}

	fmt.Printf("Artifacts written to %s\n", result.OutDir)
	return nil
}

// loadMergedConfig loads an optional config file and layers explicitly-set
// tailor flags on top.
func loadMergedConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("role") {
		cfg.Role = tailorRole
	}
	if cmd.Flags().Changed("company") {
		cfg.Company = tailorCompany
	}
	if cmd.Flags().Changed("posting") {
		cfg.Posting = tailorPosting
	}
	if cmd.Flags().Changed("posting-url") {
		cfg.PostingURL = tailorPostingURL
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = tailorResume
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = tailorOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = tailorAPIKey
	}
	if cmd.Flags().Changed("model-tier") {
		cfg.ModelTier = tailorModelTier
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = tailorUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = tailorVerbose
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = tailorStrict
	}
	if cmd.Flags().Changed("retry-budget") && tailorRetryBudget >= 0 {
		budget := tailorRetryBudget
		cfg.RetryBudget = &budget
	}
	if cmd.Flags().Changed("posting-max-chars") {
		cfg.PostingMaxChars = tailorMaxChars
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newClient resolves the API key and builds the Gemini client.
func newClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	return llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
}

func ruleList(result *pipeline.Result) []string {
	seen := make(map[string]bool)
	var rules []string
	for _, v := range result.Outcome.AllViolations() {
		if !seen[v.Rule] {
			seen[v.Rule] = true
			rules = append(rules, v.Rule)
		}
	}
	return rules
}
