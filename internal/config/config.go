// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-helper/internal/gate"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Posting    string `json:"posting,omitempty"`     // Path to job posting text file
	PostingURL string `json:"posting_url,omitempty"` // URL to fetch job posting from
	Resume     string `json:"resume,omitempty"`      // Path to resume text/markdown file
	OutputDir  string `json:"output_dir,omitempty"`  // Base outputs directory

	// Target
	Role    string `json:"role,omitempty"`    // Role title being applied for
	Company string `json:"company,omitempty"` // Company name

	// Behavior
	APIKey          string `json:"api_key,omitempty"`           // Gemini API key
	ModelTier       string `json:"model_tier,omitempty"`        // lite, standard, or advanced
	UseBrowser      bool   `json:"use_browser,omitempty"`       // Use headless browser for SPA sites
	Verbose         bool   `json:"verbose,omitempty"`           // Print detailed debug information
	Workers         int    `json:"workers,omitempty"`           // Batch worker pool size
	PostingMaxChars int    `json:"posting_max_chars,omitempty"` // Soft trim budget for posting text

	// Quality gate overrides. Zero means "use the built-in default".
	MinBullets     int  `json:"min_bullets,omitempty"`
	MaxBullets     int  `json:"max_bullets,omitempty"`
	MaxBulletChars int  `json:"max_bullet_chars,omitempty"`
	MinQuantified  int  `json:"min_quantified,omitempty"`
	MinCoverWords  int  `json:"min_cover_words,omitempty"`
	MaxCoverWords  int  `json:"max_cover_words,omitempty"`
	MinParagraphs  int  `json:"min_paragraphs,omitempty"`
	MinGaps        int  `json:"min_gaps,omitempty"`
	MaxGaps        int  `json:"max_gaps,omitempty"`
	MaxStepsPerGap int  `json:"max_steps_per_gap,omitempty"`
	RetryBudget    *int `json:"retry_budget,omitempty"` // pointer: zero retries is a valid setting
	Strict         bool `json:"strict,omitempty"`       // Reject runs that only passed with warnings
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Posting != "" && c.PostingURL != "" {
		return fmt.Errorf("config error: 'posting' and 'posting_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.RetryBudget != nil && *c.RetryBudget < 0 {
		return fmt.Errorf("config error: 'retry_budget' must be non-negative")
	}
	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: 'model_tier' must be lite, standard, or advanced")
	}

	// Validate file paths exist (if specified)
	if c.Posting != "" {
		if _, err := os.Stat(c.Posting); os.IsNotExist(err) {
			return fmt.Errorf("config error: posting file not found: %s", c.Posting)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Posting == "" {
		result.Posting = defaults.Posting
	}
	if result.PostingURL == "" {
		result.PostingURL = defaults.PostingURL
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.PostingMaxChars == 0 {
		result.PostingMaxChars = defaults.PostingMaxChars
	}
	if result.RetryBudget == nil {
		result.RetryBudget = defaults.RetryBudget
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// GateConfig converts the gate overrides into an engine config, starting from
// the built-in defaults and applying only the fields that were set.
func (c *Config) GateConfig() *gate.Config {
	gc := gate.DefaultConfig()
	if c.MinBullets > 0 {
		gc.MinBullets = c.MinBullets
	}
	if c.MaxBullets > 0 {
		gc.MaxBullets = c.MaxBullets
	}
	if c.MaxBulletChars > 0 {
		gc.MaxBulletChars = c.MaxBulletChars
	}
	if c.MinQuantified > 0 {
		gc.MinQuantified = c.MinQuantified
	}
	if c.MinCoverWords > 0 {
		gc.MinCoverWords = c.MinCoverWords
	}
	if c.MaxCoverWords > 0 {
		gc.MaxCoverWords = c.MaxCoverWords
	}
	if c.MinParagraphs > 0 {
		gc.MinParagraphs = c.MinParagraphs
	}
	if c.MinGaps > 0 {
		gc.MinGaps = c.MinGaps
	}
	if c.MaxGaps > 0 {
		gc.MaxGaps = c.MaxGaps
	}
	if c.MaxStepsPerGap > 0 {
		gc.MaxStepsPerGap = c.MaxStepsPerGap
	}
	if c.RetryBudget != nil {
		gc.RetryBudget = *c.RetryBudget
	}
	gc.Strict = c.Strict
	return gc
}
