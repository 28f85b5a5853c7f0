package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"role": "Platform Engineer",
		"company": "Acme",
		"posting_url": "https://example.com/job",
		"max_bullets": 5,
		"strict": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Platform Engineer", cfg.Role)
	assert.Equal(t, "Acme", cfg.Company)
	assert.Equal(t, "https://example.com/job", cfg.PostingURL)
	assert.Equal(t, 5, cfg.MaxBullets)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Posting:    "posting.txt",
		PostingURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_BadModelTier(t *testing.T) {
	cfg := &Config{ModelTier: "turbo"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model_tier")
}

func TestValidate_MissingPostingFile(t *testing.T) {
	cfg := &Config{Posting: "/nonexistent/posting.txt"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "posting file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	budget := 3
	cfg := Config{Role: "SRE", Verbose: true}
	defaults := Config{
		Role:        "ignored",
		Company:     "Acme",
		Resume:      "resume.md",
		Workers:     4,
		RetryBudget: &budget,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "SRE", merged.Role, "explicit value wins over default")
	assert.Equal(t, "Acme", merged.Company)
	assert.Equal(t, "resume.md", merged.Resume)
	assert.Equal(t, 4, merged.Workers)
	require.NotNil(t, merged.RetryBudget)
	assert.Equal(t, 3, *merged.RetryBudget)
	assert.True(t, merged.Verbose)
}

func TestGateConfig_AppliesOverrides(t *testing.T) {
	zero := 0
	cfg := &Config{
		MinBullets:  4,
		MaxGaps:     3,
		RetryBudget: &zero,
		Strict:      true,
	}

	gc := cfg.GateConfig()
	assert.Equal(t, 4, gc.MinBullets)
	assert.Equal(t, 3, gc.MaxGaps)
	assert.Equal(t, 0, gc.RetryBudget, "explicit zero retries is honored")
	assert.True(t, gc.Strict)
	assert.Equal(t, 240, gc.MaxBulletChars, "unset fields keep defaults")
}

func TestGateConfig_DefaultsWhenEmpty(t *testing.T) {
	gc := (&Config{}).GateConfig()
	assert.Equal(t, 3, gc.MinBullets)
	assert.Equal(t, 1, gc.RetryBudget)
	assert.False(t, gc.Strict)
	assert.NoError(t, gc.Validate())
}
