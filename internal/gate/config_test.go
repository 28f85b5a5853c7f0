package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.MinBullets)
	assert.Equal(t, 6, cfg.MaxBullets)
	assert.Equal(t, 250, cfg.MinCoverWords)
	assert.Equal(t, 350, cfg.MaxCoverWords)
	assert.Equal(t, 2, cfg.MinGaps)
	assert.Equal(t, 5, cfg.MaxGaps)
	assert.Equal(t, 1, cfg.RetryBudget)
}

func TestConfigValidate_RejectsInvertedWindows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinCoverWords = 400 // above MaxCoverWords
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.MaxGaps = 1 // below MinGaps
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_FillsNilPredicates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IsActionVerb = nil
	cfg.HasNumeral = nil
	require.NoError(t, cfg.Validate())
	assert.NotNil(t, cfg.IsActionVerb)
	assert.NotNil(t, cfg.HasNumeral)
}
