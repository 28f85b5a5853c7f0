// Package llm provides the text-generation client used to produce tailored
// application drafts. The gate engine never calls it; the orchestrator feeds
// its raw completions into the post-processor.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for cheap utility calls (posting cleanup, summaries)
	TierLite ModelTier = "lite"
	// TierStandard is the default tier for tailoring runs
	TierStandard ModelTier = "standard"
	// TierAdvanced is for retries, where a stronger model is worth the cost
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini configuration. Temperature is
// kept low so section headers and list formatting stay predictable.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.3,
	}
}

// GetModel returns the model name for a given tier, falling back through
// standard and lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
