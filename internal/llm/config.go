// Package llm wraps the generative model provider used for scan enrichment.
package llm

// ModelTier selects model capability for a task.
type ModelTier string

const (
	// TierFast is for cheap structured tasks: enrichment verdicts, extraction.
	TierFast ModelTier = "fast"
	// TierDeep is for heavier free-text analysis.
	TierDeep ModelTier = "deep"
)

// Config maps tiers to concrete model names.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierFast: "gemini-2.5-flash-lite",
			TierDeep: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the fast tier.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierFast]
}
