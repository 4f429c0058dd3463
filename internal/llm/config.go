// Package llm wraps the Gemini API behind a small client interface and
// builds the best-effort section suggester on top of it.
package llm

import "fmt"

// ModelTier selects a model by capability rather than by name.
type ModelTier string

const (
	// TierLite is for short, cheap completions.
	TierLite ModelTier = "lite"
	// TierStandard is the default for section suggestions.
	TierStandard ModelTier = "standard"
	// TierAdvanced trades latency for better rewrites.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to Gemini model names.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the Gemini model table.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.3,
	}
}

// ParseTier converts a configuration string to a ModelTier.
func ParseTier(s string) (ModelTier, error) {
	switch t := ModelTier(s); t {
	case TierLite, TierStandard, TierAdvanced:
		return t, nil
	default:
		return "", fmt.Errorf("unknown model tier %q", s)
	}
}

// GetModel returns the model for tier, falling back to standard and then
// lite. It returns "" when nothing is configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Models:      make(map[ModelTier]string, len(c.Models)+1),
		Temperature: c.Temperature,
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
