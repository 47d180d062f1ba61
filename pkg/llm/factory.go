package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// NewPatternGenerator builds the configured external generator. Returns
// (nil, nil) when no provider is configured; the synthesizer treats a nil
// generator as "external service disabled" and uses local fallbacks only.
func NewPatternGenerator(cfg *Config, logger *zap.Logger) (PatternGenerator, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewClient(cfg, logger)
	case "anthropic":
		return NewAnthropicClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q (expected openai or anthropic)", cfg.Provider)
	}
}
