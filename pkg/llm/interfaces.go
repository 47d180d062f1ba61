// Package llm provides the external AI boundary for pattern synthesis.
package llm

import (
	"context"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// PatternGenerator converts a natural-language description into a regular
// expression using an external model. Implementations must respect the
// context deadline; callers treat any error or shape violation as
// "unavailable" and fall back to the local library.
// Use this interface for dependency injection to enable mocking in tests.
type PatternGenerator interface {
	GeneratePattern(ctx context.Context, req *models.PatternRequest) (string, error)
}

// Ensure the concrete clients implement PatternGenerator at compile time.
var (
	_ PatternGenerator = (*Client)(nil)
	_ PatternGenerator = (*AnthropicClient)(nil)
)
