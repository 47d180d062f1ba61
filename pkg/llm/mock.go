package llm

import (
	"context"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// MockPatternGenerator is a configurable mock for testing synthesis.
// Set GeneratePatternFunc to control behavior in tests.
type MockPatternGenerator struct {
	// GeneratePatternFunc is called when GeneratePattern is invoked.
	// If nil, returns empty string and nil error.
	GeneratePatternFunc func(ctx context.Context, req *models.PatternRequest) (string, error)

	// GeneratePatternCalls counts invocations for verification.
	GeneratePatternCalls int
}

// GeneratePattern implements PatternGenerator.
func (m *MockPatternGenerator) GeneratePattern(ctx context.Context, req *models.PatternRequest) (string, error) {
	m.GeneratePatternCalls++
	if m.GeneratePatternFunc != nil {
		return m.GeneratePatternFunc(ctx, req)
	}
	return "", nil
}

// Ensure MockPatternGenerator implements PatternGenerator at compile time.
var _ PatternGenerator = (*MockPatternGenerator)(nil)
