package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/patterns"
	"github.com/rhombus-ai/pattern-engine/pkg/synth"
)

func newPatternService() PatternService {
	synthesizer := synth.New(patterns.NewLibrary(), nil, time.Second, zap.NewNop())
	return NewPatternService(synthesizer, zap.NewNop())
}

func TestConvertToRegex(t *testing.T) {
	svc := newPatternService()

	mp, err := svc.ConvertToRegex(context.Background(), &models.PatternRequest{
		Description: "find all email addresses",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SourceLibrary, mp.Source)
	assert.NotEmpty(t, mp.PatternText)
}

func TestConvertToRegexEmptyDescription(t *testing.T) {
	svc := newPatternService()

	_, err := svc.ConvertToRegex(context.Background(), &models.PatternRequest{})
	assert.ErrorIs(t, err, apperrors.ErrDescriptionRequired)
}

func TestProcessData(t *testing.T) {
	svc := newPatternService()
	rows := []models.Row{
		{"email": "john@test.com"},
		{"email": "nope"},
	}

	result, err := svc.ProcessData(rows, `[a-z]+@[a-z.]+\.[a-z]{2,}`, "[REDACTED]", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MatchesCount)
	assert.Equal(t, "[REDACTED]", result.ProcessedData[0]["email"])
}

func TestProcessDataInvalidPattern(t *testing.T) {
	svc := newPatternService()

	_, err := svc.ProcessData(nil, "[unclosed", "", nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPattern)
}

func TestTestPattern(t *testing.T) {
	svc := newPatternService()

	got, matches, err := svc.TestPattern(`\d+`, "order 42 shipped", "N")
	require.NoError(t, err)
	assert.Equal(t, "order N shipped", got)
	assert.Equal(t, 1, matches)
}
