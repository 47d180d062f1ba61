// Package services wires the engine packages behind small interfaces so
// handlers can be tested against mocks.
package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/engine"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/synth"
)

// PatternService synthesizes match patterns and applies them to data.
type PatternService interface {
	// ConvertToRegex turns a free-text description into a match pattern.
	ConvertToRegex(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error)

	// ProcessData applies a pattern to row data, replacing matches and
	// reporting effect metrics. An empty targetColumns scans every
	// textual column.
	ProcessData(rows []models.Row, patternText, replacement string, targetColumns []string) (*models.ApplicationResult, error)

	// TestPattern applies a pattern to a single sample text, returning
	// the rewritten text and match count.
	TestPattern(patternText, sampleText, replacement string) (string, int, error)
}

type patternService struct {
	synthesizer *synth.Synthesizer
	logger      *zap.Logger
}

// NewPatternService creates the production PatternService.
func NewPatternService(synthesizer *synth.Synthesizer, logger *zap.Logger) PatternService {
	return &patternService{
		synthesizer: synthesizer,
		logger:      logger.Named("patterns"),
	}
}

func (s *patternService) ConvertToRegex(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error) {
	mp, err := s.synthesizer.Synthesize(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("pattern synthesized",
		zap.String("source", string(mp.Source)),
		zap.Bool("is_literal", mp.IsLiteral))
	return mp, nil
}

func (s *patternService) ProcessData(rows []models.Row, patternText, replacement string, targetColumns []string) (*models.ApplicationResult, error) {
	result, err := engine.Apply(&models.MatchPattern{PatternText: patternText}, rows, replacement, targetColumns)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("pattern applied",
		zap.Int("matches", result.MatchesCount),
		zap.Int("affected_rows", result.AffectedRows),
		zap.Int("total_rows", result.TotalRows))
	return result, nil
}

func (s *patternService) TestPattern(patternText, sampleText, replacement string) (string, int, error) {
	return engine.ApplyToText(patternText, sampleText, replacement)
}
