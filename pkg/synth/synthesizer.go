// Package synth turns classified intents into executable match patterns.
package synth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/intent"
	"github.com/rhombus-ai/pattern-engine/pkg/llm"
	"github.com/rhombus-ai/pattern-engine/pkg/logging"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/patterns"
)

const (
	breakerThreshold = 3
	breakerCooldown  = 30 * time.Second
)

// Synthesizer produces a match pattern for every non-empty description,
// with or without the external generator. It holds no per-request state and
// is safe for concurrent use.
type Synthesizer struct {
	library   *patterns.Library
	generator llm.PatternGenerator // nil disables the external call
	breaker   *llm.Breaker
	timeout   time.Duration
	logger    *zap.Logger
}

// New creates a synthesizer. Pass a nil generator to run with local
// heuristics and the synonym library only.
func New(library *patterns.Library, generator llm.PatternGenerator, timeout time.Duration, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{
		library:   library,
		generator: generator,
		breaker:   llm.NewBreaker(breakerThreshold, breakerCooldown),
		timeout:   timeout,
		logger:    logger.Named("synth"),
	}
}

// Synthesize runs the full protocol: classify, resolve literals locally,
// otherwise try the external generator and fall back to the library. The
// only error is ErrDescriptionRequired for an empty description.
func (s *Synthesizer) Synthesize(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, apperrors.ErrDescriptionRequired
	}

	ci := intent.Classify(description, s.library)
	if ci.Kind == models.IntentLiteral {
		// Literal requests resolve immediately; no external call is made.
		return &models.MatchPattern{
			PatternText: regexp.QuoteMeta(ci.LiteralValue),
			IsLiteral:   true,
			Source:      models.SourceHeuristic,
		}, nil
	}

	if mp := s.tryExternal(ctx, req); mp != nil {
		return s.checkAgainstSamples(mp, req), nil
	}

	if pattern, ok := s.library.Lookup(ci.CategoryHint); ok {
		mp := &models.MatchPattern{PatternText: pattern, Source: models.SourceLibrary}
		return s.checkAgainstSamples(mp, req), nil
	}

	s.logger.Debug("no library pattern for hint, using generic fallback",
		zap.String("hint", ci.CategoryHint),
		zap.String("description", logging.Truncate(description)))
	mp := &models.MatchPattern{PatternText: patterns.GenericFallback, Source: models.SourceHeuristic}
	return s.checkAgainstSamples(mp, req), nil
}

// tryExternal asks the external generator for a pattern. Any failure,
// timeout, or invalid output degrades silently to nil; synthesis then
// proceeds on the local path. No retries happen within a request.
func (s *Synthesizer) tryExternal(ctx context.Context, req *models.PatternRequest) *models.MatchPattern {
	if s.generator == nil {
		return nil
	}
	if !s.breaker.Allow() {
		s.logger.Debug("external generator circuit open, using local fallback",
			zap.Int("consecutive_failures", s.breaker.Failures()))
		return nil
	}

	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.generator.GeneratePattern(cctx, req)
	if err != nil {
		s.breaker.RecordFailure()
		s.logger.Debug("external pattern generation degraded to local fallback",
			zap.String("error", logging.SanitizeError(err)))
		return nil
	}

	pattern := llm.CleanResponse(raw)
	if pattern == "" {
		s.breaker.RecordFailure()
		return nil
	}
	if _, err := regexp.Compile(pattern); err != nil {
		// The service answered, just badly; not a provider outage.
		s.breaker.RecordSuccess()
		s.logger.Debug("external generator returned invalid pattern",
			zap.String("pattern", logging.Truncate(pattern)))
		return nil
	}

	s.breaker.RecordSuccess()
	return &models.MatchPattern{PatternText: pattern, Source: models.SourceExternal}
}

// checkAgainstSamples validates a category pattern against supplied sample
// values. When the chosen pattern matches none of them but some library
// pattern matches at least one, the best library pattern is preferred.
// Best-effort and non-fatal.
func (s *Synthesizer) checkAgainstSamples(mp *models.MatchPattern, req *models.PatternRequest) *models.MatchPattern {
	if len(req.ColumnData) == 0 || mp.IsLiteral {
		return mp
	}
	re, err := regexp.Compile(mp.PatternText)
	if err != nil {
		return mp
	}
	if countSampleMatches(re, req.ColumnData) > 0 {
		return mp
	}

	bestCategory := ""
	bestCount := 0
	for _, category := range s.library.Categories() {
		if category == patterns.CategoryWord {
			// Quasi-generic; matching it says nothing about the data.
			continue
		}
		pattern, _ := s.library.Lookup(category)
		cre, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}
		if n := countSampleMatches(cre, req.ColumnData); n > bestCount {
			bestCount = n
			bestCategory = category
		}
	}
	if bestCount == 0 {
		return mp
	}

	pattern, _ := s.library.Lookup(bestCategory)
	s.logger.Debug("pattern matched no samples, preferring library alternative",
		zap.String("category", bestCategory),
		zap.Int("sample_matches", bestCount),
		zap.Strings("samples", logging.SampleValues(req.ColumnData)))
	return &models.MatchPattern{PatternText: pattern, Source: models.SourceLibrary}
}

func countSampleMatches(re *regexp.Regexp, samples []string) int {
	n := 0
	for _, sample := range samples {
		if re.MatchString(sample) {
			n++
		}
	}
	return n
}
