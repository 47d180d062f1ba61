package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/engine"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// mockPatternService implements services.PatternService with function fields.
type mockPatternService struct {
	ConvertToRegexFunc func(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error)
	ProcessDataFunc    func(rows []models.Row, patternText, replacement string, targetColumns []string) (*models.ApplicationResult, error)
	TestPatternFunc    func(patternText, sampleText, replacement string) (string, int, error)
}

func (m *mockPatternService) ConvertToRegex(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error) {
	if m.ConvertToRegexFunc != nil {
		return m.ConvertToRegexFunc(ctx, req)
	}
	return &models.MatchPattern{PatternText: `\S+`, Source: models.SourceHeuristic}, nil
}

func (m *mockPatternService) ProcessData(rows []models.Row, patternText, replacement string, targetColumns []string) (*models.ApplicationResult, error) {
	if m.ProcessDataFunc != nil {
		return m.ProcessDataFunc(rows, patternText, replacement, targetColumns)
	}
	return engine.Apply(&models.MatchPattern{PatternText: patternText}, rows, replacement, targetColumns)
}

func (m *mockPatternService) TestPattern(patternText, sampleText, replacement string) (string, int, error) {
	if m.TestPatternFunc != nil {
		return m.TestPatternFunc(patternText, sampleText, replacement)
	}
	return engine.ApplyToText(patternText, sampleText, replacement)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestConvertToRegexHandler(t *testing.T) {
	svc := &mockPatternService{
		ConvertToRegexFunc: func(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error) {
			return &models.MatchPattern{
				PatternText: `[a-z]+@[a-z.]+`,
				Source:      models.SourceLibrary,
			}, nil
		},
	}
	h := NewPatternHandler(svc, zap.NewNop())

	rec := postJSON(t, h.ConvertToRegex, ConvertToRegexRequest{Description: "find all emails"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConvertToRegexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, `[a-z]+@[a-z.]+`, resp.Pattern)
	assert.Equal(t, "find all emails", resp.Description)
	assert.Equal(t, "library", resp.Source)
	assert.False(t, resp.IsLiteral)
}

func TestConvertToRegexHandlerMissingDescription(t *testing.T) {
	svc := &mockPatternService{
		ConvertToRegexFunc: func(ctx context.Context, req *models.PatternRequest) (*models.MatchPattern, error) {
			return nil, apperrors.ErrDescriptionRequired
		},
	}
	h := NewPatternHandler(svc, zap.NewNop())

	rec := postJSON(t, h.ConvertToRegex, ConvertToRegexRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Description is required", resp["error"])
}

func TestConvertToRegexHandlerInvalidJSON(t *testing.T) {
	h := NewPatternHandler(&mockPatternService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.ConvertToRegex(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTestRegexHandler(t *testing.T) {
	h := NewPatternHandler(&mockPatternService{}, zap.NewNop())

	rec := postJSON(t, h.TestRegex, TestRegexRequest{
		Pattern:     `\d{3}-\d{4}`,
		Replacement: "[PHONE]",
		SampleText:  "call 555-1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TestRegexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "call 555-1234", resp.Original)
	assert.Equal(t, "call [PHONE]", resp.Result)
	assert.Equal(t, 1, resp.MatchesCount)
}

func TestTestRegexHandlerMissingFields(t *testing.T) {
	h := NewPatternHandler(&mockPatternService{}, zap.NewNop())

	for _, req := range []TestRegexRequest{
		{SampleText: "text"},
		{Pattern: `\d+`},
		{},
	} {
		rec := postJSON(t, h.TestRegex, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Pattern and sample_text are required", resp["error"])
	}
}

func TestTestRegexHandlerInvalidPattern(t *testing.T) {
	h := NewPatternHandler(&mockPatternService{}, zap.NewNop())

	rec := postJSON(t, h.TestRegex, TestRegexRequest{
		Pattern:    "[unclosed",
		SampleText: "text",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
