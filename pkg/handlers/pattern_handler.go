package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/logging"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/services"
)

// ============================================================================
// Request/Response Types
// ============================================================================

// ConvertToRegexRequest for POST /api/convert-to-regex
type ConvertToRegexRequest struct {
	Description string   `json:"description"`
	Context     string   `json:"context,omitempty"`
	ColumnData  []string `json:"column_data,omitempty"`
}

// ConvertToRegexResponse echoes the description alongside the pattern.
type ConvertToRegexResponse struct {
	Success     bool   `json:"success"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
	Source      string `json:"source"`
	IsLiteral   bool   `json:"is_literal"`
}

// TestRegexRequest for POST /api/test-regex
type TestRegexRequest struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	SampleText  string `json:"sample_text"`
}

// TestRegexResponse reports the rewritten sample text.
type TestRegexResponse struct {
	Success      bool   `json:"success"`
	Original     string `json:"original"`
	Result       string `json:"result"`
	Pattern      string `json:"pattern"`
	Replacement  string `json:"replacement"`
	MatchesCount int    `json:"matches_count"`
}

// ============================================================================
// Handler
// ============================================================================

// PatternHandler handles pattern synthesis HTTP requests.
type PatternHandler struct {
	patternService services.PatternService
	logger         *zap.Logger
}

// NewPatternHandler creates a new pattern handler.
func NewPatternHandler(patternService services.PatternService, logger *zap.Logger) *PatternHandler {
	return &PatternHandler{
		patternService: patternService,
		logger:         logger,
	}
}

// RegisterRoutes registers the pattern handler's routes on the given mux.
func (h *PatternHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/convert-to-regex", h.ConvertToRegex)
	mux.HandleFunc("POST /api/test-regex", h.TestRegex)
}

// ConvertToRegex handles POST /api/convert-to-regex
func (h *PatternHandler) ConvertToRegex(w http.ResponseWriter, r *http.Request) {
	var req ConvertToRegexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	pattern, err := h.patternService.ConvertToRegex(r.Context(), &models.PatternRequest{
		Description: req.Description,
		Context:     req.Context,
		ColumnData:  req.ColumnData,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDescriptionRequired) {
			if err := ErrorResponse(w, http.StatusBadRequest, "Description is required"); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Pattern synthesis failed",
			zap.String("description", logging.Truncate(req.Description)),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ConvertToRegexResponse{
		Success:     true,
		Pattern:     pattern.PatternText,
		Description: strings.TrimSpace(req.Description),
		Source:      string(pattern.Source),
		IsLiteral:   pattern.IsLiteral,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// TestRegex handles POST /api/test-regex
func (h *PatternHandler) TestRegex(w http.ResponseWriter, r *http.Request) {
	var req TestRegexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.Pattern) == "" || strings.TrimSpace(req.SampleText) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "Pattern and sample_text are required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	result, matches, err := h.patternService.TestPattern(req.Pattern, req.SampleText, req.Replacement)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPattern) {
			if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Pattern test failed", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := TestRegexResponse{
		Success:      true,
		Original:     req.SampleText,
		Result:       result,
		Pattern:      req.Pattern,
		Replacement:  req.Replacement,
		MatchesCount: matches,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
