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

// ProcessDataRequest for POST /api/process-data
//
// ApplyToAllColumns forces a scan of every textual column regardless of
// TargetColumns. Omitting both is equivalent: empty targets already mean
// "all columns", so the flag only matters when targets are also given.
type ProcessDataRequest struct {
	Data              []models.Row `json:"data"`
	Pattern           string       `json:"pattern"`
	Replacement       string       `json:"replacement"`
	ApplyToAllColumns bool         `json:"apply_to_all_columns"`
	TargetColumns     []string     `json:"target_columns,omitempty"`
}

// ProcessDataResponse reports the application metrics and modified data.
type ProcessDataResponse struct {
	Success         bool         `json:"success"`
	MatchesCount    int          `json:"matches_count"`
	AffectedRows    int          `json:"affected_rows"`
	TotalRows       int          `json:"total_rows"`
	AffectedColumns []string     `json:"affected_columns"`
	ProcessedData   []models.Row `json:"processed_data"`
}

// NaturalLanguageQueryRequest for POST /api/natural-language-query
type NaturalLanguageQueryRequest struct {
	Query   string       `json:"query"`
	Data    []models.Row `json:"data"`
	Columns []string     `json:"columns"`
}

// NaturalLanguageQueryResponse carries the filtered records.
type NaturalLanguageQueryResponse struct {
	Success bool         `json:"success"`
	Results []models.Row `json:"results"`
	Count   int          `json:"count"`
}

// queryErrorResponse is the failure envelope for unresolved columns and
// unparsable queries, carrying actionable detail for the caller.
type queryErrorResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error"`
	Suggestions      []string `json:"suggestions,omitempty"`
	AvailableColumns []string `json:"available_columns,omitempty"`
}

// ============================================================================
// Handler
// ============================================================================

// DataHandler handles row-data processing and filtering HTTP requests.
type DataHandler struct {
	patternService services.PatternService
	queryService   services.QueryService
	logger         *zap.Logger
}

// NewDataHandler creates a new data handler.
func NewDataHandler(patternService services.PatternService, queryService services.QueryService, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		patternService: patternService,
		queryService:   queryService,
		logger:         logger,
	}
}

// RegisterRoutes registers the data handler's routes on the given mux.
func (h *DataHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/process-data", h.ProcessData)
	mux.HandleFunc("POST /api/natural-language-query", h.NaturalLanguageQuery)
}

// ProcessData handles POST /api/process-data
func (h *DataHandler) ProcessData(w http.ResponseWriter, r *http.Request) {
	var req ProcessDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.Pattern) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "Pattern is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	targetColumns := req.TargetColumns
	if req.ApplyToAllColumns {
		targetColumns = nil
	}

	result, err := h.patternService.ProcessData(req.Data, req.Pattern, req.Replacement, targetColumns)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPattern) {
			if err := ErrorResponse(w, http.StatusBadRequest, err.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Data processing failed", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := ProcessDataResponse{
		Success:         true,
		MatchesCount:    result.MatchesCount,
		AffectedRows:    result.AffectedRows,
		TotalRows:       result.TotalRows,
		AffectedColumns: result.AffectedColumns,
		ProcessedData:   result.ProcessedData,
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// NaturalLanguageQuery handles POST /api/natural-language-query
func (h *DataHandler) NaturalLanguageQuery(w http.ResponseWriter, r *http.Request) {
	var req NaturalLanguageQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		if err := ErrorResponse(w, http.StatusBadRequest, "Query is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	results, err := h.queryService.Filter(req.Query, req.Data, req.Columns)
	if err != nil {
		var unresolved *apperrors.UnresolvedColumnError
		if errors.As(err, &unresolved) {
			if err := WriteJSON(w, http.StatusBadRequest, queryErrorResponse{
				Error:            unresolved.Error(),
				Suggestions:      unresolved.Suggestions,
				AvailableColumns: unresolved.Available,
			}); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		var unparsable *apperrors.UnparsableQueryError
		if errors.As(err, &unparsable) {
			if err := ErrorResponse(w, http.StatusBadRequest, unparsable.Error()); err != nil {
				h.logger.Error("Failed to write error response", zap.Error(err))
			}
			return
		}
		h.logger.Error("Query failed",
			zap.String("query", logging.Truncate(req.Query)),
			zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "Internal server error"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	response := NaturalLanguageQueryResponse{
		Success: true,
		Results: results,
		Count:   len(results),
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
