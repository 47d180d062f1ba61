package services

import (
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/query"
)

// QueryService filters row data with natural-language predicates.
type QueryService interface {
	// Filter parses q against the given columns and returns the matching
	// rows in their original order. When columns is empty the registry is
	// inferred from the rows themselves.
	Filter(q string, rows []models.Row, columns []string) ([]models.Row, error)
}

type queryService struct {
	logger *zap.Logger
}

// NewQueryService creates the production QueryService.
func NewQueryService(logger *zap.Logger) QueryService {
	return &queryService{logger: logger.Named("query")}
}

func (s *queryService) Filter(q string, rows []models.Row, columns []string) ([]models.Row, error) {
	registry := models.NewColumnRegistry(columns)
	if registry.Len() == 0 {
		registry = models.RegistryFromRows(rows)
	}

	pred, err := query.Parse(q, registry)
	if err != nil {
		return nil, err
	}

	results := query.Evaluate(pred, rows)
	s.logger.Debug("query evaluated",
		zap.String("column", pred.Column),
		zap.String("operator", string(pred.Operator)),
		zap.Int("matched", len(results)),
		zap.Int("total", len(rows)))
	return results, nil
}
