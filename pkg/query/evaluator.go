package query

import (
	"strconv"
	"strings"

	"github.com/rhombus-ai/pattern-engine/pkg/jsonutil"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// Evaluate applies a predicate to rows and returns the matching subset in
// the original order. The input is never mutated; rows whose cell cannot be
// parsed for a numeric comparison are skipped, not failed.
func Evaluate(pred *models.Predicate, rows []models.Row) []models.Row {
	matched := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		cell, ok := row[pred.Column]
		if !ok {
			continue
		}
		if cellMatches(pred, cell) {
			matched = append(matched, row)
		}
	}
	return matched
}

func cellMatches(pred *models.Predicate, cell any) bool {
	switch pred.Operator {
	case models.OpGreaterThan:
		n, ok := jsonutil.CellNumber(cell)
		return ok && n > pred.Number
	case models.OpLessThan:
		n, ok := jsonutil.CellNumber(cell)
		return ok && n < pred.Number
	case models.OpEquals:
		// Numeric equality when both sides parse, so 25 == "25.0".
		if cn, ok := jsonutil.CellNumber(cell); ok {
			if vn, err := strconv.ParseFloat(pred.Value, 64); err == nil {
				return cn == vn
			}
		}
		return jsonutil.CellString(cell) == pred.Value
	case models.OpContains:
		return strings.Contains(foldCell(cell), strings.ToLower(pred.Value))
	case models.OpStartsWith:
		return strings.HasPrefix(foldCell(cell), strings.ToLower(pred.Value))
	case models.OpEndsWith:
		return strings.HasSuffix(foldCell(cell), strings.ToLower(pred.Value))
	default:
		return false
	}
}

func foldCell(cell any) string {
	return strings.ToLower(jsonutil.CellString(cell))
}
