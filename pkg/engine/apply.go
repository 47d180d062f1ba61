// Package engine executes match patterns against row data and reports
// exact, auditable effects.
package engine

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// Apply replaces every non-overlapping match of the pattern in the targeted
// cells with the replacement value. When targetColumns is empty, every
// textual cell is scanned. The input rows are never mutated; ProcessedData
// is an independently constructed copy. The replacement is inserted
// literally, never expanded as a regex template.
//
// A cell counts as affected when it contains at least one match, and its
// row and column are counted with it, which keeps the invariant that
// AffectedColumns is empty iff MatchesCount is zero.
func Apply(pattern *models.MatchPattern, rows []models.Row, replacement string, targetColumns []string) (*models.ApplicationResult, error) {
	re, err := regexp.Compile(pattern.PatternText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
	}

	targets := make(map[string]struct{}, len(targetColumns))
	for _, c := range targetColumns {
		targets[c] = struct{}{}
	}

	result := &models.ApplicationResult{
		TotalRows:       len(rows),
		AffectedColumns: []string{},
		ProcessedData:   make([]models.Row, 0, len(rows)),
	}
	affectedColumns := make(map[string]struct{})

	for _, row := range rows {
		processed := row.Clone()
		rowAffected := false

		for column, cell := range processed {
			if len(targets) > 0 {
				if _, ok := targets[column]; !ok {
					continue
				}
			}
			text, ok := cell.(string)
			if !ok {
				continue
			}
			matches := len(re.FindAllStringIndex(text, -1))
			if matches == 0 {
				continue
			}
			processed[column] = re.ReplaceAllLiteralString(text, replacement)
			result.MatchesCount += matches
			rowAffected = true
			affectedColumns[column] = struct{}{}
		}

		if rowAffected {
			result.AffectedRows++
		}
		result.ProcessedData = append(result.ProcessedData, processed)
	}

	for column := range affectedColumns {
		result.AffectedColumns = append(result.AffectedColumns, column)
	}
	sort.Strings(result.AffectedColumns)

	return result, nil
}

// ApplyToText runs a pattern over a single block of text, returning the
// rewritten text and the number of matches replaced.
func ApplyToText(patternText, text, replacement string) (string, int, error) {
	re, err := regexp.Compile(patternText)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
	}
	matches := len(re.FindAllStringIndex(text, -1))
	return re.ReplaceAllLiteralString(text, replacement), matches, nil
}
