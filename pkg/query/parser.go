package query

import (
	"strconv"
	"strings"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// operatorCues in precedence order; the first cue found in the query wins.
// Word cues are matched on whole tokens so "island" never parses as "is".
var operatorCues = []struct {
	words []string
	op    models.Operator
}{
	{[]string{">"}, models.OpGreaterThan},
	{[]string{"<"}, models.OpLessThan},
	{[]string{"contains"}, models.OpContains},
	{[]string{"starts", "with"}, models.OpStartsWith},
	{[]string{"ends", "with"}, models.OpEndsWith},
	{[]string{"is"}, models.OpEquals},
	{[]string{"equals"}, models.OpEquals},
}

// Leading words that carry no meaning for the column reference.
var queryNoiseWords = map[string]struct{}{
	"find":    {},
	"show":    {},
	"get":     {},
	"filter":  {},
	"select":  {},
	"where":   {},
	"all":     {},
	"rows":    {},
	"records": {},
	"me":      {},
	"the":     {},
	"with":    {},
}

// Parse tokenizes a natural-language query into a predicate. It fails with
// UnparsableQueryError when no operator cue is recognized or a numeric
// comparison value does not parse, and with UnresolvedColumnError (carrying
// ranked suggestions) when the column reference cannot be resolved.
func Parse(q string, registry *models.ColumnRegistry) (*models.Predicate, error) {
	trimmed := strings.TrimSpace(q)
	if trimmed == "" {
		return nil, &apperrors.UnparsableQueryError{Query: q}
	}

	left, right, op, found := splitOnCue(trimmed)
	if !found {
		return nil, &apperrors.UnparsableQueryError{Query: q}
	}

	column := stripQueryNoise(left)
	value := strings.Trim(strings.TrimSpace(right), `"'`)
	if column == "" || value == "" {
		return nil, &apperrors.UnparsableQueryError{Query: q}
	}

	pred := &models.Predicate{Operator: op, Value: value}
	if op.IsNumeric() {
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, &apperrors.UnparsableQueryError{Query: q}
		}
		pred.Number = n
	}

	// Exact and case-insensitive matches resolve silently. A fuzzy match
	// at distance > 0 is a likely typo, but applying a filter against a
	// guessed column would silently return wrong data, so it is reported
	// back as a ranked suggestion instead.
	res := Resolve(column, registry)
	switch res.Kind {
	case ResolutionNotFound:
		return nil, &apperrors.UnresolvedColumnError{
			Column:      column,
			Suggestions: res.Suggestions,
			Available:   registry.Columns(),
		}
	case ResolutionFuzzy:
		if res.Distance > 0 {
			return nil, &apperrors.UnresolvedColumnError{
				Column:      column,
				Suggestions: []string{res.Column},
				Available:   registry.Columns(),
			}
		}
		pred.Column = res.Column
	default:
		pred.Column = res.Column
	}

	return pred, nil
}

// splitOnCue finds the highest-precedence operator cue and splits the query
// into the column span and the value span around it.
func splitOnCue(q string) (left, right string, op models.Operator, found bool) {
	words := strings.Fields(q)
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}

	for _, cue := range operatorCues {
		// The comparison symbols may be glued to their operands
		// ("age>25"), so they split on byte position instead of tokens.
		if len(cue.words) == 1 && (cue.words[0] == ">" || cue.words[0] == "<") {
			if i := strings.Index(q, cue.words[0]); i >= 0 {
				return q[:i], q[i+1:], cue.op, true
			}
			continue
		}

		for i := 0; i+len(cue.words) <= len(lower); i++ {
			if !matchWords(lower[i:], cue.words) {
				continue
			}
			return strings.Join(words[:i], " "), strings.Join(words[i+len(cue.words):], " "), cue.op, true
		}
	}
	return "", "", "", false
}

func matchWords(tokens, cue []string) bool {
	for i, w := range cue {
		if tokens[i] != w {
			return false
		}
	}
	return true
}

func stripQueryNoise(left string) string {
	words := strings.Fields(left)
	for len(words) > 0 {
		if _, ok := queryNoiseWords[strings.ToLower(words[0])]; !ok {
			break
		}
		words = words[1:]
	}
	return strings.Join(words, " ")
}
