// Package query parses natural-language filter queries into predicates and
// evaluates them against row data.
package query

import (
	"sort"
	"strings"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

// maxSuggestions caps how many near-miss columns a NotFound carries.
const maxSuggestions = 3

// ResolutionKind tags the outcome of column resolution.
type ResolutionKind int

const (
	// ResolutionExact means the name matched a registry column directly.
	ResolutionExact ResolutionKind = iota
	// ResolutionFuzzy means the name matched within the edit-distance
	// threshold. Distance 0 means a case-insensitive match.
	ResolutionFuzzy
	// ResolutionNotFound means no column was close enough; Suggestions
	// holds the nearest candidates ranked ascending by distance.
	ResolutionNotFound
)

// Resolution is the outcome of resolving a user-typed column name.
type Resolution struct {
	Kind        ResolutionKind
	Column      string
	Distance    int
	Suggestions []string
}

// Resolve maps a user-typed column name onto the registry: exact
// case-sensitive match first, then case-insensitive, then bounded edit
// distance. The minimum-distance column is accepted only when its distance
// is within max(2, ceil(0.3*len(name))) and no other column ties it.
func Resolve(name string, registry *models.ColumnRegistry) Resolution {
	if registry.Contains(name) {
		return Resolution{Kind: ResolutionExact, Column: name}
	}

	lowered := strings.ToLower(name)
	for _, col := range registry.Columns() {
		if strings.ToLower(col) == lowered {
			return Resolution{Kind: ResolutionFuzzy, Column: col, Distance: 0}
		}
	}

	type scored struct {
		column   string
		distance int
	}
	scores := make([]scored, 0, registry.Len())
	for _, col := range registry.Columns() {
		scores = append(scores, scored{col, editDistance(lowered, strings.ToLower(col))})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].distance < scores[j].distance
	})

	threshold := (3*len(name) + 9) / 10 // ceil(0.3 * len)
	if threshold < 2 {
		threshold = 2
	}

	if len(scores) > 0 && scores[0].distance <= threshold &&
		(len(scores) == 1 || scores[1].distance > scores[0].distance) {
		return Resolution{Kind: ResolutionFuzzy, Column: scores[0].column, Distance: scores[0].distance}
	}

	n := len(scores)
	if n > maxSuggestions {
		n = maxSuggestions
	}
	suggestions := make([]string, 0, n)
	for _, s := range scores[:n] {
		suggestions = append(suggestions, s.column)
	}
	return Resolution{Kind: ResolutionNotFound, Suggestions: suggestions}
}
