// Package intent classifies free-text descriptions as either a literal
// match request (one exact value) or a category match request.
package intent

import (
	"strings"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
	"github.com/rhombus-ai/pattern-engine/pkg/patterns"
)

// Words that signal the user wants one exact value. Explicit exactness
// always wins over category cues.
var literalCueWords = map[string]struct{}{
	"exactly":      {},
	"exact":        {},
	"specifically": {},
	"specific":     {},
	"only":         {},
}

// Leading words that carry no meaning for the value being matched.
var noiseWords = map[string]struct{}{
	"find":   {},
	"get":    {},
	"match":  {},
	"show":   {},
	"search": {},
	"locate": {},
	"me":     {},
	"the":    {},
	"value":  {},
	"for":    {},
}

// Classify never fails; any input produces a category intent at worst.
// The library supplies the category noun table for both the literal-value
// veto and the category hint.
func Classify(description string, lib *patterns.Library) models.ClassifiedIntent {
	fields := strings.Fields(description)

	cueEnd := -1
	for i, f := range fields {
		w := strings.ToLower(strings.Trim(f, `.,;:!?"'`))
		if _, ok := literalCueWords[w]; ok {
			cueEnd = i + 1
			break
		}
	}

	if cueEnd >= 0 && cueEnd < len(fields) {
		rest := fields[cueEnd:]
		for len(rest) > 0 {
			if _, ok := noiseWords[strings.ToLower(rest[0])]; !ok {
				break
			}
			rest = rest[1:]
		}
		value := strings.TrimSpace(strings.Join(rest, " "))
		// A remainder naming a category ("match only emails") is still a
		// category request, not a literal one.
		if value != "" && lib.Detect(value) == "" {
			return models.ClassifiedIntent{Kind: models.IntentLiteral, LiteralValue: value}
		}
	}

	hint := lib.Detect(description)
	if hint == "" {
		hint = models.CategoryGeneral
	}
	return models.ClassifiedIntent{Kind: models.IntentCategory, CategoryHint: hint}
}
