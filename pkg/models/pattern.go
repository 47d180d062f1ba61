package models

// IntentKind distinguishes a request for one exact value from a request for
// a general category of values.
type IntentKind int

const (
	// IntentLiteral means the user wants one specific value matched.
	IntentLiteral IntentKind = iota
	// IntentCategory means the user wants any value of a semantic category.
	IntentCategory
)

// String returns a human-readable name for the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentLiteral:
		return "literal"
	case IntentCategory:
		return "category"
	default:
		return "unknown"
	}
}

// CategoryGeneral is the category hint used when no known category noun is
// recognized in a description.
const CategoryGeneral = "general"

// ClassifiedIntent is the outcome of intent classification.
// LiteralValue is set iff Kind is IntentLiteral; CategoryHint is set iff
// Kind is IntentCategory.
type ClassifiedIntent struct {
	Kind         IntentKind
	LiteralValue string
	CategoryHint string
}

// PatternSource records where a synthesized pattern came from.
type PatternSource string

const (
	// SourceLibrary means the pattern was taken from the synonym library.
	SourceLibrary PatternSource = "library"
	// SourceHeuristic means the pattern was built locally (escaped literal
	// or generic fallback).
	SourceHeuristic PatternSource = "heuristic"
	// SourceExternal means the pattern came from the external AI service.
	SourceExternal PatternSource = "external"
)

// MatchPattern is an executable match pattern. PatternText is always valid
// in the host regexp engine; for literal patterns every metacharacter of
// the user's value is escaped before embedding.
type MatchPattern struct {
	PatternText string        `json:"pattern"`
	IsLiteral   bool          `json:"is_literal"`
	Source      PatternSource `json:"source"`
}

// PatternRequest is the immutable input to pattern synthesis.
type PatternRequest struct {
	Description string   `json:"description"`
	Context     string   `json:"context,omitempty"`
	ColumnData  []string `json:"column_data,omitempty"`
}
