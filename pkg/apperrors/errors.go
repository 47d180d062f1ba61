package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDescriptionRequired is returned when a synthesis request has an
	// empty description after trimming.
	ErrDescriptionRequired = errors.New("description is required")
	// ErrInvalidPattern is returned when a pattern fails to compile in the
	// host regexp engine.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// UnresolvedColumnError is returned when a query names a column that cannot
// be resolved against the active registry, even fuzzily. Suggestions are
// ranked ascending by edit distance.
type UnresolvedColumnError struct {
	Column      string
	Suggestions []string
	Available   []string
}

func (e *UnresolvedColumnError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q not found, did you mean %s?", e.Column, strings.Join(e.Suggestions, ", "))
}

// UnparsableQueryError is returned when no operator cue is recognized in a
// natural-language query, or a numeric comparison value fails to parse.
type UnparsableQueryError struct {
	Query string
}

func (e *UnparsableQueryError) Error() string {
	return fmt.Sprintf("could not parse query: %q", e.Query)
}
