package models

import "sort"

// Row is a single record of column name to decoded JSON cell value.
type Row map[string]any

// Clone returns an independent copy of the row. Nested maps and slices are
// copied as well so mutating the clone never touches the original.
func (r Row) Clone() Row {
	copied := make(Row, len(r))
	for k, v := range r {
		copied[k] = cloneValue(v)
	}
	return copied
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = cloneValue(inner)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, inner := range val {
			s[i] = cloneValue(inner)
		}
		return s
	default:
		return val
	}
}

// ColumnRegistry is the ordered set of known column names for one request.
// Names are unique and case-sensitive. It is built per request and never
// persisted.
type ColumnRegistry struct {
	columns []string
	index   map[string]struct{}
}

// NewColumnRegistry builds a registry from the given names, preserving
// order and dropping duplicates and empty names.
func NewColumnRegistry(columns []string) *ColumnRegistry {
	r := &ColumnRegistry{index: make(map[string]struct{}, len(columns))}
	for _, c := range columns {
		if c == "" {
			continue
		}
		if _, ok := r.index[c]; ok {
			continue
		}
		r.index[c] = struct{}{}
		r.columns = append(r.columns, c)
	}
	return r
}

// RegistryFromRows infers a registry from row data: the union of all keys,
// sorted for determinism.
func RegistryFromRows(rows []Row) *ColumnRegistry {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			seen[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for k := range seen {
		columns = append(columns, k)
	}
	sort.Strings(columns)
	return NewColumnRegistry(columns)
}

// Contains reports whether name is a known column (case-sensitive).
func (r *ColumnRegistry) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Columns returns the column names in registry order.
func (r *ColumnRegistry) Columns() []string {
	return r.columns
}

// Len returns the number of known columns.
func (r *ColumnRegistry) Len() int {
	return len(r.columns)
}

// ApplicationResult reports the exact effects of applying a match pattern
// to row data. AffectedRows never exceeds TotalRows, and AffectedColumns is
// empty iff MatchesCount is zero.
type ApplicationResult struct {
	MatchesCount    int      `json:"matches_count"`
	AffectedRows    int      `json:"affected_rows"`
	TotalRows       int      `json:"total_rows"`
	AffectedColumns []string `json:"affected_columns"`
	ProcessedData   []Row    `json:"processed_data"`
}
