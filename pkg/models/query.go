package models

// Operator is a predicate comparison operator.
type Operator string

const (
	OpEquals      Operator = "equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greater_than"
	OpLessThan    Operator = "less_than"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
)

// IsNumeric reports whether the operator compares numbers.
func (o Operator) IsNumeric() bool {
	return o == OpGreaterThan || o == OpLessThan
}

// Predicate is a single column/operator/value filter condition. Column must
// resolve against the active ColumnRegistry before evaluation. Number holds
// the parsed comparison value for numeric operators.
type Predicate struct {
	Column   string   `json:"column"`
	Operator Operator `json:"operator"`
	Value    string   `json:"value"`
	Number   float64  `json:"-"`
}
