package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rhombus-ai/pattern-engine/pkg/apperrors"
	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

func TestFilter(t *testing.T) {
	svc := NewQueryService(zap.NewNop())
	rows := []models.Row{
		{"name": "John", "age": float64(30)},
		{"name": "Jane", "age": float64(20)},
	}

	got, err := svc.Filter("find age > 25", rows, []string{"name", "age"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0]["name"])
}

func TestFilterInfersColumnsFromRows(t *testing.T) {
	svc := NewQueryService(zap.NewNop())
	rows := []models.Row{
		{"city": "Boston"},
		{"city": "Denver"},
	}

	got, err := svc.Filter("city is Boston", rows, nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFilterTypoColumn(t *testing.T) {
	svc := NewQueryService(zap.NewNop())
	rows := []models.Row{{"name": "John"}}

	_, err := svc.Filter("find naem is John", rows, []string{"name", "age"})
	var uce *apperrors.UnresolvedColumnError
	require.ErrorAs(t, err, &uce)
	assert.Equal(t, []string{"name"}, uce.Suggestions)
}

func TestFilterUnparsableQuery(t *testing.T) {
	svc := NewQueryService(zap.NewNop())

	_, err := svc.Filter("hello there", []models.Row{{"name": "x"}}, nil)
	var uqe *apperrors.UnparsableQueryError
	assert.ErrorAs(t, err, &uqe)
}
