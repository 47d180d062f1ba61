package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhombus-ai/pattern-engine/pkg/models"
)

func testRegistry(t *testing.T, columns ...string) *models.ColumnRegistry {
	t.Helper()
	return models.NewColumnRegistry(columns)
}

func TestResolveExact(t *testing.T) {
	reg := testRegistry(t, "name", "age", "email")

	res := Resolve("name", reg)
	assert.Equal(t, ResolutionExact, res.Kind)
	assert.Equal(t, "name", res.Column)
}

func TestResolveCaseInsensitive(t *testing.T) {
	reg := testRegistry(t, "Name", "Age")

	res := Resolve("name", reg)
	assert.Equal(t, ResolutionFuzzy, res.Kind)
	assert.Equal(t, "Name", res.Column)
	assert.Equal(t, 0, res.Distance)
}

func TestResolveFuzzyTypo(t *testing.T) {
	reg := testRegistry(t, "name", "age", "email")

	res := Resolve("naem", reg)
	assert.Equal(t, ResolutionFuzzy, res.Kind)
	assert.Equal(t, "name", res.Column)
	assert.Equal(t, 1, res.Distance)
}

func TestResolveNotFound(t *testing.T) {
	reg := testRegistry(t, "name", "age", "email")

	res := Resolve("zzz", reg)
	require.Equal(t, ResolutionNotFound, res.Kind)
	assert.Len(t, res.Suggestions, 3)
	// Suggestions are ranked ascending by distance; "age" is nearest to "zzz".
	assert.Equal(t, "age", res.Suggestions[0])
}

func TestResolveTieIsNotAccepted(t *testing.T) {
	// "cat" is distance 1 from both "cab" and "car"; an ambiguous minimum
	// must not pick a winner.
	reg := testRegistry(t, "cab", "car")

	res := Resolve("cat", reg)
	assert.Equal(t, ResolutionNotFound, res.Kind)
	assert.Equal(t, []string{"cab", "car"}, res.Suggestions)
}

func TestResolveThresholdScalesWithLength(t *testing.T) {
	reg := testRegistry(t, "transaction_amount")

	// 3 edits on a 15-char name is within the scaled threshold.
	res := Resolve("transaction_amt", reg)
	assert.Equal(t, ResolutionFuzzy, res.Kind)
	assert.Equal(t, "transaction_amount", res.Column)

	// A short name keeps the floor of 2.
	reg2 := testRegistry(t, "id")
	res2 := Resolve("idx", reg2)
	assert.Equal(t, ResolutionFuzzy, res2.Kind)
	assert.Equal(t, "id", res2.Column)
}
