package greenops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/evsavings/internal/dataset"
	"github.com/rshade/evsavings/internal/environment"
	"github.com/rshade/evsavings/internal/greenops"
)

var _ greenops.TreeCounter = (*environment.Calculator)(nil)

func TestCalculate_WithEnvironmentCalculator(t *testing.T) {
	calc := environment.New(dataset.Default())

	got, err := greenops.Calculate(greenops.CarbonInput{Value: calc.AvoidedEmissions(400, 10000), Unit: "t"}, calc)
	require.NoError(t, err)
	require.Len(t, got.Results, 2)
	assert.Equal(t, calc.YoungTree(4), got.Results[0].Value)
	assert.Equal(t, calc.OldTree(4), got.Results[1].Value)
	assert.Contains(t, got.DisplayText, "~400 young trees or ~133 old trees")
}
