package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuels_Table(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "fuels")
	require.NoError(t, err)

	for _, want := range []string{"FUEL", "gasoline", "16,700", "35.58", "69.25", "diesel", "11,795", "40.70", "74.01"} {
		assert.Contains(t, out, want)
	}
}

func TestFuels_JSON(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "fuels", "--output", "json")
	require.NoError(t, err)

	var entries []struct {
		FuelType      string  `json:"fuel_type"`
		FuelPrice     float64 `json:"fuel_price"`
		FuelEnergy    float64 `json:"fuel_energy"`
		EmisionFactor float64 `json:"emision_factor"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)

	byName := map[string]float64{}
	for _, e := range entries {
		byName[e.FuelType] = e.FuelEnergy
	}
	assert.InDelta(t, 35.58, byName["gasoline"], 0)
	assert.InDelta(t, 40.7, byName["diesel"], 0)
}
