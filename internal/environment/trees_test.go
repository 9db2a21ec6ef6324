package environment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeEquivalence(t *testing.T) {
	c := newTestCalculator()

	tests := []struct {
		name      string
		tons      float64
		wantYoung int
		wantOld   int
	}{
		{"two tons", 2, 200, 66},
		{"three tons", 3, 300, 100},
		{"fractional tons floor", 2.567, 256, 85},
		{"half ton", 0.5, 50, 16},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantYoung, c.YoungTree(tt.tons))
			assert.Equal(t, tt.wantOld, c.OldTree(tt.tons))
		})
	}
}

func TestTreeEquivalence_FloorsNeverRoundUp(t *testing.T) {
	c := newTestCalculator()

	// 0.0299 t = 29.9 kg, short of one old tree.
	assert.Equal(t, 0, c.OldTree(0.0299))
	assert.Equal(t, 2, c.YoungTree(0.0299))
	assert.Equal(t, int(math.Floor(2.567*1000/10)), c.YoungTree(2.567))
}

func TestTreeEquivalence_OldBelowYoung(t *testing.T) {
	c := newTestCalculator()

	for _, tons := range []float64{1, 5, 4.448, 100} {
		assert.Less(t, c.OldTree(tons), c.YoungTree(tons), "tons=%v", tons)
	}
}

func TestTreeEquivalence_NonFinite(t *testing.T) {
	c := newTestCalculator()

	tests := []struct {
		name string
		tons float64
		want int
	}{
		{"positive infinity saturates", math.Inf(1), math.MaxInt},
		{"negative infinity saturates", math.Inf(-1), math.MinInt},
		{"NaN is zero", math.NaN(), 0},
		{"beyond int range saturates", 1e300, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.YoungTree(tt.tons))
			assert.Equal(t, tt.want, c.OldTree(tt.tons))
		})
	}
}

func TestTreeEquivalence_DegenerateChain(t *testing.T) {
	c := newTestCalculator()
	ds := c.Dataset()

	// Zero autonomy makes every downstream per-km figure +Inf.
	inf := c.AvoidedEmissions(c.EmisionKm(ds.EmisionFactorDiesel,
		c.EnergyKm(c.CombustionConsumption(c.ElectricalConsumption(81.14, 0)))), ds.AnnualUse)
	require.True(t, math.IsInf(inf, 1))
	assert.Equal(t, math.MaxInt, c.YoungTree(inf))

	// 0/0 propagates NaN.
	nan := c.AvoidedEmissions(c.EmisionKm(ds.EmisionFactorDiesel,
		c.EnergyKm(c.CombustionConsumption(c.ElectricalConsumption(0, 0)))), ds.AnnualUse)
	require.True(t, math.IsNaN(nan))
	assert.Equal(t, 0, c.OldTree(nan))
}
