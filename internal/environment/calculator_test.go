package environment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/evsavings/internal/dataset"
)

// tolerance absorbs last-digit differences of transcendental functions.
const tolerance = 1e-12

func newTestCalculator() *Calculator {
	return New(dataset.Default())
}

func TestElectricalConsumption(t *testing.T) {
	c := newTestCalculator()

	assert.Equal(t, 0.4507777777777778, c.ElectricalConsumption(81.14, 200))
	assert.Greater(t, c.ElectricalConsumption(50, 150), 0.0)
	assert.True(t, math.IsInf(c.ElectricalConsumption(100, 0), 1), "zero autonomy yields +Inf")
}

func TestCombustionConsumption(t *testing.T) {
	c := newTestCalculator()

	got := c.CombustionConsumption(c.ElectricalConsumption(81.14, 200))
	assert.InDelta(t, 1.669547325102881, got, tolerance)

	for _, e := range []float64{0.0001, 0.5, 1, 42} {
		assert.Greater(t, c.CombustionConsumption(e), e, "combustion equivalent exceeds %v", e)
	}
}

func TestFuelConsumptionAndEfficiency(t *testing.T) {
	c := newTestCalculator()

	combustion := c.CombustionConsumption(c.ElectricalConsumption(81.14, 200))
	assert.Equal(t, 0.04102081879859657, c.FuelConsumption(combustion, 40.7))
	assert.Greater(t, c.FuelConsumption(1.5, 35.58), 0.0)

	assert.InDelta(t, 24.39, c.FuelEfficiency(0.041), 0.1)
	for _, v := range []float64{0.05, 0.041, 10, -2} {
		assert.Equal(t, 1/v, c.FuelEfficiency(v))
	}
	assert.Less(t, c.FuelEfficiency(10), 1.0)
	assert.True(t, math.IsInf(c.FuelEfficiency(0), 1))
}

func TestPerKilometerCosts(t *testing.T) {
	c := newTestCalculator()

	assert.Equal(t, 440.4645, c.CostElectricalKM(0.45, 978.81))
	for _, price := range []float64{0, 978.81, -100, 1e9} {
		assert.Zero(t, c.CostElectricalKM(0, price))
	}
	assert.Less(t, c.CostElectricalKM(0.45, -100), 0.0)

	assert.Zero(t, c.FuelCostKm(11795, 0))
	assert.InDelta(t, 483.595, c.FuelCostKm(11795, 0.041), 0.1)
	assert.Greater(t, c.FuelCostKm(15000, 0.05), c.FuelCostKm(10000, 0.05))
}

func TestEnergyAndEmissions(t *testing.T) {
	c := newTestCalculator()

	assert.Equal(t, 5400000.0, c.EnergyKm(1.5))
	assert.Greater(t, c.EnergyKm(2), 0.0)

	assert.InDelta(t, 399.654, c.EmisionKm(74.01, c.EnergyKm(1.5)), 0.1)
	assert.Zero(t, c.EmisionKm(0, c.EnergyKm(1.5)))

	prev := c.EmisionKm(74.01, 0)
	for _, kwh := range []float64{0.5, 1, 2, 4} {
		next := c.EmisionKm(74.01, c.EnergyKm(kwh))
		assert.Greater(t, next, prev, "emissions increase with energy")
		prev = next
	}
}

func TestAggregateSavings(t *testing.T) {
	c := newTestCalculator()

	t.Run("saved energy", func(t *testing.T) {
		assert.Equal(t, 12200.0, c.SavedEnergy(1.67, 0.45, 10000))
		assert.Greater(t, c.SavedEnergy(2.0, 0.5, 10000), 0.0)
		assert.Less(t, c.SavedEnergy(0.5, 2.0, 10000), 0.0)
	})

	t.Run("avoided emissions", func(t *testing.T) {
		assert.Equal(t, 4.0, c.AvoidedEmissions(400, 10000))
		assert.Zero(t, c.AvoidedEmissions(400, 0))
		assert.Greater(t, c.AvoidedEmissions(10000, 100000), 0.0)
	})

	t.Run("monthly savings", func(t *testing.T) {
		assert.Equal(t, 50000.0, c.MonthlySavings(500, 450, 12000))
		assert.Greater(t, c.MonthlySavings(600, 400, 10000), 0.0)
		assert.Less(t, c.MonthlySavings(300, 500, 10000), 0.0)
	})
}

func TestDataset_IsCopied(t *testing.T) {
	ds := dataset.Default()
	c := New(ds)
	ds.AutonomyFactor = 0.5

	assert.Equal(t, 0.4507777777777778, c.ElectricalConsumption(81.14, 200))
	assert.InDelta(t, 0.9, c.Dataset().AutonomyFactor, 0)
}
