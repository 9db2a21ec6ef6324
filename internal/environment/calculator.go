// Package environment compares a combustion vehicle with an electric vehicle.
//
// It derives per-kilometer energy consumption, cost and CO2 emissions for
// both, aggregates them into energy, emission and monetary savings over a
// driving horizon, and converts avoided emissions into equivalent trees.
//
// Every operation is a pure function of its arguments and the Dataset the
// Calculator was built with. Degenerate inputs are not rejected: a zero
// autonomy yields +Inf, negative differences yield negative savings.
package environment

import "github.com/rshade/evsavings/internal/dataset"

// Unit conversion constants.
const (
	// JoulesPerKWh converts kWh to Joules.
	JoulesPerKWh = 3_600_000

	// JoulesPerMJ converts Joules to megajoules.
	JoulesPerMJ = 1_000_000

	// GramsPerTon converts grams to metric tons.
	GramsPerTon = 1_000_000

	// KgPerTon converts metric tons to kilograms.
	KgPerTon = 1000

	// MonthsPerYear is the savings horizon of AnnualSavings.
	MonthsPerYear = 12
)

// Calculator evaluates the comparison formulas against a fixed dataset.
// The zero value is not usable; construct one with New.
type Calculator struct {
	ds dataset.Dataset
}

// New returns a Calculator bound to a copy of ds.
func New(ds dataset.Dataset) *Calculator {
	return &Calculator{ds: ds}
}

// Dataset returns a copy of the dataset the calculator reads.
func (c *Calculator) Dataset() dataset.Dataset {
	return c.ds
}

// ElectricalConsumption returns the electric vehicle draw in kWh/km. The
// advertised autonomy is derated by the dataset autonomy factor.
func (c *Calculator) ElectricalConsumption(nominalEnergy, autonomy float64) float64 {
	return nominalEnergy / (autonomy * c.ds.AutonomyFactor)
}

// CombustionConsumption returns the energy a combustion engine needs to cover
// the same kilometer, given the electrical consumption in kWh/km.
func (c *Calculator) CombustionConsumption(electricalConsumption float64) float64 {
	return electricalConsumption / c.ds.CombustionEngineEfficiency
}

// FuelConsumption converts combustion-equivalent consumption into liters/km.
func (c *Calculator) FuelConsumption(combustionConsumption, fuelEnergy float64) float64 {
	return combustionConsumption / fuelEnergy
}

// FuelEfficiency returns km per liter.
func (c *Calculator) FuelEfficiency(fuelConsumption float64) float64 {
	return 1 / fuelConsumption
}

// CostElectricalKM returns the electric cost per kilometer.
func (c *Calculator) CostElectricalKM(consumption, energyPrice float64) float64 {
	return consumption * energyPrice
}

// FuelCostKm returns the fuel cost per kilometer.
func (c *Calculator) FuelCostKm(fuelPrice, fuelConsumption float64) float64 {
	return fuelPrice * fuelConsumption
}

// EnergyKm converts kWh/km into J/km.
func (c *Calculator) EnergyKm(combustionConsumption float64) float64 {
	return combustionConsumption * JoulesPerKWh
}

// EmisionKm returns grams of CO2 per kilometer. The emission factor is per
// megajoule.
func (c *Calculator) EmisionKm(emissionFactor, energyJoules float64) float64 {
	return emissionFactor * (energyJoules / JoulesPerMJ)
}

// SavedEnergy returns the energy saved over annualDistance by driving
// electric. The result is negative when the electric draw is higher.
func (c *Calculator) SavedEnergy(combustionConsumption, electricalConsumption, annualDistance float64) float64 {
	return (combustionConsumption - electricalConsumption) * annualDistance
}

// AvoidedEmissions returns tons of CO2 avoided over annualDistance.
func (c *Calculator) AvoidedEmissions(emisionKm, annualDistance float64) float64 {
	return (emisionKm * annualDistance) / GramsPerTon
}

// MonthlySavings returns the average monthly cost difference.
func (c *Calculator) MonthlySavings(fuelCostKm, electricalCostKm, annualDistance float64) float64 {
	return (fuelCostKm - electricalCostKm) * annualDistance / MonthsPerYear
}
