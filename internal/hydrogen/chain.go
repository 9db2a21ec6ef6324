// Package hydrogen models the energy needed to produce, compress and store
// hydrogen for a given nominal energy, and the water that production
// consumes.
//
// The chain reads the compressor and fuel cell efficiency factors, which the
// reference dataset assigns twice. The values in effect are the later ones
// (see dataset.Default); the chain is kept apart from the vehicle comparison
// so that choice cannot leak into it.
package hydrogen

import "github.com/rshade/evsavings/internal/dataset"

// Chain is the hydrogen production energy chain.
type Chain interface {
	EnergyH2Cylinders(nominalEnergy float64) float64
	EnergyH2LowPresure(cylinderEnergy float64) float64
	EnergyConsumed(lowPressureEnergy float64) float64
	HydrogenMass(energy float64) float64
	LitersRequired(hydrogenMass float64) float64
}

// Production is the outcome of running the whole chain.
type Production struct {
	NominalEnergy     float64 `json:"nominal_energy"`
	CylinderEnergy    float64 `json:"cylinder_energy"`
	LowPressureEnergy float64 `json:"low_pressure_energy"`
	EnergyConsumed    float64 `json:"energy_consumed"`
	HydrogenMass      float64 `json:"hydrogen_mass"`
	WaterLiters       float64 `json:"water_liters"`
}

// Model implements Chain against a dataset.
type Model struct {
	compressor   float64
	cellFuel     float64
	electrolysis float64
	density      float64
	waterRatio   float64
}

var _ Chain = (*Model)(nil)

// New returns a Model reading its factors from ds.
func New(ds dataset.Dataset) *Model {
	return &Model{
		compressor:   ds.CompresorEficiencyFactor,
		cellFuel:     ds.CellFuelEficiencyFactor,
		electrolysis: ds.ElectrolysisEficiencyFactor,
		density:      ds.HydrogenEnergyDensity,
		waterRatio:   ds.WaterH2Weight,
	}
}

// EnergyH2Cylinders returns the energy stored in high pressure cylinders to
// deliver nominalEnergy, after compression losses.
func (m *Model) EnergyH2Cylinders(nominalEnergy float64) float64 {
	return nominalEnergy / m.compressor
}

// EnergyH2LowPresure returns the low pressure hydrogen energy required to
// fill the cylinders, after fuel cell losses.
func (m *Model) EnergyH2LowPresure(cylinderEnergy float64) float64 {
	return cylinderEnergy / m.cellFuel
}

// EnergyConsumed returns the electrical energy drawn by electrolysis.
func (m *Model) EnergyConsumed(lowPressureEnergy float64) float64 {
	return lowPressureEnergy / m.electrolysis
}

// HydrogenMass returns the hydrogen mass holding energy.
func (m *Model) HydrogenMass(energy float64) float64 {
	return energy / m.density
}

// LitersRequired returns the water volume electrolysed for hydrogenMass.
func (m *Model) LitersRequired(hydrogenMass float64) float64 {
	return hydrogenMass * m.waterRatio
}

// Produce runs c end to end. Mass and water derive from the low pressure
// energy, the hydrogen actually produced.
func Produce(c Chain, nominalEnergy float64) Production {
	cylinders := c.EnergyH2Cylinders(nominalEnergy)
	low := c.EnergyH2LowPresure(cylinders)
	mass := c.HydrogenMass(low)

	return Production{
		NominalEnergy:     nominalEnergy,
		CylinderEnergy:    cylinders,
		LowPressureEnergy: low,
		EnergyConsumed:    c.EnergyConsumed(low),
		HydrogenMass:      mass,
		WaterLiters:       c.LitersRequired(mass),
	}
}
