package environment

import (
	"context"

	"github.com/rshade/evsavings/internal/logging"
)

// Scenario is the caller-supplied input of a full comparison.
type Scenario struct {
	// FuelType selects the combustion vehicle fuel (gasoline, diesel).
	FuelType string `json:"fuel_type"`

	// NominalEnergy is the electric vehicle battery energy in kWh.
	NominalEnergy float64 `json:"nominal_energy"`

	// Autonomy is the advertised range in km.
	Autonomy float64 `json:"autonomy"`

	// IPC is the annual inflation index in percent.
	IPC float64 `json:"ipc"`

	// FuelPrice overrides the fuel profile price when non-zero.
	FuelPrice float64 `json:"fuel_price,omitempty"`

	// EnergyPrice overrides the dataset energy price when non-zero.
	EnergyPrice float64 `json:"energy_price,omitempty"`

	// AnnualDistance overrides the dataset annual use when non-zero.
	AnnualDistance float64 `json:"annual_distance,omitempty"`
}

// Comparison holds every figure derived from a Scenario.
type Comparison struct {
	Scenario Scenario    `json:"scenario"`
	Fuel     FuelProfile `json:"fuel"`

	MonthlyRate    float64 `json:"monthly_rate"`
	EnergyPrice    float64 `json:"energy_price"`
	FuelPrice      float64 `json:"fuel_price"`
	AnnualDistance float64 `json:"annual_distance"`

	ElectricalConsumption float64 `json:"electrical_consumption_kwh_km"`
	CombustionConsumption float64 `json:"combustion_consumption_kwh_km"`
	FuelConsumption       float64 `json:"fuel_consumption_l_km"`
	FuelEfficiency        float64 `json:"fuel_efficiency_km_l"`

	ElectricalCostKm float64 `json:"electrical_cost_km"`
	FuelCostKm       float64 `json:"fuel_cost_km"`

	EnergyKm  float64 `json:"energy_j_km"`
	EmisionKm float64 `json:"emision_g_km"`

	SavedEnergy      float64 `json:"saved_energy_kwh"`
	AvoidedEmissions float64 `json:"avoided_emissions_t"`
	MonthlySavings   float64 `json:"monthly_savings"`
	AnnualSavings    float64 `json:"annual_savings"`

	YoungTrees int `json:"young_trees"`
	OldTrees   int `json:"old_trees"`
}

// Compare runs the full comparison chain for s: monthly rate, fuel lookup,
// consumption, per-km costs, emissions, savings and tree equivalence.
//
// The only error is the *LookupError of an unknown fuel type.
func (c *Calculator) Compare(ctx context.Context, s Scenario) (Comparison, error) {
	logger := logging.FromContext(ctx)

	fuel, err := c.FuelEnergySelector(s.FuelType)
	if err != nil {
		logger.Debug().Str("fuel_type", s.FuelType).Err(err).Msg("fuel lookup failed")
		return Comparison{}, err
	}

	out := Comparison{
		Scenario:       s,
		Fuel:           fuel,
		MonthlyRate:    TiMonth(s.IPC),
		EnergyPrice:    orDefault(s.EnergyPrice, c.ds.EnergyPrice),
		FuelPrice:      orDefault(s.FuelPrice, fuel.FuelPrice),
		AnnualDistance: orDefault(s.AnnualDistance, c.ds.AnnualUse),
	}

	out.ElectricalConsumption = c.ElectricalConsumption(s.NominalEnergy, s.Autonomy)
	out.CombustionConsumption = c.CombustionConsumption(out.ElectricalConsumption)
	out.FuelConsumption = c.FuelConsumption(out.CombustionConsumption, fuel.FuelEnergy)
	out.FuelEfficiency = c.FuelEfficiency(out.FuelConsumption)

	out.ElectricalCostKm = c.CostElectricalKM(out.ElectricalConsumption, out.EnergyPrice)
	out.FuelCostKm = c.FuelCostKm(out.FuelPrice, out.FuelConsumption)

	out.EnergyKm = c.EnergyKm(out.CombustionConsumption)
	out.EmisionKm = c.EmisionKm(fuel.EmisionFactor, out.EnergyKm)

	out.SavedEnergy = c.SavedEnergy(out.CombustionConsumption, out.ElectricalConsumption, out.AnnualDistance)
	out.AvoidedEmissions = c.AvoidedEmissions(out.EmisionKm, out.AnnualDistance)
	out.MonthlySavings = c.MonthlySavings(out.FuelCostKm, out.ElectricalCostKm, out.AnnualDistance)
	out.AnnualSavings = c.AnnualSavings(out.MonthlySavings, out.MonthlyRate)

	out.YoungTrees = c.YoungTree(out.AvoidedEmissions)
	out.OldTrees = c.OldTree(out.AvoidedEmissions)

	logger.Debug().
		Str("fuel_type", s.FuelType).
		Float64("electrical_consumption", out.ElectricalConsumption).
		Float64("fuel_consumption", out.FuelConsumption).
		Float64("avoided_emissions_t", out.AvoidedEmissions).
		Float64("annual_savings", out.AnnualSavings).
		Msg("comparison computed")

	return out, nil
}

// orDefault returns v unless it is zero.
func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
