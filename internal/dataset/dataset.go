// Package dataset holds the parameter record consumed by the calculation
// packages: efficiency factors, energy densities, emission factors, tree
// absorption rates and the baseline vehicle and market figures.
//
// A Dataset is a plain value. Calculators copy it at construction time, so a
// record can never be mutated underneath a running calculation.
package dataset

// SchemaVersion is the dataset file format version written by Save.
const SchemaVersion = "1.0.0"

// Superseded values of the two constants the reference dataset assigns twice.
// Only the later assignment is observable, so Default uses the later values;
// these are kept for callers that need to reproduce the earlier figures.
const (
	SupersededCompresorEficiencyFactor = 0.8
	SupersededCellFuelEficiencyFactor  = 0.6
)

// Dataset is the immutable configuration record. Units are implicit in the
// formulas that read each field.
type Dataset struct {
	SchemaVersion string `yaml:"schema_version,omitempty" json:"schema_version,omitempty"`

	AvgSpeed                     float64 `yaml:"avg_speed" json:"avg_speed"`
	AutonomyFactor               float64 `yaml:"autonomy_factor" json:"autonomy_factor"`
	BaseWeight                   float64 `yaml:"base_weight" json:"base_weight"`
	BaseKm                       float64 `yaml:"base_km" json:"base_km"`
	CompresorEficiencyFactor     float64 `yaml:"compresor_eficiency_factor" json:"compresor_eficiency_factor"`
	CellFuelEficiencyFactor      float64 `yaml:"cell_fuel_eficiency_factor" json:"cell_fuel_eficiency_factor"`
	CheckedPercentage            float64 `yaml:"checked_percentage" json:"checked_percentage"`
	CombustionEngineEfficiency   float64 `yaml:"combustion_engine_efficiency" json:"combustion_engine_efficiency"`
	DieselEnergy                 float64 `yaml:"diesel_energy" json:"diesel_energy"`
	ElectrolysisEficiencyFactor  float64 `yaml:"electrolysis_eficiency_factor" json:"electrolysis_eficiency_factor"`
	EmisionFactorGasoline        float64 `yaml:"emision_factor_gasoline" json:"emision_factor_gasoline"`
	EmisionFactorDiesel          float64 `yaml:"emision_factor_diesel" json:"emision_factor_diesel"`
	GasolineEnergy               float64 `yaml:"gasoline_energy" json:"gasoline_energy"`
	HydrogenEnergyDensity        float64 `yaml:"hydrogen_energy_density" json:"hydrogen_energy_density"`
	KmChecked                    float64 `yaml:"km_checked" json:"km_checked"`
	NoxReductionFactor           float64 `yaml:"nox_reduction_factor" json:"nox_reduction_factor"`
	OldTree                      float64 `yaml:"old_tree" json:"old_tree"`
	OperationFactor              float64 `yaml:"operation_factor" json:"operation_factor"`
	PercentageConsumptionSavings float64 `yaml:"percentage_consumption_savings" json:"percentage_consumption_savings"`
	PercentageUreaConsumption    float64 `yaml:"percentage_urea_consumption" json:"percentage_urea_consumption"`
	WaterH2Weight                float64 `yaml:"water_h2_weight" json:"water_h2_weight"`
	YoungTree                    float64 `yaml:"young_tree" json:"young_tree"`
	NominalEnergy                float64 `yaml:"nominal_energy" json:"nominal_energy"`
	AutonomyNominal              float64 `yaml:"autonomy_nominal" json:"autonomy_nominal"`
	EnergyPrice                  float64 `yaml:"energy_price" json:"energy_price"`
	AnnualUse                    float64 `yaml:"annual_use" json:"annual_use"`
}

// Default returns the default parameter dataset.
func Default() Dataset {
	return Dataset{
		SchemaVersion:                SchemaVersion,
		AvgSpeed:                     50,
		AutonomyFactor:               0.9,
		BaseWeight:                   20000,
		BaseKm:                       98550,
		CompresorEficiencyFactor:     0.95,
		CellFuelEficiencyFactor:      0.54,
		CheckedPercentage:            0.05,
		CombustionEngineEfficiency:   0.27,
		DieselEnergy:                 40.7,
		ElectrolysisEficiencyFactor:  0.76,
		EmisionFactorGasoline:        69.25,
		EmisionFactorDiesel:          74.01,
		GasolineEnergy:               35.58,
		HydrogenEnergyDensity:        33.33,
		KmChecked:                    200000,
		NoxReductionFactor:           0.9,
		OldTree:                      30,
		OperationFactor:              0.9,
		PercentageConsumptionSavings: 0.1,
		PercentageUreaConsumption:    0.07,
		WaterH2Weight:                9,
		YoungTree:                    10,
		NominalEnergy:                8.14,
		AutonomyNominal:              14.7,
		EnergyPrice:                  978.81,
		AnnualUse:                    10000,
	}
}
