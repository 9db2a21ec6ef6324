package environment

import "strings"

// Fuel type keys accepted by FuelEnergySelector.
const (
	FuelGasoline = "gasoline"
	FuelDiesel   = "diesel"
)

// FuelProfile holds the market and physical figures of one fuel.
type FuelProfile struct {
	// FuelPrice is the price per liter.
	FuelPrice float64 `json:"fuel_price"`

	// FuelEnergy is the energy density used by FuelConsumption.
	FuelEnergy float64 `json:"fuel_energy"`

	// EmisionFactor is grams of CO2 per megajoule.
	EmisionFactor float64 `json:"emision_factor"`
}

// fuelPrices are the fixed per-liter prices of the lookup table.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fuelPrices = map[string]float64{
	FuelGasoline: 16700,
	FuelDiesel:   11795,
}

// Fuels returns the supported fuel type keys in display order.
func Fuels() []string {
	return []string{FuelGasoline, FuelDiesel}
}

// FuelEnergySelector returns the profile of fuelType. Matching ignores case
// and surrounding whitespace. An unknown fuel returns a *LookupError, which
// satisfies errors.Is(err, ErrInvalidFuelType); the lookup never panics.
func (c *Calculator) FuelEnergySelector(fuelType string) (FuelProfile, error) {
	key := strings.ToLower(strings.TrimSpace(fuelType))
	switch key {
	case FuelGasoline:
		return FuelProfile{
			FuelPrice:     fuelPrices[key],
			FuelEnergy:    c.ds.GasolineEnergy,
			EmisionFactor: c.ds.EmisionFactorGasoline,
		}, nil
	case FuelDiesel:
		return FuelProfile{
			FuelPrice:     fuelPrices[key],
			FuelEnergy:    c.ds.DieselEnergy,
			EmisionFactor: c.ds.EmisionFactorDiesel,
		}, nil
	default:
		return FuelProfile{}, newLookupError(fuelType)
	}
}
