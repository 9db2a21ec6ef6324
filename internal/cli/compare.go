package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/dataset"
	"github.com/rshade/evsavings/internal/environment"
	"github.com/rshade/evsavings/internal/greenops"
)

// CompareParams holds the flags of the compare command.
type CompareParams struct {
	FuelType       string
	NominalEnergy  float64
	Autonomy       float64
	IPC            float64
	FuelPrice      float64
	EnergyPrice    float64
	AnnualDistance float64
	Output         string
}

// CompareReport is the JSON document written by compare.
type CompareReport struct {
	Comparison  environment.Comparison     `json:"comparison"`
	Equivalency greenops.EquivalencyOutput `json:"equivalency"`
}

// NewCompareCmd creates the compare command.
//
// Flags left unset take their value from the configuration defaults
// (fuel, ipc) or the dataset (nominal energy, autonomy, energy price,
// annual distance).
func NewCompareCmd() *cobra.Command {
	var params CompareParams

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare an electric vehicle with a combustion vehicle",
		Long: `Computes per-kilometer consumption, cost and CO2 emissions of an electric
vehicle and of a combustion vehicle covering the same distance, the yearly
energy, emission and cost savings, and the number of trees absorbing the
avoided CO2.`,
		Example: `  # Diesel car against an 81.14 kWh electric car rated for 200 km
  evsavings compare --fuel diesel --nominal-energy 81.14 --autonomy 200 --ipc 2.8

  # Override the fuel price and output JSON
  evsavings compare --fuel gasoline --fuel-price 15900 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompare(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.FuelType, "fuel", "", "combustion fuel type (gasoline, diesel)")
	cmd.Flags().Float64Var(&params.NominalEnergy, "nominal-energy", 0, "electric vehicle nominal battery energy (kWh)")
	cmd.Flags().Float64Var(&params.Autonomy, "autonomy", 0, "advertised electric vehicle range (km)")
	cmd.Flags().Float64Var(&params.IPC, "ipc", 0, "annual inflation index in percent")
	cmd.Flags().Float64Var(&params.FuelPrice, "fuel-price", 0, "fuel price per liter (0 = fuel table price)")
	cmd.Flags().Float64Var(&params.EnergyPrice, "energy-price", 0, "electricity price per kWh (0 = dataset price)")
	cmd.Flags().Float64Var(&params.AnnualDistance, "annual-distance", 0, "km driven per year (0 = dataset annual use)")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json)")

	return cmd
}

// ResolveScenario fills unset compare flags from the configuration defaults
// and the dataset. Exported for testing.
func ResolveScenario(cmd *cobra.Command, params CompareParams, ds dataset.Dataset) environment.Scenario {
	defaults := config.GetDefaults()
	s := environment.Scenario{
		FuelType:       params.FuelType,
		NominalEnergy:  params.NominalEnergy,
		Autonomy:       params.Autonomy,
		IPC:            params.IPC,
		FuelPrice:      params.FuelPrice,
		EnergyPrice:    params.EnergyPrice,
		AnnualDistance: params.AnnualDistance,
	}

	if !cmd.Flags().Changed("fuel") {
		s.FuelType = defaultFuel(defaults)
	}
	if !cmd.Flags().Changed("ipc") {
		s.IPC = defaults.IPC
	}
	if !cmd.Flags().Changed("nominal-energy") {
		s.NominalEnergy = ds.NominalEnergy
	}
	if !cmd.Flags().Changed("autonomy") {
		s.Autonomy = ds.AutonomyNominal
	}
	return s
}

// defaultFuel returns the configured default fuel, or diesel when a partial
// defaults section left it empty.
func defaultFuel(defaults config.DefaultsConfig) string {
	if strings.TrimSpace(defaults.FuelType) == "" {
		return environment.FuelDiesel
	}
	return defaults.FuelType
}

func executeCompare(cmd *cobra.Command, params CompareParams) error {
	ctx := cmd.Context()

	if params.Output == "" {
		params.Output = config.GetDefaultOutputFormat()
	}
	format, err := resolveOutputFormat(params.Output)
	if err != nil {
		return err
	}

	ds, err := loadDataset(cmd)
	if err != nil {
		return err
	}
	calc := environment.New(ds)
	scenario := ResolveScenario(cmd, params, ds)

	logger.Debug().Ctx(ctx).
		Str("fuel_type", scenario.FuelType).
		Float64("nominal_energy", scenario.NominalEnergy).
		Float64("autonomy", scenario.Autonomy).
		Float64("ipc", scenario.IPC).
		Msg("running comparison")

	comparison, err := calc.Compare(ctx, scenario)
	if err != nil {
		var lookupErr *environment.LookupError
		if errors.As(err, &lookupErr) {
			if renderErr := renderLookupError(cmd.OutOrStdout(), format, lookupErr); renderErr != nil {
				return renderErr
			}
			return &ExitError{ExitCode: exitCodeLookup, Err: err}
		}
		return err
	}

	equivalency, err := greenops.Calculate(
		greenops.CarbonInput{Value: comparison.AvoidedEmissions, Unit: "t"}, calc)
	if err != nil {
		// Negative or degenerate savings have no tree equivalent.
		logger.Debug().Ctx(ctx).Err(err).Msg("no tree equivalency for avoided emissions")
	}

	report := CompareReport{Comparison: comparison, Equivalency: equivalency}
	if format == config.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return RenderComparison(cmd.OutOrStdout(), report, config.GetOutputPrecision())
}

// renderLookupError writes the failure record of an unknown fuel.
func renderLookupError(w io.Writer, format string, lookupErr *environment.LookupError) error {
	if format == config.OutputJSON {
		return writeJSON(w, lookupErr)
	}
	_, err := fmt.Fprintf(w, "Error: %s %q (error_code %d)\nSupported fuels: %v\n",
		lookupErr.Message, lookupErr.FuelType, lookupErr.Code, environment.Fuels())
	return err
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
