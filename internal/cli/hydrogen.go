package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/hydrogen"
)

// NewHydrogenCmd creates the hydrogen command.
func NewHydrogenCmd() *cobra.Command {
	var (
		nominalEnergy float64
		output        string
	)

	cmd := &cobra.Command{
		Use:   "hydrogen",
		Short: "Estimate the energy and water needed to produce hydrogen",
		Long: `Runs the hydrogen production chain for a nominal energy: energy stored in
high pressure cylinders, low pressure energy before the fuel cell, electrolysis
energy, hydrogen mass and the water that electrolysis consumes.`,
		Example: `  # Hydrogen needed to deliver 8.14 kWh
  evsavings hydrogen --nominal-energy 8.14

  # Use the dataset nominal energy and output JSON
  evsavings hydrogen --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = config.GetDefaultOutputFormat()
			}
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}

			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("nominal-energy") {
				nominalEnergy = ds.NominalEnergy
			}

			production := hydrogen.Produce(hydrogen.New(ds), nominalEnergy)
			logger.Debug().Ctx(cmd.Context()).
				Float64("nominal_energy", nominalEnergy).
				Float64("hydrogen_mass", production.HydrogenMass).
				Msg("hydrogen chain computed")

			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), production)
			}
			return RenderHydrogen(cmd.OutOrStdout(), production, config.GetOutputPrecision())
		},
	}

	cmd.Flags().Float64Var(&nominalEnergy, "nominal-energy", 0, "energy to deliver (kWh, default: dataset nominal_energy)")
	cmd.Flags().StringVar(&output, "output", "", "output format (table, json)")

	return cmd
}
