package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/environment"
	"github.com/rshade/evsavings/internal/greenops"
)

// fuelEntry is one row of the fuels listing.
type fuelEntry struct {
	FuelType string `json:"fuel_type"`
	environment.FuelProfile
}

// NewFuelsCmd creates the fuels command listing the supported fuel profiles.
func NewFuelsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fuels",
		Short: "List supported fuel types and their profiles",
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
			calc := environment.New(ds)

			entries := make([]fuelEntry, 0, len(environment.Fuels()))
			for _, name := range environment.Fuels() {
				profile, lookupErr := calc.FuelEnergySelector(name)
				if lookupErr != nil {
					return lookupErr
				}
				entries = append(entries, fuelEntry{FuelType: name, FuelProfile: profile})
			}

			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			return renderFuels(cmd, entries)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (table, json)")

	return cmd
}

func renderFuels(cmd *cobra.Command, entries []fuelEntry) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FUEL\tPRICE (/L)\tENERGY (MJ/L)\tEMISSION FACTOR (gCO2/MJ)")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			e.FuelType,
			greenops.FormatFloat(e.FuelPrice, 0),
			greenops.FormatFloat(e.FuelEnergy, 2),
			greenops.FormatFloat(e.EmisionFactor, 2))
	}
	return tw.Flush()
}
