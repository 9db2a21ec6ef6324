// Package cli implements the evsavings command line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/evsavings/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootCommand is the root command together with the log output its
// PersistentPreRunE opens.
type rootCommand struct {
	cmd       *cobra.Command
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the evsavings CLI. It wires
// logging and the compare, hydrogen, fuels, dataset and config commands.
//
// The log file is closed by PersistentPostRunE, which cobra skips when a
// command fails; Execute also closes it on that path.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCommand(ver).cmd
}

// Execute builds the root command, runs it with the process arguments and
// closes the log file whether or not the command succeeded.
func Execute(ver string) error {
	return newRootCommand(ver).execute()
}

func newRootCommand(ver string) *rootCommand {
	root := &rootCommand{}

	cmd := &cobra.Command{
		Use:     "evsavings",
		Short:   "Compare electric and combustion vehicle costs and emissions",
		Long:    "evsavings: per-kilometer consumption, cost, CO2 emissions, savings and tree equivalence of switching to an electric vehicle",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			root.logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(root.logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("dataset", "", "path to a dataset YAML file overriding the built-in parameters")
	cmd.AddCommand(
		NewCompareCmd(),
		NewHydrogenCmd(),
		NewFuelsCmd(),
		newDatasetCmd(),
		newConfigCmd(),
	)

	root.cmd = cmd
	return root
}

// execute runs the command tree, then closes the log file. A close error is
// returned only when the command itself succeeded.
func (r *rootCommand) execute() error {
	err := r.cmd.Execute()
	if closeErr := cleanupLogging(r.logResult); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

const rootCmdExample = `  # Compare a diesel car with an 81.14 kWh electric car rated for 200 km
  evsavings compare --fuel diesel --nominal-energy 81.14 --autonomy 200 --ipc 2.8

  # Same comparison as JSON, driving 15,000 km a year
  evsavings compare --fuel gasoline --annual-distance 15000 --output json

  # Energy and water needed to produce hydrogen for 8.14 kWh
  evsavings hydrogen --nominal-energy 8.14

  # List supported fuels
  evsavings fuels

  # Write the built-in dataset to a file for editing
  evsavings dataset init dataset.yaml

  # Initialize configuration
  evsavings config init`

// newDatasetCmd creates the dataset command group.
func newDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "dataset", Short: "Inspect and export the parameter dataset"}
	cmd.AddCommand(NewDatasetShowCmd(), NewDatasetInitCmd())
	return cmd
}

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}
