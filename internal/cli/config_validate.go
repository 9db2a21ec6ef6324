package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/dataset"
	"github.com/rshade/evsavings/internal/environment"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.evsavings/config.yaml for syntax and semantic correctness.

This includes:
- Output format and precision
- Default fuel type (an unset defaults.fuel_type means diesel; sections
  replace their defaults whole, so a partial defaults section clears it)
- Default dataset file (if present), which must load and carry a supported schema_version`,
		Example: `  # Validate current configuration
  evsavings config validate

  # Validate and show detailed information
  evsavings config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.New()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, err := environment.New(dataset.Default()).FuelEnergySelector(defaultFuel(cfg.Defaults)); err != nil {
		return fmt.Errorf("configuration validation failed: defaults.fuel_type %q: %w",
			cfg.Defaults.FuelType, err)
	}

	if cfg.Defaults.Dataset != "" {
		if _, err := dataset.Load(cfg.Defaults.Dataset); err != nil {
			return fmt.Errorf("configuration validation failed: defaults.dataset: %w", err)
		}
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	if fuel := defaultFuel(cfg.Defaults); fuel != cfg.Defaults.FuelType {
		cmd.Printf("  Default fuel: %s (defaults.fuel_type unset)\n", fuel)
	} else {
		cmd.Printf("  Default fuel: %s\n", cfg.Defaults.FuelType)
	}
	cmd.Printf("  Default IPC: %g\n", cfg.Defaults.IPC)
	if cfg.Defaults.Dataset == "" {
		cmd.Println("  Dataset: built-in")
	} else {
		cmd.Printf("  Dataset: %s\n", cfg.Defaults.Dataset)
	}
}
