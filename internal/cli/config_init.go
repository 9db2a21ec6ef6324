package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
)

// NewConfigInitCmd creates the config init command, writing the default
// configuration to $EVSAVINGS_HOME/config.yaml (default ~/.evsavings).
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to $EVSAVINGS_HOME/config.yaml, or ~/.evsavings/config.yaml
when EVSAVINGS_HOME is not set. An existing file is kept unless --force is given.`,
		Example: `  # Create configuration
  evsavings config init

  # Create configuration, overwriting existing
  evsavings config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	// config.New would pick up an existing file; init always starts from defaults.
	cfg := config.Default()
	cfg.SetConfigPath(filepath.Join(dir, "config.yaml"))

	if !force {
		exists, statErr := fileExists(cfg.ConfigPath())
		if statErr != nil {
			return statErr
		}
		if exists {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
	}

	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
