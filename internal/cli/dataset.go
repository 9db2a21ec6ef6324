package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/dataset"
)

// NewDatasetShowCmd creates the dataset show command, printing the dataset in
// effect (built-in, or the --dataset overlay) as YAML.
func NewDatasetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the parameter dataset in effect",
		Example: `  # Built-in parameters
  evsavings dataset show

  # Parameters after applying an overlay
  evsavings dataset show --dataset my-dataset.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			return dataset.Save(cmd.OutOrStdout(), ds)
		},
	}
}

// NewDatasetInitCmd creates the dataset init command, writing the built-in
// dataset to a file that can be edited and passed back with --dataset.
func NewDatasetInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in dataset to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		Example: `  # Write dataset.yaml in the current directory
  evsavings dataset init

  # Overwrite an existing file
  evsavings dataset init ./params.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "dataset.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			return initDataset(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func initDataset(cmd *cobra.Command, path string, force bool) (err error) {
	if !force {
		exists, statErr := fileExists(path)
		if statErr != nil {
			return statErr
		}
		if exists {
			return errors.New("dataset file already exists, use --force to overwrite")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close dataset file: %w", closeErr)
		}
	}()

	if err = dataset.Save(f, dataset.Default()); err != nil {
		return err
	}

	cmd.Printf("Dataset written to %s\n", path)
	return nil
}
