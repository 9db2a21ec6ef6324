package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/dataset"
)

// ExitError carries a process exit code for failures main must not report
// with the default code.
type ExitError struct {
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeLookup is the exit code of an unknown fuel type.
const exitCodeLookup = 2

// loadDataset returns the dataset selected by --dataset, the configured
// defaults.dataset path, or the built-in dataset, in that order.
func loadDataset(cmd *cobra.Command) (dataset.Dataset, error) {
	path, _ := cmd.Flags().GetString("dataset")
	if path == "" {
		path = config.GetDefaults().Dataset
	}
	if path == "" {
		return dataset.Default(), nil
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return dataset.Dataset{}, fmt.Errorf("loading dataset: %w", err)
	}
	logger.Debug().Ctx(cmd.Context()).Str("path", path).Msg("dataset loaded")
	return ds, nil
}

// resolveOutputFormat validates the --output value.
func resolveOutputFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case config.OutputTable, config.OutputJSON:
		return f, nil
	case "":
		return config.OutputTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (table, json)", format)
	}
}

// isWriterTerminal reports whether w is an *os.File attached to a terminal.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// fileExists reports whether path exists, treating stat errors other than
// not-exist as existing so callers refuse to overwrite.
func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return true, fmt.Errorf("cannot access %s: %w", path, err)
}
