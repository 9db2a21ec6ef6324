// Package config loads the evsavings configuration file.
//
// Configuration lives in $EVSAVINGS_HOME/config.yaml (default
// ~/.evsavings/config.yaml). A missing file yields the defaults; sections
// present in the file replace the corresponding default section whole.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/evsavings/internal/environment"
)

// Output formats accepted by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// maxPrecision bounds the decimals the table renderer prints.
const maxPrecision = 10

// Config is the whole configuration file.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Defaults DefaultsConfig `yaml:"defaults"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DefaultsConfig supplies scenario values the user did not pass as flags.
type DefaultsConfig struct {
	FuelType string  `yaml:"fuel_type"`
	IPC      float64 `yaml:"ipc"`

	// Dataset is the path of a dataset overlay file. Empty uses the built-in
	// dataset.
	Dataset string `yaml:"dataset,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: OutputTable,
			Precision:     2,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
		Defaults: DefaultsConfig{
			FuelType: environment.FuelDiesel,
			IPC:      2.8,
		},
	}
}

// New returns the defaults overlaid with the configuration file, if one
// exists. An unreadable or invalid file is reported on stderr and ignored.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err != nil {
		return cfg
	}
	cfg.configPath = filepath.Join(dir, "config.yaml")

	if _, statErr := os.Stat(cfg.configPath); statErr != nil {
		return cfg
	}

	loaded := Default()
	loaded.configPath = cfg.configPath
	if mergeErr := ShallowMergeYAML(loaded, cfg.configPath); mergeErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", mergeErr)
		return cfg
	}
	return loaded
}

// ConfigPath returns the file the configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path not set")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the fields the CLI depends on.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Output.DefaultFormat) {
	case OutputTable, OutputJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format must be %q or %q, got %q",
			OutputTable, OutputJSON, c.Output.DefaultFormat))
	}

	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and %d, got %d",
			maxPrecision, c.Output.Precision))
	}

	if c.Defaults.Dataset != "" {
		if _, err := os.Stat(c.Defaults.Dataset); err != nil {
			errs = append(errs, fmt.Errorf("defaults.dataset: %w", err))
		}
	}

	return errors.Join(errs...)
}
