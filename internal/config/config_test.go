package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/evsavings/internal/config"
	"github.com/rshade/evsavings/internal/logging"
)

// isolateHome points EVSAVINGS_HOME at a temp dir and resets global state.
func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return dir
}

func TestNew_NoFileUsesDefaults(t *testing.T) {
	dir := isolateHome(t)

	cfg := config.New()
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigPath())
	assert.Equal(t, config.OutputTable, cfg.Output.DefaultFormat)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "diesel", cfg.Defaults.FuelType)
	assert.InDelta(t, 2.8, cfg.Defaults.IPC, 0)
	require.NoError(t, cfg.Validate())
}

func TestNew_FileReplacesSections(t *testing.T) {
	dir := isolateHome(t)
	content := "output:\n  default_format: json\nlogging:\n  level: debug\nunknown: 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg := config.New()
	assert.Equal(t, config.OutputJSON, cfg.Output.DefaultFormat)
	// The output section is replaced whole, so precision falls to zero.
	assert.Equal(t, 0, cfg.Output.Precision)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.Format)
	// Absent sections keep their defaults.
	assert.Equal(t, "diesel", cfg.Defaults.FuelType)
}

func TestNew_InvalidFileFallsBack(t *testing.T) {
	dir := isolateHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: [unclosed"), 0o600))

	cfg := config.New()
	assert.Equal(t, config.Default().Output, cfg.Output)
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolateHome(t)

	cfg := config.Default()
	cfg.SetConfigPath(filepath.Join(dir, "nested", "config.yaml"))
	cfg.Defaults.FuelType = "gasoline"
	cfg.Defaults.IPC = 4.1
	require.NoError(t, cfg.Save())

	loaded := config.Default()
	require.NoError(t, config.ShallowMergeYAML(loaded, cfg.ConfigPath()))
	assert.Equal(t, cfg.Defaults, loaded.Defaults)
	assert.Equal(t, cfg.Output, loaded.Output)
}

func TestSave_NoPath(t *testing.T) {
	require.Error(t, config.Default().Save())
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	require.Error(t, config.ShallowMergeYAML(nil, "x"))
	require.Error(t, config.ShallowMergeYAML(config.Default(), filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*config.Config) {}},
		{name: "json output", mutate: func(c *config.Config) { c.Output.DefaultFormat = "JSON" }},
		{
			name:    "unknown format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: "output.default_format",
		},
		{
			name:    "precision too high",
			mutate:  func(c *config.Config) { c.Output.Precision = 11 },
			wantErr: "output.precision",
		},
		{
			name:    "missing dataset file",
			mutate:  func(c *config.Config) { c.Defaults.Dataset = "/nonexistent/dataset.yaml" },
			wantErr: "defaults.dataset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "info", Format: "json"}
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig().Output)

	lc.File = "/tmp/evsavings.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/evsavings.log", got.File)
	assert.Equal(t, "info", got.Level)
}

func TestGlobalConfig(t *testing.T) {
	isolateHome(t)

	first := config.GetGlobalConfig()
	assert.Same(t, first, config.GetGlobalConfig())
	assert.Equal(t, config.OutputTable, config.GetDefaultOutputFormat())
	assert.Equal(t, 2, config.GetOutputPrecision())
	assert.Equal(t, "diesel", config.GetDefaults().FuelType)

	config.ResetGlobalConfigForTest()
	assert.NotSame(t, first, config.GetGlobalConfig())
}

func TestEnsureLogDir(t *testing.T) {
	dir := isolateHome(t)
	cfg := config.GetGlobalConfig()
	cfg.Logging.File = filepath.Join(dir, "logs", "evsavings.log")

	require.NoError(t, config.EnsureLogDir())
	assert.DirExists(t, filepath.Join(dir, "logs"))
}
