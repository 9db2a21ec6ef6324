package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/evsavings/internal/dataset"
)

func TestDatasetShow(t *testing.T) {
	isolateCLI(t)

	out, err := execute(t, "dataset", "show")
	require.NoError(t, err)

	ds, err := dataset.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, dataset.Default(), ds)
	assert.Contains(t, out, "compresor_eficiency_factor: 0.95")
}

func TestDatasetShow_Overlay(t *testing.T) {
	isolateCLI(t)
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("young_tree: 12\n"), 0o600))

	out, err := execute(t, "dataset", "show", "--dataset", path)
	require.NoError(t, err)
	assert.Contains(t, out, "young_tree: 12")
}

func TestDatasetInit(t *testing.T) {
	isolateCLI(t)
	path := filepath.Join(t.TempDir(), "params.yaml")

	out, err := execute(t, "dataset", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset written to "+path)

	ds, err := dataset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, dataset.Default(), ds)

	_, err = execute(t, "dataset", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "dataset", "init", path, "--force")
	require.NoError(t, err)
}

func TestDatasetInit_DefaultPath(t *testing.T) {
	isolateCLI(t)
	t.Chdir(t.TempDir())

	_, err := execute(t, "dataset", "init")
	require.NoError(t, err)
	assert.FileExists(t, "dataset.yaml")
}
