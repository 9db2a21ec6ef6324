package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// supportedSchema is the range of schema versions Parse accepts.
const supportedSchema = "^1"

// Load reads a YAML dataset file and overlays it on Default. Keys absent from
// the file keep their default value. Values are not range checked.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	ds, err := Parse(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes YAML dataset bytes overlaid on Default.
//
// Duplicate keys are rejected by the decoder rather than resolved silently.
func Parse(data []byte) (Dataset, error) {
	ds := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return ds, nil
	}

	if err := yaml.Unmarshal(data, &ds); err != nil {
		return Dataset{}, err
	}
	if err := checkSchema(ds.SchemaVersion); err != nil {
		return Dataset{}, err
	}
	if ds.SchemaVersion == "" {
		ds.SchemaVersion = SchemaVersion
	}
	return ds, nil
}

// checkSchema verifies that version satisfies supportedSchema. An empty
// version is accepted as the current schema.
func checkSchema(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaVersion, version, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("invalid schema constraint %q: %w", supportedSchema, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w %s (want %s)", ErrUnsupportedSchema, v, supportedSchema)
	}
	return nil
}

// Save writes ds to w as YAML.
func Save(w io.Writer, ds Dataset) error {
	if ds.SchemaVersion == "" {
		ds.SchemaVersion = SchemaVersion
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return enc.Close()
}
