package dataset

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnsupportedSchema indicates a dataset file written for an incompatible
	// schema major version.
	ErrUnsupportedSchema = constError("unsupported dataset schema version")

	// ErrInvalidSchemaVersion indicates a schema_version that is not a semantic version.
	ErrInvalidSchemaVersion = constError("invalid dataset schema version")
)
