package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *GroveError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *GroveError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// OutputDir creates an error for an output directory that could not be created or used
func OutputDir(dir string, err error) *GroveError {
	return Wrap(err, ErrCodeOutputDir, fmt.Sprintf("cannot use output directory: %s", dir)).
		WithDetail("dir", dir)
}

// WriteFailed creates a file write failure error
func WriteFailed(path string, err error) *GroveError {
	return Wrap(err, ErrCodeWriteFailed, fmt.Sprintf("failed to write %s", path)).
		WithDetail("path", path)
}

// SchemaNotFound creates an unknown schema name error
func SchemaNotFound(name string, known []string) *GroveError {
	return New(ErrCodeSchemaNotFound, fmt.Sprintf("schema '%s' not found", name)).
		WithDetail("schema", name).
		WithDetail("known", strings.Join(known, ", "))
}

// SchemaDrift creates an error listing schema files that do not match the declarations
func SchemaDrift(dir string, stale []string) *GroveError {
	return New(ErrCodeSchemaDrift,
		fmt.Sprintf("%d schema file(s) out of date in %s: %s", len(stale), dir, strings.Join(stale, ", "))).
		WithDetail("dir", dir).
		WithDetail("stale", stale)
}

// ValidationFailed creates a schema validation failure error
func ValidationFailed(schema string, problems []string) *GroveError {
	return New(ErrCodeValidationFailed,
		fmt.Sprintf("document does not match schema '%s':\n%s", schema, strings.Join(problems, "\n"))).
		WithDetail("schema", schema).
		WithDetail("problems", problems)
}
