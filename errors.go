package dexschemas

import "fmt"

// ResolutionError reports a schema identifier with no bundled document, or a
// bundled document that failed to deserialize. It is returned both for the
// identifier a caller names and for identifiers reached through $ref.
type ResolutionError struct {
	SchemaID string
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("dexschemas: resolving schema %q: %v", e.SchemaID, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// ParseError reports input text that is not valid encoded data. It is
// returned by the JSON and YAML entry points before any validation runs.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dexschemas: parsing input: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports data that violates the named schema. The wrapped
// engine error describes the violated constraint and the instance path.
type ValidationError struct {
	SchemaID string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dexschemas: data does not conform to %q: %v", e.SchemaID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
