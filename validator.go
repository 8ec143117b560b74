package dexschemas

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Validator compiles bundled schemas on first use and caches the compiled
// form per identifier. Compiled schemas are immutable, so one Validator is
// safe for concurrent use; compilation itself is serialized by the mutex.
type Validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	compiled map[string]*jsonschema.Schema
}

// NewValidator returns a Validator over the bundled schema set. The bundled
// documents use draft-04 "id" identifiers, so the compiler defaults to that
// draft and resolves file-scheme references through the package Resolver.
func NewValidator() *Validator {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft4)
	c.UseLoader(jsonschema.SchemeURLLoader{"file": NewResolver()})
	return &Validator{
		compiler: c,
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate checks data against the bundled schema named by schemaID, for
// example "/orderSchema". It returns nil when every constraint holds, a
// *ValidationError when data violates the schema, and a *ResolutionError when
// schemaID (or an identifier reached from it through $ref) names no bundled
// schema.
func (v *Validator) Validate(data any, schemaID string) error {
	s, err := v.schema(schemaID)
	if err != nil {
		return err
	}
	if err := s.Validate(data); err != nil {
		return &ValidationError{SchemaID: schemaID, Err: err}
	}
	return nil
}

// ValidateJSON decodes text as a single JSON value and validates the result
// as Validate does. Numbers decode as json.Number so that amounts beyond
// float64 precision survive intact. Malformed or trailing input yields a
// *ParseError.
func (v *Validator) ValidateJSON(text string, schemaID string) error {
	data, err := decodeJSON(text)
	if err != nil {
		return &ParseError{Err: err}
	}
	return v.Validate(data, schemaID)
}

// ValidateYAML decodes text as a single YAML document, normalizes it to
// JSON-shaped values, and validates the result as Validate does.
func (v *Validator) ValidateYAML(text string, schemaID string) error {
	var node any
	if err := yaml.Unmarshal([]byte(text), &node); err != nil {
		return &ParseError{Err: err}
	}
	return v.Validate(normalizeYAML(node), schemaID)
}

func (v *Validator) schema(schemaID string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s, ok := v.compiled[schemaID]; ok {
		return s, nil
	}
	url := "file:///" + strings.TrimPrefix(strings.TrimPrefix(schemaID, "file://"), "/")
	s, err := v.compiler.Compile(url)
	if err != nil {
		var re *ResolutionError
		if errors.As(err, &re) {
			return nil, re
		}
		return nil, &ResolutionError{SchemaID: schemaID, Err: err}
	}
	v.compiled[schemaID] = s
	return s, nil
}

func decodeJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return data, nil
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = normalizeYAML(vv)
		}
		return out
	case []any:
		for i := range t {
			t[i] = normalizeYAML(t[i])
		}
		return t
	default:
		return v
	}
}

var defaultValidator = sync.OnceValue(NewValidator)

// AssertValid validates data against the bundled schema named by schemaID
// using a shared Validator, so repeated calls reuse compiled schemas.
func AssertValid(data any, schemaID string) error {
	return defaultValidator().Validate(data, schemaID)
}

// AssertValidJSON validates JSON text against the bundled schema named by
// schemaID using a shared Validator.
func AssertValidJSON(text string, schemaID string) error {
	return defaultValidator().ValidateJSON(text, schemaID)
}

// AssertValidYAML validates a YAML document against the bundled schema named
// by schemaID using a shared Validator.
func AssertValidYAML(text string, schemaID string) error {
	return defaultValidator().ValidateYAML(text, schemaID)
}
