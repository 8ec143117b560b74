package dexschemas

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Resolver maps schema identifiers such as "/orderSchema" to the schema
// documents bundled under schemas/. It implements jsonschema.URLLoader, so
// nested $refs encountered during compilation resolve through the same
// identifier translation as top-level lookups.
type Resolver struct{}

// NewResolver returns a Resolver over the bundled schema set.
func NewResolver() *Resolver { return &Resolver{} }

// Load implements jsonschema.URLLoader.
func (r *Resolver) Load(url string) (any, error) { return r.Resolve(url) }

// Resolve returns the deserialized schema document for the given identifier.
// The identifier may be bare ("/orderSchema") or carry a file scheme
// ("file:///orderSchema"); both forms resolve to the same document. A
// *ResolutionError is returned when no bundled schema matches or the bundled
// file is not valid JSON.
func (r *Resolver) Resolve(id string) (any, error) {
	f, err := schemaFS.Open("schemas/" + schemaFilename(id))
	if err != nil {
		return nil, &ResolutionError{SchemaID: id, Err: err}
	}
	defer f.Close()
	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, &ResolutionError{SchemaID: id, Err: err}
	}
	return doc, nil
}

// SchemaIDs returns the identifiers of every bundled schema, sorted.
func SchemaIDs() []string {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		panic(fmt.Sprintf("dexschemas: reading embedded schemas: %v", err))
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, "/"+schemaID(strings.TrimSuffix(e.Name(), ".json")))
	}
	sort.Strings(ids)
	return ids
}

// schemaFilename converts an identifier like "file:///ecSignatureSchema" into
// the bundled filename "ec_signature_schema.json". After stripping the scheme
// prefix and a single leading slash, each uppercase letter becomes an
// underscore followed by its lowercase form; no other characters change.
func schemaFilename(id string) string {
	id = strings.TrimPrefix(id, "file://")
	id = strings.TrimPrefix(id, "/")
	var b strings.Builder
	b.Grow(len(id) + len(".json"))
	for _, c := range id {
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(c + ('a' - 'A'))
			continue
		}
		b.WriteRune(c)
	}
	b.WriteString(".json")
	return b.String()
}

// schemaID is the inverse of schemaFilename: "ec_signature_schema" becomes
// "ecSignatureSchema".
func schemaID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, c := range name {
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			b.WriteRune(c - ('a' - 'A'))
			upper = false
			continue
		}
		upper = false
		b.WriteRune(c)
	}
	return b.String()
}
