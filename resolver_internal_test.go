package dexschemas

import (
	"strings"
	"testing"
)

func TestSchemaFilename(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"/orderSchema", "order_schema.json"},
		{"file:///orderSchema", "order_schema.json"},
		{"/ecSignatureSchema", "ec_signature_schema.json"},
		{"orderSchema", "order_schema.json"},
		{"/hex", "hex.json"},
	}
	for _, c := range cases {
		if got := schemaFilename(c.id); got != c.want {
			t.Fatalf("schemaFilename(%q) = %q, want %q", c.id, got, c.want)
		}
	}
}

func TestSchemaFilename_BijectiveOverBundledSet(t *testing.T) {
	seen := map[string]string{}
	for _, id := range SchemaIDs() {
		name := schemaFilename(id)
		if prev, dup := seen[name]; dup {
			t.Fatalf("identifiers %q and %q collide on filename %q", prev, id, name)
		}
		seen[name] = id

		// The inverse transform must round-trip every bundled identifier.
		back := "/" + schemaID(strings.TrimSuffix(name, ".json"))
		if back != id {
			t.Fatalf("round trip of %q via %q gave %q", id, name, back)
		}
	}
}
