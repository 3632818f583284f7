package codec

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemagen/pkg/descriptor"
)

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	payload := []byte(`
types:
  - name: Person
    description: A person record
    fields:
      - name: name
        type: string
      - name: age
        type: integer
      - name: email
        type: string
        optional: true
      - name: internal_id
        type: string
        skip: true
  - name: Status
    kind: enum
    variants:
      - name: Active
      - name: Inactive
`)

	registry, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	person, err := registry.Resolve("Person")
	if err != nil {
		t.Fatalf("resolve Person: %v", err)
	}
	if person.Kind != descriptor.KindStruct {
		t.Fatalf("expected struct, got %q", person.Kind)
	}
	if person.Description != "A person record" {
		t.Fatalf("unexpected description %q", person.Description)
	}
	if len(person.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(person.Fields))
	}
	if !person.Fields[2].Optional {
		t.Fatalf("expected email to be optional")
	}
	if !person.Fields[3].Skip {
		t.Fatalf("expected internal_id to be skipped")
	}

	status, err := registry.Resolve("Status")
	if err != nil {
		t.Fatalf("resolve Status: %v", err)
	}
	if status.Kind != descriptor.KindEnum || len(status.Variants) != 2 {
		t.Fatalf("unexpected enum shape: %+v", status)
	}
	if status.Variants[0].Payload.Kind != descriptor.PayloadUnit {
		t.Fatalf("expected unit payload, got %q", status.Variants[0].Payload.Kind)
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"types": [
			{
				"name": "Event",
				"kind": "enum",
				"variants": [
					{"name": "Start"},
					{"name": "Fill", "fields": [{"name": "value", "type": "string"}]},
					{"name": "Resize", "elements": ["integer", "integer"]}
				]
			}
		]
	}`)

	registry, err := Decode(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	event, err := registry.Resolve("Event")
	if err != nil {
		t.Fatalf("resolve Event: %v", err)
	}

	if event.Variants[1].Payload.Kind != descriptor.PayloadStruct {
		t.Fatalf("expected struct payload for Fill, got %q", event.Variants[1].Payload.Kind)
	}
	if event.Variants[2].Payload.Kind != descriptor.PayloadTuple {
		t.Fatalf("expected tuple payload for Resize, got %q", event.Variants[2].Payload.Kind)
	}
	if len(event.Variants[2].Payload.Elements) != 2 {
		t.Fatalf("expected 2 tuple elements, got %d", len(event.Variants[2].Payload.Elements))
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{"empty", "   ", "payload is empty"},
		{"no types", "types: []", "declares no types"},
		{"missing name", "types:\n  - kind: struct", "missing name"},
		{"unknown kind", "types:\n  - name: X\n    kind: widget", `unknown kind "widget"`},
		{"struct with variants", "types:\n  - name: X\n    variants:\n      - name: A", "declares variants"},
		{"enum with fields", "types:\n  - name: X\n    kind: enum\n    fields:\n      - name: a\n        type: string", "top-level fields"},
		{"variant both shapes", `{"types":[{"name":"X","kind":"enum","variants":[{"name":"A","fields":[{"name":"a","type":"string"}],"elements":["string"]}]}]}`, "both fields and elements"},
		{"duplicate type", "types:\n  - name: X\n  - name: X", "already registered"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tc.payload))
			if err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestParseTypeRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want descriptor.TypeRef
	}{
		{"string", descriptor.String()},
		{"integer", descriptor.Integer()},
		{"number", descriptor.Number()},
		{"boolean", descriptor.Boolean()},
		{"[]string", descriptor.ArrayOf(descriptor.String())},
		{"?integer", descriptor.OptionalOf(descriptor.Integer())},
		{"?[]Address", descriptor.OptionalOf(descriptor.ArrayOf(descriptor.Named("Address")))},
		{"Address", descriptor.Named("Address")},
		{"  string ", descriptor.String()},
	}

	for _, tc := range cases {
		got, err := ParseTypeRef(tc.raw)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.raw, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("parse %q mismatch (-want +got):\n%s", tc.raw, diff)
		}
	}

	if _, err := ParseTypeRef(""); err == nil {
		t.Fatalf("expected error for empty reference")
	}
	if _, err := ParseTypeRef("[]"); err == nil {
		t.Fatalf("expected error for bare array prefix")
	}
}
