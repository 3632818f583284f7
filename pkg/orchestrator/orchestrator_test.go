package orchestrator_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	internalloader "github.com/goliatone/go-schemagen/internal/descriptor/loader"
	"github.com/goliatone/go-schemagen/pkg/descriptor"
	"github.com/goliatone/go-schemagen/pkg/orchestrator"
	"github.com/goliatone/go-schemagen/pkg/render"
)

const descriptorDocument = `
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
      - name: addresses
        type: "[]Address"
  - name: Address
    fields:
      - name: street
        type: string
      - name: city
        type: string
`

func documentFixture(t *testing.T) *descriptor.Document {
	t.Helper()
	doc, err := descriptor.NewDocument(descriptor.SourceFromFS("types.yaml"), []byte(descriptorDocument))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return &doc
}

func TestGenerateFromDocument(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	output, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Person",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(output, &schema); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if schema["type"] != "object" {
		t.Fatalf("expected object schema, got %v", schema["type"])
	}
	if diff := cmp.Diff([]any{"name", "age", "addresses"}, schema["required"]); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}

	properties := schema["properties"].(map[string]any)
	addresses := properties["addresses"].(map[string]any)
	if addresses["type"] != "array" {
		t.Fatalf("expected nested array, got %v", addresses)
	}
	items := addresses["items"].(map[string]any)
	if items["type"] != "object" {
		t.Fatalf("expected resolved Address object, got %v", items)
	}
}

func TestGenerateFromSource(t *testing.T) {
	t.Parallel()

	files := fstest.MapFS{
		"schemas/types.yaml": &fstest.MapFile{Data: []byte(descriptorDocument)},
	}
	loader := internalloader.New(descriptor.NewLoaderOptions(descriptor.WithFileSystem(files)))

	gen := orchestrator.New(orchestrator.WithLoader(loader))
	output, err := gen.Generate(context.Background(), orchestrator.Request{
		Source: descriptor.SourceFromFS("schemas/types.yaml"),
		Type:   "Address",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(output, &schema); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff([]any{"street", "city"}, schema["required"]); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromResolver(t *testing.T) {
	t.Parallel()

	registry := descriptor.NewRegistry()
	registry.MustRegister(descriptor.Type{
		Name: "Status",
		Kind: descriptor.KindEnum,
		Variants: []descriptor.Variant{
			{Name: "Active"},
			{Name: "Inactive"},
		},
	})

	gen := orchestrator.New(orchestrator.WithResolver(registry))
	output, err := gen.Generate(context.Background(), orchestrator.Request{Type: "Status"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(output, &schema); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if diff := cmp.Diff([]any{"Active", "Inactive"}, schema["enum"]); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateToolCallDefaultsName(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	output, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Person",
		Renderer: "toolcall",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(output, &envelope); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if envelope["name"] != "Person" {
		t.Fatalf("expected tool name to default to the type, got %v", envelope["name"])
	}
}

func TestGenerateWITRenderer(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	output, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Address",
		Renderer: "wit",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.HasPrefix(string(output), "record address {") {
		t.Fatalf("unexpected wit output:\n%s", output)
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Person",
		Renderer: "xml",
	})
	if err == nil || !strings.Contains(err.Error(), `renderer "xml"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateUnknownType(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Missing",
	})
	if err == nil || !strings.Contains(err.Error(), "resolve root type") {
		t.Fatalf("expected resolution error, got %v", err)
	}
}

func TestGenerateRequiresType(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
	})
	if err == nil {
		t.Fatalf("expected error for missing type name")
	}
}

func TestGenerateRequiresDescriptorSource(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	_, err := gen.Generate(context.Background(), orchestrator.Request{Type: "Person"})
	if err == nil {
		t.Fatalf("expected error when no source, document, or resolver is available")
	}
}

func TestGenerateCustomTagField(t *testing.T) {
	t.Parallel()

	registry := descriptor.NewRegistry()
	registry.MustRegister(descriptor.Type{
		Name: "Event",
		Kind: descriptor.KindEnum,
		Variants: []descriptor.Variant{
			{Name: "Start"},
			{
				Name: "Fill",
				Payload: descriptor.Payload{
					Kind:   descriptor.PayloadStruct,
					Fields: []descriptor.Field{{Name: "value", Type: descriptor.String()}},
				},
			},
		},
	})

	gen := orchestrator.New(
		orchestrator.WithResolver(registry),
		orchestrator.WithTagField("kind"),
	)
	output, err := gen.Generate(context.Background(), orchestrator.Request{Type: "Event"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var schema map[string]any
	if err := json.Unmarshal(output, &schema); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	branches := schema["oneOf"].([]any)
	first := branches[0].(map[string]any)
	properties := first["properties"].(map[string]any)
	if _, ok := properties["kind"]; !ok {
		t.Fatalf("expected custom tag property, got %v", properties)
	}
}

func TestGenerateWithRenderOptions(t *testing.T) {
	t.Parallel()

	gen := orchestrator.New()
	output, err := gen.Generate(context.Background(), orchestrator.Request{
		Document: documentFixture(t),
		Type:     "Person",
		Renderer: "toolcall",
		RenderOptions: render.RenderOptions{
			ToolName:        "create_person",
			ToolDescription: "Create a person record",
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(output, &envelope); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if envelope["name"] != "create_person" {
		t.Fatalf("unexpected tool name %v", envelope["name"])
	}
	if envelope["description"] != "Create a person record" {
		t.Fatalf("unexpected description %v", envelope["description"])
	}
}
