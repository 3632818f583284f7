package toolcall_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-schemagen/pkg/descriptor"
	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
	"github.com/goliatone/go-schemagen/pkg/renderers/toolcall"
)

func searchFilesNode(t *testing.T) *node.Node {
	t.Helper()
	built, err := node.NewBuilder().Build(context.Background(), descriptor.Type{
		Name:        "SearchFiles",
		Kind:        descriptor.KindStruct,
		Description: "Search files by name pattern",
		Fields: []descriptor.Field{
			{Name: "query", Type: descriptor.String(), Description: "Glob or substring to match"},
			{Name: "limit", Type: descriptor.Integer(), Optional: true},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return built
}

func TestNewDefinition(t *testing.T) {
	t.Parallel()

	definition, err := toolcall.NewDefinition(searchFilesNode(t), "search_files")
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}

	if definition.Name != "search_files" {
		t.Fatalf("unexpected name %q", definition.Name)
	}
	if definition.Description != "Search files by name pattern" {
		t.Fatalf("unexpected description %q", definition.Description)
	}

	wantSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Glob or substring to match",
			},
			"limit": map[string]any{"type": "integer"},
		},
		"required":    []string{"query"},
		"description": "Search files by name pattern",
	}
	if diff := cmp.Diff(wantSchema, definition.InputSchema); diff != "" {
		t.Fatalf("input schema mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDefinitionUnwrapsOptionalRoot(t *testing.T) {
	t.Parallel()

	wrapped := &node.Node{Kind: node.KindOptional, Inner: searchFilesNode(t)}
	definition, err := toolcall.NewDefinition(wrapped, "search_files")
	if err != nil {
		t.Fatalf("new definition: %v", err)
	}
	if definition.InputSchema["type"] != "object" {
		t.Fatalf("expected object input schema, got %v", definition.InputSchema)
	}
}

func TestNewDefinitionRejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := toolcall.NewDefinition(&node.Node{Kind: node.KindStringEnum, Values: []string{"A"}}, "choose")

	var invalid toolcall.InvalidToolSchemaError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidToolSchemaError, got %v", err)
	}
	if invalid.Kind != node.KindStringEnum {
		t.Fatalf("unexpected kind %q", invalid.Kind)
	}
}

func TestNewDefinitionRequiresName(t *testing.T) {
	t.Parallel()

	if _, err := toolcall.NewDefinition(searchFilesNode(t), ""); err == nil {
		t.Fatalf("expected error for empty tool name")
	}
}

func TestRenderEnvelope(t *testing.T) {
	t.Parallel()

	rendered, err := toolcall.New().Render(context.Background(), searchFilesNode(t), render.RenderOptions{
		TypeName:        "SearchFiles",
		ToolName:        "search_files",
		ToolDescription: "Find files in the workspace",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(rendered, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	if envelope["name"] != "search_files" {
		t.Fatalf("unexpected tool name %v", envelope["name"])
	}
	if envelope["description"] != "Find files in the workspace" {
		t.Fatalf("description override not applied: %v", envelope["description"])
	}
	if _, ok := envelope["input_schema"].(map[string]any); !ok {
		t.Fatalf("expected input_schema object, got %v", envelope["input_schema"])
	}
}

func TestRenderFallsBackToTypeName(t *testing.T) {
	t.Parallel()

	rendered, err := toolcall.New().Render(context.Background(), searchFilesNode(t), render.RenderOptions{
		TypeName: "SearchFiles",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(rendered, &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope["name"] != "SearchFiles" {
		t.Fatalf("expected type name fallback, got %v", envelope["name"])
	}
}
