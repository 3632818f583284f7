// Package generic renders schema node trees into the baseline
// JSON-Schema-like vocabulary: type, properties, required, items, enum,
// oneOf, and description.
package generic

import (
	"context"
	"errors"

	gojson "github.com/goccy/go-json"

	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
)

// Schema converts a node tree into a generic schema object suitable for
// direct JSON serialization. The translation is purely structural: one case
// per node kind, no configuration.
func Schema(n *node.Node) map[string]any {
	if n == nil {
		return nil
	}

	out := make(map[string]any)
	switch n.Kind {
	case node.KindOptional:
		// Optionality is carried by the enclosing object's required list;
		// the wrapper itself renders as its inner node. A description on the
		// wrapper wins over the inner node's.
		out = Schema(n.Inner)
		if n.Description != "" {
			out["description"] = n.Description
		}
		return out

	case node.KindString:
		out["type"] = "string"
	case node.KindInteger:
		out["type"] = "integer"
	case node.KindNumber:
		out["type"] = "number"
	case node.KindBoolean:
		out["type"] = "boolean"

	case node.KindArray:
		out["type"] = "array"
		out["items"] = Schema(n.Items)

	case node.KindObject:
		out["type"] = "object"
		properties := make(map[string]any, len(n.Fields))
		var required []string
		for _, field := range n.Fields {
			properties[field.Name] = fieldSchema(field)
			if field.Required {
				required = append(required, field.Name)
			}
		}
		out["properties"] = properties
		if len(required) > 0 {
			out["required"] = required
		}

	case node.KindStringEnum:
		out["type"] = "string"
		out["enum"] = stringsToAny(n.Values)

	case node.KindUnion:
		branches := make([]any, 0, len(n.Variants))
		for _, variant := range n.Variants {
			branches = append(branches, unionBranch(n.TagField, variant))
		}
		out["oneOf"] = branches
	}

	if n.Description != "" {
		out["description"] = n.Description
	}
	return out
}

func fieldSchema(field node.Field) map[string]any {
	rendered := Schema(field.Schema)
	if field.Description != "" {
		rendered["description"] = field.Description
	}
	return rendered
}

// unionBranch flattens one variant into an object carrying a literal tag
// property alongside the payload fields, the common JSON-Schema tagged-union
// shape. Non-object payloads (single-element tuples) land under a required
// "value" property since they have no fields to merge.
func unionBranch(tagField string, variant node.Variant) map[string]any {
	properties := map[string]any{
		tagField: map[string]any{
			"type": "string",
			"enum": []any{variant.Tag},
		},
	}
	required := []string{tagField}

	payload := variant.Schema
	if payload != nil {
		if payload.Kind == node.KindObject {
			for _, field := range payload.Fields {
				properties[field.Name] = fieldSchema(field)
				if field.Required {
					required = append(required, field.Name)
				}
			}
		} else {
			properties["value"] = Schema(payload)
			required = append(required, "value")
		}
	}

	branch := map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
	if variant.Description != "" {
		branch["description"] = variant.Description
	}
	return branch
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}

// Renderer adapts Schema to the render.Renderer contract, serializing the
// generic schema object to JSON text.
type Renderer struct{}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the generic renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "generic"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, root *node.Node, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("generic renderer: root node is required")
	}
	return gojson.MarshalIndent(Schema(root), "", "  ")
}
