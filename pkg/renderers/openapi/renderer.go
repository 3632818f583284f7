// Package openapi renders schema node trees into OpenAPI 3.0 schema objects
// backed by the kin-openapi object model, so output composes with existing
// OpenAPI documents and tooling.
package openapi

import (
	"context"
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
	gojson "github.com/goccy/go-json"

	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
)

// Schema converts a node tree into an OpenAPI 3.0 schema object. Optional
// nodes render their inner schema with nullable set, while the enclosing
// object already omits the field from its required list; both signals are
// carried so consumers honouring either convention agree.
func Schema(n *node.Node) *openapi3.Schema {
	if n == nil {
		return nil
	}

	var out *openapi3.Schema
	switch n.Kind {
	case node.KindOptional:
		out = Schema(n.Inner)
		out.Nullable = true
		if n.Description != "" {
			out.Description = n.Description
		}
		return out

	case node.KindString:
		out = openapi3.NewStringSchema()
	case node.KindInteger:
		out = openapi3.NewIntegerSchema()
	case node.KindNumber:
		out = openapi3.NewFloat64Schema()
	case node.KindBoolean:
		out = openapi3.NewBoolSchema()

	case node.KindArray:
		out = openapi3.NewArraySchema()
		out.Items = openapi3.NewSchemaRef("", Schema(n.Items))

	case node.KindObject:
		out = objectSchema(n.Fields)

	case node.KindStringEnum:
		out = openapi3.NewStringSchema()
		out.Enum = stringsToAny(n.Values)

	case node.KindUnion:
		branches := make([]*openapi3.Schema, 0, len(n.Variants))
		for _, variant := range n.Variants {
			branches = append(branches, unionBranch(n.TagField, variant))
		}
		out = openapi3.NewOneOfSchema(branches...)
		out.Discriminator = &openapi3.Discriminator{PropertyName: n.TagField}

	default:
		out = openapi3.NewSchema()
	}

	if n.Description != "" {
		out.Description = n.Description
	}
	return out
}

func objectSchema(fields []node.Field) *openapi3.Schema {
	out := openapi3.NewObjectSchema()
	out.Properties = make(openapi3.Schemas, len(fields))
	for _, field := range fields {
		rendered := Schema(field.Schema)
		if field.Description != "" {
			rendered.Description = field.Description
		}
		out.Properties[field.Name] = openapi3.NewSchemaRef("", rendered)
		if field.Required {
			out.Required = append(out.Required, field.Name)
		}
	}
	return out
}

// unionBranch produces one oneOf entry: an object schema whose tag property
// is pinned to the variant name. Unlike the tool-call format the union keeps
// its discriminator object, so OpenAPI consumers can dispatch on the tag.
func unionBranch(tagField string, variant node.Variant) *openapi3.Schema {
	tagSchema := openapi3.NewStringSchema()
	tagSchema.Enum = []any{variant.Tag}

	branch := openapi3.NewObjectSchema()
	branch.Properties = openapi3.Schemas{
		tagField: openapi3.NewSchemaRef("", tagSchema),
	}
	branch.Required = []string{tagField}

	payload := variant.Schema
	if payload != nil {
		if payload.Kind == node.KindObject {
			for _, field := range payload.Fields {
				rendered := Schema(field.Schema)
				if field.Description != "" {
					rendered.Description = field.Description
				}
				branch.Properties[field.Name] = openapi3.NewSchemaRef("", rendered)
				if field.Required {
					branch.Required = append(branch.Required, field.Name)
				}
			}
		} else {
			branch.Properties["value"] = openapi3.NewSchemaRef("", Schema(payload))
			branch.Required = append(branch.Required, "value")
		}
	}

	if variant.Description != "" {
		branch.Description = variant.Description
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
// OpenAPI schema object to JSON text.
type Renderer struct{}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the OpenAPI renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "openapi"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, root *node.Node, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("openapi renderer: root node is required")
	}
	return gojson.MarshalIndent(Schema(root), "", "  ")
}
