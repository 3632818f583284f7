// Package toolcall wraps schema node trees into LLM tool-definition
// envelopes: a named tool whose input_schema describes an object of typed
// arguments.
package toolcall

import (
	"context"
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
	"github.com/goliatone/go-schemagen/pkg/renderers/generic"
)

// Definition is the tool envelope consumed by LLM APIs.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// InvalidToolSchemaError reports a root node that cannot describe a tool's
// arguments. Tool definitions require an object of named, typed parameters.
type InvalidToolSchemaError struct {
	Kind node.Kind
}

func (e InvalidToolSchemaError) Error() string {
	return fmt.Sprintf("toolcall: input schema must be an object, got %q", e.Kind)
}

// NewDefinition builds a tool definition from an Object node. An Optional
// wrapper around the root is unwrapped first; any other shape fails with
// InvalidToolSchemaError. The description comes from the object node unless
// overridden by the caller.
func NewDefinition(root *node.Node, name string) (*Definition, error) {
	if name == "" {
		return nil, errors.New("toolcall: tool name is required")
	}
	if root == nil {
		return nil, errors.New("toolcall: root node is required")
	}

	unwrapped := root.Unwrap()
	if unwrapped == nil || unwrapped.Kind != node.KindObject {
		kind := node.Kind("")
		if unwrapped != nil {
			kind = unwrapped.Kind
		}
		return nil, InvalidToolSchemaError{Kind: kind}
	}

	return &Definition{
		Name:        name,
		Description: unwrapped.Description,
		InputSchema: generic.Schema(unwrapped),
	}, nil
}

// Renderer adapts NewDefinition to the render.Renderer contract.
type Renderer struct{}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the tool-call renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "toolcall"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, root *node.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := options.ToolName
	if name == "" {
		name = options.TypeName
	}
	definition, err := NewDefinition(root, name)
	if err != nil {
		return nil, err
	}
	if options.ToolDescription != "" {
		definition.Description = options.ToolDescription
	}
	return gojson.MarshalIndent(definition, "", "  ")
}
