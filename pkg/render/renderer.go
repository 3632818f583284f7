package render

import (
	"context"

	"github.com/goliatone/go-schemagen/pkg/node"
)

// Renderer converts a schema node tree into a byte representation of one
// target schema format (JSON text for the object-producing renderers, plain
// text for WIT). Renderers are stateless and must treat nodes as shared,
// immutable data.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, root *node.Node, options RenderOptions) ([]byte, error)
}

// RenderOptions carries per-request instructions individual renderers can
// use. Renderers ignore the options that do not apply to them.
type RenderOptions struct {
	// TypeName is the name of the root type being rendered. The WIT renderer
	// uses it for the top-level definition name.
	TypeName string

	// ToolName names the tool definition produced by the tool-call renderer.
	ToolName string

	// ToolDescription overrides the description the tool-call renderer would
	// otherwise take from the root node.
	ToolDescription string
}
