// Package wit renders schema node trees into WIT (WebAssembly Interface
// Types) definitions: records for objects, enums for string enums, variants
// for tagged unions, with list<> and option<> for collections and optional
// members.
package wit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
)

const (
	anonymousRecord  = "anonymous-record"
	anonymousEnum    = "anonymous-enum"
	anonymousVariant = "anonymous-variant"
)

// Type converts a node tree into WIT text. name supplies the top-level
// definition name for records, enums, and variants; nested definitions are
// inlined with anonymous names since descriptors do not carry nested type
// names through the IR.
func Type(n *node.Node, name string) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case node.KindString:
		return "string"
	case node.KindBoolean:
		return "bool"
	case node.KindInteger:
		// The IR collapses integer widths; s64 holds every JSON-safe value.
		return "s64"
	case node.KindNumber:
		return "f64"

	case node.KindOptional:
		return fmt.Sprintf("option<%s>", Type(n.Inner, ""))

	case node.KindArray:
		return fmt.Sprintf("list<%s>", Type(n.Items, ""))

	case node.KindObject:
		return recordText(n, name)

	case node.KindStringEnum:
		return enumText(n, name)

	case node.KindUnion:
		return variantText(n, name)

	default:
		return ""
	}
}

func recordText(n *node.Node, name string) string {
	var out strings.Builder
	writeDocComment(&out, n.Description, "")

	if name == "" {
		name = anonymousRecord
	}
	fmt.Fprintf(&out, "record %s {\n", KebabCase(name))

	for _, field := range n.Fields {
		doc := field.Description
		if doc == "" && field.Schema != nil {
			doc = field.Schema.Description
		}
		writeDocComment(&out, doc, "    ")

		fieldType := Type(field.Schema.Unwrap(), "")
		if !field.Required {
			fieldType = fmt.Sprintf("option<%s>", fieldType)
		}
		fmt.Fprintf(&out, "    %s: %s,\n", KebabCase(field.Name), fieldType)
	}

	out.WriteString("}")
	return out.String()
}

func enumText(n *node.Node, name string) string {
	var out strings.Builder
	writeDocComment(&out, n.Description, "")

	if name == "" {
		name = anonymousEnum
	}
	fmt.Fprintf(&out, "enum %s {\n", KebabCase(name))

	for _, value := range n.Values {
		fmt.Fprintf(&out, "    %s,\n", KebabCase(value))
	}

	out.WriteString("}")
	return out.String()
}

func variantText(n *node.Node, name string) string {
	var out strings.Builder
	writeDocComment(&out, n.Description, "")

	if name == "" {
		name = anonymousVariant
	}
	fmt.Fprintf(&out, "variant %s {\n", KebabCase(name))

	for _, variant := range n.Variants {
		writeDocComment(&out, variant.Description, "    ")

		payload := variant.Schema
		if payload == nil || (payload.Kind == node.KindObject && len(payload.Fields) == 0) {
			fmt.Fprintf(&out, "    %s,\n", KebabCase(variant.Tag))
			continue
		}
		fmt.Fprintf(&out, "    %s(%s),\n", KebabCase(variant.Tag), Type(payload, ""))
	}

	out.WriteString("}")
	return out.String()
}

func writeDocComment(out *strings.Builder, doc, indent string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(out, "%s/// %s\n", indent, line)
	}
}

// KebabCase converts snake_case, camelCase, or PascalCase identifiers to the
// kebab-case WIT expects.
func KebabCase(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if out.Len() > 0 {
				out.WriteByte('-')
			}
			out.WriteRune(r + ('a' - 'A'))
		case r == '_':
			out.WriteByte('-')
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Renderer adapts Type to the render.Renderer contract.
type Renderer struct{}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// New constructs the WIT renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "wit"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, root *node.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("wit renderer: root node is required")
	}
	return []byte(Type(root, options.TypeName)), nil
}
