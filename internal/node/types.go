package node

// Kind enumerates the closed set of schema node variants.
type Kind string

const (
	KindString     Kind = "string"
	KindInteger    Kind = "integer"
	KindNumber     Kind = "number"
	KindBoolean    Kind = "boolean"
	KindObject     Kind = "object"
	KindArray      Kind = "array"
	KindOptional   Kind = "optional"
	KindStringEnum Kind = "enum"
	KindUnion      Kind = "union"
)

// Node is the canonical schema representation renderers consume. A node tree
// is immutable after construction; completed nodes are shared by reference
// when the same type appears in several positions, so renderers must never
// mutate one in place.
type Node struct {
	Kind        Kind
	Description string

	// Fields is populated for KindObject, preserving declaration order.
	Fields []Field

	// Items is populated for KindArray.
	Items *Node

	// Inner is populated for KindOptional. Optional never nests: wrapping an
	// optional node yields the same node back.
	Inner *Node

	// Values is populated for KindStringEnum, preserving declaration order.
	Values []string

	// Variants and TagField are populated for KindUnion.
	Variants []Variant
	TagField string
}

// Field pairs an object member with its schema, documentation, and required
// flag. Required is the negation of optionality and is carried independently
// of the Optional wrapper so renderers that only understand one mechanism
// still behave correctly.
type Field struct {
	Name        string
	Schema      *Node
	Description string
	Required    bool
}

// Variant is one tagged branch of a union. Schema is an Object for unit and
// struct-like payloads, or an Array for single-element tuple payloads.
type Variant struct {
	Tag         string
	Schema      *Node
	Description string
}

// Unwrap strips the Optional wrapper, if any, and returns the underlying
// node.
func (n *Node) Unwrap() *Node {
	if n != nil && n.Kind == KindOptional {
		return n.Inner
	}
	return n
}

// wrapOptional marks a node optional, collapsing nested wrappers so
// Optional(Optional(x)) never occurs.
func wrapOptional(n *Node) *Node {
	if n == nil || n.Kind == KindOptional {
		return n
	}
	return &Node{Kind: KindOptional, Inner: n}
}
