package descriptor

// Kind distinguishes the two shapes a descriptor can describe.
type Kind string

const (
	KindStruct Kind = "struct"
	KindEnum   Kind = "enum"
)

// PayloadKind enumerates what an enum variant carries.
type PayloadKind string

const (
	PayloadUnit   PayloadKind = "unit"
	PayloadStruct PayloadKind = "struct"
	PayloadTuple  PayloadKind = "tuple"
)

// Type is the normalized, declarative description of one user type. Whatever
// produced it (reflection, code generation, a descriptor document, manual
// registration) must guarantee a stable unique name, declaration order for
// fields and variants, plain-text documentation, and pre-resolved skip and
// optional markers.
type Type struct {
	Name        string
	Kind        Kind
	Description string

	// Fields is populated for KindStruct, in declaration order.
	Fields []Field

	// Variants is populated for KindEnum, in declaration order.
	Variants []Variant
}

// Field describes a single struct member. Optional is pre-resolved: Type
// already refers to the unwrapped inner type.
type Field struct {
	Name        string
	Type        TypeRef
	Description string
	Optional    bool
	Skip        bool
}

// Variant describes a single enum member and its payload shape.
type Variant struct {
	Name        string
	Description string
	Payload     Payload
}

// Payload captures what a variant carries: nothing, named fields, or an
// ordered list of positional element types.
type Payload struct {
	Kind     PayloadKind
	Fields   []Field   // PayloadStruct
	Elements []TypeRef // PayloadTuple
}

// RefKind tags the different forms a type reference can take.
type RefKind string

const (
	RefString   RefKind = "string"
	RefInteger  RefKind = "integer"
	RefNumber   RefKind = "number"
	RefBoolean  RefKind = "boolean"
	RefArray    RefKind = "array"
	RefOptional RefKind = "optional"
	RefNamed    RefKind = "named"
)

// TypeRef points at a primitive, a collection of another reference, or a
// named user type that a Resolver can look up.
type TypeRef struct {
	Kind  RefKind
	Item  *TypeRef // RefArray element type
	Inner *TypeRef // RefOptional wrapped type
	Name  string   // RefNamed target
}

// String returns a TypeRef for the string primitive.
func String() TypeRef { return TypeRef{Kind: RefString} }

// Integer returns a TypeRef for integer primitives of any width.
func Integer() TypeRef { return TypeRef{Kind: RefInteger} }

// Number returns a TypeRef for floating-point primitives.
func Number() TypeRef { return TypeRef{Kind: RefNumber} }

// Boolean returns a TypeRef for the boolean primitive.
func Boolean() TypeRef { return TypeRef{Kind: RefBoolean} }

// ArrayOf returns a TypeRef describing an ordered collection of item.
func ArrayOf(item TypeRef) TypeRef {
	copied := item
	return TypeRef{Kind: RefArray, Item: &copied}
}

// OptionalOf wraps inner so the reference itself carries optionality, for
// positions where a field-level flag is not available (array elements,
// tuple payloads).
func OptionalOf(inner TypeRef) TypeRef {
	copied := inner
	return TypeRef{Kind: RefOptional, Inner: &copied}
}

// Named returns a TypeRef pointing at another registered type.
func Named(name string) TypeRef { return TypeRef{Kind: RefNamed, Name: name} }
