package node

import internalnode "github.com/goliatone/go-schemagen/internal/node"

// Kind re-exports the internal node kind enumeration.
type Kind = internalnode.Kind

const (
	KindString     = internalnode.KindString
	KindInteger    = internalnode.KindInteger
	KindNumber     = internalnode.KindNumber
	KindBoolean    = internalnode.KindBoolean
	KindObject     = internalnode.KindObject
	KindArray      = internalnode.KindArray
	KindOptional   = internalnode.KindOptional
	KindStringEnum = internalnode.KindStringEnum
	KindUnion      = internalnode.KindUnion
)

type Node = internalnode.Node
type Field = internalnode.Field
type Variant = internalnode.Variant

// DuplicateFieldError and DuplicateVariantError are the build-time failures
// a schema request can surface; match them with errors.As.
type DuplicateFieldError = internalnode.DuplicateFieldError
type DuplicateVariantError = internalnode.DuplicateVariantError
