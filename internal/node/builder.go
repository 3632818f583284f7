package node

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	pkgdescriptor "github.com/goliatone/go-schemagen/pkg/descriptor"
)

const defaultTagField = "type"

// Options configures the builder behaviour.
type Options struct {
	// Resolver looks up named type references. Required when descriptors
	// refer to other user types.
	Resolver pkgdescriptor.Resolver

	// TagField names the discriminator property unions carry. Defaults to
	// "type".
	TagField string
}

// Builder converts type descriptors into schema node trees.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := options
	if opts.TagField == "" {
		opts.TagField = defaultTagField
	}
	return &Builder{opts: opts}
}

// Build transforms a type descriptor into its schema node tree. Each call is
// an independent request: it starts with an empty cache, either returns a
// complete tree or fails with a build-time error, and performs no I/O.
func (b *Builder) Build(ctx context.Context, root pkgdescriptor.Type) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if root.Name == "" {
		return nil, errors.New("schema builder: root type name is required")
	}
	return b.buildType(newCache(), root)
}

func (b *Builder) buildType(c *cache, t pkgdescriptor.Type) (*Node, error) {
	if hit, ok := c.lookup(t.Name); ok {
		return hit, nil
	}

	c.begin(t.Name)
	built, err := b.buildTypeBody(c, t)
	if err != nil {
		c.abandon(t.Name)
		return nil, err
	}
	c.finish(t.Name, built)
	return built, nil
}

func (b *Builder) buildTypeBody(c *cache, t pkgdescriptor.Type) (*Node, error) {
	switch t.Kind {
	case pkgdescriptor.KindStruct:
		return b.buildStruct(c, t)
	case pkgdescriptor.KindEnum:
		return b.buildEnum(c, t)
	default:
		return nil, fmt.Errorf("schema builder: type %q has unknown kind %q", t.Name, t.Kind)
	}
}

func (b *Builder) buildStruct(c *cache, t pkgdescriptor.Type) (*Node, error) {
	fields, err := b.buildFields(c, t.Name, t.Fields)
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind:        KindObject,
		Description: t.Description,
		Fields:      fields,
	}, nil
}

// buildFields maps struct members to object fields in declaration order.
// Skipped members are removed before uniqueness is checked, so a skipped
// field never blocks (or is blocked by) a visible one.
func (b *Builder) buildFields(c *cache, owner string, members []pkgdescriptor.Field) ([]Field, error) {
	if len(members) == 0 {
		return nil, nil
	}

	fields := make([]Field, 0, len(members))
	seen := make(map[string]struct{}, len(members))

	for _, member := range members {
		if member.Skip {
			continue
		}
		if _, dup := seen[member.Name]; dup {
			return nil, DuplicateFieldError{Type: owner, Field: member.Name}
		}
		seen[member.Name] = struct{}{}

		child, err := b.buildRef(c, member.Type)
		if err != nil {
			return nil, err
		}
		if member.Optional {
			child = wrapOptional(child)
		}

		fields = append(fields, Field{
			Name:        member.Name,
			Schema:      child,
			Description: member.Description,
			Required:    child.Kind != KindOptional,
		})
	}
	return fields, nil
}

func (b *Builder) buildEnum(c *cache, t pkgdescriptor.Type) (*Node, error) {
	seen := make(map[string]struct{}, len(t.Variants))
	allUnit := true
	for _, variant := range t.Variants {
		if _, dup := seen[variant.Name]; dup {
			return nil, DuplicateVariantError{Type: t.Name, Variant: variant.Name}
		}
		seen[variant.Name] = struct{}{}
		if variant.Payload.Kind != pkgdescriptor.PayloadUnit {
			allUnit = false
		}
	}

	if allUnit {
		values := make([]string, 0, len(t.Variants))
		for _, variant := range t.Variants {
			values = append(values, variant.Name)
		}
		return &Node{
			Kind:        KindStringEnum,
			Description: t.Description,
			Values:      values,
		}, nil
	}

	// One payload-carrying variant flips the whole enum to a tagged union;
	// unit variants ride along with an empty object payload so the tag+payload
	// shape stays uniform.
	variants := make([]Variant, 0, len(t.Variants))
	for _, variant := range t.Variants {
		payload, err := b.buildPayload(c, t.Name, variant)
		if err != nil {
			return nil, err
		}
		variants = append(variants, Variant{
			Tag:         variant.Name,
			Schema:      payload,
			Description: variant.Description,
		})
	}
	return &Node{
		Kind:        KindUnion,
		Description: t.Description,
		Variants:    variants,
		TagField:    b.opts.TagField,
	}, nil
}

func (b *Builder) buildPayload(c *cache, owner string, variant pkgdescriptor.Variant) (*Node, error) {
	switch variant.Payload.Kind {
	case pkgdescriptor.PayloadUnit:
		return &Node{Kind: KindObject}, nil

	case pkgdescriptor.PayloadStruct:
		fields, err := b.buildFields(c, owner+"."+variant.Name, variant.Payload.Fields)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindObject, Fields: fields}, nil

	case pkgdescriptor.PayloadTuple:
		elements := variant.Payload.Elements
		switch len(elements) {
		case 0:
			return &Node{Kind: KindObject}, nil
		case 1:
			item, err := b.buildRef(c, elements[0])
			if err != nil {
				return nil, err
			}
			return &Node{Kind: KindArray, Items: item}, nil
		default:
			fields := make([]Field, 0, len(elements))
			for i, element := range elements {
				child, err := b.buildRef(c, element)
				if err != nil {
					return nil, err
				}
				fields = append(fields, Field{
					Name:     strconv.Itoa(i),
					Schema:   child,
					Required: child.Kind != KindOptional,
				})
			}
			return &Node{Kind: KindObject, Fields: fields}, nil
		}

	default:
		return nil, fmt.Errorf("schema builder: variant %s.%s has unknown payload kind %q", owner, variant.Name, variant.Payload.Kind)
	}
}

func (b *Builder) buildRef(c *cache, ref pkgdescriptor.TypeRef) (*Node, error) {
	switch ref.Kind {
	case pkgdescriptor.RefString:
		return &Node{Kind: KindString}, nil
	case pkgdescriptor.RefInteger:
		return &Node{Kind: KindInteger}, nil
	case pkgdescriptor.RefNumber:
		return &Node{Kind: KindNumber}, nil
	case pkgdescriptor.RefBoolean:
		return &Node{Kind: KindBoolean}, nil

	case pkgdescriptor.RefArray:
		if ref.Item == nil {
			return nil, errors.New("schema builder: array reference missing item type")
		}
		item, err := b.buildRef(c, *ref.Item)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindArray, Items: item}, nil

	case pkgdescriptor.RefOptional:
		if ref.Inner == nil {
			return nil, errors.New("schema builder: optional reference missing inner type")
		}
		inner, err := b.buildRef(c, *ref.Inner)
		if err != nil {
			return nil, err
		}
		return wrapOptional(inner), nil

	case pkgdescriptor.RefNamed:
		if b.opts.Resolver == nil {
			return nil, pkgdescriptor.UnsupportedTypeReferenceError{Name: ref.Name}
		}
		target, err := b.opts.Resolver.Resolve(ref.Name)
		if err != nil {
			return nil, err
		}
		return b.buildType(c, target)

	default:
		return nil, fmt.Errorf("schema builder: unknown type reference kind %q", ref.Kind)
	}
}
