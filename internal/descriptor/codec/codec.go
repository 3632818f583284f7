// Package codec decodes descriptor documents into registered type
// descriptors. It is one concrete extraction mechanism behind the
// descriptor.Resolver contract; callers that already hold descriptors
// in-process can populate a descriptor.Registry directly instead.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	pkgdescriptor "github.com/goliatone/go-schemagen/pkg/descriptor"
)

// document is the wire shape shared by JSON and YAML payloads.
type document struct {
	Types []typeEntry `json:"types" yaml:"types"`
}

type typeEntry struct {
	Name        string         `json:"name" yaml:"name"`
	Kind        string         `json:"kind" yaml:"kind"`
	Description string         `json:"description" yaml:"description"`
	Fields      []fieldEntry   `json:"fields" yaml:"fields"`
	Variants    []variantEntry `json:"variants" yaml:"variants"`
}

type fieldEntry struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Optional    bool   `json:"optional" yaml:"optional"`
	Skip        bool   `json:"skip" yaml:"skip"`
}

type variantEntry struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Fields      []fieldEntry `json:"fields" yaml:"fields"`
	Elements    []string     `json:"elements" yaml:"elements"`
}

// DecodeDocument decodes a loaded descriptor document into a Registry.
func DecodeDocument(doc pkgdescriptor.Document) (*pkgdescriptor.Registry, error) {
	return Decode(doc.Raw())
}

// Decode parses a JSON or YAML descriptor payload and registers every type it
// declares. The payload format is sniffed: JSON documents start with '{' or
// '[', anything else goes through the YAML decoder.
func Decode(data []byte) (*pkgdescriptor.Registry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("descriptor codec: document payload is empty")
	}

	var doc document
	if looksLikeJSON(data) {
		if err := gojson.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("descriptor codec: decode json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("descriptor codec: decode yaml: %w", err)
		}
	}

	if len(doc.Types) == 0 {
		return nil, errors.New("descriptor codec: document declares no types")
	}

	registry := pkgdescriptor.NewRegistry()
	for _, entry := range doc.Types {
		converted, err := convertType(entry)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(converted); err != nil {
			return nil, fmt.Errorf("descriptor codec: %w", err)
		}
	}
	return registry, nil
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func convertType(entry typeEntry) (pkgdescriptor.Type, error) {
	if entry.Name == "" {
		return pkgdescriptor.Type{}, errors.New("descriptor codec: type entry missing name")
	}

	switch entry.Kind {
	case string(pkgdescriptor.KindStruct), "":
		if len(entry.Variants) > 0 {
			return pkgdescriptor.Type{}, fmt.Errorf("descriptor codec: struct %q declares variants", entry.Name)
		}
		fields, err := convertFields(entry.Name, entry.Fields)
		if err != nil {
			return pkgdescriptor.Type{}, err
		}
		return pkgdescriptor.Type{
			Name:        entry.Name,
			Kind:        pkgdescriptor.KindStruct,
			Description: entry.Description,
			Fields:      fields,
		}, nil

	case string(pkgdescriptor.KindEnum):
		if len(entry.Fields) > 0 {
			return pkgdescriptor.Type{}, fmt.Errorf("descriptor codec: enum %q declares top-level fields", entry.Name)
		}
		variants := make([]pkgdescriptor.Variant, 0, len(entry.Variants))
		for _, variant := range entry.Variants {
			converted, err := convertVariant(entry.Name, variant)
			if err != nil {
				return pkgdescriptor.Type{}, err
			}
			variants = append(variants, converted)
		}
		return pkgdescriptor.Type{
			Name:        entry.Name,
			Kind:        pkgdescriptor.KindEnum,
			Description: entry.Description,
			Variants:    variants,
		}, nil

	default:
		return pkgdescriptor.Type{}, fmt.Errorf("descriptor codec: type %q has unknown kind %q", entry.Name, entry.Kind)
	}
}

func convertFields(owner string, entries []fieldEntry) ([]pkgdescriptor.Field, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	fields := make([]pkgdescriptor.Field, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("descriptor codec: type %q has a field without a name", owner)
		}
		ref, err := ParseTypeRef(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("descriptor codec: field %s.%s: %w", owner, entry.Name, err)
		}
		fields = append(fields, pkgdescriptor.Field{
			Name:        entry.Name,
			Type:        ref,
			Description: entry.Description,
			Optional:    entry.Optional,
			Skip:        entry.Skip,
		})
	}
	return fields, nil
}

func convertVariant(owner string, entry variantEntry) (pkgdescriptor.Variant, error) {
	if entry.Name == "" {
		return pkgdescriptor.Variant{}, fmt.Errorf("descriptor codec: enum %q has a variant without a name", owner)
	}
	if len(entry.Fields) > 0 && len(entry.Elements) > 0 {
		return pkgdescriptor.Variant{}, fmt.Errorf("descriptor codec: variant %s.%s declares both fields and elements", owner, entry.Name)
	}

	variant := pkgdescriptor.Variant{
		Name:        entry.Name,
		Description: entry.Description,
		Payload:     pkgdescriptor.Payload{Kind: pkgdescriptor.PayloadUnit},
	}

	switch {
	case len(entry.Fields) > 0:
		fields, err := convertFields(owner+"."+entry.Name, entry.Fields)
		if err != nil {
			return pkgdescriptor.Variant{}, err
		}
		variant.Payload = pkgdescriptor.Payload{
			Kind:   pkgdescriptor.PayloadStruct,
			Fields: fields,
		}
	case len(entry.Elements) > 0:
		elements := make([]pkgdescriptor.TypeRef, 0, len(entry.Elements))
		for i, raw := range entry.Elements {
			ref, err := ParseTypeRef(raw)
			if err != nil {
				return pkgdescriptor.Variant{}, fmt.Errorf("descriptor codec: variant %s.%s element %d: %w", owner, entry.Name, i, err)
			}
			elements = append(elements, ref)
		}
		variant.Payload = pkgdescriptor.Payload{
			Kind:     pkgdescriptor.PayloadTuple,
			Elements: elements,
		}
	}
	return variant, nil
}

// ParseTypeRef converts the compact document syntax into a TypeRef:
// "string", "integer", "number" and "boolean" name primitives, a "[]" prefix
// wraps the remainder in an array, a "?" prefix marks the remainder optional,
// and anything else is treated as a named type reference.
func ParseTypeRef(raw string) (pkgdescriptor.TypeRef, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return pkgdescriptor.TypeRef{}, errors.New("type reference is required")
	}

	if rest, ok := strings.CutPrefix(trimmed, "[]"); ok {
		item, err := ParseTypeRef(rest)
		if err != nil {
			return pkgdescriptor.TypeRef{}, err
		}
		return pkgdescriptor.ArrayOf(item), nil
	}
	if rest, ok := strings.CutPrefix(trimmed, "?"); ok {
		inner, err := ParseTypeRef(rest)
		if err != nil {
			return pkgdescriptor.TypeRef{}, err
		}
		return pkgdescriptor.OptionalOf(inner), nil
	}

	switch trimmed {
	case "string":
		return pkgdescriptor.String(), nil
	case "integer":
		return pkgdescriptor.Integer(), nil
	case "number":
		return pkgdescriptor.Number(), nil
	case "boolean":
		return pkgdescriptor.Boolean(), nil
	default:
		return pkgdescriptor.Named(trimmed), nil
	}
}
