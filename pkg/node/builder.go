package node

import (
	"context"

	internalnode "github.com/goliatone/go-schemagen/internal/node"
	"github.com/goliatone/go-schemagen/pkg/descriptor"
)

// Builder converts type descriptors into schema node trees.
type Builder interface {
	Build(ctx context.Context, root descriptor.Type) (*Node, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	resolver descriptor.Resolver
	tagField string
}

// WithResolver supplies the resolver used for named type references.
func WithResolver(resolver descriptor.Resolver) BuilderOption {
	return func(opts *builderOptions) {
		opts.resolver = resolver
	}
}

// WithTagField overrides the discriminator property name used by tagged
// unions. The default is "type".
func WithTagField(name string) BuilderOption {
	return func(opts *builderOptions) {
		opts.tagField = name
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	return internalnode.New(internalnode.Options{
		Resolver: cfg.resolver,
		TagField: cfg.tagField,
	})
}
