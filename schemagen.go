// Package schemagen converts declarative type descriptors into a canonical
// schema node tree and renders that tree into target schema formats: generic
// JSON Schema, LLM tool-call definitions, OpenAPI 3.0 schema objects, and
// WIT type definitions.
package schemagen

import (
	"context"

	"github.com/goliatone/go-schemagen/pkg/descriptor"
	"github.com/goliatone/go-schemagen/pkg/orchestrator"
	"github.com/goliatone/go-schemagen/pkg/render"
)

// Request aliases the orchestrator request for callers importing only the
// root package.
type Request = orchestrator.Request

// RenderOptions carries per-request renderer instructions.
type RenderOptions = render.RenderOptions

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the descriptor source, builds the schema node tree for the
// requested type, and renders it using the named renderer. It is the
// simplest entry point for callers that just want serialized output.
func Generate(ctx context.Context, source descriptor.Source, typeName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Type:     typeName,
		Renderer: rendererName,
	})
}

// GenerateFromResolver renders a schema for a type already registered with a
// resolver, bypassing the loader and codec stages entirely.
func GenerateFromResolver(ctx context.Context, resolver descriptor.Resolver, typeName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	opts := append([]orchestrator.Option{orchestrator.WithResolver(resolver)}, options...)
	gen := orchestrator.New(opts...)
	return gen.Generate(ctx, orchestrator.Request{
		Type:     typeName,
		Renderer: rendererName,
	})
}
