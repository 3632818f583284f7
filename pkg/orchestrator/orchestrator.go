// Package orchestrator coordinates the full pipeline from descriptor
// document to rendered schema output.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalcodec "github.com/goliatone/go-schemagen/internal/descriptor/codec"
	internalloader "github.com/goliatone/go-schemagen/internal/descriptor/loader"
	pkgdescriptor "github.com/goliatone/go-schemagen/pkg/descriptor"
	"github.com/goliatone/go-schemagen/pkg/node"
	"github.com/goliatone/go-schemagen/pkg/render"
	"github.com/goliatone/go-schemagen/pkg/renderers/generic"
	"github.com/goliatone/go-schemagen/pkg/renderers/openapi"
	"github.com/goliatone/go-schemagen/pkg/renderers/toolcall"
	"github.com/goliatone/go-schemagen/pkg/renderers/wit"
)

const defaultRendererName = "generic"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom descriptor loader.
func WithLoader(loader pkgdescriptor.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithResolver injects a resolver holding pre-registered descriptors, used
// for requests that carry neither a source nor a document.
func WithResolver(resolver pkgdescriptor.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithRegistry injects a renderer registry, replacing the built-in set.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTagField overrides the discriminator property name for tagged unions.
func WithTagField(name string) Option {
	return func(o *Orchestrator) {
		o.tagField = name
	}
}

// Orchestrator coordinates the loader → codec → builder → renderer sequence.
// It applies sensible defaults (offline loader, all built-in renderers) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          pkgdescriptor.Loader
	resolver        pkgdescriptor.Resolver
	registry        *render.Registry
	defaultRenderer string
	tagField        string
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a schema for one type.
type Request struct {
	// Source identifies where the descriptor document lives. Optional when
	// Document is supplied or the orchestrator holds a resolver.
	Source pkgdescriptor.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *pkgdescriptor.Document

	// Type names the root type to build and render.
	Type string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as the tool name
	// for the tool-call renderer. When omitted, renderers receive a struct
	// whose TypeName and ToolName default to the requested type.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → codec → builder → renderer sequence and
// returns the rendered bytes (JSON for the object-producing renderers). Each
// call builds with a fresh request-scoped node cache, so concurrent requests
// never share mutable state.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Type == "" {
		return nil, errors.New("orchestrator: type name is required")
	}

	resolver, err := o.resolveDescriptors(ctx, req)
	if err != nil {
		return nil, err
	}

	root, err := resolver.Resolve(req.Type)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve root type: %w", err)
	}

	builder := node.NewBuilder(
		node.WithResolver(resolver),
		node.WithTagField(o.tagField),
	)
	tree, err := builder.Build(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build schema: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.TypeName == "" {
		options.TypeName = req.Type
	}
	if options.ToolName == "" {
		options.ToolName = req.Type
	}

	output, err := renderer.Render(ctx, tree, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) resolveDescriptors(ctx context.Context, req Request) (pkgdescriptor.Resolver, error) {
	if req.Document != nil {
		registry, err := internalcodec.DecodeDocument(*req.Document)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: decode document: %w", err)
		}
		return registry, nil
	}
	if req.Source != nil {
		doc, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: load document: %w", err)
		}
		registry, err := internalcodec.DecodeDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: decode document: %w", err)
		}
		return registry, nil
	}
	if o.resolver != nil {
		return o.resolver, nil
	}
	return nil, errors.New("orchestrator: source, document, or resolver is required")
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	renderer, err := o.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", target, err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalloader.New(pkgdescriptor.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(generic.New())
		o.registry.MustRegister(toolcall.New())
		o.registry.MustRegister(openapi.New())
		o.registry.MustRegister(wit.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
