package schemagen

import (
	internalcodec "github.com/goliatone/go-schemagen/internal/descriptor/codec"
	internalloader "github.com/goliatone/go-schemagen/internal/descriptor/loader"
	pkgdescriptor "github.com/goliatone/go-schemagen/pkg/descriptor"
)

// NewLoader constructs a descriptor loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgdescriptor.LoaderOption) pkgdescriptor.Loader {
	cfg := pkgdescriptor.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// DecodeDescriptors parses a JSON or YAML descriptor payload into a registry
// ready for schema building.
func DecodeDescriptors(data []byte) (*pkgdescriptor.Registry, error) {
	return internalcodec.Decode(data)
}
