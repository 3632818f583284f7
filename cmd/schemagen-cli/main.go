package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	schemagen "github.com/goliatone/go-schemagen"
	"github.com/goliatone/go-schemagen/pkg/descriptor"
	"github.com/goliatone/go-schemagen/pkg/orchestrator"
	"github.com/goliatone/go-schemagen/pkg/render"
)

func main() {
	typeName := flag.String("type", "", "root type name to render")
	renderer := flag.String("renderer", "generic", "renderer to use (generic, toolcall, openapi, wit)")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "", "descriptor document path or URL")
	toolName := flag.String("tool-name", "", "tool name for the toolcall renderer (defaults to the type name)")
	toolDescription := flag.String("tool-description", "", "tool description override for the toolcall renderer")
	flag.Parse()

	if *typeName == "" {
		log.Fatal("a -type is required")
	}

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	var opts []orchestrator.Option
	if src.Kind() == descriptor.SourceKindURL {
		opts = append(opts, orchestrator.WithLoader(
			schemagen.NewLoader(descriptor.WithHTTPFallback(30*time.Second)),
		))
	}
	gen := orchestrator.New(opts...)

	req := orchestrator.Request{
		Source:   src,
		Type:     *typeName,
		Renderer: *renderer,
		RenderOptions: render.RenderOptions{
			ToolName:        *toolName,
			ToolDescription: *toolDescription,
		},
	}

	rendered, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate schema: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Schema written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func parseSource(raw string) descriptor.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return descriptor.SourceFromURL(path)
	}
	return descriptor.SourceFromFile(path)
}
