// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/fsutil"
)

// Extension is the file extension the loader picks up.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file reachable from paths and merges all discovered
// blocks into one model. It is agnostic to the origin of the paths and
// accepts any block in any file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	model := config.NewModel()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileModel, err := l.decode(ctx, hclFile.Body, file)
		if err != nil {
			return nil, err
		}
		if err := mergeChecked(model, fileModel); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "kinds", len(model.Kinds), "pass_types", len(model.PassTypes), "graphs", len(model.Graphs))
	return model, nil
}

// Parse decodes a single in-memory HCL document. filename is only used in
// diagnostics and as the Source of the declarations.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, hclFile.Body, filename)
}

func (l *Loader) decode(ctx context.Context, body hcl.Body, filename string) (*config.Model, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.NewModel()
	for _, k := range root.Kinds {
		model.Kinds = append(model.Kinds, &config.KindDefinition{
			Name:           k.Name,
			CompatibleWith: k.CompatibleWith,
			Source:         filename,
		})
	}
	for _, pt := range root.PassTypes {
		def, err := l.translatePassType(ctx, pt, filename)
		if err != nil {
			return nil, err
		}
		model.PassTypes = append(model.PassTypes, def)
	}
	for _, g := range root.Graphs {
		def, err := l.translateGraph(ctx, g, filename)
		if err != nil {
			return nil, err
		}
		model.Graphs = append(model.Graphs, def)
	}
	if err := mergeChecked(config.NewModel(), model); err != nil {
		return nil, err
	}
	return model, nil
}

// mergeChecked merges src into dst, refusing graphs that are declared twice.
// Duplicate pass types and kinds are left to the registry.
func mergeChecked(dst, src *config.Model) error {
	seen := make(map[string]string, len(dst.Graphs))
	for _, g := range dst.Graphs {
		seen[g.Name] = g.Source
	}
	for _, g := range src.Graphs {
		if first, dup := seen[g.Name]; dup {
			return fmt.Errorf("%s: graph %q is already declared in %s", g.Source, g.Name, first)
		}
		seen[g.Name] = g.Source
	}
	dst.Merge(src)
	return nil
}
