// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlmanifest implements config.Loader for YAML documents. It reads
// the same three kinds of declarations as the HCL loader, which lets pass
// type manifests be generated by tools that do not speak HCL.
//
//	kinds:
//	  - name: ldr
//	    compatible_with: [color]
//	pass_types:
//	  - name: FXAA
//	    inputs: [{name: src, kind: color}]
//	    outputs: [{name: dst, kind: ldr}]
//	    options:
//	      - {name: quality, type: enum, enum: [High, Low], default: High}
//	graphs:
//	  - name: Post
//	    passes: [{name: AA, type: FXAA, config: {quality: Low}}]
//	    edges: [{from: A.out, to: AA.src}]
//	    outputs: [AA.dst]
package yamlmanifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
	"github.com/vk/passgraph/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions the loader picks up.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every YAML file reachable from paths into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML manifests.", "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifest %s: %w", file, err)
		}
		m, err := l.Parse(ctx, src, file)
		if err != nil {
			return nil, err
		}
		model.Merge(m)
	}
	return model, nil
}

// Parse decodes a single YAML document. Unknown keys are rejected.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML manifest %s: %w", filename, err)
	}

	model, err := doc.translate(filename)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	ctxlog.FromContext(ctx).Debug("YAML manifest decoded.", "file", filename,
		"kinds", len(model.Kinds), "pass_types", len(model.PassTypes), "graphs", len(model.Graphs))
	return model, nil
}
