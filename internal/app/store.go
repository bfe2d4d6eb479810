// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/passgraph/internal/builder"
	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/graphstore"
	"github.com/vk/passgraph/internal/hcl"
	"github.com/vk/passgraph/internal/scheduler"
)

func (a *App) withStore(fn func(s *graphstore.Store) error) error {
	if a.config.StorePath == "" {
		return ErrNoStore
	}
	s, err := graphstore.Open(a.config.StorePath)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// SaveGraph validates the named loaded graph and stores it. Only graphs that
// build and resolve are saved.
func (a *App) SaveGraph(ctx context.Context, name string) (string, error) {
	ctx = a.withLogger(ctx)
	def, err := a.Definition(ctx, name)
	if err != nil {
		return "", err
	}
	g, err := builder.Build(ctx, def, a.registry)
	if err != nil {
		return "", err
	}
	if _, err := scheduler.Resolve(ctx, g); err != nil {
		return "", err
	}

	out := builder.Definition(g)
	out.Source = def.Source

	var id string
	err = a.withStore(func(s *graphstore.Store) error {
		var saveErr error
		id, saveErr = s.Save(ctx, out)
		return saveErr
	})
	return id, err
}

// StoredDefinition loads a definition from the store by name or ID.
func (a *App) StoredDefinition(ctx context.Context, nameOrID string) (*config.GraphDefinition, error) {
	ctx = a.withLogger(ctx)
	var def *config.GraphDefinition
	err := a.withStore(func(s *graphstore.Store) error {
		var err error
		def, err = s.Load(ctx, nameOrID)
		return err
	})
	if errors.Is(err, graphstore.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", builder.ErrGraphNotFound, err)
	}
	return def, err
}

// ExportStored renders a stored graph as HCL after rebuilding it against the
// current registry.
func (a *App) ExportStored(ctx context.Context, nameOrID string) ([]byte, error) {
	ctx = a.withLogger(ctx)
	def, err := a.StoredDefinition(ctx, nameOrID)
	if err != nil {
		return nil, err
	}
	g, err := builder.Build(ctx, def, a.registry)
	if err != nil {
		return nil, err
	}
	return hcl.Write(builder.Definition(g)), nil
}

// ListStored summarizes every stored graph.
func (a *App) ListStored(ctx context.Context) ([]graphstore.Summary, error) {
	ctx = a.withLogger(ctx)
	var out []graphstore.Summary
	err := a.withStore(func(s *graphstore.Store) error {
		var err error
		out, err = s.List(ctx)
		return err
	})
	return out, err
}

// DeleteStored removes a stored graph by name or ID.
func (a *App) DeleteStored(ctx context.Context, nameOrID string) error {
	ctx = a.withLogger(ctx)
	return a.withStore(func(s *graphstore.Store) error {
		return s.Delete(ctx, nameOrID)
	})
}
