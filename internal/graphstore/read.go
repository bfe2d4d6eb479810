// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graphstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vk/passgraph/internal/config"
)

// Load returns the definition stored under the given name or ID.
func (s *Store) Load(ctx context.Context, nameOrID string) (*config.GraphDefinition, error) {
	var id string
	def := &config.GraphDefinition{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, source FROM graphs WHERE name = ? OR id = ?`, nameOrID, nameOrID,
	).Scan(&id, &def.Name, &def.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, nameOrID)
	}
	if err != nil {
		return nil, fmt.Errorf("load graph %q: %w", nameOrID, err)
	}

	if err := s.loadPasses(ctx, id, def); err != nil {
		return nil, fmt.Errorf("load graph %q: %w", nameOrID, err)
	}
	if err := s.loadEdges(ctx, id, def); err != nil {
		return nil, fmt.Errorf("load graph %q: %w", nameOrID, err)
	}
	if err := s.loadOutputs(ctx, id, def); err != nil {
		return nil, fmt.Errorf("load graph %q: %w", nameOrID, err)
	}
	return def, nil
}

// List returns a summary of every stored graph ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.source, g.saved_at, COUNT(p.seq)
		FROM graphs g LEFT JOIN passes p ON p.graph_id = g.id
		GROUP BY g.id
		ORDER BY g.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var savedAt int64
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Source, &savedAt, &sum.Passes); err != nil {
			return nil, fmt.Errorf("list graphs: %w", err)
		}
		sum.SavedAt = time.Unix(0, savedAt).UTC()
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list graphs: %w", err)
	}
	return out, nil
}

func (s *Store) loadPasses(ctx context.Context, id string, def *config.GraphDefinition) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, type, config_type, config FROM passes WHERE graph_id = ? ORDER BY seq ASC`, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p config.PassDeclaration
		var cfgType, cfg string
		if err := rows.Scan(&p.Name, &p.Type, &cfgType, &cfg); err != nil {
			return err
		}
		if p.Config, err = unmarshalConfig(cfgType, cfg); err != nil {
			return fmt.Errorf("pass %q: %w", p.Name, err)
		}
		def.Passes = append(def.Passes, &p)
	}
	return rows.Err()
}

func (s *Store) loadEdges(ctx context.Context, id string, def *config.GraphDefinition) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT from_ref, to_ref FROM edges WHERE graph_id = ? ORDER BY seq ASC`, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e config.EdgeDeclaration
		if err := rows.Scan(&e.From, &e.To); err != nil {
			return err
		}
		def.Edges = append(def.Edges, &e)
	}
	return rows.Err()
}

func (s *Store) loadOutputs(ctx context.Context, id string, def *config.GraphDefinition) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ref FROM outputs WHERE graph_id = ? ORDER BY seq ASC`, id)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return err
		}
		def.Outputs = append(def.Outputs, ref)
	}
	return rows.Err()
}
