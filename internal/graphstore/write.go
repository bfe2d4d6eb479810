// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package graphstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vk/passgraph/internal/config"
	"github.com/vk/passgraph/internal/ctxlog"
)

// Save stores def under its name and returns the graph's ID. Saving a name
// that already exists replaces its contents and keeps its ID.
func (s *Store) Save(ctx context.Context, def *config.GraphDefinition) (string, error) {
	if def.Name == "" {
		return "", fmt.Errorf("save graph: name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save graph %q: %w", def.Name, err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM graphs WHERE name = ?`, def.Name).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = s.newID()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO graphs (id, name, source, saved_at) VALUES (?, ?, ?, ?)`,
			id, def.Name, def.Source, s.now().UnixNano())
	case err == nil:
		if _, err = tx.ExecContext(ctx,
			`UPDATE graphs SET source = ?, saved_at = ? WHERE id = ?`,
			def.Source, s.now().UnixNano(), id); err != nil {
			break
		}
		err = clearChildren(ctx, tx, id)
	}
	if err != nil {
		return "", fmt.Errorf("save graph %q: %w", def.Name, err)
	}

	if err := insertChildren(ctx, tx, id, def); err != nil {
		return "", fmt.Errorf("save graph %q: %w", def.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save graph %q: %w", def.Name, err)
	}

	ctxlog.FromContext(ctx).Debug("Graph saved.", "graph", def.Name, "id", id)
	return id, nil
}

// Delete removes the graph with the given name or ID.
func (s *Store) Delete(ctx context.Context, nameOrID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE name = ? OR id = ?`, nameOrID, nameOrID)
	if err != nil {
		return fmt.Errorf("delete graph %q: %w", nameOrID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete graph %q: %w", nameOrID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, nameOrID)
	}
	return nil
}

func clearChildren(ctx context.Context, tx *sql.Tx, id string) error {
	for _, table := range []string{"passes", "edges", "outputs"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE graph_id = ?`, id); err != nil {
			return err
		}
	}
	return nil
}

func insertChildren(ctx context.Context, tx *sql.Tx, id string, def *config.GraphDefinition) error {
	for i, p := range def.Passes {
		cfgType, cfg, err := marshalConfig(p.Config)
		if err != nil {
			return fmt.Errorf("pass %q: %w", p.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO passes (graph_id, seq, name, type, config_type, config) VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, p.Name, p.Type, cfgType, cfg); err != nil {
			return err
		}
	}
	for i, e := range def.Edges {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO edges (graph_id, seq, from_ref, to_ref) VALUES (?, ?, ?, ?)`,
			id, i, e.From, e.To); err != nil {
			return err
		}
	}
	for i, o := range def.Outputs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO outputs (graph_id, seq, ref) VALUES (?, ?, ?)`,
			id, i, o); err != nil {
			return err
		}
	}
	return nil
}
