package store

import (
	"context"
	"fmt"
	"time"
)

// ListInvocations returns recorded invocations, oldest first.
// component filters to one component when non-empty; limit caps the result
// when positive. Ordering is ORDER BY seq ASC, id COLLATE BINARY ASC so
// listings are deterministic.
//
// Returns an empty slice (not nil) when the log has no matching records.
func (s *Store) ListInvocations(ctx context.Context, component string, limit int) ([]Invocation, error) {
	query := `
		SELECT id, component, function, args, seq, created_at
		FROM invocations
	`
	var args []any
	if component != "" {
		query += ` WHERE component = ?`
		args = append(args, component)
	}
	query += ` ORDER BY seq ASC, id COLLATE BINARY ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query invocations: %w", err)
	}
	defer rows.Close()

	invocations := []Invocation{}
	for rows.Next() {
		var inv Invocation
		var created string
		if err := rows.Scan(&inv.ID, &inv.Component, &inv.Function, &inv.Args, &inv.Seq, &created); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		inv.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		invocations = append(invocations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}

	return invocations, nil
}
