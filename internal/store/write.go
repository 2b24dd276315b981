package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Invocation is one recorded wire payload.
type Invocation struct {
	ID        string // UUID
	Component string
	Function  string
	Args      string // canonical wire JSON
	Seq       int64
	CreatedAt time.Time
}

// RecordInvocation appends an invocation to the log and returns the stored
// record. The ID is a fresh UUID; Seq is assigned inside the insert
// transaction so two writers never share a sequence number.
func (s *Store) RecordInvocation(ctx context.Context, component, function string, args []byte) (Invocation, error) {
	inv := Invocation{
		ID:        uuid.NewString(),
		Component: component,
		Function:  function,
		Args:      string(args),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Invocation{}, fmt.Errorf("record invocation: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM invocations`,
	).Scan(&inv.Seq); err != nil {
		return Invocation{}, fmt.Errorf("record invocation: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invocations
		(id, component, function, args, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		inv.ID,
		inv.Component,
		inv.Function,
		inv.Args,
		inv.Seq,
		inv.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Invocation{}, fmt.Errorf("record invocation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Invocation{}, fmt.Errorf("record invocation: commit: %w", err)
	}

	return inv, nil
}
