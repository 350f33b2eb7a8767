package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "aquaria/pkg/domain"
	audit "aquaria/pkg/platform/audit"
	txcontext "aquaria/pkg/platform/tx"
)

// Store appends audit events to the audit_events table. Inside a service
// transaction the row commits or rolls back with the audited change.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Emit inserts event.
func (s *Store) Emit(ctx context.Context, event audit.Event) error {
	var ownerID *uuid.UUID
	if !event.OwnerID.IsNil() {
		oid := uuid.UUID(event.OwnerID)
		ownerID = &oid
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO audit_events (id, timestamp, owner_id, action, subject, request_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), event.Timestamp, ownerID, event.Action, event.Subject, event.RequestID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByOwner returns the owner's most recent events first.
func (s *Store) ListByOwner(ctx context.Context, ownerID id.OwnerID, limit int) ([]audit.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT timestamp, owner_id, action, subject, request_id
		FROM audit_events
		WHERE owner_id = $1
		ORDER BY timestamp DESC
		LIMIT $2`,
		uuid.UUID(ownerID), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var out []audit.Event
	for rows.Next() {
		var (
			e   audit.Event
			oid uuid.NullUUID
		)
		if err := rows.Scan(&e.Timestamp, &oid, &e.Action, &e.Subject, &e.RequestID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		if oid.Valid {
			e.OwnerID = id.OwnerID(oid.UUID)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	return out, nil
}
