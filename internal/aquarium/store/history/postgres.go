package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
	txcontext "aquaria/pkg/platform/tx"
)

// PostgresStore persists state intervals. The partial unique index on open
// intervals turns a second open interval into ErrConflict.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const columns = `id, aquarium_id, state, start_time, end_time, duration_minutes`

func (s *PostgresStore) Create(ctx context.Context, h *models.StateHistory) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO state_history (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(h.ID), uuid.UUID(h.AquariumID), string(h.State), h.StartTime, h.EndTime, h.DurationMinutes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("aquarium already has an open interval: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create state history: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, h *models.StateHistory) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE state_history SET end_time = $2, duration_minutes = $3 WHERE id = $1`,
		uuid.UUID(h.ID), h.EndTime, h.DurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("save state history: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("state history not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindActive(ctx context.Context, aquariumID id.AquariumID) (*models.StateHistory, error) {
	row := s.execer(ctx).QueryRowContext(ctx,
		`SELECT `+columns+` FROM state_history WHERE aquarium_id = $1 AND end_time IS NULL`, uuid.UUID(aquariumID))
	h, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no open interval: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find open interval: %w", err)
	}
	return h, nil
}

func (s *PostgresStore) ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.StateHistory, error) {
	return s.list(ctx, `SELECT `+columns+` FROM state_history WHERE aquarium_id = $1 ORDER BY start_time`,
		uuid.UUID(aquariumID))
}

func (s *PostgresStore) ListByAquariumAndState(ctx context.Context, aquariumID id.AquariumID, state models.State) ([]*models.StateHistory, error) {
	return s.list(ctx, `SELECT `+columns+` FROM state_history WHERE aquarium_id = $1 AND state = $2 ORDER BY start_time`,
		uuid.UUID(aquariumID), string(state))
}

func (s *PostgresStore) ListByAquariumBetween(ctx context.Context, aquariumID id.AquariumID, from, to time.Time) ([]*models.StateHistory, error) {
	return s.list(ctx, `
		SELECT `+columns+` FROM state_history
		WHERE aquarium_id = $1 AND start_time >= $2 AND (end_time IS NULL OR end_time <= $3)
		ORDER BY start_time`,
		uuid.UUID(aquariumID), from, to)
}

func (s *PostgresStore) DeleteByAquarium(ctx context.Context, aquariumID id.AquariumID) error {
	if _, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM state_history WHERE aquarium_id = $1`, uuid.UUID(aquariumID)); err != nil {
		return fmt.Errorf("delete state history: %w", err)
	}
	return nil
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.StateHistory, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list state history: %w", err)
	}
	defer rows.Close()

	var out []*models.StateHistory
	for rows.Next() {
		h, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan state history: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list state history: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.StateHistory, error) {
	var (
		h          models.StateHistory
		historyID  uuid.UUID
		aquariumID uuid.UUID
		state      string
		end        sql.NullTime
		duration   sql.NullInt64
	)
	if err := row.Scan(&historyID, &aquariumID, &state, &h.StartTime, &end, &duration); err != nil {
		return nil, err
	}
	h.ID = id.StateHistoryID(historyID)
	h.AquariumID = id.AquariumID(aquariumID)
	h.State = models.State(state)
	if end.Valid {
		t := end.Time
		h.EndTime = &t
	}
	if duration.Valid {
		d := duration.Int64
		h.DurationMinutes = &d
	}
	return models.ReconstructStateHistory(h), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
