package aquarium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
	txcontext "aquaria/pkg/platform/tx"
)

// PostgresStore persists aquarium rows in PostgreSQL.
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

const columns = `id, owner_id, name, length_cm, width_cm, height_cm, substrate, water_type,
	temperature, state, current_state_start_time, color, description, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, a *models.Aquarium) error {
	r := a.Record()
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO aquariums (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		uuid.UUID(r.ID), nullOwner(r.OwnerID), r.Name, r.Dimensions.Length, r.Dimensions.Width, r.Dimensions.Height,
		string(r.Substrate), string(r.WaterType), r.Temperature, string(r.State), r.CurrentStateStartTime,
		r.Color, r.Description, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("aquarium exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create aquarium: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Aquarium) error {
	r := a.Record()
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE aquariums
		SET owner_id = $2, name = $3, length_cm = $4, width_cm = $5, height_cm = $6, substrate = $7,
			water_type = $8, temperature = $9, state = $10, current_state_start_time = $11,
			color = $12, description = $13, updated_at = $14
		WHERE id = $1`,
		uuid.UUID(r.ID), nullOwner(r.OwnerID), r.Name, r.Dimensions.Length, r.Dimensions.Width, r.Dimensions.Height,
		string(r.Substrate), string(r.WaterType), r.Temperature, string(r.State), r.CurrentStateStartTime,
		r.Color, r.Description, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save aquarium: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, aquariumID id.AquariumID) (*models.Aquarium, error) {
	query := `SELECT ` + columns + ` FROM aquariums WHERE id = $1`
	// Inside a transaction the root row is locked so mutations of one aquarium serialize.
	if _, ok := txcontext.From(ctx); ok {
		query += ` FOR UPDATE`
	}
	row := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(aquariumID))
	a, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find aquarium: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Aquarium, error) {
	rows, err := s.execer(ctx).QueryContext(ctx,
		`SELECT `+columns+` FROM aquariums WHERE owner_id = $1 ORDER BY created_at, id`, uuid.UUID(ownerID))
	if err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}
	defer rows.Close()

	var out []*models.Aquarium
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan aquarium: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list aquariums: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, aquariumID id.AquariumID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM aquariums WHERE id = $1`, uuid.UUID(aquariumID))
	if err != nil {
		return fmt.Errorf("delete aquarium: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Aquarium, error) {
	var (
		r                           models.AquariumRecord
		aquariumID                  uuid.UUID
		ownerID                     uuid.NullUUID
		substrate, waterType, state string
	)
	if err := row.Scan(&aquariumID, &ownerID, &r.Name, &r.Dimensions.Length, &r.Dimensions.Width, &r.Dimensions.Height,
		&substrate, &waterType, &r.Temperature, &state, &r.CurrentStateStartTime,
		&r.Color, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.AquariumID(aquariumID)
	if ownerID.Valid {
		r.OwnerID = id.OwnerID(ownerID.UUID)
	}
	r.Substrate = models.Substrate(substrate)
	r.WaterType = models.WaterType(waterType)
	r.State = models.State(state)
	return models.ReconstructAquarium(r), nil
}

func nullOwner(ownerID id.OwnerID) uuid.NullUUID {
	if ownerID.IsNil() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(ownerID), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
