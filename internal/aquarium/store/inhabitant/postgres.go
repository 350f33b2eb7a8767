package inhabitant

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

// PostgresStore persists inhabitants; trait flags are plain columns.
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

const columns = `id, owner_id, aquarium_id, kind, species, name, color, count, schooling, water_type,
	aggressive_eater, requires_special_food, snail_eater, description, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, i *models.Inhabitant) error {
	r := i.Record()
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO inhabitants (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		uuid.UUID(r.ID), uuid.UUID(r.OwnerID), nullAquarium(r.AquariumID), string(r.Kind), r.Species, r.Name,
		r.Color, r.Count, r.Schooling, string(r.WaterType),
		r.Traits.AggressiveEater, r.Traits.RequiresSpecialFood, r.Traits.SnailEater,
		r.Description, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inhabitant exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create inhabitant: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, i *models.Inhabitant) error {
	r := i.Record()
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE inhabitants
		SET aquarium_id = $2, species = $3, name = $4, color = $5, count = $6, schooling = $7,
			water_type = $8, aggressive_eater = $9, requires_special_food = $10, snail_eater = $11,
			description = $12, updated_at = $13
		WHERE id = $1`,
		uuid.UUID(r.ID), nullAquarium(r.AquariumID), r.Species, r.Name, r.Color, r.Count, r.Schooling,
		string(r.WaterType), r.Traits.AggressiveEater, r.Traits.RequiresSpecialFood, r.Traits.SnailEater,
		r.Description, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save inhabitant: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, inhabitantID id.InhabitantID) (*models.Inhabitant, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+columns+` FROM inhabitants WHERE id = $1`, uuid.UUID(inhabitantID))
	i, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find inhabitant: %w", err)
	}
	return i, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Inhabitant, error) {
	return s.list(ctx, `SELECT `+columns+` FROM inhabitants WHERE owner_id = $1 ORDER BY created_at, id`, uuid.UUID(ownerID))
}

func (s *PostgresStore) ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Inhabitant, error) {
	return s.list(ctx, `SELECT `+columns+` FROM inhabitants WHERE aquarium_id = $1 ORDER BY created_at, id`, uuid.UUID(aquariumID))
}

func (s *PostgresStore) Delete(ctx context.Context, inhabitantID id.InhabitantID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM inhabitants WHERE id = $1`, uuid.UUID(inhabitantID))
	if err != nil {
		return fmt.Errorf("delete inhabitant: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) list(ctx context.Context, query string, arg any) ([]*models.Inhabitant, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list inhabitants: %w", err)
	}
	defer rows.Close()

	var out []*models.Inhabitant
	for rows.Next() {
		i, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inhabitant: %w", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inhabitants: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Inhabitant, error) {
	var (
		r               models.InhabitantRecord
		inhabitantID    uuid.UUID
		ownerID         uuid.UUID
		aquariumID      uuid.NullUUID
		kind, waterType string
	)
	if err := row.Scan(&inhabitantID, &ownerID, &aquariumID, &kind, &r.Species, &r.Name, &r.Color,
		&r.Count, &r.Schooling, &waterType,
		&r.Traits.AggressiveEater, &r.Traits.RequiresSpecialFood, &r.Traits.SnailEater,
		&r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.InhabitantID(inhabitantID)
	r.OwnerID = id.OwnerID(ownerID)
	if aquariumID.Valid {
		r.AquariumID = id.AquariumID(aquariumID.UUID)
	}
	r.Kind = models.InhabitantKind(kind)
	r.WaterType = models.WaterType(waterType)
	return models.ReconstructInhabitant(r), nil
}

func nullAquarium(aquariumID id.AquariumID) uuid.NullUUID {
	if aquariumID.IsNil() {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(aquariumID), Valid: true}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
