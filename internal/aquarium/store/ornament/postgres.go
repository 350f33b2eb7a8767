package ornament

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

const columns = `id, owner_id, aquarium_id, name, description, color, material, air_pump_compatible, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, o *models.Ornament) error {
	r := o.Record()
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO ornaments (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.UUID(r.ID), uuid.UUID(r.OwnerID), nullAquarium(r.AquariumID), r.Name, r.Description,
		r.Color, r.Material, r.AirPumpCompatible, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ornament exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create ornament: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, o *models.Ornament) error {
	r := o.Record()
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE ornaments
		SET aquarium_id = $2, name = $3, description = $4, color = $5, material = $6,
			air_pump_compatible = $7, updated_at = $8
		WHERE id = $1`,
		uuid.UUID(r.ID), nullAquarium(r.AquariumID), r.Name, r.Description, r.Color, r.Material,
		r.AirPumpCompatible, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save ornament: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, ornamentID id.OrnamentID) (*models.Ornament, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+columns+` FROM ornaments WHERE id = $1`, uuid.UUID(ornamentID))
	o, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find ornament: %w", err)
	}
	return o, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Ornament, error) {
	return s.list(ctx, `SELECT `+columns+` FROM ornaments WHERE owner_id = $1 ORDER BY created_at, id`, uuid.UUID(ownerID))
}

func (s *PostgresStore) ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Ornament, error) {
	return s.list(ctx, `SELECT `+columns+` FROM ornaments WHERE aquarium_id = $1 ORDER BY created_at, id`, uuid.UUID(aquariumID))
}

func (s *PostgresStore) Delete(ctx context.Context, ornamentID id.OrnamentID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM ornaments WHERE id = $1`, uuid.UUID(ornamentID))
	if err != nil {
		return fmt.Errorf("delete ornament: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) list(ctx context.Context, query string, arg any) ([]*models.Ornament, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ornaments: %w", err)
	}
	defer rows.Close()

	var out []*models.Ornament
	for rows.Next() {
		o, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ornament: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ornaments: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Ornament, error) {
	var (
		r          models.OrnamentRecord
		ornamentID uuid.UUID
		ownerID    uuid.UUID
		aquariumID uuid.NullUUID
	)
	if err := row.Scan(&ornamentID, &ownerID, &aquariumID, &r.Name, &r.Description, &r.Color, &r.Material,
		&r.AirPumpCompatible, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.OrnamentID(ornamentID)
	r.OwnerID = id.OwnerID(ownerID)
	if aquariumID.Valid {
		r.AquariumID = id.AquariumID(aquariumID.UUID)
	}
	return models.ReconstructOrnament(r), nil
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
