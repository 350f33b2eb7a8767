package owner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"aquaria/internal/owner/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

// PostgresStore persists owners in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const ownerColumns = `id, first_name, last_name, email, password_hash, role, last_login, last_login_client, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, owner *models.Owner) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO owners (`+ownerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.UUID(owner.ID), owner.FirstName, owner.LastName, owner.Email, owner.PasswordHash,
		string(owner.Role), owner.LastLogin, owner.LastLoginClient, owner.CreatedAt, owner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("owner email taken: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create owner: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, owner *models.Owner) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE owners
		SET first_name = $2, last_name = $3, email = $4, password_hash = $5, role = $6,
			last_login = $7, last_login_client = $8, updated_at = $9
		WHERE id = $1`,
		uuid.UUID(owner.ID), owner.FirstName, owner.LastName, owner.Email, owner.PasswordHash,
		string(owner.Role), owner.LastLogin, owner.LastLoginClient, owner.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("owner email taken: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("save owner: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("owner not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, ownerID id.OwnerID) (*models.Owner, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, uuid.UUID(ownerID))
	return scanOwner(row)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Owner, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+ownerColumns+` FROM owners WHERE email = $1`, email)
	return scanOwner(row)
}

func scanOwner(row *sql.Row) (*models.Owner, error) {
	var (
		ownerID   uuid.UUID
		role      string
		lastLogin sql.NullTime
		o         models.Owner
	)
	err := row.Scan(&ownerID, &o.FirstName, &o.LastName, &o.Email, &o.PasswordHash, &role,
		&lastLogin, &o.LastLoginClient, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("owner not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("scan owner: %w", err)
	}
	o.ID = id.OwnerID(ownerID)
	o.Role = models.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time.In(time.UTC)
		o.LastLogin = &t
	}
	return &o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
