//go:build integration

package containers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"aquaria/migrations"
	id "aquaria/pkg/domain"
)

// PostgresContainer wraps a testcontainers Postgres instance with migrations applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

const (
	postgresImage    = "postgres:18-alpine"
	postgresDatabase = "aquaria_test"
	postgresUser     = "aquaria"
	postgresPassword = "aquaria_test_password"
)

// NewPostgresContainer starts Postgres and applies the embedded migrations.
// Ryuk removes the container when the test process exits.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	pc := &PostgresContainer{Container: container}
	fail := func(step string, err error) {
		if pc.DB != nil {
			_ = pc.DB.Close()
		}
		_ = container.Terminate(ctx)
		t.Fatalf("%s: %v", step, err)
	}

	if pc.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		fail("postgres connection string", err)
	}
	if pc.DB, err = sql.Open("pgx", pc.DSN); err != nil {
		fail("open postgres", err)
	}
	if err := pc.runMigrations(ctx); err != nil {
		fail("apply migrations", err)
	}
	return pc
}

func (p *PostgresContainer) runMigrations(ctx context.Context) error {
	return migrations.Apply(ctx, p.DB)
}

func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// TruncateAll clears every aquaria table.
func (p *PostgresContainer) TruncateAll(ctx context.Context) error {
	return p.TruncateTables(ctx,
		"audit_events",
		"state_history",
		"inhabitants",
		"accessories",
		"ornaments",
		"aquariums",
		"owners",
	)
}

// CreateTestOwner inserts an owner row so owned rows satisfy their foreign keys.
func (p *PostgresContainer) CreateTestOwner(ctx context.Context, t testing.TB) id.OwnerID {
	t.Helper()
	ownerID := id.OwnerID(uuid.New())
	_, err := p.DB.ExecContext(ctx, `
		INSERT INTO owners (id, first_name, last_name, email, password_hash, role, last_login_client, created_at, updated_at)
		VALUES ($1, 'Test', 'Owner', $2, 'hash', 'OWNER', '', NOW(), NOW())
	`, uuid.UUID(ownerID), "owner-"+uuid.NewString()+"@example.com")
	if err != nil {
		t.Fatalf("CreateTestOwner: %v", err)
	}
	return ownerID
}
