package accessory

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

// PostgresStore keeps every accessory kind in one table. Columns belonging to
// other kinds stay NULL.
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

const columns = `id, owner_id, aquarium_id, kind, model, serial_number, color, description,
	filter_external, filter_capacity_liters, lighting_led, lighting_turn_on, lighting_turn_off,
	thermostat_min, thermostat_max, thermostat_current, created_at, updated_at`

// payload holds the nullable per-kind columns.
type payload struct {
	filterExternal sql.NullBool
	filterCapacity sql.NullInt64
	lightingLED    sql.NullBool
	lightingOn     sql.NullString
	lightingOff    sql.NullString
	thermostatMin  sql.NullFloat64
	thermostatMax  sql.NullFloat64
	thermostatCurr sql.NullFloat64
}

func toPayload(r models.AccessoryRecord) payload {
	var p payload
	if f := r.Filter; f != nil {
		p.filterExternal = sql.NullBool{Bool: f.External, Valid: true}
		p.filterCapacity = sql.NullInt64{Int64: int64(f.CapacityLiters), Valid: true}
	}
	if l := r.Lighting; l != nil {
		p.lightingLED = sql.NullBool{Bool: l.LED, Valid: true}
		p.lightingOn = sql.NullString{String: l.TurnOnTime.String(), Valid: true}
		p.lightingOff = sql.NullString{String: l.TurnOffTime.String(), Valid: true}
	}
	if t := r.Thermostat; t != nil {
		p.thermostatMin = sql.NullFloat64{Float64: t.MinTemperature, Valid: true}
		p.thermostatMax = sql.NullFloat64{Float64: t.MaxTemperature, Valid: true}
		p.thermostatCurr = sql.NullFloat64{Float64: t.CurrentTemperature, Valid: true}
	}
	return p
}

func (p payload) apply(r *models.AccessoryRecord) error {
	switch r.Kind {
	case models.KindFilter:
		r.Filter = &models.FilterSpec{External: p.filterExternal.Bool, CapacityLiters: int(p.filterCapacity.Int64)}
	case models.KindLighting:
		on, err := models.ParseClockTime("Turn on time", p.lightingOn.String)
		if err != nil {
			return err
		}
		off, err := models.ParseClockTime("Turn off time", p.lightingOff.String)
		if err != nil {
			return err
		}
		r.Lighting = &models.LightingSpec{LED: p.lightingLED.Bool, TurnOnTime: on, TurnOffTime: off}
	case models.KindThermostat:
		r.Thermostat = &models.ThermostatSpec{
			MinTemperature:     p.thermostatMin.Float64,
			MaxTemperature:     p.thermostatMax.Float64,
			CurrentTemperature: p.thermostatCurr.Float64,
		}
	default:
		return fmt.Errorf("unknown accessory kind %q: %w", r.Kind, sentinel.ErrInvalidState)
	}
	return nil
}

func (s *PostgresStore) Create(ctx context.Context, a *models.Accessory) error {
	r := a.Record()
	p := toPayload(r)
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO accessories (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		uuid.UUID(r.ID), uuid.UUID(r.OwnerID), nullAquarium(r.AquariumID), string(r.Kind), r.Model, r.SerialNumber,
		r.Color, r.Description,
		p.filterExternal, p.filterCapacity, p.lightingLED, p.lightingOn, p.lightingOff,
		p.thermostatMin, p.thermostatMax, p.thermostatCurr,
		r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("accessory exists: %w", sentinel.ErrAlreadyUsed)
		}
		return fmt.Errorf("create accessory: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, a *models.Accessory) error {
	r := a.Record()
	p := toPayload(r)
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE accessories
		SET aquarium_id = $2, model = $3, serial_number = $4, color = $5, description = $6,
			filter_external = $7, filter_capacity_liters = $8, lighting_led = $9,
			lighting_turn_on = $10, lighting_turn_off = $11,
			thermostat_min = $12, thermostat_max = $13, thermostat_current = $14, updated_at = $15
		WHERE id = $1`,
		uuid.UUID(r.ID), nullAquarium(r.AquariumID), r.Model, r.SerialNumber, r.Color, r.Description,
		p.filterExternal, p.filterCapacity, p.lightingLED, p.lightingOn, p.lightingOff,
		p.thermostatMin, p.thermostatMax, p.thermostatCurr, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save accessory: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, accessoryID id.AccessoryID) (*models.Accessory, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+columns+` FROM accessories WHERE id = $1`, uuid.UUID(accessoryID))
	a, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find accessory: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Accessory, error) {
	return s.list(ctx, `SELECT `+columns+` FROM accessories WHERE owner_id = $1 ORDER BY created_at, id`, uuid.UUID(ownerID))
}

func (s *PostgresStore) ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Accessory, error) {
	return s.list(ctx, `SELECT `+columns+` FROM accessories WHERE aquarium_id = $1 ORDER BY created_at, id`, uuid.UUID(aquariumID))
}

func (s *PostgresStore) Delete(ctx context.Context, accessoryID id.AccessoryID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM accessories WHERE id = $1`, uuid.UUID(accessoryID))
	if err != nil {
		return fmt.Errorf("delete accessory: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) list(ctx context.Context, query string, arg any) ([]*models.Accessory, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	defer rows.Close()

	var out []*models.Accessory
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*models.Accessory, error) {
	var (
		r           models.AccessoryRecord
		p           payload
		accessoryID uuid.UUID
		ownerID     uuid.UUID
		aquariumID  uuid.NullUUID
		kind        string
	)
	if err := row.Scan(&accessoryID, &ownerID, &aquariumID, &kind, &r.Model, &r.SerialNumber, &r.Color, &r.Description,
		&p.filterExternal, &p.filterCapacity, &p.lightingLED, &p.lightingOn, &p.lightingOff,
		&p.thermostatMin, &p.thermostatMax, &p.thermostatCurr,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	r.ID = id.AccessoryID(accessoryID)
	r.OwnerID = id.OwnerID(ownerID)
	if aquariumID.Valid {
		r.AquariumID = id.AquariumID(aquariumID.UUID)
	}
	r.Kind = models.AccessoryKind(kind)
	if err := p.apply(&r); err != nil {
		return nil, err
	}
	return models.ReconstructAccessory(r), nil
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
