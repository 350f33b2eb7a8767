package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
)

// Store interfaces define persistence contracts. Implementations return
// pkg/platform/sentinel errors; the service translates them once.

type AquariumStore interface {
	Create(ctx context.Context, aquarium *models.Aquarium) error
	Save(ctx context.Context, aquarium *models.Aquarium) error
	FindByID(ctx context.Context, aquariumID id.AquariumID) (*models.Aquarium, error)
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Aquarium, error)
	Delete(ctx context.Context, aquariumID id.AquariumID) error
}

type InhabitantStore interface {
	Create(ctx context.Context, inhabitant *models.Inhabitant) error
	Save(ctx context.Context, inhabitant *models.Inhabitant) error
	FindByID(ctx context.Context, inhabitantID id.InhabitantID) (*models.Inhabitant, error)
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Inhabitant, error)
	ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Inhabitant, error)
	Delete(ctx context.Context, inhabitantID id.InhabitantID) error
}

type AccessoryStore interface {
	Create(ctx context.Context, accessory *models.Accessory) error
	Save(ctx context.Context, accessory *models.Accessory) error
	FindByID(ctx context.Context, accessoryID id.AccessoryID) (*models.Accessory, error)
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Accessory, error)
	ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Accessory, error)
	Delete(ctx context.Context, accessoryID id.AccessoryID) error
}

type OrnamentStore interface {
	Create(ctx context.Context, ornament *models.Ornament) error
	Save(ctx context.Context, ornament *models.Ornament) error
	FindByID(ctx context.Context, ornamentID id.OrnamentID) (*models.Ornament, error)
	ListByOwner(ctx context.Context, ownerID id.OwnerID) ([]*models.Ornament, error)
	ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.Ornament, error)
	Delete(ctx context.Context, ornamentID id.OrnamentID) error
}

type HistoryStore interface {
	Create(ctx context.Context, entry *models.StateHistory) error
	Save(ctx context.Context, entry *models.StateHistory) error
	FindActive(ctx context.Context, aquariumID id.AquariumID) (*models.StateHistory, error)
	ListByAquarium(ctx context.Context, aquariumID id.AquariumID) ([]*models.StateHistory, error)
	ListByAquariumAndState(ctx context.Context, aquariumID id.AquariumID, state models.State) ([]*models.StateHistory, error)
	ListByAquariumBetween(ctx context.Context, aquariumID id.AquariumID, from, to time.Time) ([]*models.StateHistory, error)
	DeleteByAquarium(ctx context.Context, aquariumID id.AquariumID) error
}

// Stores groups the persistence dependencies of the service.
type Stores struct {
	Aquariums   AquariumStore
	Inhabitants InhabitantStore
	Accessories AccessoryStore
	Ornaments   OrnamentStore
	History     HistoryStore
}
