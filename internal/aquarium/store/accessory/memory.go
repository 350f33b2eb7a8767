package accessory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

// InMemoryAccessoryStore keeps deep copies so callers never share kind payloads.
type InMemoryAccessoryStore struct {
	mu   sync.RWMutex
	rows map[id.AccessoryID]models.AccessoryRecord
}

func New() *InMemoryAccessoryStore {
	return &InMemoryAccessoryStore{rows: make(map[id.AccessoryID]models.AccessoryRecord)}
}

func clone(r models.AccessoryRecord) models.AccessoryRecord {
	if r.Filter != nil {
		f := *r.Filter
		r.Filter = &f
	}
	if r.Lighting != nil {
		l := *r.Lighting
		r.Lighting = &l
	}
	if r.Thermostat != nil {
		t := *r.Thermostat
		r.Thermostat = &t
	}
	return r
}

func (s *InMemoryAccessoryStore) Create(_ context.Context, a *models.Accessory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; ok {
		return fmt.Errorf("accessory exists: %w", sentinel.ErrAlreadyUsed)
	}
	s.rows[a.ID] = clone(a.Record())
	return nil
}

func (s *InMemoryAccessoryStore) Save(_ context.Context, a *models.Accessory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; !ok {
		return fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
	}
	s.rows[a.ID] = clone(a.Record())
	return nil
}

func (s *InMemoryAccessoryStore) FindByID(_ context.Context, accessoryID id.AccessoryID) (*models.Accessory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[accessoryID]
	if !ok {
		return nil, fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
	}
	return models.ReconstructAccessory(clone(r)), nil
}

func (s *InMemoryAccessoryStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]*models.Accessory, error) {
	return s.list(func(r models.AccessoryRecord) bool { return r.OwnerID == ownerID }), nil
}

func (s *InMemoryAccessoryStore) ListByAquarium(_ context.Context, aquariumID id.AquariumID) ([]*models.Accessory, error) {
	return s.list(func(r models.AccessoryRecord) bool { return r.AquariumID == aquariumID }), nil
}

func (s *InMemoryAccessoryStore) Delete(_ context.Context, accessoryID id.AccessoryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[accessoryID]; !ok {
		return fmt.Errorf("accessory not found: %w", sentinel.ErrNotFound)
	}
	delete(s.rows, accessoryID)
	return nil
}

func (s *InMemoryAccessoryStore) list(match func(models.AccessoryRecord) bool) []*models.Accessory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Accessory
	for _, r := range s.rows {
		if match(r) {
			out = append(out, models.ReconstructAccessory(clone(r)))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
