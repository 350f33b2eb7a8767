package inhabitant

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

type InMemoryInhabitantStore struct {
	mu   sync.RWMutex
	rows map[id.InhabitantID]models.InhabitantRecord
}

func New() *InMemoryInhabitantStore {
	return &InMemoryInhabitantStore{rows: make(map[id.InhabitantID]models.InhabitantRecord)}
}

func (s *InMemoryInhabitantStore) Create(_ context.Context, i *models.Inhabitant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[i.ID]; ok {
		return fmt.Errorf("inhabitant exists: %w", sentinel.ErrAlreadyUsed)
	}
	s.rows[i.ID] = i.Record()
	return nil
}

func (s *InMemoryInhabitantStore) Save(_ context.Context, i *models.Inhabitant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[i.ID]; !ok {
		return fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
	}
	s.rows[i.ID] = i.Record()
	return nil
}

func (s *InMemoryInhabitantStore) FindByID(_ context.Context, inhabitantID id.InhabitantID) (*models.Inhabitant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[inhabitantID]
	if !ok {
		return nil, fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
	}
	return models.ReconstructInhabitant(r), nil
}

func (s *InMemoryInhabitantStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]*models.Inhabitant, error) {
	return s.list(func(r models.InhabitantRecord) bool { return r.OwnerID == ownerID }), nil
}

func (s *InMemoryInhabitantStore) ListByAquarium(_ context.Context, aquariumID id.AquariumID) ([]*models.Inhabitant, error) {
	return s.list(func(r models.InhabitantRecord) bool { return r.AquariumID == aquariumID }), nil
}

func (s *InMemoryInhabitantStore) Delete(_ context.Context, inhabitantID id.InhabitantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[inhabitantID]; !ok {
		return fmt.Errorf("inhabitant not found: %w", sentinel.ErrNotFound)
	}
	delete(s.rows, inhabitantID)
	return nil
}

func (s *InMemoryInhabitantStore) list(match func(models.InhabitantRecord) bool) []*models.Inhabitant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Inhabitant
	for _, r := range s.rows {
		if match(r) {
			out = append(out, models.ReconstructInhabitant(r))
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
