package aquarium

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

// InMemoryAquariumStore keeps aquarium rows. Members live in their own
// stores; returned aquariums have empty collections.
type InMemoryAquariumStore struct {
	mu   sync.RWMutex
	rows map[id.AquariumID]models.AquariumRecord
}

func New() *InMemoryAquariumStore {
	return &InMemoryAquariumStore{rows: make(map[id.AquariumID]models.AquariumRecord)}
}

func row(a *models.Aquarium) models.AquariumRecord {
	r := a.Record()
	r.Inhabitants, r.Accessories, r.Ornaments = nil, nil, nil
	return r
}

func (s *InMemoryAquariumStore) Create(_ context.Context, a *models.Aquarium) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; ok {
		return fmt.Errorf("aquarium exists: %w", sentinel.ErrAlreadyUsed)
	}
	s.rows[a.ID] = row(a)
	return nil
}

func (s *InMemoryAquariumStore) Save(_ context.Context, a *models.Aquarium) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[a.ID]; !ok {
		return fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
	}
	s.rows[a.ID] = row(a)
	return nil
}

func (s *InMemoryAquariumStore) FindByID(_ context.Context, aquariumID id.AquariumID) (*models.Aquarium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[aquariumID]
	if !ok {
		return nil, fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
	}
	return models.ReconstructAquarium(r), nil
}

// ListByOwner returns the owner's aquariums oldest first.
func (s *InMemoryAquariumStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]*models.Aquarium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Aquarium
	for _, r := range s.rows {
		if r.OwnerID == ownerID {
			out = append(out, models.ReconstructAquarium(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemoryAquariumStore) Delete(_ context.Context, aquariumID id.AquariumID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[aquariumID]; !ok {
		return fmt.Errorf("aquarium not found: %w", sentinel.ErrNotFound)
	}
	delete(s.rows, aquariumID)
	return nil
}
