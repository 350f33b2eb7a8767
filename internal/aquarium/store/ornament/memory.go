package ornament

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

type InMemoryOrnamentStore struct {
	mu   sync.RWMutex
	rows map[id.OrnamentID]models.OrnamentRecord
}

func New() *InMemoryOrnamentStore {
	return &InMemoryOrnamentStore{rows: make(map[id.OrnamentID]models.OrnamentRecord)}
}

func (s *InMemoryOrnamentStore) Create(_ context.Context, o *models.Ornament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[o.ID]; ok {
		return fmt.Errorf("ornament exists: %w", sentinel.ErrAlreadyUsed)
	}
	s.rows[o.ID] = o.Record()
	return nil
}

func (s *InMemoryOrnamentStore) Save(_ context.Context, o *models.Ornament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[o.ID]; !ok {
		return fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
	}
	s.rows[o.ID] = o.Record()
	return nil
}

func (s *InMemoryOrnamentStore) FindByID(_ context.Context, ornamentID id.OrnamentID) (*models.Ornament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rows[ornamentID]
	if !ok {
		return nil, fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
	}
	return models.ReconstructOrnament(r), nil
}

func (s *InMemoryOrnamentStore) ListByOwner(_ context.Context, ownerID id.OwnerID) ([]*models.Ornament, error) {
	return s.list(func(r models.OrnamentRecord) bool { return r.OwnerID == ownerID }), nil
}

func (s *InMemoryOrnamentStore) ListByAquarium(_ context.Context, aquariumID id.AquariumID) ([]*models.Ornament, error) {
	return s.list(func(r models.OrnamentRecord) bool { return r.AquariumID == aquariumID }), nil
}

func (s *InMemoryOrnamentStore) Delete(_ context.Context, ornamentID id.OrnamentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[ornamentID]; !ok {
		return fmt.Errorf("ornament not found: %w", sentinel.ErrNotFound)
	}
	delete(s.rows, ornamentID)
	return nil
}

func (s *InMemoryOrnamentStore) list(match func(models.OrnamentRecord) bool) []*models.Ornament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Ornament
	for _, r := range s.rows {
		if match(r) {
			out = append(out, models.ReconstructOrnament(r))
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
