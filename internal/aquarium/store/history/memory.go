package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"aquaria/internal/aquarium/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

// InMemoryHistoryStore keeps state intervals per aquarium. At most one open
// interval per aquarium is accepted.
type InMemoryHistoryStore struct {
	mu   sync.RWMutex
	rows map[id.StateHistoryID]models.StateHistory
}

func New() *InMemoryHistoryStore {
	return &InMemoryHistoryStore{rows: make(map[id.StateHistoryID]models.StateHistory)}
}

func clone(h models.StateHistory) models.StateHistory {
	if h.EndTime != nil {
		end := *h.EndTime
		h.EndTime = &end
	}
	if h.DurationMinutes != nil {
		d := *h.DurationMinutes
		h.DurationMinutes = &d
	}
	return h
}

func (s *InMemoryHistoryStore) Create(_ context.Context, h *models.StateHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[h.ID]; ok {
		return fmt.Errorf("state history exists: %w", sentinel.ErrAlreadyUsed)
	}
	if h.IsActive() {
		for _, r := range s.rows {
			if r.AquariumID == h.AquariumID && r.EndTime == nil {
				return fmt.Errorf("aquarium already has an open interval: %w", sentinel.ErrConflict)
			}
		}
	}
	s.rows[h.ID] = clone(*h)
	return nil
}

func (s *InMemoryHistoryStore) Save(_ context.Context, h *models.StateHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[h.ID]; !ok {
		return fmt.Errorf("state history not found: %w", sentinel.ErrNotFound)
	}
	s.rows[h.ID] = clone(*h)
	return nil
}

// FindActive returns the open interval of an aquarium.
func (s *InMemoryHistoryStore) FindActive(_ context.Context, aquariumID id.AquariumID) (*models.StateHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if r.AquariumID == aquariumID && r.EndTime == nil {
			return models.ReconstructStateHistory(clone(r)), nil
		}
	}
	return nil, fmt.Errorf("no open interval: %w", sentinel.ErrNotFound)
}

func (s *InMemoryHistoryStore) ListByAquarium(_ context.Context, aquariumID id.AquariumID) ([]*models.StateHistory, error) {
	return s.list(aquariumID, func(models.StateHistory) bool { return true }), nil
}

func (s *InMemoryHistoryStore) ListByAquariumAndState(_ context.Context, aquariumID id.AquariumID, state models.State) ([]*models.StateHistory, error) {
	return s.list(aquariumID, func(h models.StateHistory) bool { return h.State == state }), nil
}

// ListByAquariumBetween returns intervals that started at or after from and
// have either not ended or ended at or before to.
func (s *InMemoryHistoryStore) ListByAquariumBetween(_ context.Context, aquariumID id.AquariumID, from, to time.Time) ([]*models.StateHistory, error) {
	return s.list(aquariumID, func(h models.StateHistory) bool {
		if h.StartTime.Before(from) {
			return false
		}
		return h.EndTime == nil || !h.EndTime.After(to)
	}), nil
}

func (s *InMemoryHistoryStore) DeleteByAquarium(_ context.Context, aquariumID id.AquariumID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, r := range s.rows {
		if r.AquariumID == aquariumID {
			delete(s.rows, k)
		}
	}
	return nil
}

func (s *InMemoryHistoryStore) list(aquariumID id.AquariumID, match func(models.StateHistory) bool) []*models.StateHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.StateHistory
	for _, r := range s.rows {
		if r.AquariumID == aquariumID && match(r) {
			out = append(out, models.ReconstructStateHistory(clone(r)))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}
