package owner

import (
	"context"
	"fmt"
	"sync"

	"aquaria/internal/owner/models"
	id "aquaria/pkg/domain"
	"aquaria/pkg/platform/sentinel"
)

// InMemoryOwnerStore keeps owners in a map; email uniqueness mirrors the
// unique index of the PostgreSQL table.
type InMemoryOwnerStore struct {
	mu     sync.RWMutex
	owners map[id.OwnerID]models.Owner
}

func New() *InMemoryOwnerStore {
	return &InMemoryOwnerStore{owners: make(map[id.OwnerID]models.Owner)}
}

func (s *InMemoryOwnerStore) Create(_ context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.owners {
		if existing.Email == owner.Email {
			return fmt.Errorf("owner email taken: %w", sentinel.ErrAlreadyUsed)
		}
	}
	s.owners[owner.ID] = *owner
	return nil
}

func (s *InMemoryOwnerStore) Save(_ context.Context, owner *models.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[owner.ID]; !ok {
		return fmt.Errorf("owner not found: %w", sentinel.ErrNotFound)
	}
	s.owners[owner.ID] = *owner
	return nil
}

func (s *InMemoryOwnerStore) FindByID(_ context.Context, ownerID id.OwnerID) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if owner, ok := s.owners[ownerID]; ok {
		return &owner, nil
	}
	return nil, fmt.Errorf("owner not found: %w", sentinel.ErrNotFound)
}

func (s *InMemoryOwnerStore) FindByEmail(_ context.Context, email string) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, owner := range s.owners {
		if owner.Email == email {
			return &owner, nil
		}
	}
	return nil, fmt.Errorf("owner not found: %w", sentinel.ErrNotFound)
}
