package lockout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"aquaria/internal/owner/models"
	"aquaria/pkg/platform/sentinel"
	"aquaria/pkg/requestcontext"
)

type entry struct {
	lockout   models.LoginLockout
	expiresAt time.Time
}

// InMemoryLockoutStore keeps failed-login counters for a single instance.
// Expired records are dropped on the next write.
type InMemoryLockoutStore struct {
	mu      sync.RWMutex
	records map[string]entry
}

func New() *InMemoryLockoutStore {
	return &InMemoryLockoutStore{records: make(map[string]entry)}
}

func (s *InMemoryLockoutStore) Get(ctx context.Context, key string) (*models.LoginLockout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[key]
	if !ok || !requestcontext.Now(ctx).Before(e.expiresAt) {
		return nil, fmt.Errorf("lockout not found: %w", sentinel.ErrNotFound)
	}
	l := e.lockout
	return &l, nil
}

func (s *InMemoryLockoutStore) Save(ctx context.Context, lockout *models.LoginLockout, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := requestcontext.Now(ctx)
	for k, e := range s.records {
		if !now.Before(e.expiresAt) {
			delete(s.records, k)
		}
	}
	s.records[lockout.Key] = entry{lockout: *lockout, expiresAt: expiresAt}
	return nil
}

func (s *InMemoryLockoutStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, key)
	return nil
}
