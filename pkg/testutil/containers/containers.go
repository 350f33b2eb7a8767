//go:build integration

// Package containers starts throwaway PostgreSQL and Redis instances for
// integration tests. Each container is started once per test binary and
// shared by every suite in it.
package containers

import (
	"sync"
	"testing"
)

// Manager hands out the shared containers, starting each on first request.
type Manager struct {
	mu       sync.Mutex
	postgres *PostgresContainer
	redis    *RedisContainer
}

var manager = &Manager{}

func GetManager() *Manager { return manager }

func (m *Manager) GetPostgres(t *testing.T) *PostgresContainer {
	t.Helper()
	return startOnce(m, &m.postgres, t, NewPostgresContainer)
}

func (m *Manager) GetRedis(t *testing.T) *RedisContainer {
	t.Helper()
	return startOnce(m, &m.redis, t, NewRedisContainer)
}

func startOnce[C any](m *Manager, slot **C, t *testing.T, start func(*testing.T) *C) *C {
	m.mu.Lock()
	defer m.mu.Unlock()
	if *slot == nil {
		*slot = start(t)
	}
	return *slot
}
