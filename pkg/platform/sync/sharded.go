// Package sync holds locking helpers keyed by resource name.
package sync

import (
	"hash/fnv"
	"sync"
)

const shardCount = 32

// ShardedMutex serializes work per key without one global lock. Keys that
// hash to the same shard also serialize, which is harmless for short critical
// sections.
type ShardedMutex struct {
	shards [shardCount]sync.Mutex
}

func NewShardedMutex() *ShardedMutex {
	return &ShardedMutex{}
}

func (m *ShardedMutex) Lock(key string)   { m.shards[shardOf(key)].Lock() }
func (m *ShardedMutex) Unlock(key string) { m.shards[shardOf(key)].Unlock() }

// WithLock runs fn while holding the shard for key.
func (m *ShardedMutex) WithLock(key string, fn func()) {
	m.Lock(key)
	defer m.Unlock(key)
	fn()
}

func shardOf(key string) int {
	if key == "" {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % shardCount)
}
