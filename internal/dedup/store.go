package dedup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store records fingerprints of already-ingested offers.
//
// Add is atomic insert-if-absent: it returns true exactly once per key
// across concurrent callers. A separate exists-then-persist pair would
// let two producers emit the same offer, so the interface does not offer
// one.
type Store interface {
	Add(ctx context.Context, fingerprint string) (bool, error)
}

const redisKeyPrefix = "discovery:fp:"

// RedisStore persists fingerprints in Redis via SET NX. Keys carry a TTL
// so a role re-advertised after the window is treated as a fresh posting
// instead of being suppressed forever.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore constructs a RedisStore. A non-positive ttl means keys
// never expire.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

// Add marks the fingerprint as seen. Returns true if it was not already
// present.
func (s *RedisStore) Add(ctx context.Context, fingerprint string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, redisKeyPrefix+fingerprint, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis SETNX: %w", err)
	}
	return ok, nil
}

// MemoryStore is an in-process Store for tests and single-run tools.
type MemoryStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

// Add marks the fingerprint as seen. Returns true if it was not already
// present.
func (s *MemoryStore) Add(_ context.Context, fingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[fingerprint]; ok {
		return false, nil
	}
	s.seen[fingerprint] = struct{}{}
	return true, nil
}
