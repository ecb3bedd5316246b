package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultKey is the storage key holding the JSON array of identity strings.
const DefaultKey = "favorites"

// maxTxAttempts bounds the optimistic-lock loop in RedisStore.Update.
const maxTxAttempts = 10

var ErrConcurrentUpdate = errors.New("favorites were modified concurrently, giving up")

// UpdateFunc receives the current ids and returns the replacement list. The
// slice it receives is a copy and may be modified.
type UpdateFunc func(ids []string) ([]string, error)

// Store persists the ordered list of favorite ids. Update must apply fn as an
// atomic read-modify-write.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Update(ctx context.Context, fn UpdateFunc) ([]string, error)
}

// MemoryStore keeps favorites in process. It is the default when no Redis
// address is configured.
type MemoryStore struct {
	mu  sync.Mutex
	ids []string
}

func NewMemoryStore(ids ...string) *MemoryStore {
	return &MemoryStore{ids: slices.Clone(ids)}
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ids), nil
}

func (s *MemoryStore) Update(_ context.Context, fn UpdateFunc) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(slices.Clone(s.ids))
	if err != nil {
		return nil, err
	}
	s.ids = slices.Clone(next)
	return next, nil
}

// RedisStore keeps favorites as a JSON array under a single key. Updates use
// WATCH/MULTI so two racing toggles cannot overwrite each other.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	return readIDs(ctx, s.client, s.key)
}

func (s *RedisStore) Update(ctx context.Context, fn UpdateFunc) ([]string, error) {
	var result []string

	txf := func(tx *redis.Tx) error {
		ids, err := readIDs(ctx, tx, s.key)
		if err != nil {
			return err
		}

		next, err := fn(ids)
		if err != nil {
			return err
		}

		data, err := json.Marshal(nonNil(next))
		if err != nil {
			return fmt.Errorf("failed to encode favorites: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = next
		return nil
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Another writer committed between WATCH and EXEC; re-read.
			continue
		}
		return nil, err
	}

	return nil, ErrConcurrentUpdate
}

// getter is satisfied by both *redis.Client and *redis.Tx.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readIDs(ctx context.Context, c getter, key string) ([]string, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites from Redis: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return nonNil(ids), nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
