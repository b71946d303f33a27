package filters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	pkgerrors "github.com/tetraedu/desempenho-backend/pkg/errors"
	pkgredis "github.com/tetraedu/desempenho-backend/pkg/redis"
)

// stateStore is the minimal redis surface the filter store needs.
type stateStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	FiltersKey(stateKey string) string
}

// Store persists named filter sets across sessions.
type Store struct {
	redis stateStore
	ttl   time.Duration
}

// NewStore builds a filter store over the provided redis client.
func NewStore(redis stateStore, ttl time.Duration) (*Store, error) {
	if redis == nil {
		return nil, fmt.Errorf("redis store is required")
	}
	return &Store{redis: redis, ttl: ttl}, nil
}

// Save persists the set under the named key.
func (s *Store) Save(ctx context.Context, key string, set Set) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode filter state")
	}
	if err := s.redis.Set(ctx, s.redis.FiltersKey(key), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist filter state")
	}
	return nil
}

// Load returns the stored set for the key. Missing or unreadable state
// yields the default set; corrupt payloads are treated as absent so a
// stale entry can never wedge the dashboard.
func (s *Store) Load(ctx context.Context, key string) (Set, error) {
	raw, err := s.redis.Get(ctx, s.redis.FiltersKey(key))
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return DefaultSet(), nil
		}
		return DefaultSet(), pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load filter state")
	}
	var set Set
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return DefaultSet(), nil
	}
	if set.Seller == "" {
		set.Seller = All
	}
	if set.Origin == "" {
		set.Origin = All
	}
	if set.Tag == "" {
		set.Tag = All
	}
	return set, nil
}

// Clear removes the stored state so subsequent loads see defaults.
func (s *Store) Clear(ctx context.Context, key string) error {
	if err := s.redis.Del(ctx, s.redis.FiltersKey(key)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear filter state")
	}
	return nil
}

// Resolve applies the read preference: when the URL carries filter
// params they are decoded over the defaults, so a shared link shows
// the same view to every recipient regardless of their stored state.
// Without params the stored set wins, then defaults.
func (s *Store) Resolve(ctx context.Context, key string, query url.Values) (Set, error) {
	if HasQueryParams(query) {
		return DecodeQuery(query, DefaultSet()), nil
	}
	return s.Load(ctx, key)
}
