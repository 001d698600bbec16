package inmemory

import (
	"context"
	"fmt"
	"slices"

	gocache "github.com/patrickmn/go-cache"
)

// Store keeps documents in process memory. Useful for tests and ephemeral runs.
type Store struct {
	cache *gocache.Cache
}

func New() *Store {
	return &Store{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *Store) Read(_ context.Context, name string) ([]byte, bool, error) {
	val, ok := s.cache.Get(name)
	if !ok {
		return nil, false, nil
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("document %s has unexpected type %T", name, val)
	}
	return slices.Clone(data), true, nil
}

func (s *Store) Write(_ context.Context, name string, data []byte) error {
	s.cache.Set(name, slices.Clone(data), gocache.NoExpiration)
	return nil
}

func (s *Store) Close() error {
	s.cache.Flush()
	return nil
}
