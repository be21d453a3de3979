// Package localstore holds a node's cached subset of the keyspace. The store
// is owned by exactly one node; the mutex only guards against concurrent
// commands on that node, never cross-node access.
package localstore

import (
	"sync"

	"dstore/pkg/dberrors"
	"dstore/pkg/types"
)

type Store struct {
	mu sync.RWMutex
	db map[string]types.Value
}

func New() *Store {
	return &Store{db: make(map[string]types.Value)}
}

// Put inserts a new mapping. An occupied key yields ErrKeyOccupied; Put never
// overwrites.
func (s *Store) Put(key types.Key, value types.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := string(key)
	if _, ok := s.db[k]; ok {
		return dberrors.ErrKeyOccupied
	}
	s.db[k] = value
	return nil
}

// Reconcile overwrites unconditionally. Reserved for the coherence layer when
// it mirrors Global's canonical value into the cache.
func (s *Store) Reconcile(key types.Key, value types.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.db[string(key)] = value
}

func (s *Store) Get(key types.Key) (types.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.db[string(key)]
	return value, ok
}

func (s *Store) Contains(key types.Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.db[string(key)]
	return ok
}

// Delete removes a mapping and reports whether it existed.
func (s *Store) Delete(key types.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := string(key)
	if _, ok := s.db[k]; !ok {
		return false
	}
	delete(s.db, k)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.db)
}
