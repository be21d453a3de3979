// Package globalstore is the authoritative store for the whole cluster. Every
// Local reaches it through the RPC layer; mutations for a key are serialized
// on a lock stripe so that concurrent writers race to exactly one winner.
package globalstore

import (
	"bytes"
	"hash/fnv"
	"sync"

	"github.com/zhangyunhao116/skipmap"

	"dstore/pkg/dberrors"
	"dstore/pkg/types"
)

const stripeCount = 64

type Store struct {
	db      *skipmap.FuncMap[[]byte, []byte]
	stripes [stripeCount]sync.Mutex
}

func New() *Store {
	return &Store{
		db: skipmap.NewFunc[[]byte, []byte](func(a, b []byte) bool {
			return bytes.Compare(a, b) < 0
		}),
	}
}

func (s *Store) stripe(key types.Key) *sync.Mutex {
	h := fnv.New32a()
	h.Write(key)
	return &s.stripes[h.Sum32()%stripeCount]
}

// Put inserts a new mapping. A concurrent or prior writer of the same key
// wins and the caller observes ErrKeyOccupied; values are never merged or
// overwritten.
func (s *Store) Put(key types.Key, value types.Value) error {
	mu := s.stripe(key)
	mu.Lock()
	defer mu.Unlock()

	if _, loaded := s.db.LoadOrStore(key, value); loaded {
		return dberrors.ErrKeyOccupied
	}
	return nil
}

// Update replaces the value for a key, bypassing write-once enforcement. It
// returns the previous value and whether one existed. An absent key is simply
// inserted. Never called by the SET/GET/DEL paths.
func (s *Store) Update(key types.Key, value types.Value) (types.Value, bool) {
	mu := s.stripe(key)
	mu.Lock()
	defer mu.Unlock()

	prev, existed := s.db.Load(key)
	s.db.Store(key, value)
	return prev, existed
}

func (s *Store) Get(key types.Key) (types.Value, bool) {
	return s.db.Load(key)
}

// Contains reports whether a key exists and the size of its value. Locals use
// the size to pick between unary and streamed pulls.
func (s *Store) Contains(key types.Key) (int, bool) {
	value, ok := s.db.Load(key)
	if !ok {
		return 0, false
	}
	return len(value), true
}

// Delete removes a mapping and reports whether it existed.
func (s *Store) Delete(key types.Key) bool {
	mu := s.stripe(key)
	mu.Lock()
	defer mu.Unlock()

	_, loaded := s.db.LoadAndDelete(key)
	return loaded
}

func (s *Store) Len() int {
	return s.db.Len()
}
