// Package node implements the coherence protocol: how SET, GET, and DEL
// route between this node's Local cache and the authoritative Global store.
// Global wins for existing data; Local is authoritative only for data that
// exists nowhere else yet.
package node

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dstore/pkg/chunk"
	"dstore/pkg/dberrors"
	"dstore/pkg/localstore"
	"dstore/pkg/types"
)

// iGlobal is the slice of the Global client the protocol needs. It allows
// using a fake Global in tests.
type iGlobal interface {
	Contains(ctx context.Context, key types.Key) (int64, error)
	Push(ctx context.Context, key types.Key, value types.Value) error
	PushFile(ctx context.Context, key types.Key, value types.Value) error
	Pull(ctx context.Context, key types.Key) (types.Value, error)
	PullFile(ctx context.Context, key types.Key) (types.Value, error)
	Remove(ctx context.Context, key types.Key) error
	Invalidate(ctx context.Context, addr types.NodeAddr) (types.Key, error)
}

// Outcome classifies how an operation resolved.
type Outcome int

const (
	// Stored: a new mapping was accepted by Global and cached locally.
	Stored Outcome = iota
	// LocalConflict: this node already holds the key; the write was
	// abandoned without a network call.
	LocalConflict
	// GlobalConflict: another node owns the key; the canonical value was
	// pulled into the cache and the caller's write abandoned.
	GlobalConflict
	// FoundLocal: the read was served from the cache.
	FoundLocal
	// FoundGlobal: the read was pulled from Global and cached.
	FoundGlobal
	// Removed: the key is gone from this node and from Global.
	Removed
)

// Result carries the outcome and, for reads and conflicts, the value that
// now backs the key.
type Result struct {
	Outcome Outcome
	Value   types.Value
}

type Node struct {
	addr      types.NodeAddr
	local     *localstore.Store
	global    iGlobal
	chunkSize int
}

func New(addr types.NodeAddr, local *localstore.Store, global iGlobal, chunkSize int) *Node {
	if chunkSize <= 0 {
		chunkSize = chunk.DefaultSize
	}
	return &Node{addr: addr, local: local, global: global, chunkSize: chunkSize}
}

func (n *Node) Addr() types.NodeAddr {
	return n.addr
}

func (n *Node) Local() *localstore.Store {
	return n.local
}

// pull fetches the canonical value, streamed when its size reaches a chunk.
func (n *Node) pull(ctx context.Context, key types.Key, size int64) (types.Value, error) {
	if size >= int64(n.chunkSize) {
		return n.global.PullFile(ctx, key)
	}
	return n.global.Pull(ctx, key)
}

// Set creates a new mapping. A key held anywhere in the system is a
// conflict, never an overwrite: an occupied cache abandons the write with no
// network call; an occupied Global refreshes the cache with the canonical
// value and abandons the write.
func (n *Node) Set(ctx context.Context, key types.Key, value types.Value) (Result, error) {
	if n.local.Contains(key) {
		return Result{Outcome: LocalConflict}, nil
	}

	size, err := n.global.Contains(ctx, key)
	switch {
	case err == nil:
		// Global already owns this key; its value wins.
		canonical, err := n.pull(ctx, key, size)
		if err != nil {
			return Result{}, err
		}
		n.local.Reconcile(key, canonical)
		return Result{Outcome: GlobalConflict, Value: canonical}, nil
	case errors.Is(err, dberrors.ErrNotFound):
		// Key exists nowhere; this node may create it.
	default:
		return Result{}, err
	}

	if len(value) >= n.chunkSize {
		err = n.global.PushFile(ctx, key, value)
	} else {
		err = n.global.Push(ctx, key, value)
	}
	if errors.Is(err, dberrors.ErrKeyOccupied) {
		// Lost a race against another node's Set for the same key.
		size, err := n.global.Contains(ctx, key)
		if err != nil {
			return Result{}, err
		}
		canonical, err := n.pull(ctx, key, size)
		if err != nil {
			return Result{}, err
		}
		n.local.Reconcile(key, canonical)
		return Result{Outcome: GlobalConflict, Value: canonical}, nil
	}
	if err != nil {
		return Result{}, err
	}

	n.local.Reconcile(key, value)
	return Result{Outcome: Stored, Value: value}, nil
}

// Get serves from the cache when possible, otherwise pulls from Global and
// caches the result. Absent everywhere yields ErrNotFound and mutates
// neither store.
func (n *Node) Get(ctx context.Context, key types.Key) (Result, error) {
	if value, ok := n.local.Get(key); ok {
		return Result{Outcome: FoundLocal, Value: value}, nil
	}

	size, err := n.global.Contains(ctx, key)
	if err != nil {
		return Result{}, err
	}
	value, err := n.pull(ctx, key, size)
	if err != nil {
		return Result{}, err
	}
	n.local.Reconcile(key, value)
	return Result{Outcome: FoundGlobal, Value: value}, nil
}

// Del removes the key from Global, then from this node's cache. A key absent
// from either side is a no-op, not a failure; other caches keep their stale
// copies until their own invalidation drain. Only a transport failure is an
// error, and a failed removal leaves the cache untouched.
func (n *Node) Del(ctx context.Context, key types.Key) (Result, error) {
	err := n.global.Remove(ctx, key)
	if err != nil && !errors.Is(err, dberrors.ErrNotFound) {
		return Result{}, err
	}

	n.local.Delete(key)
	return Result{Outcome: Removed}, nil
}

// SyncInvalidations drains this node's invalidation queue on Global and
// purges the named keys from the cache. Returns the number purged.
func (n *Node) SyncInvalidations(ctx context.Context) (int, error) {
	purged := 0
	for {
		key, err := n.global.Invalidate(ctx, n.addr)
		if errors.Is(err, dberrors.ErrNotFound) {
			return purged, nil
		}
		if err != nil {
			return purged, err
		}
		if n.local.Delete(key) {
			purged++
		}
	}
}

// RunSync drains invalidations on a fixed interval until ctx is done.
func (n *Node) RunSync(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if purged, err := n.SyncInvalidations(ctx); err != nil {
				slog.Warn("invalidation sync failed", "error", err)
			} else if purged > 0 {
				slog.Debug("purged stale cache entries", "count", purged)
			}
		}
	}
}
