package node

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"dstore/pkg/dberrors"
	"dstore/pkg/localstore"
	"dstore/pkg/types"
)

// fakeGlobal is a map-backed stand-in for the Global client. Counters record
// which RPCs the protocol actually issued.
type fakeGlobal struct {
	db      map[string][]byte
	invalid map[string][][]byte
	down    bool

	containsCalls, pushCalls, pushFileCalls, pullCalls, pullFileCalls int
}

func newFakeGlobal() *fakeGlobal {
	return &fakeGlobal{
		db:      make(map[string][]byte),
		invalid: make(map[string][][]byte),
	}
}

func (g *fakeGlobal) unavailable() error {
	if g.down {
		return fmt.Errorf("%w: connection refused", dberrors.ErrUnavailable)
	}
	return nil
}

func (g *fakeGlobal) Contains(ctx context.Context, key types.Key) (int64, error) {
	g.containsCalls++
	if err := g.unavailable(); err != nil {
		return 0, err
	}
	value, ok := g.db[string(key)]
	if !ok {
		return 0, dberrors.ErrNotFound
	}
	return int64(len(value)), nil
}

func (g *fakeGlobal) push(key types.Key, value types.Value) error {
	if err := g.unavailable(); err != nil {
		return err
	}
	if _, ok := g.db[string(key)]; ok {
		return dberrors.ErrKeyOccupied
	}
	g.db[string(key)] = value
	return nil
}

func (g *fakeGlobal) Push(ctx context.Context, key types.Key, value types.Value) error {
	g.pushCalls++
	return g.push(key, value)
}

func (g *fakeGlobal) PushFile(ctx context.Context, key types.Key, value types.Value) error {
	g.pushFileCalls++
	return g.push(key, value)
}

func (g *fakeGlobal) pull(key types.Key) (types.Value, error) {
	if err := g.unavailable(); err != nil {
		return nil, err
	}
	value, ok := g.db[string(key)]
	if !ok {
		return nil, dberrors.ErrNotFound
	}
	return value, nil
}

func (g *fakeGlobal) Pull(ctx context.Context, key types.Key) (types.Value, error) {
	g.pullCalls++
	return g.pull(key)
}

func (g *fakeGlobal) PullFile(ctx context.Context, key types.Key) (types.Value, error) {
	g.pullFileCalls++
	return g.pull(key)
}

func (g *fakeGlobal) Remove(ctx context.Context, key types.Key) error {
	if err := g.unavailable(); err != nil {
		return err
	}
	if _, ok := g.db[string(key)]; !ok {
		return dberrors.ErrNotFound
	}
	delete(g.db, string(key))
	for addr := range g.invalid {
		g.invalid[addr] = append(g.invalid[addr], key)
	}
	return nil
}

func (g *fakeGlobal) Invalidate(ctx context.Context, addr types.NodeAddr) (types.Key, error) {
	if err := g.unavailable(); err != nil {
		return nil, err
	}
	queue := g.invalid[addr]
	if len(queue) == 0 {
		return nil, dberrors.ErrNotFound
	}
	key := queue[0]
	g.invalid[addr] = queue[1:]
	return key, nil
}

func newTestNode(global *fakeGlobal) *Node {
	global.invalid["test-node"] = nil
	return New("test-node", localstore.New(), global, 16)
}

func TestNode_SetStoresEverywhere(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)

	res, err := n.Set(context.Background(), []byte("k"), []byte("v"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if res.Outcome != Stored {
		t.Fatalf("expected Stored, got %v", res.Outcome)
	}
	if value, ok := n.Local().Get([]byte("k")); !ok || string(value) != "v" {
		t.Fatalf("expected cached 'v', got ok=%v value=%q", ok, value)
	}
	if string(global.db["k"]) != "v" {
		t.Fatalf("expected global 'v', got %q", global.db["k"])
	}
}

func TestNode_SetLocalConflictSkipsNetwork(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)
	ctx := context.Background()

	if _, err := n.Set(ctx, []byte("k"), []byte("v1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	calls := global.containsCalls

	res, err := n.Set(ctx, []byte("k"), []byte("v2"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if res.Outcome != LocalConflict {
		t.Fatalf("expected LocalConflict, got %v", res.Outcome)
	}
	if global.containsCalls != calls {
		t.Fatal("local conflict must not trigger a network call")
	}
	if value, _ := n.Local().Get([]byte("k")); string(value) != "v1" {
		t.Fatalf("expected 'v1' to survive, got %q", value)
	}
}

// Global already holds the key from another node: the caller's write is
// abandoned and the canonical value lands in the cache.
func TestNode_SetGlobalPrecedence(t *testing.T) {
	global := newFakeGlobal()
	global.db["k"] = []byte("v1")
	n := newTestNode(global)

	res, err := n.Set(context.Background(), []byte("k"), []byte("v2"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if res.Outcome != GlobalConflict {
		t.Fatalf("expected GlobalConflict, got %v", res.Outcome)
	}
	if string(res.Value) != "v1" {
		t.Fatalf("expected canonical 'v1', got %q", res.Value)
	}
	if value, _ := n.Local().Get([]byte("k")); string(value) != "v1" {
		t.Fatalf("expected cache to hold 'v1', got %q", value)
	}
	if string(global.db["k"]) != "v1" {
		t.Fatalf("global value must be untouched, got %q", global.db["k"])
	}
}

func TestNode_GetLazyPull(t *testing.T) {
	global := newFakeGlobal()
	global.db["k"] = []byte("v")
	n := newTestNode(global)
	ctx := context.Background()

	res, err := n.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if res.Outcome != FoundGlobal || string(res.Value) != "v" {
		t.Fatalf("expected FoundGlobal 'v', got %v %q", res.Outcome, res.Value)
	}

	// Second read is served from the cache, no further pulls.
	pulls := global.pullCalls + global.pullFileCalls
	res, err = n.Get(ctx, []byte("k"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if res.Outcome != FoundLocal {
		t.Fatalf("expected FoundLocal, got %v", res.Outcome)
	}
	if global.pullCalls+global.pullFileCalls != pulls {
		t.Fatal("cached read must not pull again")
	}
}

func TestNode_GetNegativeMutatesNothing(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)

	_, err := n.Get(context.Background(), []byte("nope"))
	if !errors.Is(err, dberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n.Local().Len() != 0 {
		t.Fatal("negative read must not mutate the cache")
	}
	if len(global.db) != 0 {
		t.Fatal("negative read must not mutate global")
	}
}

// Values of at least one chunk travel over the streaming RPCs in both
// directions.
func TestNode_LargeValuesUseStreams(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global) // 16-byte chunk threshold
	ctx := context.Background()
	big := bytes.Repeat([]byte("x"), 64)

	if _, err := n.Set(ctx, []byte("big"), big); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if global.pushFileCalls != 1 || global.pushCalls != 0 {
		t.Fatalf("expected streamed push, got push=%d pushFile=%d", global.pushCalls, global.pushFileCalls)
	}

	other := New("other-node", localstore.New(), global, 16)
	res, err := other.Get(ctx, []byte("big"))
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if global.pullFileCalls != 1 || global.pullCalls != 0 {
		t.Fatalf("expected streamed pull, got pull=%d pullFile=%d", global.pullCalls, global.pullFileCalls)
	}
	if !bytes.Equal(res.Value, big) {
		t.Fatal("streamed value differs from original")
	}
}

func TestNode_DelRemovesBothSides(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)
	ctx := context.Background()

	if _, err := n.Set(ctx, []byte("k"), []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	res, err := n.Del(ctx, []byte("k"))
	if err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if res.Outcome != Removed {
		t.Fatalf("expected Removed, got %v", res.Outcome)
	}
	if n.Local().Contains([]byte("k")) {
		t.Fatal("expected key gone from cache")
	}
	if _, ok := global.db["k"]; ok {
		t.Fatal("expected key gone from global")
	}
}

func TestNode_DelAbsentKeyIsNoOp(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)

	res, err := n.Del(context.Background(), []byte("never"))
	if err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if res.Outcome != Removed {
		t.Fatalf("expected Removed, got %v", res.Outcome)
	}
}

// A second node's cached copy survives a delete until its own invalidation
// drain purges it; the next read then reports not-found.
func TestNode_DeleteLocalityAndStaleCache(t *testing.T) {
	global := newFakeGlobal()
	writer := newTestNode(global)
	reader := New("reader-node", localstore.New(), global, 16)
	global.invalid["reader-node"] = nil
	ctx := context.Background()

	if _, err := writer.Set(ctx, []byte("k"), []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := reader.Get(ctx, []byte("k")); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if _, err := writer.Del(ctx, []byte("k")); err != nil {
		t.Fatalf("Del failed: %v", err)
	}

	// The stale copy still answers reads on the second node.
	res, err := reader.Get(ctx, []byte("k"))
	if err != nil || res.Outcome != FoundLocal || string(res.Value) != "v" {
		t.Fatalf("expected stale local 'v', got res=%+v err=%v", res, err)
	}

	purged, err := reader.SyncInvalidations(ctx)
	if err != nil {
		t.Fatalf("SyncInvalidations failed: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged entry, got %d", purged)
	}

	_, err = reader.Get(ctx, []byte("k"))
	if !errors.Is(err, dberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after purge, got %v", err)
	}
}

// A failed delete must not leave a half-applied state behind: the cached
// copy survives until Global confirms the removal.
func TestNode_DelFailureKeepsCache(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)
	ctx := context.Background()

	if _, err := n.Set(ctx, []byte("k"), []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	global.down = true
	if _, err := n.Del(ctx, []byte("k")); !errors.Is(err, dberrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if value, ok := n.Local().Get([]byte("k")); !ok || string(value) != "v" {
		t.Fatalf("expected cached 'v' to survive the failed delete, got ok=%v value=%q", ok, value)
	}

	global.down = false
	if _, err := n.Del(ctx, []byte("k")); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if n.Local().Contains([]byte("k")) {
		t.Fatal("expected key gone after the retried delete")
	}
}

func TestNode_GlobalUnavailableIsHardFailure(t *testing.T) {
	global := newFakeGlobal()
	n := newTestNode(global)
	ctx := context.Background()
	global.down = true

	if _, err := n.Set(ctx, []byte("k"), []byte("v")); !errors.Is(err, dberrors.ErrUnavailable) {
		t.Fatalf("Set: expected ErrUnavailable, got %v", err)
	}
	if _, err := n.Get(ctx, []byte("k")); !errors.Is(err, dberrors.ErrUnavailable) {
		t.Fatalf("Get: expected ErrUnavailable, got %v", err)
	}
	if _, err := n.Del(ctx, []byte("k")); !errors.Is(err, dberrors.ErrUnavailable) {
		t.Fatalf("Del: expected ErrUnavailable, got %v", err)
	}
	// Nothing leaked into the cache while Global was down.
	if n.Local().Len() != 0 {
		t.Fatal("cache must stay clean on transport failure")
	}
}
