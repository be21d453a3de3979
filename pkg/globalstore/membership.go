package globalstore

import (
	"sync"

	"dstore/pkg/dberrors"
	"dstore/pkg/types"
)

// Membership tracks joined Locals by address. Each member carries a FIFO of
// keys removed from Global since the member's last drain; members poll the
// queue instead of receiving a broadcast.
type Membership struct {
	mu    sync.Mutex
	nodes map[types.NodeAddr][]types.Key
}

func NewMembership() *Membership {
	return &Membership{nodes: make(map[types.NodeAddr][]types.Key)}
}

// Join registers a node with an empty invalidation queue. Re-joining resets
// the queue, which is what a restarted node with a cold cache wants.
func (m *Membership) Join(addr types.NodeAddr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[addr] = nil
}

func (m *Membership) Members() []types.NodeAddr {
	m.mu.Lock()
	defer m.mu.Unlock()

	addrs := make([]types.NodeAddr, 0, len(m.nodes))
	for addr := range m.nodes {
		addrs = append(addrs, addr)
	}
	return addrs
}

func (m *Membership) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.nodes)
}

// Revoke appends key to every member's invalidation queue.
func (m *Membership) Revoke(key types.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for addr := range m.nodes {
		m.nodes[addr] = append(m.nodes[addr], key)
	}
}

// NextInvalid pops the oldest pending invalidation for addr. The second
// return is false when the queue is empty.
func (m *Membership) NextInvalid(addr types.NodeAddr) (types.Key, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue, ok := m.nodes[addr]
	if !ok {
		return nil, false, dberrors.ErrUnknownNode
	}
	if len(queue) == 0 {
		return nil, false, nil
	}
	key := queue[0]
	m.nodes[addr] = queue[1:]
	return key, true, nil
}
