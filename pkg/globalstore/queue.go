package globalstore

import (
	"sync"

	"dstore/pkg/types"
)

// QueueStore holds named FIFO queues, the shared work-queue primitive layered
// on Global. Queues are unbounded and created on first use.
type QueueStore struct {
	mu     sync.Mutex
	queues map[string][]types.Value
}

func NewQueueStore() *QueueStore {
	return &QueueStore{queues: make(map[string][]types.Value)}
}

func (q *QueueStore) Enqueue(name types.Key, value types.Value) {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := string(name)
	q.queues[n] = append(q.queues[n], value)
}

// Dequeue pops the oldest value from a queue. The second return is false when
// the queue is empty or unknown.
func (q *QueueStore) Dequeue(name types.Key) (types.Value, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := string(name)
	queue := q.queues[n]
	if len(queue) == 0 {
		return nil, false
	}
	value := queue[0]
	q.queues[n] = queue[1:]
	return value, true
}

func (q *QueueStore) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues)
}
