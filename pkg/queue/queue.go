// Package queue layers a named FIFO queue on top of Global, for handing
// work items between nodes without a separate broker.
package queue

import (
	"context"

	"dstore/pkg/types"
)

// iGlobal is the slice of the Global client the queue needs.
type iGlobal interface {
	Enqueue(ctx context.Context, queue types.Key, value types.Value) error
	Dequeue(ctx context.Context, queue types.Key) (types.Value, error)
}

// Queue addresses one named queue on Global.
type Queue struct {
	global iGlobal
	name   types.Key
}

func New(global iGlobal, name types.Key) *Queue {
	return &Queue{global: global, name: name}
}

// PushBack appends a value to the queue.
func (q *Queue) PushBack(ctx context.Context, value types.Value) error {
	return q.global.Enqueue(ctx, q.name, value)
}

// PopFront removes and returns the oldest value. ErrNotFound signals an
// empty queue.
func (q *Queue) PopFront(ctx context.Context) (types.Value, error) {
	return q.global.Dequeue(ctx, q.name)
}
