package queue

import (
	"context"
	"errors"
	"testing"

	"dstore/pkg/dberrors"
	"dstore/pkg/types"
)

type fakeGlobal struct {
	queues map[string][][]byte
}

func (g *fakeGlobal) Enqueue(ctx context.Context, queue types.Key, value types.Value) error {
	g.queues[string(queue)] = append(g.queues[string(queue)], value)
	return nil
}

func (g *fakeGlobal) Dequeue(ctx context.Context, queue types.Key) (types.Value, error) {
	q := g.queues[string(queue)]
	if len(q) == 0 {
		return nil, dberrors.ErrNotFound
	}
	value := q[0]
	g.queues[string(queue)] = q[1:]
	return value, nil
}

func TestQueue_FIFO(t *testing.T) {
	global := &fakeGlobal{queues: make(map[string][][]byte)}
	q := New(global, []byte("jobs"))
	ctx := context.Background()

	for _, item := range []string{"a", "b", "c"} {
		if err := q.PushBack(ctx, []byte(item)); err != nil {
			t.Fatalf("PushBack failed: %v", err)
		}
	}

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.PopFront(ctx)
		if err != nil {
			t.Fatalf("PopFront failed: %v", err)
		}
		if string(got) != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}

	_, err := q.PopFront(ctx)
	if !errors.Is(err, dberrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty queue, got %v", err)
	}
}
