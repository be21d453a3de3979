// Package rpc is the Local side of the transport: a thin client over the
// Dstore gRPC service with bounded per-call timeouts. A timeout is a network
// failure, never a distinct protocol state.
package rpc

import (
	"context"
	"fmt"
	"io"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dstore/pkg/chunk"
	"dstore/pkg/dberrors"
	"dstore/pkg/dstorepb"
	"dstore/pkg/types"
)

const DefaultTimeout = 3 * time.Second

type GlobalClient struct {
	cc        *grpc.ClientConn
	client    dstorepb.DstoreClient
	timeout   time.Duration
	chunkSize int
}

// Dial connects to the Global endpoint. The address is configuration, not
// hidden process state; callers resolve it before dialing.
func Dial(addr string, timeout time.Duration, chunkSize int) (*GlobalClient, error) {
	cc, err := grpc.Dial(addr, grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return NewGlobalClient(cc, timeout, chunkSize), nil
}

// NewGlobalClient wraps an existing connection. Used directly by tests that
// dial over an in-process listener.
func NewGlobalClient(cc *grpc.ClientConn, timeout time.Duration, chunkSize int) *GlobalClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if chunkSize <= 0 {
		chunkSize = chunk.DefaultSize
	}
	return &GlobalClient{
		cc:        cc,
		client:    dstorepb.NewDstoreClient(cc),
		timeout:   timeout,
		chunkSize: chunkSize,
	}
}

func (c *GlobalClient) Close() error {
	return c.cc.Close()
}

// ChunkSize is the frame size threshold; values at or above it travel over
// the streaming RPCs.
func (c *GlobalClient) ChunkSize() int {
	return c.chunkSize
}

func (c *GlobalClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

// translate maps transport status codes onto the error taxonomy. Anything
// that is neither a conflict nor a miss is a hard transport failure.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch status.Code(err) {
	case codes.AlreadyExists:
		return dberrors.ErrKeyOccupied
	case codes.NotFound:
		return dberrors.ErrNotFound
	case codes.Aborted:
		return fmt.Errorf("%w: %v", dberrors.ErrStreamAborted, err)
	default:
		return fmt.Errorf("%w: %v", dberrors.ErrUnavailable, err)
	}
}

func (c *GlobalClient) Join(ctx context.Context, addr types.NodeAddr) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.Join(ctx, &dstorepb.Addr{Addr: addr})
	return translate(err)
}

// Contains probes for a key and returns the value size on Global.
func (c *GlobalClient) Contains(ctx context.Context, key types.Key) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.client.Contains(ctx, &dstorepb.Key{Key: key})
	if err != nil {
		return 0, translate(err)
	}
	return out.GetSize(), nil
}

func (c *GlobalClient) Push(ctx context.Context, key types.Key, value types.Value) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.Push(ctx, &dstorepb.KeyValue{Key: key, Value: value})
	return translate(err)
}

// PushFile streams a large value: a key frame followed by ordered chunks.
func (c *GlobalClient) PushFile(ctx context.Context, key types.Key, value types.Value) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	stream, err := c.client.PushFile(ctx)
	if err != nil {
		return translate(err)
	}
	if err := stream.Send(&dstorepb.FileChunk{Key: key}); err != nil {
		return translate(err)
	}
	for _, body := range chunk.Split(value, c.chunkSize) {
		if err := stream.Send(&dstorepb.FileChunk{Body: body}); err != nil {
			return translate(err)
		}
	}
	_, err = stream.CloseAndRecv()
	return translate(err)
}

func (c *GlobalClient) Pull(ctx context.Context, key types.Key) (types.Value, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.client.Pull(ctx, &dstorepb.Key{Key: key})
	if err != nil {
		return nil, translate(err)
	}
	return out.GetValue(), nil
}

// PullFile fetches a large value, reassembling chunks in arrival order. A
// failure mid-stream discards the partial value.
func (c *GlobalClient) PullFile(ctx context.Context, key types.Key) (types.Value, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	stream, err := c.client.PullFile(ctx, &dstorepb.Key{Key: key})
	if err != nil {
		return nil, translate(err)
	}
	var chunks [][]byte
	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, translate(err)
		}
		chunks = append(chunks, frame.GetBody())
	}
	return chunk.Assemble(chunks), nil
}

func (c *GlobalClient) Remove(ctx context.Context, key types.Key) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.Remove(ctx, &dstorepb.Key{Key: key})
	return translate(err)
}

// Update is the explicit overwrite primitive. Returns the previous value and
// whether one existed.
func (c *GlobalClient) Update(ctx context.Context, key types.Key, value types.Value) (types.Value, bool, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.client.Update(ctx, &dstorepb.KeyValue{Key: key, Value: value})
	if err != nil {
		return nil, false, translate(err)
	}
	return out.GetValue(), out.GetExisted(), nil
}

// Invalidate pops one pending invalidated key for this node. ErrNotFound
// signals a drained queue.
func (c *GlobalClient) Invalidate(ctx context.Context, addr types.NodeAddr) (types.Key, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.client.Invalidate(ctx, &dstorepb.Addr{Addr: addr})
	if err != nil {
		return nil, translate(err)
	}
	return out.GetKey(), nil
}

func (c *GlobalClient) Enqueue(ctx context.Context, queue types.Key, value types.Value) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.client.Enqueue(ctx, &dstorepb.KeyValue{Key: queue, Value: value})
	return translate(err)
}

func (c *GlobalClient) Dequeue(ctx context.Context, queue types.Key) (types.Value, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	out, err := c.client.Dequeue(ctx, &dstorepb.Key{Key: queue})
	if err != nil {
		return nil, translate(err)
	}
	return out.GetValue(), nil
}
