// Package rpc exposes the Global store as the Dstore gRPC service.
package rpc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dstore/pkg/chunk"
	"dstore/pkg/dstorepb"
	"dstore/pkg/globalstore"
)

const defaultMaxRecvMsgBytes = 8 * 1024 * 1024

// Server owns the gRPC listener and dispatches the Dstore service onto the
// global store, membership registry, and queue store.
type Server struct {
	store   *globalstore.Store
	members *globalstore.Membership
	queues  *globalstore.QueueStore

	grpcServer *grpc.Server
	addr       string
	chunkSize  int
}

func NewServer(store *globalstore.Store, members *globalstore.Membership, queues *globalstore.QueueStore, addr string, chunkSize int) *Server {
	if chunkSize <= 0 {
		chunkSize = chunk.DefaultSize
	}
	s := &Server{
		store:     store,
		members:   members,
		queues:    queues,
		addr:      addr,
		chunkSize: chunkSize,
	}
	s.grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(defaultMaxRecvMsgBytes),
	)
	dstorepb.RegisterDstoreServer(s.grpcServer, s)
	return s
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	go func() {
		if err := s.Serve(lis); err != nil {
			slog.Error("gRPC server error", "error", err)
		}
	}()
	slog.Info("global gRPC server started", "addr", s.addr)
	return nil
}

// Serve blocks serving on lis. Exposed so tests can serve on an in-process
// listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

func (s *Server) Join(ctx context.Context, in *dstorepb.Addr) (*dstorepb.Empty, error) {
	if in.GetAddr() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty node address")
	}
	s.members.Join(in.GetAddr())
	slog.Info("node joined cluster", "addr", in.GetAddr())
	return &dstorepb.Empty{}, nil
}

func (s *Server) Contains(ctx context.Context, in *dstorepb.Key) (*dstorepb.Size, error) {
	size, ok := s.store.Contains(in.GetKey())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "%s mapping doesn't exist", in.GetKey())
	}
	return &dstorepb.Size{Size: int64(size)}, nil
}

func (s *Server) Push(ctx context.Context, in *dstorepb.KeyValue) (*dstorepb.Empty, error) {
	if len(in.GetKey()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty key")
	}
	if err := s.store.Put(in.GetKey(), in.GetValue()); err != nil {
		return nil, status.Errorf(codes.AlreadyExists, "%s already in use", in.GetKey())
	}
	return &dstorepb.Empty{}, nil
}

// PushFile reassembles the chunked value before applying the same write-once
// insert as Push. A failed stream commits nothing.
func (s *Server) PushFile(stream dstorepb.Dstore_PushFileServer) error {
	var key, value []byte
	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return status.Errorf(codes.Aborted, "stream aborted: %v", err)
		}
		if key == nil {
			if len(frame.GetKey()) == 0 {
				return status.Error(codes.InvalidArgument, "first frame must carry the key")
			}
			key = frame.GetKey()
		}
		value = append(value, frame.GetBody()...)
	}
	if key == nil {
		return status.Error(codes.InvalidArgument, "empty stream")
	}
	if err := s.store.Put(key, value); err != nil {
		return status.Errorf(codes.AlreadyExists, "%s already in use", key)
	}
	return stream.SendAndClose(&dstorepb.Empty{})
}

func (s *Server) Pull(ctx context.Context, in *dstorepb.Key) (*dstorepb.Value, error) {
	value, ok := s.store.Get(in.GetKey())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "%s mapping doesn't exist", in.GetKey())
	}
	return &dstorepb.Value{Value: value}, nil
}

func (s *Server) PullFile(in *dstorepb.Key, stream dstorepb.Dstore_PullFileServer) error {
	value, ok := s.store.Get(in.GetKey())
	if !ok {
		return status.Errorf(codes.NotFound, "%s mapping doesn't exist", in.GetKey())
	}
	for _, body := range chunk.Split(value, s.chunkSize) {
		if err := stream.Send(&dstorepb.FileChunk{Body: body}); err != nil {
			return status.Errorf(codes.Aborted, "stream aborted: %v", err)
		}
	}
	return nil
}

// Remove deletes the mapping and queues an invalidation for every joined
// node; the members purge their stale copies on their own schedule.
func (s *Server) Remove(ctx context.Context, in *dstorepb.Key) (*dstorepb.Empty, error) {
	if !s.store.Delete(in.GetKey()) {
		return nil, status.Errorf(codes.NotFound, "couldn't remove %s", in.GetKey())
	}
	s.members.Revoke(in.GetKey())
	return &dstorepb.Empty{}, nil
}

func (s *Server) Update(ctx context.Context, in *dstorepb.KeyValue) (*dstorepb.Previous, error) {
	if len(in.GetKey()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty key")
	}
	prev, existed := s.store.Update(in.GetKey(), in.GetValue())
	return &dstorepb.Previous{Value: prev, Existed: existed}, nil
}

func (s *Server) Invalidate(ctx context.Context, in *dstorepb.Addr) (*dstorepb.Key, error) {
	key, ok, err := s.members.NextInvalid(in.GetAddr())
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%s never joined", in.GetAddr())
	}
	if !ok {
		return nil, status.Error(codes.NotFound, "no pending invalidations")
	}
	return &dstorepb.Key{Key: key}, nil
}

func (s *Server) Enqueue(ctx context.Context, in *dstorepb.KeyValue) (*dstorepb.Empty, error) {
	if len(in.GetKey()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty queue name")
	}
	s.queues.Enqueue(in.GetKey(), in.GetValue())
	return &dstorepb.Empty{}, nil
}

func (s *Server) Dequeue(ctx context.Context, in *dstorepb.Key) (*dstorepb.Value, error) {
	value, ok := s.queues.Dequeue(in.GetKey())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "queue %s is empty", in.GetKey())
	}
	return &dstorepb.Value{Value: value}, nil
}
