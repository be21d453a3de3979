// Package dstorepb carries the wire types and service bindings for the
// Dstore RPC interface. Kept in sync with dstore.proto by hand; the schema
// file is the contract.
package dstorepb

import (
	context "context"

	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
)

type Empty struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

type Addr struct {
	Addr                 string   `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Addr) Reset()         { *m = Addr{} }
func (m *Addr) String() string { return proto.CompactTextString(m) }
func (*Addr) ProtoMessage()    {}

func (m *Addr) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

type Key struct {
	Key                  []byte   `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Key) Reset()         { *m = Key{} }
func (m *Key) String() string { return proto.CompactTextString(m) }
func (*Key) ProtoMessage()    {}

func (m *Key) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

type Value struct {
	Value                []byte   `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Value) Reset()         { *m = Value{} }
func (m *Value) String() string { return proto.CompactTextString(m) }
func (*Value) ProtoMessage()    {}

func (m *Value) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type KeyValue struct {
	Key                  []byte   `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value                []byte   `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *KeyValue) Reset()         { *m = KeyValue{} }
func (m *KeyValue) String() string { return proto.CompactTextString(m) }
func (*KeyValue) ProtoMessage()    {}

func (m *KeyValue) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *KeyValue) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type Size struct {
	Size                 int64    `protobuf:"varint,1,opt,name=size,proto3" json:"size,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Size) Reset()         { *m = Size{} }
func (m *Size) String() string { return proto.CompactTextString(m) }
func (*Size) ProtoMessage()    {}

func (m *Size) GetSize() int64 {
	if m != nil {
		return m.Size
	}
	return 0
}

// FileChunk is one frame of a streamed transfer. The first frame of a
// PushFile stream sets Key; every frame's Body bytes concatenate, in arrival
// order, into the value.
type FileChunk struct {
	Key                  []byte   `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Body                 []byte   `protobuf:"bytes,2,opt,name=body,proto3" json:"body,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *FileChunk) Reset()         { *m = FileChunk{} }
func (m *FileChunk) String() string { return proto.CompactTextString(m) }
func (*FileChunk) ProtoMessage()    {}

func (m *FileChunk) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *FileChunk) GetBody() []byte {
	if m != nil {
		return m.Body
	}
	return nil
}

type Previous struct {
	Value                []byte   `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Existed              bool     `protobuf:"varint,2,opt,name=existed,proto3" json:"existed,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Previous) Reset()         { *m = Previous{} }
func (m *Previous) String() string { return proto.CompactTextString(m) }
func (*Previous) ProtoMessage()    {}

func (m *Previous) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

func (m *Previous) GetExisted() bool {
	if m != nil {
		return m.Existed
	}
	return false
}

func init() {
	proto.RegisterType((*Empty)(nil), "dstore.Empty")
	proto.RegisterType((*Addr)(nil), "dstore.Addr")
	proto.RegisterType((*Key)(nil), "dstore.Key")
	proto.RegisterType((*Value)(nil), "dstore.Value")
	proto.RegisterType((*KeyValue)(nil), "dstore.KeyValue")
	proto.RegisterType((*Size)(nil), "dstore.Size")
	proto.RegisterType((*FileChunk)(nil), "dstore.FileChunk")
	proto.RegisterType((*Previous)(nil), "dstore.Previous")
}

// DstoreClient is the client API for the Dstore service.
type DstoreClient interface {
	Join(ctx context.Context, in *Addr, opts ...grpc.CallOption) (*Empty, error)
	Contains(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Size, error)
	Push(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Empty, error)
	PushFile(ctx context.Context, opts ...grpc.CallOption) (Dstore_PushFileClient, error)
	Pull(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Value, error)
	PullFile(ctx context.Context, in *Key, opts ...grpc.CallOption) (Dstore_PullFileClient, error)
	Remove(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Empty, error)
	Update(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Previous, error)
	Invalidate(ctx context.Context, in *Addr, opts ...grpc.CallOption) (*Key, error)
	Enqueue(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Empty, error)
	Dequeue(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Value, error)
}

type dstoreClient struct {
	cc *grpc.ClientConn
}

func NewDstoreClient(cc *grpc.ClientConn) DstoreClient {
	return &dstoreClient{cc}
}

func (c *dstoreClient) Join(ctx context.Context, in *Addr, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Join", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Contains(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Size, error) {
	out := new(Size)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Contains", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Push(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Push", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) PushFile(ctx context.Context, opts ...grpc.CallOption) (Dstore_PushFileClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Dstore_serviceDesc.Streams[0], "/dstore.Dstore/PushFile", opts...)
	if err != nil {
		return nil, err
	}
	return &dstorePushFileClient{stream}, nil
}

type Dstore_PushFileClient interface {
	Send(*FileChunk) error
	CloseAndRecv() (*Empty, error)
	grpc.ClientStream
}

type dstorePushFileClient struct {
	grpc.ClientStream
}

func (x *dstorePushFileClient) Send(m *FileChunk) error {
	return x.ClientStream.SendMsg(m)
}

func (x *dstorePushFileClient) CloseAndRecv() (*Empty, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(Empty)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *dstoreClient) Pull(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Value, error) {
	out := new(Value)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Pull", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) PullFile(ctx context.Context, in *Key, opts ...grpc.CallOption) (Dstore_PullFileClient, error) {
	stream, err := c.cc.NewStream(ctx, &_Dstore_serviceDesc.Streams[1], "/dstore.Dstore/PullFile", opts...)
	if err != nil {
		return nil, err
	}
	x := &dstorePullFileClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Dstore_PullFileClient interface {
	Recv() (*FileChunk, error)
	grpc.ClientStream
}

type dstorePullFileClient struct {
	grpc.ClientStream
}

func (x *dstorePullFileClient) Recv() (*FileChunk, error) {
	m := new(FileChunk)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *dstoreClient) Remove(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Remove", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Update(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Previous, error) {
	out := new(Previous)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Update", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Invalidate(ctx context.Context, in *Addr, opts ...grpc.CallOption) (*Key, error) {
	out := new(Key)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Invalidate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Enqueue(ctx context.Context, in *KeyValue, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Enqueue", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dstoreClient) Dequeue(ctx context.Context, in *Key, opts ...grpc.CallOption) (*Value, error) {
	out := new(Value)
	err := c.cc.Invoke(ctx, "/dstore.Dstore/Dequeue", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DstoreServer is the server API for the Dstore service.
type DstoreServer interface {
	Join(context.Context, *Addr) (*Empty, error)
	Contains(context.Context, *Key) (*Size, error)
	Push(context.Context, *KeyValue) (*Empty, error)
	PushFile(Dstore_PushFileServer) error
	Pull(context.Context, *Key) (*Value, error)
	PullFile(*Key, Dstore_PullFileServer) error
	Remove(context.Context, *Key) (*Empty, error)
	Update(context.Context, *KeyValue) (*Previous, error)
	Invalidate(context.Context, *Addr) (*Key, error)
	Enqueue(context.Context, *KeyValue) (*Empty, error)
	Dequeue(context.Context, *Key) (*Value, error)
}

func RegisterDstoreServer(s *grpc.Server, srv DstoreServer) {
	s.RegisterService(&_Dstore_serviceDesc, srv)
}

func _Dstore_Join_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Addr)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Join(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Join",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Join(ctx, req.(*Addr))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Contains_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Key)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Contains(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Contains",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Contains(ctx, req.(*Key))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Push_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KeyValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Push(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Push",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Push(ctx, req.(*KeyValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_PushFile_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(DstoreServer).PushFile(&dstorePushFileServer{stream})
}

type Dstore_PushFileServer interface {
	SendAndClose(*Empty) error
	Recv() (*FileChunk, error)
	grpc.ServerStream
}

type dstorePushFileServer struct {
	grpc.ServerStream
}

func (x *dstorePushFileServer) SendAndClose(m *Empty) error {
	return x.ServerStream.SendMsg(m)
}

func (x *dstorePushFileServer) Recv() (*FileChunk, error) {
	m := new(FileChunk)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _Dstore_Pull_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Key)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Pull(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Pull",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Pull(ctx, req.(*Key))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_PullFile_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Key)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DstoreServer).PullFile(m, &dstorePullFileServer{stream})
}

type Dstore_PullFileServer interface {
	Send(*FileChunk) error
	grpc.ServerStream
}

type dstorePullFileServer struct {
	grpc.ServerStream
}

func (x *dstorePullFileServer) Send(m *FileChunk) error {
	return x.ServerStream.SendMsg(m)
}

func _Dstore_Remove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Key)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Remove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Remove",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Remove(ctx, req.(*Key))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Update_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KeyValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Update(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Update",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Update(ctx, req.(*KeyValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Invalidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Addr)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Invalidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Invalidate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Invalidate(ctx, req.(*Addr))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Enqueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KeyValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Enqueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Enqueue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Enqueue(ctx, req.(*KeyValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Dstore_Dequeue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Key)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DstoreServer).Dequeue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dstore.Dstore/Dequeue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DstoreServer).Dequeue(ctx, req.(*Key))
	}
	return interceptor(ctx, in, info, handler)
}

var _Dstore_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dstore.Dstore",
	HandlerType: (*DstoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Join",
			Handler:    _Dstore_Join_Handler,
		},
		{
			MethodName: "Contains",
			Handler:    _Dstore_Contains_Handler,
		},
		{
			MethodName: "Push",
			Handler:    _Dstore_Push_Handler,
		},
		{
			MethodName: "Pull",
			Handler:    _Dstore_Pull_Handler,
		},
		{
			MethodName: "Remove",
			Handler:    _Dstore_Remove_Handler,
		},
		{
			MethodName: "Update",
			Handler:    _Dstore_Update_Handler,
		},
		{
			MethodName: "Invalidate",
			Handler:    _Dstore_Invalidate_Handler,
		},
		{
			MethodName: "Enqueue",
			Handler:    _Dstore_Enqueue_Handler,
		},
		{
			MethodName: "Dequeue",
			Handler:    _Dstore_Dequeue_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PushFile",
			Handler:       _Dstore_PushFile_Handler,
			ClientStreams: true,
		},
		{
			StreamName:    "PullFile",
			Handler:       _Dstore_PullFile_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "dstore.proto",
}
