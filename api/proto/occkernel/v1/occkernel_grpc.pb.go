// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: occkernel/v1/occkernel.proto

package occkernelv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	OcckernelService_CreatePdo_FullMethodName   = "/occkernel.v1.OcckernelService/CreatePdo"
	OcckernelService_Claim_FullMethodName       = "/occkernel.v1.OcckernelService/Claim"
	OcckernelService_Commit_FullMethodName      = "/occkernel.v1.OcckernelService/Commit"
	OcckernelService_Withdraw_FullMethodName    = "/occkernel.v1.OcckernelService/Withdraw"
	OcckernelService_Execute_FullMethodName     = "/occkernel.v1.OcckernelService/Execute"
	OcckernelService_GetPdo_FullMethodName      = "/occkernel.v1.OcckernelService/GetPdo"
	OcckernelService_ListQueue_FullMethodName   = "/occkernel.v1.OcckernelService/ListQueue"
	OcckernelService_ExportAudit_FullMethodName = "/occkernel.v1.OcckernelService/ExportAudit"
	OcckernelService_KillSwitch_FullMethodName  = "/occkernel.v1.OcckernelService/KillSwitch"
	OcckernelService_Status_FullMethodName      = "/occkernel.v1.OcckernelService/Status"
)

// OcckernelServiceClient is the client API for OcckernelService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// OcckernelService is the operator control kernel control surface.
type OcckernelServiceClient interface {
	// CreatePdo admits an AI-originated decision as a pending decision object.
	CreatePdo(ctx context.Context, in *CreatePdoRequest, opts ...grpc.CallOption) (*CreatePdoResponse, error)
	// Claim takes exclusive review ownership of a queued PDO.
	Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error)
	// Commit applies an operator decision to a claimed PDO.
	Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error)
	// Withdraw cancels a queued PDO at its originator's request.
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	// Execute releases an approved or overridden PDO downstream.
	Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error)
	// GetPdo returns the live record for one PDO.
	GetPdo(ctx context.Context, in *GetPdoRequest, opts ...grpc.CallOption) (*GetPdoResponse, error)
	// ListQueue returns queued PDOs in claim-priority order.
	ListQueue(ctx context.Context, in *ListQueueRequest, opts ...grpc.CallOption) (*ListQueueResponse, error)
	// ExportAudit returns a verified, signed slice of the audit chain.
	ExportAudit(ctx context.Context, in *ExportAuditRequest, opts ...grpc.CallOption) (*ExportAuditResponse, error)
	// KillSwitch engages or disengages kernel-wide fail-closed mode.
	KillSwitch(ctx context.Context, in *KillSwitchRequest, opts ...grpc.CallOption) (*KillSwitchResponse, error)
	// Status reports kernel health, queue depth, and chain head.
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
}

type occkernelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOcckernelServiceClient(cc grpc.ClientConnInterface) OcckernelServiceClient {
	return &occkernelServiceClient{cc}
}

func (c *occkernelServiceClient) CreatePdo(ctx context.Context, in *CreatePdoRequest, opts ...grpc.CallOption) (*CreatePdoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePdoResponse)
	err := c.cc.Invoke(ctx, OcckernelService_CreatePdo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) Claim(ctx context.Context, in *ClaimRequest, opts ...grpc.CallOption) (*ClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClaimResponse)
	err := c.cc.Invoke(ctx, OcckernelService_Claim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*CommitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommitResponse)
	err := c.cc.Invoke(ctx, OcckernelService_Commit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(WithdrawResponse)
	err := c.cc.Invoke(ctx, OcckernelService_Withdraw_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) Execute(ctx context.Context, in *ExecuteRequest, opts ...grpc.CallOption) (*ExecuteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExecuteResponse)
	err := c.cc.Invoke(ctx, OcckernelService_Execute_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) GetPdo(ctx context.Context, in *GetPdoRequest, opts ...grpc.CallOption) (*GetPdoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPdoResponse)
	err := c.cc.Invoke(ctx, OcckernelService_GetPdo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) ListQueue(ctx context.Context, in *ListQueueRequest, opts ...grpc.CallOption) (*ListQueueResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListQueueResponse)
	err := c.cc.Invoke(ctx, OcckernelService_ListQueue_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) ExportAudit(ctx context.Context, in *ExportAuditRequest, opts ...grpc.CallOption) (*ExportAuditResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAuditResponse)
	err := c.cc.Invoke(ctx, OcckernelService_ExportAudit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) KillSwitch(ctx context.Context, in *KillSwitchRequest, opts ...grpc.CallOption) (*KillSwitchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(KillSwitchResponse)
	err := c.cc.Invoke(ctx, OcckernelService_KillSwitch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *occkernelServiceClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StatusResponse)
	err := c.cc.Invoke(ctx, OcckernelService_Status_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OcckernelServiceServer is the server API for OcckernelService service.
// All implementations must embed UnimplementedOcckernelServiceServer
// for forward compatibility.
//
// OcckernelService is the operator control kernel control surface.
type OcckernelServiceServer interface {
	// CreatePdo admits an AI-originated decision as a pending decision object.
	CreatePdo(context.Context, *CreatePdoRequest) (*CreatePdoResponse, error)
	// Claim takes exclusive review ownership of a queued PDO.
	Claim(context.Context, *ClaimRequest) (*ClaimResponse, error)
	// Commit applies an operator decision to a claimed PDO.
	Commit(context.Context, *CommitRequest) (*CommitResponse, error)
	// Withdraw cancels a queued PDO at its originator's request.
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	// Execute releases an approved or overridden PDO downstream.
	Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error)
	// GetPdo returns the live record for one PDO.
	GetPdo(context.Context, *GetPdoRequest) (*GetPdoResponse, error)
	// ListQueue returns queued PDOs in claim-priority order.
	ListQueue(context.Context, *ListQueueRequest) (*ListQueueResponse, error)
	// ExportAudit returns a verified, signed slice of the audit chain.
	ExportAudit(context.Context, *ExportAuditRequest) (*ExportAuditResponse, error)
	// KillSwitch engages or disengages kernel-wide fail-closed mode.
	KillSwitch(context.Context, *KillSwitchRequest) (*KillSwitchResponse, error)
	// Status reports kernel health, queue depth, and chain head.
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	mustEmbedUnimplementedOcckernelServiceServer()
}

// UnimplementedOcckernelServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedOcckernelServiceServer struct{}

func (UnimplementedOcckernelServiceServer) CreatePdo(context.Context, *CreatePdoRequest) (*CreatePdoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePdo not implemented")
}
func (UnimplementedOcckernelServiceServer) Claim(context.Context, *ClaimRequest) (*ClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Claim not implemented")
}
func (UnimplementedOcckernelServiceServer) Commit(context.Context, *CommitRequest) (*CommitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Commit not implemented")
}
func (UnimplementedOcckernelServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}
func (UnimplementedOcckernelServiceServer) Execute(context.Context, *ExecuteRequest) (*ExecuteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Execute not implemented")
}
func (UnimplementedOcckernelServiceServer) GetPdo(context.Context, *GetPdoRequest) (*GetPdoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPdo not implemented")
}
func (UnimplementedOcckernelServiceServer) ListQueue(context.Context, *ListQueueRequest) (*ListQueueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListQueue not implemented")
}
func (UnimplementedOcckernelServiceServer) ExportAudit(context.Context, *ExportAuditRequest) (*ExportAuditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportAudit not implemented")
}
func (UnimplementedOcckernelServiceServer) KillSwitch(context.Context, *KillSwitchRequest) (*KillSwitchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method KillSwitch not implemented")
}
func (UnimplementedOcckernelServiceServer) Status(context.Context, *StatusRequest) (*StatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Status not implemented")
}
func (UnimplementedOcckernelServiceServer) mustEmbedUnimplementedOcckernelServiceServer() {}
func (UnimplementedOcckernelServiceServer) testEmbeddedByValue()                          {}

// UnsafeOcckernelServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to OcckernelServiceServer will
// result in compilation errors.
type UnsafeOcckernelServiceServer interface {
	mustEmbedUnimplementedOcckernelServiceServer()
}

func RegisterOcckernelServiceServer(s grpc.ServiceRegistrar, srv OcckernelServiceServer) {
	// If the following call pancis, it indicates UnimplementedOcckernelServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&OcckernelService_ServiceDesc, srv)
}

func _OcckernelService_CreatePdo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePdoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).CreatePdo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_CreatePdo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).CreatePdo(ctx, req.(*CreatePdoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_Claim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).Claim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_Claim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).Claim(ctx, req.(*ClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_Commit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_Commit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).Commit(ctx, req.(*CommitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_Execute_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).Execute(ctx, req.(*ExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_GetPdo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPdoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).GetPdo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_GetPdo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).GetPdo(ctx, req.(*GetPdoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_ListQueue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListQueueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).ListQueue(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_ListQueue_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).ListQueue(ctx, req.(*ListQueueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_ExportAudit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAuditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).ExportAudit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_ExportAudit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).ExportAudit(ctx, req.(*ExportAuditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_KillSwitch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(KillSwitchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).KillSwitch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_KillSwitch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).KillSwitch(ctx, req.(*KillSwitchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OcckernelService_Status_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OcckernelServiceServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: OcckernelService_Status_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OcckernelServiceServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// OcckernelService_ServiceDesc is the grpc.ServiceDesc for OcckernelService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var OcckernelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "occkernel.v1.OcckernelService",
	HandlerType: (*OcckernelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePdo",
			Handler:    _OcckernelService_CreatePdo_Handler,
		},
		{
			MethodName: "Claim",
			Handler:    _OcckernelService_Claim_Handler,
		},
		{
			MethodName: "Commit",
			Handler:    _OcckernelService_Commit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _OcckernelService_Withdraw_Handler,
		},
		{
			MethodName: "Execute",
			Handler:    _OcckernelService_Execute_Handler,
		},
		{
			MethodName: "GetPdo",
			Handler:    _OcckernelService_GetPdo_Handler,
		},
		{
			MethodName: "ListQueue",
			Handler:    _OcckernelService_ListQueue_Handler,
		},
		{
			MethodName: "ExportAudit",
			Handler:    _OcckernelService_ExportAudit_Handler,
		},
		{
			MethodName: "KillSwitch",
			Handler:    _OcckernelService_KillSwitch_Handler,
		},
		{
			MethodName: "Status",
			Handler:    _OcckernelService_Status_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "occkernel/v1/occkernel.proto",
}
