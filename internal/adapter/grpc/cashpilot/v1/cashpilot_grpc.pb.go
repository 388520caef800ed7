// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: cashpilot/v1/cashpilot.proto

package cashpilotv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	CashPilotService_CalculateSpendingStatistics_FullMethodName = "/cashpilot.v1.CashPilotService/CalculateSpendingStatistics"
	CashPilotService_PlanDebtAllocation_FullMethodName          = "/cashpilot.v1.CashPilotService/PlanDebtAllocation"
	CashPilotService_RunCashDebtSimulation_FullMethodName       = "/cashpilot.v1.CashPilotService/RunCashDebtSimulation"
	CashPilotService_ProjectInvestmentGrowth_FullMethodName     = "/cashpilot.v1.CashPilotService/ProjectInvestmentGrowth"
	CashPilotService_EstimateSpendableCash_FullMethodName       = "/cashpilot.v1.CashPilotService/EstimateSpendableCash"
	CashPilotService_ExpandRecurringSchedule_FullMethodName     = "/cashpilot.v1.CashPilotService/ExpandRecurringSchedule"
)

// CashPilotServiceClient is the client API for CashPilotService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CashPilotService exposes the cash-flow calculation engine. All monetary
// amounts are decimal strings ("123.45") to avoid binary floating point on
// the wire.
type CashPilotServiceClient interface {
	// Computes trailing spending statistics over one or more window lengths.
	CalculateSpendingStatistics(ctx context.Context, in *CalculateSpendingStatisticsRequest, opts ...grpc.CallOption) (*CalculateSpendingStatisticsResponse, error)
	// Allocates one cycle of debt payments from the stored open debts.
	PlanDebtAllocation(ctx context.Context, in *PlanDebtAllocationRequest, opts ...grpc.CallOption) (*PlanDebtAllocationResponse, error)
	// Walks cash and debt balances day by day over a date range.
	RunCashDebtSimulation(ctx context.Context, in *RunCashDebtSimulationRequest, opts ...grpc.CallOption) (*RunCashDebtSimulationResponse, error)
	// Projects an investment balance forward with growth and inflation.
	ProjectInvestmentGrowth(ctx context.Context, in *ProjectInvestmentGrowthRequest, opts ...grpc.CallOption) (*ProjectInvestmentGrowthResponse, error)
	// Estimates how much cash is safe to spend before the next paycheck.
	EstimateSpendableCash(ctx context.Context, in *EstimateSpendableCashRequest, opts ...grpc.CallOption) (*EstimateSpendableCashResponse, error)
	// Expands a recurring schedule into concrete dated occurrences.
	ExpandRecurringSchedule(ctx context.Context, in *ExpandRecurringScheduleRequest, opts ...grpc.CallOption) (*ExpandRecurringScheduleResponse, error)
}

type cashPilotServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCashPilotServiceClient(cc grpc.ClientConnInterface) CashPilotServiceClient {
	return &cashPilotServiceClient{cc}
}

func (c *cashPilotServiceClient) CalculateSpendingStatistics(ctx context.Context, in *CalculateSpendingStatisticsRequest, opts ...grpc.CallOption) (*CalculateSpendingStatisticsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CalculateSpendingStatisticsResponse)
	err := c.cc.Invoke(ctx, CashPilotService_CalculateSpendingStatistics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cashPilotServiceClient) PlanDebtAllocation(ctx context.Context, in *PlanDebtAllocationRequest, opts ...grpc.CallOption) (*PlanDebtAllocationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PlanDebtAllocationResponse)
	err := c.cc.Invoke(ctx, CashPilotService_PlanDebtAllocation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cashPilotServiceClient) RunCashDebtSimulation(ctx context.Context, in *RunCashDebtSimulationRequest, opts ...grpc.CallOption) (*RunCashDebtSimulationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunCashDebtSimulationResponse)
	err := c.cc.Invoke(ctx, CashPilotService_RunCashDebtSimulation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cashPilotServiceClient) ProjectInvestmentGrowth(ctx context.Context, in *ProjectInvestmentGrowthRequest, opts ...grpc.CallOption) (*ProjectInvestmentGrowthResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProjectInvestmentGrowthResponse)
	err := c.cc.Invoke(ctx, CashPilotService_ProjectInvestmentGrowth_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cashPilotServiceClient) EstimateSpendableCash(ctx context.Context, in *EstimateSpendableCashRequest, opts ...grpc.CallOption) (*EstimateSpendableCashResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EstimateSpendableCashResponse)
	err := c.cc.Invoke(ctx, CashPilotService_EstimateSpendableCash_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cashPilotServiceClient) ExpandRecurringSchedule(ctx context.Context, in *ExpandRecurringScheduleRequest, opts ...grpc.CallOption) (*ExpandRecurringScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExpandRecurringScheduleResponse)
	err := c.cc.Invoke(ctx, CashPilotService_ExpandRecurringSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CashPilotServiceServer is the server API for CashPilotService service.
// All implementations must embed UnimplementedCashPilotServiceServer
// for forward compatibility
//
// CashPilotService exposes the cash-flow calculation engine. All monetary
// amounts are decimal strings ("123.45") to avoid binary floating point on
// the wire.
type CashPilotServiceServer interface {
	// Computes trailing spending statistics over one or more window lengths.
	CalculateSpendingStatistics(context.Context, *CalculateSpendingStatisticsRequest) (*CalculateSpendingStatisticsResponse, error)
	// Allocates one cycle of debt payments from the stored open debts.
	PlanDebtAllocation(context.Context, *PlanDebtAllocationRequest) (*PlanDebtAllocationResponse, error)
	// Walks cash and debt balances day by day over a date range.
	RunCashDebtSimulation(context.Context, *RunCashDebtSimulationRequest) (*RunCashDebtSimulationResponse, error)
	// Projects an investment balance forward with growth and inflation.
	ProjectInvestmentGrowth(context.Context, *ProjectInvestmentGrowthRequest) (*ProjectInvestmentGrowthResponse, error)
	// Estimates how much cash is safe to spend before the next paycheck.
	EstimateSpendableCash(context.Context, *EstimateSpendableCashRequest) (*EstimateSpendableCashResponse, error)
	// Expands a recurring schedule into concrete dated occurrences.
	ExpandRecurringSchedule(context.Context, *ExpandRecurringScheduleRequest) (*ExpandRecurringScheduleResponse, error)
	mustEmbedUnimplementedCashPilotServiceServer()
}

// UnimplementedCashPilotServiceServer must be embedded to have forward compatible implementations.
type UnimplementedCashPilotServiceServer struct {
}

func (UnimplementedCashPilotServiceServer) CalculateSpendingStatistics(context.Context, *CalculateSpendingStatisticsRequest) (*CalculateSpendingStatisticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CalculateSpendingStatistics not implemented")
}
func (UnimplementedCashPilotServiceServer) PlanDebtAllocation(context.Context, *PlanDebtAllocationRequest) (*PlanDebtAllocationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlanDebtAllocation not implemented")
}
func (UnimplementedCashPilotServiceServer) RunCashDebtSimulation(context.Context, *RunCashDebtSimulationRequest) (*RunCashDebtSimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunCashDebtSimulation not implemented")
}
func (UnimplementedCashPilotServiceServer) ProjectInvestmentGrowth(context.Context, *ProjectInvestmentGrowthRequest) (*ProjectInvestmentGrowthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProjectInvestmentGrowth not implemented")
}
func (UnimplementedCashPilotServiceServer) EstimateSpendableCash(context.Context, *EstimateSpendableCashRequest) (*EstimateSpendableCashResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EstimateSpendableCash not implemented")
}
func (UnimplementedCashPilotServiceServer) ExpandRecurringSchedule(context.Context, *ExpandRecurringScheduleRequest) (*ExpandRecurringScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExpandRecurringSchedule not implemented")
}
func (UnimplementedCashPilotServiceServer) mustEmbedUnimplementedCashPilotServiceServer() {}

// UnsafeCashPilotServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CashPilotServiceServer will
// result in compilation errors.
type UnsafeCashPilotServiceServer interface {
	mustEmbedUnimplementedCashPilotServiceServer()
}

func RegisterCashPilotServiceServer(s grpc.ServiceRegistrar, srv CashPilotServiceServer) {
	s.RegisterService(&CashPilotService_ServiceDesc, srv)
}

func _CashPilotService_CalculateSpendingStatistics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateSpendingStatisticsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).CalculateSpendingStatistics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_CalculateSpendingStatistics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).CalculateSpendingStatistics(ctx, req.(*CalculateSpendingStatisticsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CashPilotService_PlanDebtAllocation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PlanDebtAllocationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).PlanDebtAllocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_PlanDebtAllocation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).PlanDebtAllocation(ctx, req.(*PlanDebtAllocationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CashPilotService_RunCashDebtSimulation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunCashDebtSimulationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).RunCashDebtSimulation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_RunCashDebtSimulation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).RunCashDebtSimulation(ctx, req.(*RunCashDebtSimulationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CashPilotService_ProjectInvestmentGrowth_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProjectInvestmentGrowthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).ProjectInvestmentGrowth(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_ProjectInvestmentGrowth_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).ProjectInvestmentGrowth(ctx, req.(*ProjectInvestmentGrowthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CashPilotService_EstimateSpendableCash_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EstimateSpendableCashRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).EstimateSpendableCash(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_EstimateSpendableCash_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).EstimateSpendableCash(ctx, req.(*EstimateSpendableCashRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CashPilotService_ExpandRecurringSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExpandRecurringScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CashPilotServiceServer).ExpandRecurringSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CashPilotService_ExpandRecurringSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CashPilotServiceServer).ExpandRecurringSchedule(ctx, req.(*ExpandRecurringScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CashPilotService_ServiceDesc is the grpc.ServiceDesc for CashPilotService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CashPilotService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cashpilot.v1.CashPilotService",
	HandlerType: (*CashPilotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CalculateSpendingStatistics",
			Handler:    _CashPilotService_CalculateSpendingStatistics_Handler,
		},
		{
			MethodName: "PlanDebtAllocation",
			Handler:    _CashPilotService_PlanDebtAllocation_Handler,
		},
		{
			MethodName: "RunCashDebtSimulation",
			Handler:    _CashPilotService_RunCashDebtSimulation_Handler,
		},
		{
			MethodName: "ProjectInvestmentGrowth",
			Handler:    _CashPilotService_ProjectInvestmentGrowth_Handler,
		},
		{
			MethodName: "EstimateSpendableCash",
			Handler:    _CashPilotService_EstimateSpendableCash_Handler,
		},
		{
			MethodName: "ExpandRecurringSchedule",
			Handler:    _CashPilotService_ExpandRecurringSchedule_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cashpilot/v1/cashpilot.proto",
}
