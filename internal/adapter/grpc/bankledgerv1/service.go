package bankledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	BankLedgerService_Deposit_FullMethodName            = "/bankledger.v1.BankLedgerService/Deposit"
	BankLedgerService_Withdraw_FullMethodName           = "/bankledger.v1.BankLedgerService/Withdraw"
	BankLedgerService_TransactionHistory_FullMethodName = "/bankledger.v1.BankLedgerService/TransactionHistory"
)

// BankLedgerServiceClient is the client API for the BankLedgerService
type BankLedgerServiceClient interface {
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	TransactionHistory(ctx context.Context, in *TransactionHistoryRequest, opts ...grpc.CallOption) (*TransactionHistoryResponse, error)
}

type bankLedgerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBankLedgerServiceClient creates a client over an existing connection
func NewBankLedgerServiceClient(cc grpc.ClientConnInterface) BankLedgerServiceClient {
	return &bankLedgerServiceClient{cc}
}

func (c *bankLedgerServiceClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	if err := c.cc.Invoke(ctx, BankLedgerService_Deposit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bankLedgerServiceClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	out := new(WithdrawResponse)
	if err := c.cc.Invoke(ctx, BankLedgerService_Withdraw_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bankLedgerServiceClient) TransactionHistory(ctx context.Context, in *TransactionHistoryRequest, opts ...grpc.CallOption) (*TransactionHistoryResponse, error) {
	out := new(TransactionHistoryResponse)
	if err := c.cc.Invoke(ctx, BankLedgerService_TransactionHistory_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// BankLedgerServiceServer is the server API for the BankLedgerService
type BankLedgerServiceServer interface {
	Deposit(ctx context.Context, in *DepositRequest) (*DepositResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest) (*WithdrawResponse, error)
	TransactionHistory(ctx context.Context, in *TransactionHistoryRequest) (*TransactionHistoryResponse, error)
}

// UnimplementedBankLedgerServiceServer can be embedded for forward compatibility
type UnimplementedBankLedgerServiceServer struct{}

func (UnimplementedBankLedgerServiceServer) Deposit(context.Context, *DepositRequest) (*DepositResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Deposit not implemented")
}

func (UnimplementedBankLedgerServiceServer) Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Withdraw not implemented")
}

func (UnimplementedBankLedgerServiceServer) TransactionHistory(context.Context, *TransactionHistoryRequest) (*TransactionHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TransactionHistory not implemented")
}

// RegisterBankLedgerServiceServer registers the service implementation with
// the gRPC server
func RegisterBankLedgerServiceServer(s grpc.ServiceRegistrar, srv BankLedgerServiceServer) {
	s.RegisterService(&BankLedgerService_ServiceDesc, srv)
}

func _BankLedgerService_Deposit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BankLedgerServiceServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BankLedgerService_Deposit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BankLedgerServiceServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BankLedgerService_Withdraw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BankLedgerServiceServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BankLedgerService_Withdraw_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BankLedgerServiceServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BankLedgerService_TransactionHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TransactionHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BankLedgerServiceServer).TransactionHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BankLedgerService_TransactionHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BankLedgerServiceServer).TransactionHistory(ctx, req.(*TransactionHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BankLedgerService_ServiceDesc is the grpc.ServiceDesc for the service
var BankLedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "bankledger.v1.BankLedgerService",
	HandlerType: (*BankLedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Deposit",
			Handler:    _BankLedgerService_Deposit_Handler,
		},
		{
			MethodName: "Withdraw",
			Handler:    _BankLedgerService_Withdraw_Handler,
		},
		{
			MethodName: "TransactionHistory",
			Handler:    _BankLedgerService_TransactionHistory_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
