package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	bankledgerv1 "github.com/nmarques/bankledger-backend/internal/adapter/grpc/bankledgerv1"
	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/deposit"
	"github.com/nmarques/bankledger-backend/internal/usecase/history"
	"github.com/nmarques/bankledger-backend/internal/usecase/withdraw"
)

// Server implements the BankLedgerService gRPC server
type Server struct {
	bankledgerv1.UnimplementedBankLedgerServiceServer

	DepositService  *deposit.DepositService
	WithdrawService *withdraw.WithdrawService
	HistoryService  *history.HistoryService
}

// NewServer creates a new gRPC server instance
func NewServer(
	depositService *deposit.DepositService,
	withdrawService *withdraw.WithdrawService,
	historyService *history.HistoryService,
) *Server {
	return &Server{
		DepositService:  depositService,
		WithdrawService: withdrawService,
		HistoryService:  historyService,
	}
}

// Deposit handles the Deposit RPC
func (s *Server) Deposit(ctx context.Context, req *bankledgerv1.DepositRequest) (*bankledgerv1.DepositResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	input := deposit.DepositFundsInput{
		AccountID: domain.AccountID(req.AccountId),
		Amount:    amount,
	}

	if err := s.DepositService.DepositFunds(ctx, input); err != nil {
		return nil, mapError(err)
	}

	return &bankledgerv1.DepositResponse{}, nil
}

// Withdraw handles the Withdraw RPC
func (s *Server) Withdraw(ctx context.Context, req *bankledgerv1.WithdrawRequest) (*bankledgerv1.WithdrawResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	input := withdraw.WithdrawFundsInput{
		AccountID: domain.AccountID(req.AccountId),
		Amount:    amount,
	}

	if err := s.WithdrawService.WithdrawFunds(ctx, input); err != nil {
		return nil, mapError(err)
	}

	return &bankledgerv1.WithdrawResponse{}, nil
}

// TransactionHistory handles the TransactionHistory RPC
func (s *Server) TransactionHistory(ctx context.Context, req *bankledgerv1.TransactionHistoryRequest) (*bankledgerv1.TransactionHistoryResponse, error) {
	entries, err := s.HistoryService.PrintTransactionHistory(ctx, history.PrintTransactionHistoryInput{
		AccountID: domain.AccountID(req.AccountId),
	})
	if err != nil {
		return nil, mapError(err)
	}

	resp := &bankledgerv1.TransactionHistoryResponse{
		Entries: make([]*bankledgerv1.TransactionHistoryEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, &bankledgerv1.TransactionHistoryEntry{
			Date:            timestamppb.New(time.UnixMilli(entry.Date)),
			TransactionType: string(entry.TransactionType),
			Amount:          entry.Amount.String(),
			Balance:         entry.Balance.String(),
		})
	}

	return resp, nil
}

// parseAmount turns the wire amount into the use case input shape.
// An empty string means the caller supplied no amount at all, which the
// use cases report as an invalid amount; a malformed string is a transport
// error handled before the use case runs.
func parseAmount(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// mapError converts domain failures to gRPC status codes
func mapError(err error) error {
	var failure *domain.Failure
	if errors.As(err, &failure) {
		switch failure.Type {
		case domain.FailureInvalidAmount:
			return status.Error(codes.InvalidArgument, failure.Message)
		case domain.FailureAccountDoesNotExist:
			return status.Error(codes.NotFound, failure.Message)
		case domain.FailureInsufficientFunds:
			return status.Error(codes.FailedPrecondition, failure.Message)
		}
	}
	return status.Error(codes.Internal, err.Error())
}
