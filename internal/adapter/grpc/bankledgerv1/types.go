// Package bankledgerv1 holds the hand-maintained wire contract for the
// BankLedger gRPC API. Field numbers are part of the wire format: never
// reuse or renumber them, only append.
package bankledgerv1

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// DepositRequest asks to credit an account
type DepositRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// Amount is a decimal string; an empty string means no amount was supplied
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *DepositRequest) Reset()         { *m = DepositRequest{} }
func (m *DepositRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepositRequest) ProtoMessage()    {}

// DepositResponse is empty: a successful deposit carries no payload
type DepositResponse struct{}

func (m *DepositResponse) Reset()         { *m = DepositResponse{} }
func (m *DepositResponse) String() string { return "DepositResponse{}" }
func (*DepositResponse) ProtoMessage()    {}

// WithdrawRequest asks to debit an account
type WithdrawRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	// Amount is a decimal string; an empty string means no amount was supplied
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *WithdrawRequest) Reset()         { *m = WithdrawRequest{} }
func (m *WithdrawRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*WithdrawRequest) ProtoMessage()    {}

// WithdrawResponse is empty: a successful withdrawal carries no payload
type WithdrawResponse struct{}

func (m *WithdrawResponse) Reset()         { *m = WithdrawResponse{} }
func (m *WithdrawResponse) String() string { return "WithdrawResponse{}" }
func (*WithdrawResponse) ProtoMessage()    {}

// TransactionHistoryRequest asks for an account's ledger records
type TransactionHistoryRequest struct {
	AccountId string `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
}

func (m *TransactionHistoryRequest) Reset()         { *m = TransactionHistoryRequest{} }
func (m *TransactionHistoryRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TransactionHistoryRequest) ProtoMessage()    {}

// TransactionHistoryEntry is one row of the printed history.
// Balance is the account's balance at query time.
type TransactionHistoryEntry struct {
	Date            *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	TransactionType string                 `protobuf:"bytes,2,opt,name=transaction_type,json=transactionType,proto3" json:"transaction_type,omitempty"`
	Amount          string                 `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	Balance         string                 `protobuf:"bytes,4,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *TransactionHistoryEntry) Reset()         { *m = TransactionHistoryEntry{} }
func (m *TransactionHistoryEntry) String() string { return fmt.Sprintf("%+v", *m) }
func (*TransactionHistoryEntry) ProtoMessage()    {}

// TransactionHistoryResponse returns the records in append order
type TransactionHistoryResponse struct {
	Entries []*TransactionHistoryEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
}

func (m *TransactionHistoryResponse) Reset()         { *m = TransactionHistoryResponse{} }
func (m *TransactionHistoryResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*TransactionHistoryResponse) ProtoMessage()    {}
