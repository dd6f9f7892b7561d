package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger record
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "deposit"
	TransactionTypeWithdraw TransactionType = "withdraw"
)

// AppendTransaction is the request shape consumed by the ledger.
// The ledger itself stamps the date with the injected clock at append
// time, so callers never supply one.
type AppendTransaction struct {
	AccountID AccountID
	Amount    decimal.Decimal // always positive for a recorded operation
	Type      TransactionType
}

// TransactionRecord is a single entry of an account's append-only ledger.
// Records are immutable once appended: exactly one per successful deposit
// or withdrawal, never one for a rejected operation. The AccountID is a
// back-reference — the ledger does not own the account.
type TransactionRecord struct {
	ID        uuid.UUID
	AccountID AccountID
	Amount    decimal.Decimal
	Type      TransactionType
	Date      int64 // unix milliseconds, supplied by the ledger's clock
}
