package domain

import (
	"context"
)

// AccountRepository defines the interface for account persistence operations
type AccountRepository interface {
	// Fetch retrieves an account by its identity.
	// A missing account is a normal outcome: it returns (nil, nil),
	// not an error.
	Fetch(ctx context.Context, id AccountID) (*Account, error)

	// Update overwrites the stored aggregate wholesale
	Update(ctx context.Context, id AccountID, account *Account) error

	// Create stores a new account
	Create(ctx context.Context, account *Account) error
}

// TransactionRepository defines the interface for the append-only
// transaction ledger
type TransactionRepository interface {
	// Append records a transaction, stamping its date with the ledger's clock
	Append(ctx context.Context, tx AppendTransaction) error

	// Fetch returns the records for an account in append order,
	// or an empty slice if none exist
	Fetch(ctx context.Context, accountID AccountID) ([]TransactionRecord, error)
}
