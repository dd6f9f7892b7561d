package domain

import (
	"github.com/shopspring/decimal"
)

// AccountID is an opaque, globally unique token identifying one account.
// It is assigned once at account creation and immutable thereafter.
type AccountID string

// Account is the aggregate binding an identity, a display name and a
// Balance. The balance is owned by exactly one account (composition) and
// is mutated only through the methods below, never by direct assignment.
type Account struct {
	id      AccountID
	name    string
	balance *Balance
}

// NewAccount creates an account with an initial balance.
// The initial seed must itself satisfy the balance invariant (>= 0);
// seed values are trusted, user-supplied amounts are not.
func NewAccount(id AccountID, name string, initialBalance decimal.Decimal) *Account {
	return &Account{
		id:      id,
		name:    name,
		balance: NewBalance(initialBalance),
	}
}

// DepositBalance credits the account's balance. Always succeeds.
func (a *Account) DepositBalance(amount decimal.Decimal) {
	a.balance.Credit(amount)
}

// WithdrawBalance debits the account's balance, propagating
// ErrInsufficientFunds without mutating when funds are short.
func (a *Account) WithdrawBalance(amount decimal.Decimal) error {
	return a.balance.Debit(amount)
}

// ID returns the account identity
func (a *Account) ID() AccountID {
	return a.id
}

// Name returns the display name
func (a *Account) Name() string {
	return a.name
}

// Balance returns the account's balance
func (a *Account) Balance() *Balance {
	return a.balance
}
