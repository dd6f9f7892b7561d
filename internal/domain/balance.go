package domain

import (
	"github.com/shopspring/decimal"
)

// Balance holds a single account's current monetary value.
// Invariant: the value is never negative at any observable point.
// Debit is the single enforcement point — every withdrawal path goes
// through it, never around it with direct arithmetic.
type Balance struct {
	value decimal.Decimal
}

// NewBalance creates a balance seeded with an initial value.
// Seed values are trusted (a negative seed is a programming error);
// user-supplied amounts are validated upstream by NewAmount.
func NewBalance(initial decimal.Decimal) *Balance {
	return &Balance{value: initial}
}

// Credit unconditionally adds amount to the current value
func (b *Balance) Credit(amount decimal.Decimal) {
	b.value = b.value.Add(amount)
}

// Debit subtracts amount from the current value.
// If the result would be negative it fails with ErrInsufficientFunds
// and leaves the value untouched.
func (b *Balance) Debit(amount decimal.Decimal) error {
	next := b.value.Sub(amount)
	if next.IsNegative() {
		return ErrInsufficientFunds
	}
	b.value = next
	return nil
}

// Read returns the current value, no side effects
func (b *Balance) Read() decimal.Decimal {
	return b.value
}
