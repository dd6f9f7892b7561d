package domain

import (
	"github.com/shopspring/decimal"
)

// Amount is a validated non-negative monetary quantity.
// It only exists transiently inside a use case call; construction is the
// single place raw user input is checked.
type Amount struct {
	value decimal.Decimal
}

// NewAmount validates raw numeric input into an Amount.
// A nil or negative value fails with ErrInvalidAmount. Zero is valid:
// the rule is >= 0, not > 0.
func NewAmount(raw *decimal.Decimal) (Amount, error) {
	if raw == nil || raw.IsNegative() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: *raw}, nil
}

// Value returns the validated quantity
func (a Amount) Value() decimal.Decimal {
	return a.value
}
