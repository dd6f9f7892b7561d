package domain

// FailureType tags the expected failure outcomes of the account operations
type FailureType string

const (
	FailureInvalidAmount       FailureType = "InvalidAmountError"
	FailureAccountDoesNotExist FailureType = "AccountDoesNotExistError"
	FailureInsufficientFunds   FailureType = "InsufficientFundsError"
)

// Failure is a typed failure value returned by use cases.
// All three kinds are ordinary expected outcomes the caller handles by type;
// a non-nil Failure guarantees zero mutation to the account store or the
// transaction ledger for that invocation.
type Failure struct {
	Type    FailureType
	Message string
}

// Error implements the error interface
func (f *Failure) Error() string {
	return f.Message
}

// Is allows errors.Is comparisons against the sentinel failures below
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.Type == t.Type
}

var (
	// ErrInvalidAmount is returned when the amount is missing or negative
	ErrInvalidAmount = &Failure{
		Type:    FailureInvalidAmount,
		Message: "Can not deposit an invalid amount",
	}

	// ErrAccountDoesNotExist is returned when no account matches the supplied identity
	ErrAccountDoesNotExist = &Failure{
		Type:    FailureAccountDoesNotExist,
		Message: "Account does not exist",
	}

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance
	ErrInsufficientFunds = &Failure{
		Type:    FailureInsufficientFunds,
		Message: "You have no Insufficient Funds",
	}
)
