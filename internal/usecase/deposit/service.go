package deposit

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/acctlock"
)

// DepositFundsInput represents the input for depositing funds.
// Amount is nil when the caller supplied no amount at all.
type DepositFundsInput struct {
	AccountID domain.AccountID
	Amount    *decimal.Decimal
}

// DepositService handles fund deposit operations
type DepositService struct {
	AccountRepo     domain.AccountRepository
	TransactionRepo domain.TransactionRepository
	Locks           *acctlock.KeyedMutex
}

// NewDepositService creates a new DepositService instance
func NewDepositService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	locks *acctlock.KeyedMutex,
) *DepositService {
	return &DepositService{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		Locks:           locks,
	}
}

// DepositFunds credits an account and records the deposit.
// Logic:
//  1. Validate the amount (nil or negative fails, zero is valid)
//  2. Fetch the account (absence is an ordinary failure)
//  3. Credit the balance in memory
//  4. Persist the updated account
//  5. Append a "deposit" record to the ledger
//
// The store mutation and the ledger append happen, in that order, only after
// both checks pass; a failure leaves store and ledger untouched. The whole
// sequence holds the account's lock so concurrent operations on the same
// account are serialized.
func (s *DepositService) DepositFunds(ctx context.Context, input DepositFundsInput) error {
	amount, err := domain.NewAmount(input.Amount)
	if err != nil {
		return err
	}

	s.Locks.Lock(input.AccountID)
	defer s.Locks.Unlock(input.AccountID)

	account, err := s.AccountRepo.Fetch(ctx, input.AccountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountDoesNotExist
	}

	account.DepositBalance(amount.Value())

	if err := s.AccountRepo.Update(ctx, input.AccountID, account); err != nil {
		return err
	}

	return s.TransactionRepo.Append(ctx, domain.AppendTransaction{
		AccountID: account.ID(),
		Amount:    amount.Value(),
		Type:      domain.TransactionTypeDeposit,
	})
}
