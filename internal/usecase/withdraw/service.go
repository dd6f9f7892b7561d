package withdraw

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/acctlock"
)

// WithdrawFundsInput represents the input for withdrawing funds.
// Amount is nil when the caller supplied no amount at all.
type WithdrawFundsInput struct {
	AccountID domain.AccountID
	Amount    *decimal.Decimal
}

// WithdrawService handles fund withdrawal operations
type WithdrawService struct {
	AccountRepo     domain.AccountRepository
	TransactionRepo domain.TransactionRepository
	Locks           *acctlock.KeyedMutex
}

// NewWithdrawService creates a new WithdrawService instance
func NewWithdrawService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
	locks *acctlock.KeyedMutex,
) *WithdrawService {
	return &WithdrawService{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		Locks:           locks,
	}
}

// WithdrawFunds debits an account and records the withdrawal.
// Logic:
//  1. Validate the amount (nil and negative both fail; a negative
//     withdrawal would otherwise act as a credit)
//  2. Fetch the account
//  3. Debit the balance; insufficient funds fails with no mutation
//     and no ledger append
//  4. Persist the updated account
//  5. Append a "withdraw" record to the ledger
//
// Serialized per account through the shared lock registry, so two
// concurrent withdrawals cannot both pass the funds check against a
// stale balance.
func (s *WithdrawService) WithdrawFunds(ctx context.Context, input WithdrawFundsInput) error {
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

	if err := account.WithdrawBalance(amount.Value()); err != nil {
		return err
	}

	if err := s.AccountRepo.Update(ctx, input.AccountID, account); err != nil {
		return err
	}

	return s.TransactionRepo.Append(ctx, domain.AppendTransaction{
		AccountID: account.ID(),
		Amount:    amount.Value(),
		Type:      domain.TransactionTypeWithdraw,
	})
}
