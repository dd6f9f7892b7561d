package history

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// PrintTransactionHistoryInput represents the input for printing an
// account's transaction history
type PrintTransactionHistoryInput struct {
	AccountID domain.AccountID
}

// HistoryEntry is one printed row of an account's transaction history.
// Balance is the account's balance at query time, applied to every row —
// not the balance as of that transaction.
type HistoryEntry struct {
	Date            int64
	TransactionType domain.TransactionType
	Amount          decimal.Decimal
	Balance         decimal.Decimal
}

// HistoryService handles transaction history queries
type HistoryService struct {
	AccountRepo     domain.AccountRepository
	TransactionRepo domain.TransactionRepository
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(
	accountRepo domain.AccountRepository,
	transactionRepo domain.TransactionRepository,
) *HistoryService {
	return &HistoryService{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}

// PrintTransactionHistory returns the account's records in the order they
// were appended, or an empty list if there are none. Calling it twice
// without an intervening mutation yields identical results.
func (s *HistoryService) PrintTransactionHistory(
	ctx context.Context,
	input PrintTransactionHistoryInput,
) ([]HistoryEntry, error) {
	account, err := s.AccountRepo.Fetch(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountDoesNotExist
	}

	records, err := s.TransactionRepo.Fetch(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	// current balance read once, applied to every row
	balance := account.Balance().Read()

	entries := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, HistoryEntry{
			Date:            record.Date,
			TransactionType: record.Type,
			Amount:          record.Amount,
			Balance:         balance,
		})
	}

	return entries, nil
}
