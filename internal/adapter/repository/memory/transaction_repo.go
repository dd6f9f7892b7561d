package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository over an
// append-only slice. Dates are stamped with the injected clock at append
// time; insertion order is preserved.
type TransactionRepository struct {
	mu      sync.RWMutex
	clock   domain.Clock
	records []domain.TransactionRecord
}

// NewTransactionRepository creates an empty in-memory ledger
func NewTransactionRepository(clock domain.Clock) *TransactionRepository {
	return &TransactionRepository{clock: clock}
}

// Append records a transaction, stamping its ID and date
func (r *TransactionRepository) Append(_ context.Context, tx domain.AppendTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, domain.TransactionRecord{
		ID:        uuid.New(),
		AccountID: tx.AccountID,
		Amount:    tx.Amount,
		Type:      tx.Type,
		Date:      r.clock.Now(),
	})
	return nil
}

// Fetch returns the records for one account in append order
func (r *TransactionRepository) Fetch(_ context.Context, accountID domain.AccountID) ([]domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.TransactionRecord, 0)
	for _, record := range r.records {
		if record.AccountID == accountID {
			out = append(out, record)
		}
	}
	return out, nil
}

var _ domain.TransactionRepository = (*TransactionRepository)(nil)
