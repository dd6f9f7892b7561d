package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// transactionRepository implements domain.TransactionRepository.
// The seq column is a BIGSERIAL so Fetch can return records in the exact
// order they were appended.
type transactionRepository struct {
	db    *DB
	clock domain.Clock
}

// NewTransactionRepository creates a new transaction repository.
// The clock stamps record dates at append time.
func NewTransactionRepository(db *DB, clock domain.Clock) domain.TransactionRepository {
	return &transactionRepository{db: db, clock: clock}
}

// Append records a transaction
func (r *transactionRepository) Append(ctx context.Context, tx domain.AppendTransaction) error {
	query := `
		INSERT INTO transactions (id, account_id, amount, type, date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		uuid.New(),
		string(tx.AccountID),
		tx.Amount.String(),
		string(tx.Type),
		r.clock.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}

// Fetch returns an account's records in append order
func (r *transactionRepository) Fetch(ctx context.Context, accountID domain.AccountID) ([]domain.TransactionRecord, error) {
	query := `
		SELECT id, account_id, amount, type, date
		FROM transactions
		WHERE account_id = $1
		ORDER BY seq
	`

	rows, err := r.db.QueryContext(ctx, query, string(accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	defer rows.Close()

	records := make([]domain.TransactionRecord, 0)
	for rows.Next() {
		var (
			record    domain.TransactionRecord
			acctID    string
			amountStr string
			txType    string
		)

		if err := rows.Scan(&record.ID, &acctID, &amountStr, &txType, &record.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		// Parse amount (DECIMAL)
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
		}

		record.AccountID = domain.AccountID(acctID)
		record.Amount = amount
		record.Type = domain.TransactionType(txType)
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}
