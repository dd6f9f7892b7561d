package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// Fetch retrieves an account by its identity.
// A missing row is a normal outcome and returns (nil, nil).
func (r *accountRepository) Fetch(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	query := `
		SELECT id, name, balance
		FROM accounts
		WHERE id = $1
	`

	var (
		accountID  string
		name       string
		balanceStr string
	)

	err := r.db.QueryRowContext(ctx, query, string(id)).Scan(&accountID, &name, &balanceStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	// Parse balance (DECIMAL)
	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}

	return domain.NewAccount(domain.AccountID(accountID), name, balance), nil
}

// Update overwrites the stored aggregate wholesale
func (r *accountRepository) Update(ctx context.Context, id domain.AccountID, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, balance = $3
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		string(id),
		account.Name(),
		account.Balance().Read().String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	return nil
}

// Create stores a new account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (id, name, balance)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query,
		string(account.ID()),
		account.Name(),
		account.Balance().Read().String(),
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}
