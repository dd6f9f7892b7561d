// Package memory provides mutex-guarded in-memory implementations of the
// repository contracts. They back the server when no database is configured
// and give tests a real store without external dependencies.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// AccountRepository implements domain.AccountRepository over a map
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[domain.AccountID]*domain.Account
}

// NewAccountRepository creates an empty in-memory account store
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[domain.AccountID]*domain.Account),
	}
}

// Fetch retrieves a snapshot copy of an account, or (nil, nil) when absent.
// Returning a copy keeps callers on the fetch-mutate-persist path instead
// of reaching into storage internals.
func (r *AccountRepository) Fetch(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	return copyAccount(account), nil
}

// Update overwrites the stored aggregate wholesale
func (r *AccountRepository) Update(_ context.Context, id domain.AccountID, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[id] = copyAccount(account)
	return nil
}

// Create stores a new account, rejecting duplicate identities
func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID()]; ok {
		return fmt.Errorf("account %q already exists", account.ID())
	}
	r.accounts[account.ID()] = copyAccount(account)
	return nil
}

func copyAccount(account *domain.Account) *domain.Account {
	return domain.NewAccount(account.ID(), account.Name(), account.Balance().Read())
}

var _ domain.AccountRepository = (*AccountRepository)(nil)
