package seeder

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// SeedAccount defines an account to be seeded at startup
type SeedAccount struct {
	ID      domain.AccountID
	Name    string
	Balance decimal.Decimal
}

// AccountSeeder ensures a fixed set of accounts exists in the store.
// Accounts that already exist are left untouched, so seeding is safe to
// run on every start.
type AccountSeeder struct {
	repo domain.AccountRepository
}

// NewAccountSeeder creates a new AccountSeeder instance
func NewAccountSeeder(repo domain.AccountRepository) *AccountSeeder {
	return &AccountSeeder{repo: repo}
}

// Seed creates every missing account from the given set
func (s *AccountSeeder) Seed(ctx context.Context, accounts []SeedAccount) error {
	for _, seed := range accounts {
		existing, err := s.repo.Fetch(ctx, seed.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if err := s.repo.Create(ctx, domain.NewAccount(seed.ID, seed.Name, seed.Balance)); err != nil {
			return err
		}
	}
	return nil
}
