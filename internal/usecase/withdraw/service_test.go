package withdraw

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nmarques/bankledger-backend/internal/adapter/repository/memory"
	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/acctlock"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Fetch(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, id domain.AccountID, account *domain.Account) error {
	args := m.Called(ctx, id, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository for testing
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Append(ctx context.Context, tx domain.AppendTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Fetch(ctx context.Context, accountID domain.AccountID) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func newService(accountRepo *MockAccountRepository, txRepo *MockTransactionRepository) *WithdrawService {
	return NewWithdrawService(accountRepo, txRepo, acctlock.NewKeyedMutex())
}

func TestWithdrawFunds_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount *decimal.Decimal
	}{
		{
			name:   "missing amount",
			amount: nil,
		},
		{
			name:   "negative amount",
			amount: decimalPtr(decimal.NewFromInt(-50)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mockAccountRepo := new(MockAccountRepository)
			mockTxRepo := new(MockTransactionRepository)

			service := newService(mockAccountRepo, mockTxRepo)

			err := service.WithdrawFunds(ctx, WithdrawFundsInput{
				AccountID: "id_R",
				Amount:    tt.amount,
			})

			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
			assert.Equal(t, "Can not deposit an invalid amount", err.Error())

			mockAccountRepo.AssertNotCalled(t, "Fetch")
			mockAccountRepo.AssertNotCalled(t, "Update")
			mockTxRepo.AssertNotCalled(t, "Append")
		})
	}
}

func TestWithdrawFunds_UnknownAccount(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := newService(mockAccountRepo, mockTxRepo)

	mockAccountRepo.On("Fetch", ctx, domain.AccountID("SOME_ACCOUNT_ID")).Return(nil, nil)

	err := service.WithdrawFunds(ctx, WithdrawFundsInput{
		AccountID: "SOME_ACCOUNT_ID",
		Amount:    decimalPtr(decimal.NewFromInt(10)),
	})

	assert.ErrorIs(t, err, domain.ErrAccountDoesNotExist)

	mockAccountRepo.AssertNotCalled(t, "Update")
	mockTxRepo.AssertNotCalled(t, "Append")
}

func TestWithdrawFunds_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := newService(mockAccountRepo, mockTxRepo)

	account := domain.NewAccount("id_R", "Rita", decimal.NewFromInt(300))
	mockAccountRepo.On("Fetch", ctx, domain.AccountID("id_R")).Return(account, nil)

	err := service.WithdrawFunds(ctx, WithdrawFundsInput{
		AccountID: "id_R",
		Amount:    decimalPtr(decimal.NewFromInt(500)),
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, "You have no Insufficient Funds", err.Error())

	// rejected withdrawal: no mutation, no ledger append
	assert.True(t, account.Balance().Read().Equal(decimal.NewFromInt(300)))
	mockAccountRepo.AssertNotCalled(t, "Update")
	mockTxRepo.AssertNotCalled(t, "Append")
}

func TestWithdrawFunds_DebitsBalanceAndAppendsRecord(t *testing.T) {
	ctx := context.Background()
	mockAccountRepo := new(MockAccountRepository)
	mockTxRepo := new(MockTransactionRepository)

	service := newService(mockAccountRepo, mockTxRepo)

	account := domain.NewAccount("id_R", "Rita", decimal.NewFromInt(300))
	mockAccountRepo.On("Fetch", ctx, domain.AccountID("id_R")).Return(account, nil)

	mockAccountRepo.On("Update", ctx, domain.AccountID("id_R"), mock.MatchedBy(func(a *domain.Account) bool {
		return a.Balance().Read().Equal(decimal.NewFromInt(100))
	})).Return(nil)

	mockTxRepo.On("Append", ctx, mock.MatchedBy(func(tx domain.AppendTransaction) bool {
		return tx.AccountID == "id_R" &&
			tx.Type == domain.TransactionTypeWithdraw &&
			tx.Amount.Equal(decimal.NewFromInt(200))
	})).Return(nil)

	err := service.WithdrawFunds(ctx, WithdrawFundsInput{
		AccountID: "id_R",
		Amount:    decimalPtr(decimal.NewFromInt(200)),
	})

	assert.NoError(t, err)
	assert.True(t, account.Balance().Read().Equal(decimal.NewFromInt(100)))

	mockAccountRepo.AssertExpectations(t)
	mockTxRepo.AssertExpectations(t)
	mockTxRepo.AssertNumberOfCalls(t, "Append", 1)
}

// TestWithdrawFunds_ConcurrentWithdrawalsNeverOverdraw exercises the classic
// lost-update race over the real in-memory adapters: many concurrent
// withdrawals against one account, each re-reading the balance before the
// funds check. Without per-account serialization several of them would pass
// the check against a stale balance.
func TestWithdrawFunds_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()

	clock := memory.NewFixedClock(1700000000000)
	accountRepo := memory.NewAccountRepository()
	txRepo := memory.NewTransactionRepository(clock)

	require.NoError(t, accountRepo.Create(ctx, domain.NewAccount("id_R", "Rita", decimal.NewFromInt(100))))

	service := NewWithdrawService(accountRepo, txRepo, acctlock.NewKeyedMutex())

	const attempts = 20
	withdrawal := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	results := make([]error, attempts)
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = service.WithdrawFunds(ctx, WithdrawFundsInput{
				AccountID: "id_R",
				Amount:    &withdrawal,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		}
	}

	// 100 / 10 = exactly 10 withdrawals can succeed
	assert.Equal(t, 10, succeeded)

	account, err := accountRepo.Fetch(ctx, "id_R")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.True(t, account.Balance().Read().Equal(decimal.Zero))
	assert.False(t, account.Balance().Read().IsNegative())

	// exactly one ledger record per successful withdrawal
	records, err := txRepo.Fetch(ctx, "id_R")
	require.NoError(t, err)
	assert.Len(t, records, succeeded)
}
