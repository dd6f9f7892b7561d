package grpc

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bankledgerv1 "github.com/nmarques/bankledger-backend/internal/adapter/grpc/bankledgerv1"
	"github.com/nmarques/bankledger-backend/internal/adapter/repository/memory"
	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/acctlock"
	"github.com/nmarques/bankledger-backend/internal/usecase/deposit"
	"github.com/nmarques/bankledger-backend/internal/usecase/history"
	"github.com/nmarques/bankledger-backend/internal/usecase/withdraw"
)

func newTestServer(t *testing.T) (*Server, *memory.AccountRepository) {
	t.Helper()

	clock := memory.NewFixedClock(1700000000000)
	accountRepo := memory.NewAccountRepository()
	txRepo := memory.NewTransactionRepository(clock)
	locks := acctlock.NewKeyedMutex()

	return NewServer(
		deposit.NewDepositService(accountRepo, txRepo, locks),
		withdraw.NewWithdrawService(accountRepo, txRepo, locks),
		history.NewHistoryService(accountRepo, txRepo),
	), accountRepo
}

func TestServer_DepositThenHistory(t *testing.T) {
	ctx := context.Background()
	server, accountRepo := newTestServer(t)

	require.NoError(t, accountRepo.Create(ctx, domain.NewAccount("ACC_1", "Alice", decimal.NewFromInt(10))))

	_, err := server.Deposit(ctx, &bankledgerv1.DepositRequest{
		AccountId: "ACC_1",
		Amount:    "100",
	})
	require.NoError(t, err)

	resp, err := server.TransactionHistory(ctx, &bankledgerv1.TransactionHistoryRequest{
		AccountId: "ACC_1",
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "deposit", resp.Entries[0].TransactionType)
	assert.Equal(t, "100", resp.Entries[0].Amount)
	assert.Equal(t, "110", resp.Entries[0].Balance)
	assert.Equal(t, int64(1700000000), resp.Entries[0].Date.Seconds)
}

func TestServer_DepositStatusCodes(t *testing.T) {
	ctx := context.Background()
	server, accountRepo := newTestServer(t)

	require.NoError(t, accountRepo.Create(ctx, domain.NewAccount("ACC_1", "Alice", decimal.Zero)))

	tests := []struct {
		name         string
		req          *bankledgerv1.DepositRequest
		expectedCode codes.Code
		expectedMsg  string
	}{
		{
			name:         "unknown account",
			req:          &bankledgerv1.DepositRequest{AccountId: "SOME_ACCOUNT_ID", Amount: "0"},
			expectedCode: codes.NotFound,
			expectedMsg:  "Account does not exist",
		},
		{
			name:         "missing amount",
			req:          &bankledgerv1.DepositRequest{AccountId: "ACC_1"},
			expectedCode: codes.InvalidArgument,
			expectedMsg:  "Can not deposit an invalid amount",
		},
		{
			name:         "negative amount",
			req:          &bankledgerv1.DepositRequest{AccountId: "ACC_1", Amount: "-10"},
			expectedCode: codes.InvalidArgument,
			expectedMsg:  "Can not deposit an invalid amount",
		},
		{
			name:         "malformed amount",
			req:          &bankledgerv1.DepositRequest{AccountId: "ACC_1", Amount: "ten"},
			expectedCode: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := server.Deposit(ctx, tt.req)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedCode, st.Code())
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, st.Message())
			}
		})
	}
}

func TestServer_WithdrawInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	server, accountRepo := newTestServer(t)

	require.NoError(t, accountRepo.Create(ctx, domain.NewAccount("id_R", "Rita", decimal.NewFromInt(300))))

	_, err := server.Withdraw(ctx, &bankledgerv1.WithdrawRequest{
		AccountId: "id_R",
		Amount:    "500",
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.FailedPrecondition, st.Code())
	assert.Equal(t, "You have no Insufficient Funds", st.Message())

	// rejected withdrawal leaves the stored balance unchanged
	account, err := accountRepo.Fetch(ctx, "id_R")
	require.NoError(t, err)
	assert.True(t, account.Balance().Read().Equal(decimal.NewFromInt(300)))
}

func TestServer_Withdraw(t *testing.T) {
	ctx := context.Background()
	server, accountRepo := newTestServer(t)

	require.NoError(t, accountRepo.Create(ctx, domain.NewAccount("id_R", "Rita", decimal.NewFromInt(300))))

	_, err := server.Withdraw(ctx, &bankledgerv1.WithdrawRequest{
		AccountId: "id_R",
		Amount:    "200",
	})
	require.NoError(t, err)

	account, err := accountRepo.Fetch(ctx, "id_R")
	require.NoError(t, err)
	assert.True(t, account.Balance().Read().Equal(decimal.NewFromInt(100)))
}

func TestServer_HistoryUnknownAccount(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	_, err := server.TransactionHistory(ctx, &bankledgerv1.TransactionHistoryRequest{
		AccountId: "SOME_ACCOUNT_ID",
	})

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "Account does not exist", st.Message())
}
