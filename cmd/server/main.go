package main

import (
	"context"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/nmarques/bankledger-backend/internal/adapter/grpc"
	bankledgerv1 "github.com/nmarques/bankledger-backend/internal/adapter/grpc/bankledgerv1"
	"github.com/nmarques/bankledger-backend/internal/adapter/repository/memory"
	"github.com/nmarques/bankledger-backend/internal/adapter/repository/postgres"
	"github.com/nmarques/bankledger-backend/internal/config"
	"github.com/nmarques/bankledger-backend/internal/domain"
	"github.com/nmarques/bankledger-backend/internal/usecase/acctlock"
	"github.com/nmarques/bankledger-backend/internal/usecase/deposit"
	"github.com/nmarques/bankledger-backend/internal/usecase/history"
	"github.com/nmarques/bankledger-backend/internal/usecase/seeder"
	"github.com/nmarques/bankledger-backend/internal/usecase/withdraw"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_FILE"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 1. Initialize Repositories
	clock := domain.SystemClock{}
	var (
		accountRepo domain.AccountRepository
		txRepo      domain.TransactionRepository
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		db, err := postgres.NewDB(cfg.Database.ConnString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		accountRepo = postgres.NewAccountRepository(db)
		txRepo = postgres.NewTransactionRepository(db, clock)
	case config.StorageMemory:
		accountRepo = memory.NewAccountRepository()
		txRepo = memory.NewTransactionRepository(clock)
	}

	// 2. Initialize Services (Use Cases)
	locks := acctlock.NewKeyedMutex()
	depositService := deposit.NewDepositService(accountRepo, txRepo, locks)
	withdrawService := withdraw.NewWithdrawService(accountRepo, txRepo, locks)
	historyService := history.NewHistoryService(accountRepo, txRepo)

	// Memory storage starts empty every run, so seed it with demo accounts
	if cfg.Storage == config.StorageMemory {
		accountSeeder := seeder.NewAccountSeeder(accountRepo)
		if err := accountSeeder.Seed(context.Background(), demoAccounts()); err != nil {
			log.Fatalf("Failed to seed demo accounts: %v", err)
		}
		log.Println("Demo accounts seeded")
	}

	// 3. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.APIToken)),
	)

	grpcAdapter := grpcadapter.NewServer(depositService, withdrawService, historyService)
	bankledgerv1.RegisterBankLedgerServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCAddr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s (storage: %s)", cfg.GRPCAddr, cfg.Storage)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

func demoAccounts() []seeder.SeedAccount {
	return []seeder.SeedAccount{
		{ID: "ACC_1", Name: "Alice", Balance: decimal.NewFromInt(10)},
		{ID: "id_R", Name: "Rita", Balance: decimal.NewFromInt(300)},
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
