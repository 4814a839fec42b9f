package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-contract-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-contract-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-contract-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-contract-ledger/proto"
)

// AccountSeed 啟動時預先建立的帳戶
type AccountSeed struct {
	ID      int64 `yaml:"id"`
	Balance int64 `yaml:"balance"`
}

type Config struct {
	// Listen gRPC 監聽地址
	Listen string `yaml:"listen"`
	// SeedAccounts 初始帳戶，餘額為最小單位
	SeedAccounts []AccountSeed `yaml:"seed_accounts"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化記憶體帳戶儲存層 (含初始帳戶的合約檢查)
	seed := make(map[int64]int64, len(cfg.SeedAccounts))
	for _, s := range cfg.SeedAccounts {
		seed[s.ID] = s.Balance
	}
	store, err := memory_adapter.NewStore(seed)
	if err != nil {
		log.Fatalf("Failed to init account store: %v", err)
	}
	log.Printf("Seeded %d accounts", len(seed))

	// 3. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(store)

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(coreUseCase)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	s := grpc.NewServer()
	pb.RegisterContractLedgerServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		log.Printf("Starting gRPC server on %s", cfg.Listen)
		if err := s.Serve(lis); err != nil {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	s.GracefulStop()
	log.Println("Server exited")
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	return cfg
}
