package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-contract-ledger/pkg/grpcpool"
	pb "github.com/JoeShih716/go-contract-ledger/proto"
)

const target = "localhost:50051"

// demo client：走一遍合約檢查的代表性場景，
// 印出每個操作被對應到的 gRPC 狀態碼
func main() {
	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewContractLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 帳戶 100 餘額 50.0000，帳戶 200 餘額 20.0000
	openAccount(ctx, c, 100, 500000)
	openAccount(ctx, c, 200, 200000)

	// 正常轉帳：100 -> 200 轉 50.0000，A=0, B=70.0000
	post(ctx, c, pb.OperationType_TRANSFER, 100, 200, 500000)

	// 餘額不足：100 再轉 0.0001 出去
	post(ctx, c, pb.OperationType_TRANSFER, 100, 200, 1)

	// 非法金額：存入 0
	post(ctx, c, pb.OperationType_DEPOSIT, 0, 200, 0)

	// 自我轉帳：200 -> 200
	post(ctx, c, pb.OperationType_TRANSFER, 200, 200, 10000)

	// 剛好領光：200 提款 70.0000 後餘額歸零
	post(ctx, c, pb.OperationType_WITHDRAW, 200, 0, 700000)
	post(ctx, c, pb.OperationType_WITHDRAW, 200, 0, 1)

	for _, id := range []int64{100, 200} {
		resp, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: id})
		if err != nil {
			log.Printf("GetBalance(%d): %v", id, err)
			continue
		}
		log.Printf("GetBalance(%d) = %d", id, resp.Balance)
	}
}

func openAccount(ctx context.Context, c pb.ContractLedgerServiceClient, id int64, balance int64) {
	resp, err := c.OpenAccount(ctx, &pb.OpenAccountRequest{
		AccountId:      id,
		InitialBalance: balance,
	})
	if err != nil {
		// 已存在就沿用，demo 可以重跑
		log.Printf("OpenAccount(%d): code=%s", id, status.Code(err))
		return
	}
	log.Printf("OpenAccount(%d) balance=%d", resp.AccountId, resp.Balance)
}

func post(ctx context.Context, c pb.ContractLedgerServiceClient, opType pb.OperationType, from, to, amount int64) {
	resp, err := c.PostOperation(ctx, &pb.PostOperationRequest{
		RefId:         uuid.NewString(),
		Type:          opType,
		FromAccountId: from,
		ToAccountId:   to,
		Amount:        amount,
	})
	if err != nil {
		st := status.Convert(err)
		log.Printf("%s from=%d to=%d amount=%d -> code=%s msg=%q",
			opType, from, to, amount, st.Code(), st.Message())
		return
	}
	log.Printf("%s from=%d to=%d amount=%d -> ok, balance=%d",
		opType, from, to, amount, resp.CurrentBalance)
}
