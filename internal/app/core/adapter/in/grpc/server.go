package grpc

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-contract-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-contract-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-contract-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedContractLedgerServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

// violationStatus 把核心的錯誤轉換成 gRPC 狀態碼
//
// 對應規則:
//
//	前置條件 invalid_amount / invalid_transfer -> InvalidArgument (客戶端錯誤)
//	前置條件 insufficient_funds -> Aborted (業務衝突)
//	後置條件 / 不變量違約 -> Internal (核心本身的 Bug，不是呼叫端的問題)
//	帳戶不存在 -> NotFound
func violationStatus(err error) error {
	if v, ok := domain.AsViolation(err); ok {
		switch {
		case v.Kind == domain.KindPrecondition && v.Predicate == domain.PredInsufficientFunds:
			return status.Error(codes.Aborted, v.Error())
		case v.Kind == domain.KindPrecondition:
			return status.Error(codes.InvalidArgument, v.Error())
		default:
			return status.Error(codes.Internal, v.Error())
		}
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, domain.ErrAccountAlreadyExists) {
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func (s *GrpcServer) PostOperation(ctx context.Context, req *pb.PostOperationRequest) (*pb.PostOperationResponse, error) {
	// 1. UUID 解析
	u, err := uuid.Parse(req.RefId)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ref_id: "+err.Error())
	}

	// 2. 轉換操作類型
	var opType domain.OperationType
	switch req.Type {
	case pb.OperationType_DEPOSIT:
		opType = domain.OperationTypeDeposit
	case pb.OperationType_WITHDRAW:
		opType = domain.OperationTypeWithdraw
	case pb.OperationType_TRANSFER:
		opType = domain.OperationTypeTransfer
	default:
		return nil, status.Error(codes.InvalidArgument, domain.ErrUnknownOperationType.Error())
	}

	// 3. 組裝 Domain Operation
	op := &domain.Operation{
		RefID:     u,
		From:      req.FromAccountId,
		To:        req.ToAccountId,
		Amount:    req.Amount,
		CreatedAt: time.Now().UnixMilli(),
		Type:      opType,
	}

	// 4. 執行操作，違約轉換成狀態碼回報
	if err := s.core.PostOperation(ctx, op); err != nil {
		return nil, violationStatus(err)
	}

	// 5. 取得最新餘額
	// 轉帳/提款回傳 From 的餘額，存款回傳 To 的餘額
	var targetAccountID int64
	if opType == domain.OperationTypeDeposit {
		targetAccountID = req.ToAccountId
	} else {
		targetAccountID = req.FromAccountId
	}

	// 操作已經成功套用，餘額讀不到時不能整筆回報失敗，
	// 也不能默默回傳 0 誤導呼叫端
	balance, err := s.core.GetAccountBalance(ctx, targetAccountID)
	if err != nil {
		log.Printf("post operation %s: read balance of account %d failed: %v", u, targetAccountID, err)
		return &pb.PostOperationResponse{
			Success: true,
			Message: "operation applied; balance unavailable: " + err.Error(),
		}, nil
	}

	return &pb.PostOperationResponse{
		Success:        true,
		CurrentBalance: balance,
	}, nil
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceResponse, error) {
	balance, err := s.core.GetAccountBalance(ctx, req.AccountId)
	if err != nil {
		return nil, violationStatus(err)
	}
	return &pb.GetBalanceResponse{
		Balance: balance,
	}, nil
}

func (s *GrpcServer) OpenAccount(ctx context.Context, req *pb.OpenAccountRequest) (*pb.OpenAccountResponse, error) {
	balance, err := s.core.OpenAccount(ctx, req.AccountId, req.InitialBalance)
	if err != nil {
		return nil, violationStatus(err)
	}
	return &pb.OpenAccountResponse{
		AccountId: req.AccountId,
		Balance:   balance,
	}, nil
}
