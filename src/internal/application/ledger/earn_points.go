package ledger

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ===========================
// EarnPoints Use Case
// ===========================

// EarnPointsCommand 賺取積分命令
//
// 輸入：
// - CustomerID: 顧客 ID（UUID 字串，必填）
// - Points: 點數（> 0）
// - Description: 說明
// - ActorID: 操作員工 ID（選填，POS 自動入帳時為空）
// - ReferenceKind / ReferenceID: 來源參照（選填，purchase / reward / redemption）
type EarnPointsCommand struct {
	CustomerID    string
	Points        int
	Description   string
	ActorID       string
	ReferenceKind string
	ReferenceID   string
}

// EarnPointsResult 賺取積分結果
//
// Entry 是本次 earn 流水（不含自動發放獎勵的扣點流水）。
// CurrentPoints 是整個事務完成後的餘額，可能因發放獎勵而小於 Entry.BalanceAfter。
type EarnPointsResult struct {
	Entry          EntryDTO
	CurrentPoints  int
	LifetimePoints int
	IssuedRewards  []IssuedRewardDTO

	// 在呼叫端事務中執行時（ExecuteWithContext），由呼叫端在提交後發布
	Events []shared.DomainEvent
}

// EarnPointsUseCase 賺取積分 Use Case
//
// 職責：
// 1. 取得或建立顧客餘額並鎖定
// 2. 增加 current / lifetime，寫入 earn 流水
// 3. 在同一事務內自動發放達到門檻的獎勵
// 4. 提交後發布領域事件
//
// 並發安全：
// - 餘額列在整個事務期間鎖定，同一顧客的賺取、兌換、調整、發放獎勵完全序列化
type EarnPointsUseCase struct {
	balanceRepo ledger.BalanceRepository
	entryRepo   ledger.LedgerEntryRepository
	rewards     RewardChecker
	txManager   shared.TransactionManager
	publisher   shared.EventPublisher
}

// NewEarnPointsUseCase 創建 Use Case 實例
func NewEarnPointsUseCase(
	balanceRepo ledger.BalanceRepository,
	entryRepo ledger.LedgerEntryRepository,
	rewards RewardChecker,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
) *EarnPointsUseCase {
	return &EarnPointsUseCase{
		balanceRepo: balanceRepo,
		entryRepo:   entryRepo,
		rewards:     rewards,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// Execute 在新事務中賺取積分，提交後發布事件
func (uc *EarnPointsUseCase) Execute(cmd EarnPointsCommand) (*EarnPointsResult, error) {
	var result *EarnPointsResult
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		r, err := uc.ExecuteWithContext(ctx, cmd)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	events.PublishAfterCommit(uc.publisher, result.Events)
	result.Events = nil
	return result, nil
}

// ExecuteWithContext 在呼叫端的事務中賺取積分
//
// 注意：
// - 不發布事件；事件放在 result.Events，由呼叫端在提交後發布
// - 任何錯誤（包括獎勵發放的內部一致性錯誤）都必須讓呼叫端回滾
func (uc *EarnPointsUseCase) ExecuteWithContext(ctx shared.TransactionContext, cmd EarnPointsCommand) (*EarnPointsResult, error) {
	// 1. 驗證輸入
	customerID, err := customer.CustomerIDFromString(cmd.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}
	actor, err := customer.OptionalStaffIDFromString(cmd.ActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse actor ID: %w", err)
	}
	points, err := ledger.NewPositivePointsAmount(cmd.Points)
	if err != nil {
		return nil, err
	}
	ref, err := ledger.NewReference(ledger.ReferenceKind(cmd.ReferenceKind), cmd.ReferenceID)
	if err != nil {
		return nil, err
	}

	// 2. 取得或建立餘額並鎖定
	balance, err := uc.balanceRepo.FindOrCreateForUpdate(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance: %w", err)
	}

	// 3. 增加積分並寫流水
	entry, err := balance.Earn(points, cmd.Description, actor, ref)
	if err != nil {
		return nil, err
	}
	if err := uc.balanceRepo.Update(ctx, balance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}
	if err := uc.entryRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	// 4. 自動發放獎勵（同一事務、同一把鎖）
	issued, err := uc.rewards.CheckAndIssue(ctx, balance)
	if err != nil {
		return nil, fmt.Errorf("failed to issue rewards: %w", err)
	}

	pullers := []events.Puller{balance}
	for _, r := range issued {
		pullers = append(pullers, r)
	}

	return &EarnPointsResult{
		Entry:          toEntryDTO(entry),
		CurrentPoints:  balance.Current().Value(),
		LifetimePoints: balance.Lifetime().Value(),
		IssuedRewards:  toIssuedRewardDTOs(issued),
		Events:         events.Collect(pullers...),
	}, nil
}
