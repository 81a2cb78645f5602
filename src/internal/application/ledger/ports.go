package ledger

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RewardChecker 賺取積分後自動發放獎勵
//
// 由 application/reward.RewardIssuer 實作；必須在呼叫端的事務中執行，
// balance 是已鎖定且剛完成 Earn 的聚合，發放時直接在其上扣點。
type RewardChecker interface {
	CheckAndIssue(ctx shared.TransactionContext, balance *ledger.Balance) ([]*reward.Reward, error)
}

// PointsCalculator 依目前生效的積分規則計算點數
//
// 由 application/rules.PointsCalculator 實作；沒有啟用規則時返回 0。
type PointsCalculator interface {
	Calculate(ctx shared.TransactionContext, amountSpent decimal.Decimal, itemCount int) (int, error)
}
