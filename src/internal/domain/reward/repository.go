package reward

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// RewardRepository 獎勵倉儲介面
type RewardRepository interface {
	// Save 新增獎勵（ctx 必須非 nil）
	// 同一顧客同一規則已有 pending 時返回 ErrPendingRewardExists
	Save(ctx shared.TransactionContext, r *Reward) error

	// Update 寫回狀態變更（ctx 必須非 nil）
	Update(ctx shared.TransactionContext, r *Reward) error

	// FindByID 查詢；不存在返回 ErrRewardNotFound
	FindByID(ctx shared.TransactionContext, id RewardID) (*Reward, error)

	// FindForUpdate 查詢並鎖定（核銷用，ctx 必須非 nil）
	FindForUpdate(ctx shared.TransactionContext, id RewardID) (*Reward, error)

	// PendingRuleIDs 顧客目前持有 pending 獎勵的規則 ID
	PendingRuleIDs(ctx shared.TransactionContext, customerID CustomerID) ([]RewardRuleID, error)

	// ListByCustomer 顧客的獎勵，新到舊；status 為空表示全部
	ListByCustomer(ctx shared.TransactionContext, customerID CustomerID, status Status) ([]*Reward, error)

	// ExpireOverdue 批次將 pending 且 expires_at < now 的獎勵改為 expired，返回筆數
	ExpireOverdue(ctx shared.TransactionContext, now time.Time) (int64, error)
}
