package reward

import (
	"fmt"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
)

// ExpireRewardsUseCase 批次將逾期的 pending 獎勵標記為 expired
//
// 冪等：沒有新的逾期獎勵時返回 0。
// 不逐列加鎖；剛被核銷的獎勵已不是 pending，自然不會被選中。
type ExpireRewardsUseCase struct {
	rewardRepo reward.RewardRepository
	txManager  shared.TransactionManager
}

// NewExpireRewardsUseCase 創建 Use Case 實例
func NewExpireRewardsUseCase(rewardRepo reward.RewardRepository, txManager shared.TransactionManager) *ExpireRewardsUseCase {
	return &ExpireRewardsUseCase{rewardRepo: rewardRepo, txManager: txManager}
}

// Sweep 執行一次過期處理，返回轉換筆數
func (uc *ExpireRewardsUseCase) Sweep(now time.Time) (int64, error) {
	var count int64
	err := uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		n, err := uc.rewardRepo.ExpireOverdue(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to expire rewards: %w", err)
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
