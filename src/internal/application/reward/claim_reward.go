package reward

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/application/events"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// ClaimRewardCommand 核銷獎勵命令
type ClaimRewardCommand struct {
	RewardID string
	StaffID  string // 必填
}

// ClaimRewardUseCase 員工核銷獎勵
//
// 業務規則：
// - 非 pending → ErrInvalidRewardState，不變更
// - pending 但已過期 → 狀態改為 expired 並提交，再返回 ErrRewardExpired
// - 核銷不產生帳本流水（發放時已扣點）
type ClaimRewardUseCase struct {
	rewardRepo reward.RewardRepository
	txManager  shared.TransactionManager
	publisher  shared.EventPublisher
	now        func() time.Time
}

// NewClaimRewardUseCase 創建 Use Case 實例
func NewClaimRewardUseCase(rewardRepo reward.RewardRepository, txManager shared.TransactionManager, publisher shared.EventPublisher) *ClaimRewardUseCase {
	return &ClaimRewardUseCase{
		rewardRepo: rewardRepo,
		txManager:  txManager,
		publisher:  publisher,
		now:        time.Now,
	}
}

// WithClock 替換時間來源（測試用）
func (uc *ClaimRewardUseCase) WithClock(now func() time.Time) *ClaimRewardUseCase {
	uc.now = now
	return uc
}

// Execute 執行核銷
func (uc *ClaimRewardUseCase) Execute(cmd ClaimRewardCommand) (*RewardDTO, error) {
	rewardID, err := reward.RewardIDFromString(cmd.RewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reward ID: %w", err)
	}
	staffID, err := customer.StaffIDFromString(cmd.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse staff ID: %w", err)
	}

	var (
		claimed    *reward.Reward
		expiredErr error
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		r, err := uc.rewardRepo.FindForUpdate(ctx, rewardID)
		if err != nil {
			return err
		}

		claimErr := r.Claim(staffID, uc.now())
		if errors.Is(claimErr, reward.ErrRewardExpired) {
			// 過期狀態必須提交，因此事務本身返回 nil
			if err := uc.rewardRepo.Update(ctx, r); err != nil {
				return fmt.Errorf("failed to persist lazy expiry: %w", err)
			}
			expiredErr = claimErr
			return nil
		}
		if claimErr != nil {
			return claimErr
		}

		if err := uc.rewardRepo.Update(ctx, r); err != nil {
			return fmt.Errorf("failed to update reward: %w", err)
		}
		claimed = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expiredErr != nil {
		log.WithField("reward_id", rewardID.String()).Warn("claim rejected, reward expired")
		return nil, expiredErr
	}

	events.PublishAfterCommit(uc.publisher, events.Collect(claimed))
	dto := toRewardDTO(claimed)
	return &dto, nil
}
