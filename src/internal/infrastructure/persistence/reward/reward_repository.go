package reward

import (
	"errors"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
)

// ===========================
// RewardRepositoryImpl
// ===========================

// RewardRepositoryImpl 獎勵倉儲實現（GORM）
type RewardRepositoryImpl struct {
	db *gorm.DB
}

// NewRewardRepository 創建獎勵倉儲
func NewRewardRepository(db *gorm.DB) reward.RewardRepository {
	return &RewardRepositoryImpl{db: db}
}

// Save 新增獎勵
//
// 錯誤處理：
// - idx_rewards_pending_rule 衝突 → ErrPendingRewardExists
func (r *RewardRepositoryImpl) Save(ctx shared.TransactionContext, rw *reward.Reward) error {
	if err := gormtx.DB(ctx, r.db).Create(toGORM(rw)).Error; err != nil {
		if gormtx.IsUniqueConstraintError(err) {
			return reward.ErrPendingRewardExists.WithContext(
				"customer_id", rw.CustomerID().String(),
				"rule_id", rw.RuleID().String(),
			)
		}
		return err
	}
	return nil
}

// Update 寫回狀態變更（只有狀態與領取資訊會變）
func (r *RewardRepositoryImpl) Update(ctx shared.TransactionContext, rw *reward.Reward) error {
	model := toGORM(rw)
	result := gormtx.DB(ctx, r.db).
		Model(&RewardGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"claimed_at": model.ClaimedAt,
			"claimed_by": model.ClaimedBy,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return reward.ErrRewardNotFound.WithContext("reward_id", model.ID)
	}
	return nil
}

// FindByID 查詢獎勵
func (r *RewardRepositoryImpl) FindByID(ctx shared.TransactionContext, id reward.RewardID) (*reward.Reward, error) {
	return r.find(gormtx.DB(ctx, r.db), id)
}

// FindForUpdate 查詢並鎖定獎勵列
func (r *RewardRepositoryImpl) FindForUpdate(ctx shared.TransactionContext, id reward.RewardID) (*reward.Reward, error) {
	return r.find(gormtx.ForUpdate(gormtx.DB(ctx, r.db)), id)
}

// PendingRuleIDs 顧客目前持有 pending 獎勵的規則 ID
func (r *RewardRepositoryImpl) PendingRuleIDs(ctx shared.TransactionContext, customerID reward.CustomerID) ([]reward.RewardRuleID, error) {
	var raw []string
	err := gormtx.DB(ctx, r.db).
		Model(&RewardGORM{}).
		Where("customer_id = ? AND status = ?", customerID.String(), string(reward.StatusPending)).
		Pluck("rule_id", &raw).Error
	if err != nil {
		return nil, err
	}

	ids := make([]reward.RewardRuleID, 0, len(raw))
	for _, s := range raw {
		id, err := rules.RewardRuleIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ListByCustomer 顧客的獎勵，新到舊；status 為空表示全部
func (r *RewardRepositoryImpl) ListByCustomer(ctx shared.TransactionContext, customerID reward.CustomerID, status reward.Status) ([]*reward.Reward, error) {
	query := gormtx.DB(ctx, r.db).Where("customer_id = ?", customerID.String())
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var models []RewardGORM
	if err := query.Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*reward.Reward, 0, len(models))
	for i := range models {
		rw, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, rw)
	}
	return result, nil
}

// ExpireOverdue 批次將逾期的 pending 獎勵改為 expired
//
// 單一 UPDATE 完成，重複執行只會影響新逾期的獎勵。
func (r *RewardRepositoryImpl) ExpireOverdue(ctx shared.TransactionContext, now time.Time) (int64, error) {
	now = now.UTC()
	result := gormtx.DB(ctx, r.db).
		Model(&RewardGORM{}).
		Where("status = ? AND expires_at < ?", string(reward.StatusPending), now).
		Updates(map[string]interface{}{
			"status":     string(reward.StatusExpired),
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

func (r *RewardRepositoryImpl) find(db *gorm.DB, id reward.RewardID) (*reward.Reward, error) {
	var model RewardGORM
	if err := db.Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reward.ErrRewardNotFound.WithContext("reward_id", id.String())
		}
		return nil, err
	}
	return model.toDomain()
}
