package rules

import (
	"errors"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/persistence/gormtx"
	"gorm.io/gorm"
)

// ===========================
// EarningRuleRepositoryImpl
// ===========================

// EarningRuleRepositoryImpl 積分規則倉儲實現（GORM）
type EarningRuleRepositoryImpl struct {
	db *gorm.DB
}

// NewEarningRuleRepository 創建積分規則倉儲
func NewEarningRuleRepository(db *gorm.DB) rules.EarningRuleRepository {
	return &EarningRuleRepositoryImpl{db: db}
}

// Save 新增規則
func (r *EarningRuleRepositoryImpl) Save(ctx shared.TransactionContext, rule *rules.EarningRule) error {
	return gormtx.DB(ctx, r.db).Create(earningRuleToGORM(rule)).Error
}

// Update 寫回規則（目前只有啟用狀態會變）
func (r *EarningRuleRepositoryImpl) Update(ctx shared.TransactionContext, rule *rules.EarningRule) error {
	model := earningRuleToGORM(rule)
	result := gormtx.DB(ctx, r.db).
		Model(&EarningRuleGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rules.ErrRuleNotFound.WithContext("rule_id", model.ID)
	}
	return nil
}

// FindByID 依 ID 查詢
func (r *EarningRuleRepositoryImpl) FindByID(ctx shared.TransactionContext, id rules.EarningRuleID) (*rules.EarningRule, error) {
	var model EarningRuleGORM
	if err := gormtx.DB(ctx, r.db).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rules.ErrRuleNotFound.WithContext("rule_id", id.String())
		}
		return nil, err
	}
	return model.toDomain()
}

// FindLatestActive 最新建立的啟用規則
//
// UUIDv7 遞增，ORDER BY id DESC 的第一筆即最新建立。
func (r *EarningRuleRepositoryImpl) FindLatestActive(ctx shared.TransactionContext) (*rules.EarningRule, error) {
	var model EarningRuleGORM
	err := gormtx.DB(ctx, r.db).
		Where("active = ?", true).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rules.ErrNoActiveRule
		}
		return nil, err
	}
	return model.toDomain()
}

// ListAll 全部規則，新到舊
func (r *EarningRuleRepositoryImpl) ListAll(ctx shared.TransactionContext) ([]*rules.EarningRule, error) {
	var models []EarningRuleGORM
	if err := gormtx.DB(ctx, r.db).Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*rules.EarningRule, 0, len(models))
	for i := range models {
		rule, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, nil
}

// ===========================
// RewardRuleRepositoryImpl
// ===========================

// RewardRuleRepositoryImpl 獎勵規則倉儲實現（GORM）
type RewardRuleRepositoryImpl struct {
	db *gorm.DB
}

// NewRewardRuleRepository 創建獎勵規則倉儲
func NewRewardRuleRepository(db *gorm.DB) rules.RewardRuleRepository {
	return &RewardRuleRepositoryImpl{db: db}
}

// Save 新增規則
func (r *RewardRuleRepositoryImpl) Save(ctx shared.TransactionContext, rule *rules.RewardRule) error {
	return gormtx.DB(ctx, r.db).Create(rewardRuleToGORM(rule)).Error
}

// Update 寫回規則
func (r *RewardRuleRepositoryImpl) Update(ctx shared.TransactionContext, rule *rules.RewardRule) error {
	model := rewardRuleToGORM(rule)
	result := gormtx.DB(ctx, r.db).
		Model(&RewardRuleGORM{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return rules.ErrRuleNotFound.WithContext("rule_id", model.ID)
	}
	return nil
}

// FindByID 依 ID 查詢
func (r *RewardRuleRepositoryImpl) FindByID(ctx shared.TransactionContext, id rules.RewardRuleID) (*rules.RewardRule, error) {
	var model RewardRuleGORM
	if err := gormtx.DB(ctx, r.db).Where("id = ?", id.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rules.ErrRuleNotFound.WithContext("rule_id", id.String())
		}
		return nil, err
	}
	return model.toDomain()
}

// FindQualifying 啟用中、門檻 <= currentPoints、且未被排除的規則，依 ID 遞增
//
// 門檻 <= 0 的規則永不符合（與 RewardRule.Qualifies 一致）。
func (r *RewardRuleRepositoryImpl) FindQualifying(ctx shared.TransactionContext, currentPoints int, excluded []rules.RewardRuleID) ([]*rules.RewardRule, error) {
	query := gormtx.DB(ctx, r.db).
		Where("active = ? AND points_required > 0 AND points_required <= ?", true, currentPoints)

	if len(excluded) > 0 {
		ids := make([]string, 0, len(excluded))
		for _, id := range excluded {
			ids = append(ids, id.String())
		}
		query = query.Where("id NOT IN ?", ids)
	}

	var models []RewardRuleGORM
	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRewardRules(models)
}

// ListAll 全部規則，新到舊
func (r *RewardRuleRepositoryImpl) ListAll(ctx shared.TransactionContext) ([]*rules.RewardRule, error) {
	var models []RewardRuleGORM
	if err := gormtx.DB(ctx, r.db).Order("id DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRewardRules(models)
}

func toRewardRules(models []RewardRuleGORM) ([]*rules.RewardRule, error) {
	result := make([]*rules.RewardRule, 0, len(models))
	for i := range models {
		rule, err := models[i].toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, nil
}
