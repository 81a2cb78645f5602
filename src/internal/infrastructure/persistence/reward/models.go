package reward

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
)

// ===========================
// GORM Models
// ===========================

// RewardGORM 獎勵資料表模型
//
// 資料庫約束：
// - idx_rewards_pending_rule: (customer_id, rule_id) 在 status = 'pending' 時唯一
//   同一顧客同一規則最多一張待領取獎勵，並發發放時由此索引兜底
// - 時間一律以 UTC 存放，ExpireOverdue 的比較才不受時區影響
type RewardGORM struct {
	ID             string     `gorm:"column:id;type:varchar(36);primaryKey"`
	CustomerID     string     `gorm:"column:customer_id;type:varchar(36);not null;index;uniqueIndex:idx_rewards_pending_rule,where:status = 'pending'"`
	RuleID         string     `gorm:"column:rule_id;type:varchar(36);not null;uniqueIndex:idx_rewards_pending_rule,where:status = 'pending'"`
	Title          string     `gorm:"column:title;type:varchar(255);not null"`
	PointsDeducted int        `gorm:"column:points_deducted;not null"`
	Status         string     `gorm:"column:status;type:varchar(16);not null;index:idx_rewards_status_expires,priority:1"`
	ExpiresAt      time.Time  `gorm:"column:expires_at;not null;index:idx_rewards_status_expires,priority:2"`
	ClaimedAt      *time.Time `gorm:"column:claimed_at"`
	ClaimedBy      *string    `gorm:"column:claimed_by;type:varchar(36)"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (RewardGORM) TableName() string {
	return "rewards"
}

// ===========================
// Mapper Functions
// ===========================

func (m *RewardGORM) toDomain() (*reward.Reward, error) {
	id, err := reward.RewardIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := customer.CustomerIDFromString(m.CustomerID)
	if err != nil {
		return nil, err
	}
	ruleID, err := rules.RewardRuleIDFromString(m.RuleID)
	if err != nil {
		return nil, err
	}

	var claimedBy reward.StaffID
	if m.ClaimedBy != nil {
		if claimedBy, err = customer.OptionalStaffIDFromString(*m.ClaimedBy); err != nil {
			return nil, err
		}
	}

	return reward.ReconstructReward(
		id,
		customerID,
		ruleID,
		m.Title,
		m.PointsDeducted,
		reward.Status(m.Status),
		m.ExpiresAt,
		m.ClaimedAt,
		claimedBy,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func toGORM(r *reward.Reward) *RewardGORM {
	var claimedAt *time.Time
	if r.ClaimedAt() != nil {
		t := r.ClaimedAt().UTC()
		claimedAt = &t
	}

	var claimedBy *string
	if !r.ClaimedBy().IsEmpty() {
		s := r.ClaimedBy().String()
		claimedBy = &s
	}

	return &RewardGORM{
		ID:             r.ID().String(),
		CustomerID:     r.CustomerID().String(),
		RuleID:         r.RuleID().String(),
		Title:          r.Title(),
		PointsDeducted: r.PointsDeducted(),
		Status:         string(r.Status()),
		ExpiresAt:      r.ExpiresAt().UTC(),
		ClaimedAt:      claimedAt,
		ClaimedBy:      claimedBy,
		CreatedAt:      r.CreatedAt().UTC(),
		UpdatedAt:      r.UpdatedAt().UTC(),
	}
}
