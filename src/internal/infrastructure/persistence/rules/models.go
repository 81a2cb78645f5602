package rules

import (
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/shopspring/decimal"
)

// ===========================
// GORM Models
// ===========================

// EarningRuleGORM 積分規則資料表模型
//
// spend_based 規則使用 spend_unit_amount / minimum_spend / points_per_unit，
// per_item 規則只使用 points_per_item；未使用的欄位存 0。
type EarningRuleGORM struct {
	ID              string          `gorm:"column:id;type:varchar(36);primaryKey"`
	Name            string          `gorm:"column:name;type:varchar(255);not null"`
	RuleType        string          `gorm:"column:rule_type;type:varchar(16);not null"`
	SpendUnitAmount decimal.Decimal `gorm:"column:spend_unit_amount;type:numeric(12,2);not null;default:0"`
	MinimumSpend    decimal.Decimal `gorm:"column:minimum_spend;type:numeric(12,2);not null;default:0"`
	PointsPerUnit   int             `gorm:"column:points_per_unit;not null;default:0"`
	PointsPerItem   int             `gorm:"column:points_per_item;not null;default:0"`
	Active          bool            `gorm:"column:active;not null;index"`
	CreatedAt       time.Time       `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (EarningRuleGORM) TableName() string {
	return "earning_rules"
}

// RewardRuleGORM 獎勵規則資料表模型
type RewardRuleGORM struct {
	ID             string    `gorm:"column:id;type:varchar(36);primaryKey"`
	Name           string    `gorm:"column:name;type:varchar(255);not null"`
	RewardTitle    string    `gorm:"column:reward_title;type:varchar(255);not null"`
	Description    string    `gorm:"column:description;type:text;not null;default:''"`
	PointsRequired int       `gorm:"column:points_required;not null"`
	ExpiresInDays  int       `gorm:"column:expires_in_days;not null"`
	Active         bool      `gorm:"column:active;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (RewardRuleGORM) TableName() string {
	return "reward_rules"
}

// ===========================
// Mapper Functions
// ===========================

func (m *EarningRuleGORM) toDomain() (*rules.EarningRule, error) {
	id, err := rules.EarningRuleIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	ruleType, err := rules.ParseRuleType(m.RuleType)
	if err != nil {
		return nil, err
	}

	return rules.ReconstructEarningRule(
		id,
		m.Name,
		ruleType,
		m.SpendUnitAmount,
		m.MinimumSpend,
		m.PointsPerUnit,
		m.PointsPerItem,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func earningRuleToGORM(r *rules.EarningRule) *EarningRuleGORM {
	return &EarningRuleGORM{
		ID:              r.ID().String(),
		Name:            r.Name(),
		RuleType:        string(r.Type()),
		SpendUnitAmount: r.SpendUnitAmount(),
		MinimumSpend:    r.MinimumSpend(),
		PointsPerUnit:   r.PointsPerUnit(),
		PointsPerItem:   r.PointsPerItem(),
		Active:          r.IsActive(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func (m *RewardRuleGORM) toDomain() (*rules.RewardRule, error) {
	id, err := rules.RewardRuleIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	return rules.ReconstructRewardRule(
		id,
		m.Name,
		m.RewardTitle,
		m.Description,
		m.PointsRequired,
		m.ExpiresInDays,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func rewardRuleToGORM(r *rules.RewardRule) *RewardRuleGORM {
	return &RewardRuleGORM{
		ID:             r.ID().String(),
		Name:           r.Name(),
		RewardTitle:    r.RewardTitle(),
		Description:    r.Description(),
		PointsRequired: r.PointsRequired(),
		ExpiresInDays:  r.ExpiresInDays(),
		Active:         r.IsActive(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}
