package rules

import (
	"strings"
	"time"
)

// RewardRule 獎勵規則：餘額達到門檻即自動發放一張獎勵
//
// 業務規則：
// - pointsRequired >= 1（門檻含等於）
// - expiresInDays >= 1，獎勵到期時間 = 發放時間 + expiresInDays 天
// - 同一顧客同一規則同時最多一張待領取獎勵（由發放流程保證）
type RewardRule struct {
	id             RewardRuleID
	name           string
	rewardTitle    string
	description    string
	pointsRequired int
	expiresInDays  int
	active         bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewRewardRule 建立獎勵規則（預設啟用）
func NewRewardRule(name, rewardTitle, description string, pointsRequired, expiresInDays int) (*RewardRule, error) {
	name = strings.TrimSpace(name)
	rewardTitle = strings.TrimSpace(rewardTitle)
	switch {
	case name == "":
		return nil, ErrInvalidRewardRule.WithContext("field", "name", "reason", "required")
	case rewardTitle == "":
		return nil, ErrInvalidRewardRule.WithContext("field", "reward_title", "reason", "required")
	case pointsRequired < 1:
		return nil, ErrInvalidRewardRule.WithContext("field", "points_required", "value", pointsRequired)
	case expiresInDays < 1:
		return nil, ErrInvalidRewardRule.WithContext("field", "expires_in_days", "value", expiresInDays)
	}

	now := time.Now()
	return &RewardRule{
		id:             NewRewardRuleID(),
		name:           name,
		rewardTitle:    rewardTitle,
		description:    strings.TrimSpace(description),
		pointsRequired: pointsRequired,
		expiresInDays:  expiresInDays,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructRewardRule 從持久化存儲重建獎勵規則
func ReconstructRewardRule(
	id RewardRuleID,
	name string,
	rewardTitle string,
	description string,
	pointsRequired int,
	expiresInDays int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *RewardRule {
	return &RewardRule{
		id:             id,
		name:           name,
		rewardTitle:    rewardTitle,
		description:    description,
		pointsRequired: pointsRequired,
		expiresInDays:  expiresInDays,
		active:         active,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *RewardRule) ID() RewardRuleID     { return r.id }
func (r *RewardRule) Name() string         { return r.name }
func (r *RewardRule) RewardTitle() string  { return r.rewardTitle }
func (r *RewardRule) Description() string  { return r.description }
func (r *RewardRule) PointsRequired() int  { return r.pointsRequired }
func (r *RewardRule) ExpiresInDays() int   { return r.expiresInDays }
func (r *RewardRule) IsActive() bool       { return r.active }
func (r *RewardRule) CreatedAt() time.Time { return r.createdAt }
func (r *RewardRule) UpdatedAt() time.Time { return r.updatedAt }

// SetActive 啟用或停用規則
func (r *RewardRule) SetActive(active bool) {
	if r.active == active {
		return
	}
	r.active = active
	r.updatedAt = time.Now()
}

// Qualifies 餘額是否達到門檻（含等於）
//
// 門檻 <= 0 的舊資料視為不適用。
func (r *RewardRule) Qualifies(currentPoints int) bool {
	return r.active && r.pointsRequired > 0 && currentPoints >= r.pointsRequired
}

// ExpiresAtFrom 計算從 issuedAt 起算的到期時間
func (r *RewardRule) ExpiresAtFrom(issuedAt time.Time) time.Time {
	return issuedAt.AddDate(0, 0, r.expiresInDays)
}
