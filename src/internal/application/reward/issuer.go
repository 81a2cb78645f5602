package reward

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/rules"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// ===========================
// RewardIssuer
// ===========================

// RewardIssuer 賺取積分後自動發放獎勵
//
// 業務規則：
// 1. 餘額為 0 直接返回（門檻為 0 的規則因此永遠不會發放）
// 2. 已持有 pending 獎勵的規則不再發放（每條規則同時最多一張 pending）
// 3. 符合門檻的規則只評估一次，再依規則 ID 遞增逐一扣點
// 4. 扣點時餘額不足 → ErrInternalConsistency，整個事務回滾
//
// 必須在觸發的 earn 事務中執行，balance 是已鎖定的聚合。
type RewardIssuer struct {
	rewardRepo  reward.RewardRepository
	ruleRepo    rules.RewardRuleRepository
	entryRepo   ledger.LedgerEntryRepository
	balanceRepo ledger.BalanceRepository
	now         func() time.Time
}

// NewRewardIssuer 創建 RewardIssuer
func NewRewardIssuer(
	rewardRepo reward.RewardRepository,
	ruleRepo rules.RewardRuleRepository,
	entryRepo ledger.LedgerEntryRepository,
	balanceRepo ledger.BalanceRepository,
) *RewardIssuer {
	return &RewardIssuer{
		rewardRepo:  rewardRepo,
		ruleRepo:    ruleRepo,
		entryRepo:   entryRepo,
		balanceRepo: balanceRepo,
		now:         time.Now,
	}
}

// WithClock 替換時間來源（測試用）
func (s *RewardIssuer) WithClock(now func() time.Time) *RewardIssuer {
	s.now = now
	return s
}

// CheckAndIssue 檢查並發放獎勵，返回本次發放的獎勵
func (s *RewardIssuer) CheckAndIssue(ctx shared.TransactionContext, balance *ledger.Balance) ([]*reward.Reward, error) {
	if balance == nil || balance.Current().IsZero() {
		return nil, nil
	}
	customerID := balance.CustomerID()

	pending, err := s.rewardRepo.PendingRuleIDs(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending rewards: %w", err)
	}

	qualifying, err := s.ruleRepo.FindQualifying(ctx, balance.Current().Value(), pending)
	if err != nil {
		return nil, fmt.Errorf("failed to find qualifying reward rules: %w", err)
	}
	if len(qualifying) == 0 {
		return nil, nil
	}

	now := s.now()
	issued := make([]*reward.Reward, 0, len(qualifying))
	for _, rule := range qualifying {
		r, err := s.issueOne(ctx, balance, rule, now)
		if err != nil {
			return nil, err
		}
		issued = append(issued, r)
	}

	if err := s.balanceRepo.Update(ctx, balance); err != nil {
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	log.WithFields(log.Fields{
		"customer_id":    customerID.String(),
		"issued":         len(issued),
		"current_points": balance.Current().Value(),
	}).Info("rewards issued")
	return issued, nil
}

func (s *RewardIssuer) issueOne(ctx shared.TransactionContext, balance *ledger.Balance, rule *rules.RewardRule, now time.Time) (*reward.Reward, error) {
	points, err := ledger.NewPositivePointsAmount(rule.PointsRequired())
	if err != nil {
		return nil, ledger.ErrInternalConsistency.WithContext(
			"reason", "reward rule with non-positive threshold",
			"rule_id", rule.ID().String(),
		)
	}

	r := reward.Issue(balance.CustomerID(), rule, now)

	entry, err := balance.DebitForReward(points, "Reward issued: "+r.Title(), ledger.RewardReference(r.ID().String()))
	if err != nil {
		if errors.Is(err, ledger.ErrInternalConsistency) {
			log.WithError(err).WithFields(log.Fields{
				"customer_id":     balance.CustomerID().String(),
				"rule_id":         rule.ID().String(),
				"points_required": rule.PointsRequired(),
				"current_points":  balance.Current().Value(),
			}).Error("reward debit exceeds balance, aborting transaction")
		}
		return nil, err
	}

	if err := s.rewardRepo.Save(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save reward: %w", err)
	}
	if err := s.entryRepo.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return r, nil
}
