package reward

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/reward"
)

// ListRewardsQuery 查詢顧客獎勵；Status 為空表示全部
type ListRewardsQuery struct {
	CustomerID string
	Status     string
}

// ListRewardsUseCase 查詢顧客獎勵（新到舊）
type ListRewardsUseCase struct {
	rewardRepo reward.RewardRepository
}

// NewListRewardsUseCase 創建 Use Case 實例
func NewListRewardsUseCase(rewardRepo reward.RewardRepository) *ListRewardsUseCase {
	return &ListRewardsUseCase{rewardRepo: rewardRepo}
}

// Execute 執行查詢
func (uc *ListRewardsUseCase) Execute(query ListRewardsQuery) ([]RewardDTO, error) {
	customerID, err := customer.CustomerIDFromString(query.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	var status reward.Status
	if query.Status != "" {
		status, err = reward.ParseStatus(query.Status)
		if err != nil {
			return nil, err
		}
	}

	rewards, err := uc.rewardRepo.ListByCustomer(nil, customerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}

	out := make([]RewardDTO, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, toRewardDTO(r))
	}
	return out, nil
}

// ListPendingRewards 員工核銷前查看顧客的待領取獎勵
func (uc *ListRewardsUseCase) ListPendingRewards(customerID string) ([]RewardDTO, error) {
	return uc.Execute(ListRewardsQuery{CustomerID: customerID, Status: string(reward.StatusPending)})
}
