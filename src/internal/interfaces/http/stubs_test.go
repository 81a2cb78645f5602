package http

import (
	appcustomer "github.com/jackyeh168/bar_loyalty/src/internal/application/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/application/intake"
	appledger "github.com/jackyeh168/bar_loyalty/src/internal/application/ledger"
	appreward "github.com/jackyeh168/bar_loyalty/src/internal/application/reward"
	apprules "github.com/jackyeh168/bar_loyalty/src/internal/application/rules"
)

// ===== Use Case stubs：記錄收到的命令並返回預設結果 =====

type stubWebhook struct {
	got    *intake.WebhookPayload
	result *intake.WebhookResult
}

func (s *stubWebhook) Execute(p *intake.WebhookPayload) *intake.WebhookResult {
	s.got = p
	if s.result != nil {
		return s.result
	}
	return &intake.WebhookResult{Handled: p.Kind() == intake.EventReceiptsUpdate, Processed: len(p.Receipts)}
}

type stubEarn struct {
	got    appledger.StaffEarnCommand
	result *appledger.EarnPointsResult
	err    error
}

func (s *stubEarn) Execute(cmd appledger.StaffEarnCommand) (*appledger.EarnPointsResult, error) {
	s.got = cmd
	return s.result, s.err
}

type stubRedeem struct {
	got    appledger.RedeemPointsCommand
	result *appledger.RedeemPointsResult
	err    error
}

func (s *stubRedeem) Execute(cmd appledger.RedeemPointsCommand) (*appledger.RedeemPointsResult, error) {
	s.got = cmd
	return s.result, s.err
}

type stubAdjust struct {
	got   appledger.AdjustPointsCommand
	entry *appledger.EntryDTO
	err   error
}

func (s *stubAdjust) Execute(cmd appledger.AdjustPointsCommand) (*appledger.EntryDTO, error) {
	s.got = cmd
	return s.entry, s.err
}

type stubBalance struct {
	result *appledger.GetBalanceResult
	err    error
}

func (s *stubBalance) Execute(q appledger.GetBalanceQuery) (*appledger.GetBalanceResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.CustomerID = q.CustomerID
	return &r, nil
}

type stubHistory struct {
	got    appledger.ListHistoryQuery
	result *appledger.ListHistoryResult
}

func (s *stubHistory) Execute(q appledger.ListHistoryQuery) (*appledger.ListHistoryResult, error) {
	s.got = q
	return s.result, nil
}

type stubVerify struct {
	result *appledger.VerifyLedgerResult
}

func (s *stubVerify) Execute(string) (*appledger.VerifyLedgerResult, error) {
	return s.result, nil
}

type stubClaim struct {
	got    appreward.ClaimRewardCommand
	result *appreward.RewardDTO
	err    error
}

func (s *stubClaim) Execute(cmd appreward.ClaimRewardCommand) (*appreward.RewardDTO, error) {
	s.got = cmd
	return s.result, s.err
}

type stubRewards struct {
	gotQuery   appreward.ListRewardsQuery
	gotPending string
	result     []appreward.RewardDTO
}

func (s *stubRewards) Execute(q appreward.ListRewardsQuery) ([]appreward.RewardDTO, error) {
	s.gotQuery = q
	return s.result, nil
}

func (s *stubRewards) ListPendingRewards(customerID string) ([]appreward.RewardDTO, error) {
	s.gotPending = customerID
	return s.result, nil
}

type stubSetActive struct {
	got apprules.SetRuleActiveCommand
	err error
}

func (s *stubSetActive) Execute(cmd apprules.SetRuleActiveCommand) error {
	s.got = cmd
	return s.err
}

type stubRegister struct {
	got appcustomer.RegisterCustomerCommand
	err error
}

func (s *stubRegister) Execute(cmd appcustomer.RegisterCustomerCommand) (*appcustomer.CustomerResult, error) {
	s.got = cmd
	if s.err != nil {
		return nil, s.err
	}
	return &appcustomer.CustomerResult{CustomerID: "c-1", Name: cmd.Name, POSCustomerID: cmd.POSCustomerID}, nil
}
