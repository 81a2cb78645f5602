package ledger

// ===========================
// 帳本稽核
// ===========================

// ReplayEntries 依序重播流水，返回最終餘額
//
// entries 必須依建立順序（EntryID 遞增）排列。
// 每一筆的 balanceAfter 必須等於重播到該筆時的累計值，否則返回 ErrInternalConsistency。
func ReplayEntries(entries []*LedgerEntry) (int, error) {
	running := 0
	for i, e := range entries {
		if i > 0 && !entries[i-1].ID().Less(e.ID()) {
			return 0, ErrInternalConsistency.WithContext(
				"reason", "entries out of order",
				"entry_id", e.ID().String(),
			)
		}
		running += e.Delta()
		if running != e.BalanceAfter() {
			return 0, ErrInternalConsistency.WithContext(
				"reason", "snapshot mismatch",
				"entry_id", e.ID().String(),
				"replayed", running,
				"snapshot", e.BalanceAfter(),
			)
		}
	}
	return running, nil
}

// VerifyBalance 檢查餘額是否等於流水重播結果
func VerifyBalance(b *Balance, entries []*LedgerEntry) error {
	replayed, err := ReplayEntries(entries)
	if err != nil {
		return err
	}
	if replayed != b.Current().Value() {
		return ErrInternalConsistency.WithContext(
			"reason", "balance does not match ledger",
			"customer_id", b.CustomerID().String(),
			"current_points", b.Current().Value(),
			"replayed", replayed,
		)
	}
	return nil
}
