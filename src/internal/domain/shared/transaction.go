package shared

// TransactionContext 事務上下文介面
//
// 行為約定：
// - ctx != nil: 在調用者的事務中執行（事務傳播）
// - ctx == nil: 使用 auto-commit 模式（僅適用於獨立讀操作）
//
// Repository 方法約束：
//
// ✅ ctx 必須為 non-nil（寫操作、加鎖讀取需要事務保證）：
//    - Save() / Update() / Append()
//    - FindBy...ForUpdate() - 鎖定列直到事務結束
//
// ✅ ctx 可為 nil（讀操作可選事務參與）：
//    - FindByID() / ListBy...() / Exists...()
//
// 範例（賺取積分 + 自動發放獎勵在同一事務內）：
//   txManager.InTransaction(func(ctx TransactionContext) error {
//       balance, _ := balanceRepo.FindByCustomerIDForUpdate(ctx, customerID)
//       entry, _ := balance.Earn(amount, description, actor, ref)
//       ...
//       return issuer.CheckAndIssue(ctx, customerID, balance)
//   })
//
// 架構原則：
// - 標記介面（Marker Interface），不暴露任何方法
// - Infrastructure Layer 負責實作具體的事務封裝（GORM）
// - Domain / Application Layer 只依賴此介面
type TransactionContext interface {
	// 標記介面：僅用於傳遞上下文，不暴露方法
}

// TransactionManager 事務管理器介面
//
// fn 返回錯誤或 panic 時整個事務回滾；返回 nil 時提交。
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
