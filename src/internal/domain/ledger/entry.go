package ledger

import (
	"time"
)

// ===========================
// EntryKind 流水類型
// ===========================

// EntryKind 帳本流水類型
type EntryKind string

const (
	EntryKindEarn         EntryKind = "earn"   // 賺取（正數）
	EntryKindRedeem       EntryKind = "redeem" // 兌換折抵（負數）
	EntryKindRewardIssued EntryKind = "reward" // 自動發放獎勵扣點（負數）
	EntryKindExpire       EntryKind = "expire" // 積分過期（負數，保留類型供報表使用）
	EntryKindAdjust       EntryKind = "adjust" // 管理員調整（正負皆可）
)

// ParseEntryKind 從字串解析流水類型
func ParseEntryKind(s string) (EntryKind, error) {
	switch k := EntryKind(s); k {
	case EntryKindEarn, EntryKindRedeem, EntryKindRewardIssued, EntryKindExpire, EntryKindAdjust:
		return k, nil
	default:
		return "", ErrInvalidEntryKind.WithContext("value", s)
	}
}

// String 轉為字串
func (k EntryKind) String() string {
	return string(k)
}

// ===========================
// Reference 來源參照（tagged variant）
// ===========================

// ReferenceKind 來源參照類型
type ReferenceKind string

const (
	ReferenceNone       ReferenceKind = ""
	ReferencePurchase   ReferenceKind = "purchase"
	ReferenceReward     ReferenceKind = "reward"
	ReferenceRedemption ReferenceKind = "redemption"
)

// Reference 指向觸發此筆流水的領域物件
//
// 以「類型 + ID」表示，不做多型外鍵；
// 零值表示無參照（例如管理員調整）。
type Reference struct {
	kind ReferenceKind
	id   string
}

// NoReference 無參照
func NoReference() Reference {
	return Reference{}
}

// NewReference 建構參照；kind 與 id 必須同時存在或同時為空
func NewReference(kind ReferenceKind, id string) (Reference, error) {
	switch kind {
	case ReferenceNone:
		if id != "" {
			return Reference{}, ErrInvalidReference.WithContext("reason", "id without kind", "id", id)
		}
		return Reference{}, nil
	case ReferencePurchase, ReferenceReward, ReferenceRedemption:
		if id == "" {
			return Reference{}, ErrInvalidReference.WithContext("reason", "kind without id", "kind", string(kind))
		}
		return Reference{kind: kind, id: id}, nil
	default:
		return Reference{}, ErrInvalidReference.WithContext("kind", string(kind))
	}
}

// PurchaseReference 指向購買紀錄
func PurchaseReference(purchaseID string) Reference {
	if purchaseID == "" {
		return Reference{}
	}
	return Reference{kind: ReferencePurchase, id: purchaseID}
}

// RewardReference 指向獎勵
func RewardReference(rewardID string) Reference {
	return Reference{kind: ReferenceReward, id: rewardID}
}

// RedemptionReference 指向兌換記錄
func RedemptionReference(id RedemptionID) Reference {
	return Reference{kind: ReferenceRedemption, id: id.String()}
}

// Kind 參照類型
func (r Reference) Kind() ReferenceKind {
	return r.kind
}

// ID 參照 ID
func (r Reference) ID() string {
	return r.id
}

// IsEmpty 是否無參照
func (r Reference) IsEmpty() bool {
	return r.kind == ReferenceNone
}

// ===========================
// LedgerEntry 帳本流水（不可變）
// ===========================

// LedgerEntry 一筆積分異動紀錄
//
// 業務規則：
// - 只新增不修改（沒有任何 setter，Repository 也沒有 Update）
// - balanceAfter 是寫入當下的 current_points 快照，之後不再重算
// - delta 正負號由 kind 決定，見 EntryKind 常量
type LedgerEntry struct {
	id           EntryID
	customerID   CustomerID
	actor        StaffID // 零值 = 無操作者
	kind         EntryKind
	delta        int
	balanceAfter int
	description  string
	reference    Reference
	createdAt    time.Time
}

// newLedgerEntry 只由 Balance 的命令方法呼叫，確保快照與餘額一致
func newLedgerEntry(
	customerID CustomerID,
	actor StaffID,
	kind EntryKind,
	delta int,
	balanceAfter int,
	description string,
	reference Reference,
	now time.Time,
) *LedgerEntry {
	return &LedgerEntry{
		id:           NewEntryID(),
		customerID:   customerID,
		actor:        actor,
		kind:         kind,
		delta:        delta,
		balanceAfter: balanceAfter,
		description:  description,
		reference:    reference,
		createdAt:    now,
	}
}

// ReconstructLedgerEntry 從持久化存儲重建流水（僅供 Repository 使用）
func ReconstructLedgerEntry(
	id EntryID,
	customerID CustomerID,
	actor StaffID,
	kind EntryKind,
	delta int,
	balanceAfter int,
	description string,
	reference Reference,
	createdAt time.Time,
) (*LedgerEntry, error) {
	if id.IsEmpty() {
		return nil, ErrInvalidEntryID.WithContext("reason", "invalid entry ID in database")
	}
	if balanceAfter < 0 {
		return nil, ErrCorruptedBalance.WithContext("entry_id", id.String(), "balance_after", balanceAfter)
	}

	return &LedgerEntry{
		id:           id,
		customerID:   customerID,
		actor:        actor,
		kind:         kind,
		delta:        delta,
		balanceAfter: balanceAfter,
		description:  description,
		reference:    reference,
		createdAt:    createdAt,
	}, nil
}

func (e *LedgerEntry) ID() EntryID            { return e.id }
func (e *LedgerEntry) CustomerID() CustomerID { return e.customerID }
func (e *LedgerEntry) Actor() StaffID         { return e.actor }
func (e *LedgerEntry) Kind() EntryKind        { return e.kind }
func (e *LedgerEntry) Delta() int             { return e.delta }
func (e *LedgerEntry) BalanceAfter() int      { return e.balanceAfter }
func (e *LedgerEntry) Description() string    { return e.description }
func (e *LedgerEntry) Reference() Reference   { return e.reference }
func (e *LedgerEntry) CreatedAt() time.Time   { return e.createdAt }
