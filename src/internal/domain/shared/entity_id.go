package shared

import (
	"github.com/google/uuid"
)

// ===========================
// EntityID[T] 泛型實體 ID
// ===========================

// EntityID 泛型實體 ID 值對象
//
// 設計原則：
// 1. 類型安全：CustomerID、RewardID、EntryID 等是不同類型，不能混用
// 2. 不可變性（unexported field）
// 3. 時間有序：使用 UUIDv7，字串排序等同於建立順序
//
// 時間有序的用途：
// - 帳本流水依 ID 遞增即可重播出目前餘額
// - 「最新啟用的積分規則」= ID 最大的啟用規則
// - 獎勵規則依 ID 遞增處理，結果可重現
//
// 使用範例：
//   type RewardMarker struct{}
//   type RewardID = shared.EntityID[RewardMarker]
//   id := shared.NewEntityID[RewardMarker]()
type EntityID[T any] struct {
	value uuid.UUID
}

// NewEntityID 生成新的實體 ID（UUIDv7）
//
// uuid.NewV7 在同一進程內保證單調遞增；
// 只有在系統隨機源失效時才會失敗，此時退回 UUIDv4。
func NewEntityID[T any]() EntityID[T] {
	id, err := uuid.NewV7()
	if err != nil {
		return EntityID[T]{value: uuid.New()}
	}
	return EntityID[T]{value: id}
}

// EntityIDFromString 從字串解析實體 ID
//
// 參數：
//   s - UUID 字串
//   errTemplate - 解析失敗時返回的錯誤（由各 bounded context 提供）
//
// 如果 errTemplate 支援 WithContext，會附上輸入值與解析錯誤。
func EntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	id, err := uuid.Parse(s)
	if err != nil {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext(
				"input", s,
				"parse_error", err.Error(),
			)
		}
		return EntityID[T]{}, errTemplate
	}

	if id == uuid.Nil {
		if domainErr, ok := errTemplate.(interface {
			WithContext(keyValues ...interface{}) error
		}); ok {
			return EntityID[T]{}, domainErr.WithContext("input", s, "reason", "nil uuid")
		}
		return EntityID[T]{}, errTemplate
	}

	return EntityID[T]{value: id}, nil
}

// OptionalEntityIDFromString 解析可為空的 ID
//
// 空字串返回零值 ID（IsEmpty() == true），不視為錯誤。
// 用於「選填操作者」、「選填顧客」等欄位。
func OptionalEntityIDFromString[T any](s string, errTemplate error) (EntityID[T], error) {
	if s == "" {
		return EntityID[T]{}, nil
	}
	return EntityIDFromString[T](s, errTemplate)
}

// String 轉換為字串表示（小寫 UUID）
//
// 零值 ID 返回空字串，方便映射到可為 NULL 的資料庫欄位。
func (e EntityID[T]) String() string {
	if e.value == uuid.Nil {
		return ""
	}
	return e.value.String()
}

// Equals 比較兩個同類型 EntityID 是否相等
func (e EntityID[T]) Equals(other EntityID[T]) bool {
	return e.value == other.value
}

// IsEmpty 判斷是否為空 ID（零值）
func (e EntityID[T]) IsEmpty() bool {
	return e.value == uuid.Nil
}

// Less 判斷是否早於另一個 ID 建立
//
// UUIDv7 的位元組順序即時間順序，直接比較位元組即可。
func (e EntityID[T]) Less(other EntityID[T]) bool {
	for i := range e.value {
		if e.value[i] != other.value[i] {
			return e.value[i] < other.value[i]
		}
	}
	return false
}
