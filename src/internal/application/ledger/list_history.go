package ledger

import (
	"fmt"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/customer"
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/ledger"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ListHistoryQuery 查詢帳本流水
type ListHistoryQuery struct {
	CustomerID string
	Limit      int // <= 0 時為 20，上限 100
	Offset     int
}

// ListHistoryResult 帳本流水（新到舊）
type ListHistoryResult struct {
	Entries []EntryDTO
	Total   int64
	Limit   int
	Offset  int
}

// ListHistoryUseCase 查詢帳本流水 Use Case
type ListHistoryUseCase struct {
	entryRepo ledger.LedgerEntryRepository
}

// NewListHistoryUseCase 創建 Use Case 實例
func NewListHistoryUseCase(repo ledger.LedgerEntryRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{entryRepo: repo}
}

// Execute 執行查詢
func (uc *ListHistoryUseCase) Execute(query ListHistoryQuery) (*ListHistoryResult, error) {
	customerID, err := customer.CustomerIDFromString(query.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse customer ID: %w", err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	entries, err := uc.entryRepo.ListByCustomer(nil, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	total, err := uc.entryRepo.CountByCustomer(nil, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toEntryDTO(e))
	}

	return &ListHistoryResult{
		Entries: dtos,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}
