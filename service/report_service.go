package service

import (
	"sort"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/storage"
)

// ReportService aggregates stored transactions into spending summaries.
type ReportService struct {
	store storage.Store
}

func NewReportService(store storage.Store) *ReportService {
	return &ReportService{store: store}
}

// SpendingSummary totals all stored transactions by category, largest
// category first. Ties break alphabetically so the output is stable.
func (s *ReportService) SpendingSummary() (dto.SpendingSummary, error) {
	transactions, err := s.store.ListTransactions(0, 0)
	if err != nil {
		return dto.SpendingSummary{}, err
	}

	totals := make(map[string]float64)
	var total float64
	for _, t := range transactions {
		totals[t.Category] += t.Amount
		total += t.Amount
	}

	byCategory := make([]dto.CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		byCategory = append(byCategory, dto.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].Amount != byCategory[j].Amount {
			return byCategory[i].Amount > byCategory[j].Amount
		}
		return byCategory[i].Category < byCategory[j].Category
	})

	return dto.SpendingSummary{Total: total, ByCategory: byCategory}, nil
}
