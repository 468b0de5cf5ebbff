package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pigmint/ingestion-service/dto"
	"github.com/pigmint/ingestion-service/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := storage.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRuleService_CreateDefaults(t *testing.T) {
	svc := NewRuleService(newTestStore(t), zerolog.Nop())

	rule, err := svc.CreateRule(dto.CreateRuleRequest{VendorMatch: "Starbucks", SaveAmount: 2})
	require.NoError(t, err)

	assert.NotEmpty(t, rule.ID)
	assert.Equal(t, DefaultRuleType, rule.RuleType)
	assert.True(t, rule.IsActive)
	assert.False(t, rule.CreatedAt.IsZero())
}

func TestRuleService_Update(t *testing.T) {
	svc := NewRuleService(newTestStore(t), zerolog.Nop())

	rule, err := svc.CreateRule(dto.CreateRuleRequest{VendorMatch: "Starbucks", SaveAmount: 2})
	require.NoError(t, err)

	inactive := false
	amount := 5.0
	updated, err := svc.UpdateRule(rule.ID, dto.UpdateRuleRequest{SaveAmount: &amount, IsActive: &inactive})
	require.NoError(t, err)

	assert.Equal(t, rule.ID, updated.ID)
	assert.Equal(t, "Starbucks", updated.VendorMatch, "untouched fields survive")
	assert.Equal(t, 5.0, updated.SaveAmount)
	assert.False(t, updated.IsActive)
}

func TestRuleService_UpdateMissing(t *testing.T) {
	svc := NewRuleService(newTestStore(t), zerolog.Nop())

	amount := 5.0
	_, err := svc.UpdateRule("no-such-id", dto.UpdateRuleRequest{SaveAmount: &amount})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRuleService_MatchTransaction(t *testing.T) {
	svc := NewRuleService(newTestStore(t), zerolog.Nop())

	coffee, err := svc.CreateRule(dto.CreateRuleRequest{VendorMatch: "starbucks", SaveAmount: 2})
	require.NoError(t, err)
	_, err = svc.CreateRule(dto.CreateRuleRequest{VendorMatch: "amazon", SaveAmount: 1})
	require.NoError(t, err)

	disabled, err := svc.CreateRule(dto.CreateRuleRequest{VendorMatch: "bucks", SaveAmount: 3})
	require.NoError(t, err)
	inactive := false
	_, err = svc.UpdateRule(disabled.ID, dto.UpdateRuleRequest{IsActive: &inactive})
	require.NoError(t, err)

	matched, err := svc.MatchTransaction(dto.Transaction{Vendor: "STARBUCKS #1234"})
	require.NoError(t, err)
	require.Len(t, matched, 1, "inactive rules never match")
	assert.Equal(t, coffee.ID, matched[0].ID)

	matched, err = svc.MatchTransaction(dto.Transaction{Vendor: "Local Bakery"})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestReportService_SpendingSummary(t *testing.T) {
	store := newTestStore(t)
	for _, tx := range []dto.Transaction{
		{Vendor: "Walmart", Amount: 40, Category: "Groceries", Date: "2024-01-01"},
		{Vendor: "Kroger", Amount: 20, Category: "Groceries", Date: "2024-01-02"},
		{Vendor: "Shell", Amount: 30, Category: "Gas", Date: "2024-01-03"},
	} {
		tx := tx
		require.NoError(t, store.SaveTransaction(&tx))
	}

	summary, err := NewReportService(store).SpendingSummary()
	require.NoError(t, err)

	assert.Equal(t, 90.0, summary.Total)
	require.Len(t, summary.ByCategory, 2)
	assert.Equal(t, dto.CategoryTotal{Category: "Groceries", Amount: 60}, summary.ByCategory[0])
	assert.Equal(t, dto.CategoryTotal{Category: "Gas", Amount: 30}, summary.ByCategory[1])
}

func TestReportService_SpendingSummaryEmpty(t *testing.T) {
	summary, err := NewReportService(newTestStore(t)).SpendingSummary()
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.Total)
	assert.Empty(t, summary.ByCategory)
}
