package fiscal

import (
	"testing"
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func healthyFinancials() domain.FinancialData {
	return domain.FinancialData{
		Revenue:       dec("100000"),
		Expenses:      dec("50000"),
		Profit:        dec("50000"),
		CashFlow:      dec("10000"),
		AnnualRevenue: dec("300000"),
	}
}

func recTypes(recs []domain.Recommendation) []domain.RecommendationType {
	out := make([]domain.RecommendationType, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Type)
	}
	return out
}

func TestGenerateAllHealthyBusiness(t *testing.T) {
	recs := GenerateAll(healthyFinancials(),
		domain.InvoiceData{OverdueAmount: dec("0"), AveragePaymentDays: 30},
		domain.InventoryData{SlowMovingValue: dec("0")},
		recNow)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestGenerateAllEveryRuleFires(t *testing.T) {
	fin := domain.FinancialData{
		Revenue:       dec("100000"),
		Expenses:      dec("95000"),
		Profit:        dec("5000"),
		CashFlow:      dec("-1"),
		AnnualRevenue: dec("600000"),
	}
	inv := domain.InvoiceData{OverdueAmount: dec("1500.5"), AveragePaymentDays: 46}
	stock := domain.InventoryData{LowStockItems: 3, SlowMovingValue: dec("200")}

	recs := GenerateAll(fin, inv, stock, recNow)
	require.Len(t, recs, 8)
	assert.Equal(t, []domain.RecommendationType{
		domain.RecCashFlow,
		domain.RecProfitability,
		domain.RecTaxOptimization,
		domain.RecExpenseOptimization,
		domain.RecCollections,
		domain.RecPaymentTerms,
		domain.RecInventory,
		domain.RecInventory,
	}, recTypes(recs))

	assert.Equal(t, domain.PriorityHigh, recs[0].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[1].Priority)
	assert.Equal(t, domain.PriorityHigh, recs[2].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[3].Priority)
	assert.Equal(t, domain.PriorityHigh, recs[4].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[5].Priority)
	assert.Equal(t, domain.PriorityMedium, recs[6].Priority)
	assert.Equal(t, domain.PriorityLow, recs[7].Priority)

	assert.Contains(t, recs[4].Description, "1500.50 MAD")
	assert.Contains(t, recs[6].Description, "3 items")
	for _, r := range recs {
		assert.Equal(t, recNow, r.CreatedAt)
	}
}

func TestFinancialRuleBoundaries(t *testing.T) {
	fin := healthyFinancials()
	fin.Profit = dec("10000")   // exactly 10%
	fin.Expenses = dec("80000") // exactly 80%
	fin.AnnualRevenue = VatExemptionThreshold
	fin.CashFlow = dec("0")
	assert.Empty(t, GenerateFinancialRecommendations(fin, recNow))

	fin.AnnualRevenue = dec("500000.01")
	recs := GenerateFinancialRecommendations(fin, recNow)
	require.Len(t, recs, 1)
	assert.Equal(t, domain.RecTaxOptimization, recs[0].Type)
	assert.Contains(t, recs[0].Description, "500000 MAD")
}

func TestFinancialRulesWithZeroRevenue(t *testing.T) {
	fin := domain.FinancialData{
		Revenue:       dec("0"),
		Expenses:      dec("1000"),
		Profit:        dec("-1000"),
		CashFlow:      dec("100"),
		AnnualRevenue: dec("0"),
	}
	recs := GenerateFinancialRecommendations(fin, recNow)
	// margin and expense ratio both fall back to zero
	assert.Equal(t, []domain.RecommendationType{domain.RecProfitability}, recTypes(recs))
	assert.True(t, ProfitMargin(fin).IsZero())
	assert.True(t, ExpenseRatio(fin).IsZero())
}

func TestInvoiceRuleBoundaries(t *testing.T) {
	assert.Empty(t, GenerateInvoiceRecommendations(domain.InvoiceData{OverdueAmount: dec("0"), AveragePaymentDays: 45}, recNow))

	recs := GenerateInvoiceRecommendations(domain.InvoiceData{OverdueAmount: dec("0.01"), AveragePaymentDays: 45}, recNow)
	assert.Equal(t, []domain.RecommendationType{domain.RecCollections}, recTypes(recs))
}

func TestRulesDoNotMutateInputs(t *testing.T) {
	fin := domain.FinancialData{
		Revenue:       dec("100"),
		Expenses:      dec("99"),
		Profit:        dec("1"),
		CashFlow:      dec("-5"),
		AnnualRevenue: dec("900000"),
	}
	before := fin
	_ = GenerateFinancialRecommendations(fin, recNow)
	assert.True(t, before.Revenue.Equal(fin.Revenue))
	assert.True(t, before.CashFlow.Equal(fin.CashFlow))
	assert.True(t, before.AnnualRevenue.Equal(fin.AnnualRevenue))
}
