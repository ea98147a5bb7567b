package fiscal

import (
	"fmt"
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

var (
	minProfitMarginPercent = decimal.NewFromInt(10)
	maxExpenseRatioPercent = decimal.NewFromInt(80)
	maxAveragePaymentDays  = 45
)

// ProfitMargin is profit as a percentage of revenue; zero when revenue is zero.
func ProfitMargin(d domain.FinancialData) decimal.Decimal {
	return money.Ratio(d.Profit, d.Revenue)
}

// ExpenseRatio is expenses as a percentage of revenue; zero when revenue is zero.
func ExpenseRatio(d domain.FinancialData) decimal.Decimal {
	return money.Ratio(d.Expenses, d.Revenue)
}

// GenerateFinancialRecommendations evaluates the cash, margin, VAT and expense rules.
// Every rule runs; none short-circuits another.
func GenerateFinancialRecommendations(d domain.FinancialData, now time.Time) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if d.CashFlow.IsNegative() {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecCashFlow,
			Title:       "Negative Cash Flow Alert",
			Description: "Your cash flow is negative. Consider improving collections or reducing expenses.",
			Priority:    domain.PriorityHigh,
			CreatedAt:   now,
		})
	}

	if ProfitMargin(d).LessThan(minProfitMarginPercent) {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecProfitability,
			Title:       "Low Profit Margin",
			Description: "Your profit margin is below 10%. Consider reviewing pricing or reducing costs.",
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
		})
	}

	if d.AnnualRevenue.GreaterThan(VatExemptionThreshold) {
		recs = append(recs, domain.Recommendation{
			Type:  domain.RecTaxOptimization,
			Title: "VAT Registration Required",
			Description: fmt.Sprintf("Your annual revenue exceeds %s MAD. VAT registration is mandatory in Morocco.",
				VatExemptionThreshold.StringFixed(0)),
			Priority:  domain.PriorityHigh,
			CreatedAt: now,
		})
	}

	if ExpenseRatio(d).GreaterThan(maxExpenseRatioPercent) {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecExpenseOptimization,
			Title:       "High Expense Ratio",
			Description: "Your expenses are over 80% of revenue. Review cost structure for optimization opportunities.",
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
		})
	}

	return recs
}

// GenerateInvoiceRecommendations evaluates the collections and payment-term rules.
func GenerateInvoiceRecommendations(d domain.InvoiceData, now time.Time) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if d.OverdueAmount.IsPositive() {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecCollections,
			Title:       "Overdue Invoices Detected",
			Description: fmt.Sprintf("You have %s MAD in overdue invoices. Consider sending payment reminders.", money.Format(d.OverdueAmount)),
			Priority:    domain.PriorityHigh,
			CreatedAt:   now,
		})
	}

	if d.AveragePaymentDays > maxAveragePaymentDays {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecPaymentTerms,
			Title:       "Long Payment Cycles",
			Description: "Average payment cycle is over 45 days. Consider offering early payment discounts.",
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
		})
	}

	return recs
}

// GenerateInventoryRecommendations evaluates the stock rules.
func GenerateInventoryRecommendations(d domain.InventoryData, now time.Time) []domain.Recommendation {
	recs := []domain.Recommendation{}

	if d.LowStockItems > 0 {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecInventory,
			Title:       "Low Stock Alert",
			Description: fmt.Sprintf("%d items are below minimum stock level. Consider reordering.", d.LowStockItems),
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
		})
	}

	if d.SlowMovingValue.IsPositive() {
		recs = append(recs, domain.Recommendation{
			Type:        domain.RecInventory,
			Title:       "Slow-Moving Inventory",
			Description: fmt.Sprintf("%s MAD worth of slow-moving inventory detected. Consider promotions or discounts.", money.Format(d.SlowMovingValue)),
			Priority:    domain.PriorityLow,
			CreatedAt:   now,
		})
	}

	return recs
}

// GenerateAll runs the financial, invoice and inventory groups in that order.
func GenerateAll(fin domain.FinancialData, inv domain.InvoiceData, stock domain.InventoryData, now time.Time) []domain.Recommendation {
	recs := GenerateFinancialRecommendations(fin, now)
	recs = append(recs, GenerateInvoiceRecommendations(inv, now)...)
	return append(recs, GenerateInventoryRecommendations(stock, now)...)
}
