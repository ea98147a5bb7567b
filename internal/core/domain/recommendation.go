package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecommendationType groups advice by business area.
type RecommendationType string

const (
	RecCashFlow            RecommendationType = "CASH_FLOW"
	RecProfitability       RecommendationType = "PROFITABILITY"
	RecTaxOptimization     RecommendationType = "TAX_OPTIMIZATION"
	RecExpenseOptimization RecommendationType = "EXPENSE_OPTIMIZATION"
	RecCollections         RecommendationType = "COLLECTIONS"
	RecPaymentTerms        RecommendationType = "PAYMENT_TERMS"
	RecInventory           RecommendationType = "INVENTORY"
)

// RecommendationPriority ranks advice urgency.
type RecommendationPriority string

const (
	PriorityLow      RecommendationPriority = "LOW"
	PriorityMedium   RecommendationPriority = "MEDIUM"
	PriorityHigh     RecommendationPriority = "HIGH"
	PriorityCritical RecommendationPriority = "CRITICAL"
)

// Recommendation is one piece of advice produced by a threshold rule.
type Recommendation struct {
	Type        RecommendationType     `json:"type"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Priority    RecommendationPriority `json:"priority"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// FinancialData are aggregated period figures.
type FinancialData struct {
	Revenue       decimal.Decimal `json:"revenue"`
	Expenses      decimal.Decimal `json:"expenses"`
	Profit        decimal.Decimal `json:"profit"`
	CashFlow      decimal.Decimal `json:"cashFlow"`
	AnnualRevenue decimal.Decimal `json:"annualRevenue"`
}

// InvoiceData are aggregated receivables figures.
type InvoiceData struct {
	OverdueAmount      decimal.Decimal `json:"overdueAmount"`
	AveragePaymentDays int             `json:"averagePaymentDays"`
	TotalInvoices      int             `json:"totalInvoices"`
}

// InventoryData are aggregated stock figures.
type InventoryData struct {
	LowStockItems   int             `json:"lowStockItems"`
	SlowMovingValue decimal.Decimal `json:"slowMovingValue"`
	TotalItems      int             `json:"totalItems"`
}
