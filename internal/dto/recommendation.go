package dto

import "github.com/SscSPs/compta_maroc/internal/core/domain"

// RecommendationsRequest carries the aggregated figures the advisory rules read.
type RecommendationsRequest struct {
	Financial domain.FinancialData `json:"financial"`
	Invoices  domain.InvoiceData   `json:"invoices"`
	Inventory domain.InventoryData `json:"inventory"`
}

// RecommendationsResponse wraps generated recommendations.
type RecommendationsResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
}
