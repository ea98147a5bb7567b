package dto

import (
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
)

// CreateAccountRequest defines the data needed to add an account to the chart.
type CreateAccountRequest struct {
	AccountCode string `json:"accountCode" binding:"required,max=20"`
	AccountName string `json:"accountName" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Category    string `json:"category"`
	ParentCode  string `json:"parentCode"` // Optional
	PCMNCode    string `json:"pcmnCode"`   // Optional
	Description string `json:"description"`
}

// AccountResponse defines the data returned for a chart of accounts entry.
type AccountResponse struct {
	AccountCode   string    `json:"accountCode"`
	AccountName   string    `json:"accountName"`
	AccountType   string    `json:"accountType"`
	Category      string    `json:"category,omitempty"`
	ParentCode    string    `json:"parentCode,omitempty"`
	PCMNCode      string    `json:"pcmnCode,omitempty"`
	Description   string    `json:"description,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.ChartOfAccountsEntry to AccountResponse DTO
func ToAccountResponse(acc *domain.ChartOfAccountsEntry) AccountResponse {
	return AccountResponse{
		AccountCode:   acc.AccountCode,
		AccountName:   acc.AccountName,
		AccountType:   string(acc.AccountType),
		Category:      string(acc.Category),
		ParentCode:    acc.ParentCode,
		PCMNCode:      acc.PCMNCode,
		Description:   acc.Description,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of accounts to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.ChartOfAccountsEntry) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
