package services

import (
	"context"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/dto"
)

// AccountReaderSvc defines read operations for the chart of accounts
type AccountReaderSvc interface {
	// GetAccountByCode retrieves a specific account by its code.
	GetAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccountsEntry, error)

	// ListAccounts retrieves a paginated list of accounts ordered by code.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccountsEntry, error)
}

// AccountWriterSvc defines write operations for the chart of accounts
type AccountWriterSvc interface {
	// CreateAccount validates the account against the existing chart and persists it.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.ChartOfAccountsEntry, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
