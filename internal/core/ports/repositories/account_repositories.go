package repositories

import (
	"context"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
)

// ChartOfAccountsReader defines read operations over the chart of accounts
type ChartOfAccountsReader interface {
	// FindAccountByCode retrieves one account; apperrors.ErrNotFound when absent.
	FindAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccountsEntry, error)

	// ListAccounts retrieves a page of accounts ordered by code.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccountsEntry, error)

	// ListAllAccounts retrieves the whole chart, used for hierarchy validation.
	ListAllAccounts(ctx context.Context) ([]domain.ChartOfAccountsEntry, error)

	// FindAccountTypes returns the type of every requested code that exists.
	FindAccountTypes(ctx context.Context, accountCodes []string) (map[string]domain.AccountType, error)
}

// ChartOfAccountsWriter defines write operations over the chart of accounts
type ChartOfAccountsWriter interface {
	// SaveAccount persists a new account; apperrors.ErrDuplicate when the code is taken.
	SaveAccount(ctx context.Context, account domain.ChartOfAccountsEntry) error
}

// ChartOfAccountsRepositoryFacade combines all chart-of-accounts repository interfaces
type ChartOfAccountsRepositoryFacade interface {
	ChartOfAccountsReader
	ChartOfAccountsWriter
}
