package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/utils/accounting"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.ChartOfAccountsRepositoryFacade
}

// NewAccountService creates a new chart of accounts service with the provided options
func NewAccountService(repo portsrepo.ChartOfAccountsRepositoryFacade, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.ChartOfAccountsEntry, error) {
	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, err
	}
	var category domain.AccountCategory
	if req.Category != "" {
		if category, err = domain.ParseAccountCategory(req.Category); err != nil {
			return nil, err
		}
	}

	account := domain.ChartOfAccountsEntry{
		AccountCode: req.AccountCode,
		AccountName: req.AccountName,
		AccountType: accountType,
		Category:    category,
		ParentCode:  req.ParentCode,
		PCMNCode:    req.PCMNCode,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}

	// The new node is checked together with the existing chart so parent links
	// and code uniqueness are evaluated on the resulting hierarchy.
	existing, err := s.accountRepo.ListAllAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts")
		return nil, err
	}
	if err := accounting.ValidateChart(append(existing, account)); err != nil {
		s.LogDebug(ctx, "Account rejected by chart validation",
			slog.String("account_code", account.AccountCode),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_code", account.AccountCode))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_code", account.AccountCode),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccountsEntry, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, accountCode)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed",
			slog.String("account_code", accountCode),
			slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccountsEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, err
	}
	return accounts, nil
}
