package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/utils/accounting"
)

// ledgerService provides balance queries over posted journal lines.
type ledgerService struct {
	BaseService
	journalRepo portsrepo.JournalEntryReader
	accountRepo portsrepo.ChartOfAccountsReader
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(
	journalRepo portsrepo.JournalEntryReader,
	accountRepo portsrepo.ChartOfAccountsReader,
	options ...ServiceOption,
) portssvc.LedgerSvc {
	return &ledgerService{
		BaseService: newBaseService(options...),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) GetAccountBalances(ctx context.Context, from, to *time.Time) ([]domain.AccountBalance, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from %s is after to %s", apperrors.ErrInvalidInput,
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	lines, err := s.journalRepo.ListPostedLines(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list posted lines")
		return nil, err
	}
	if len(lines) == 0 {
		return []domain.AccountBalance{}, nil
	}

	seen := make(map[string]bool)
	codes := make([]string, 0)
	for _, l := range lines {
		if !seen[l.AccountCode] {
			seen[l.AccountCode] = true
			codes = append(codes, l.AccountCode)
		}
	}
	types, err := s.accountRepo.FindAccountTypes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up account types")
		return nil, err
	}

	balances, err := accounting.ComputeAccountBalances(lines, types)
	s.Record(ctx, "ledger", "balances", err)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Account balances computed",
		slog.Int("lines", len(lines)),
		slog.Int("accounts", len(balances)))
	return balances, nil
}
