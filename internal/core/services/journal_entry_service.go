package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// journalEntryService implements the JournalEntrySvcFacade interface
type journalEntryService struct {
	BaseService
	journalRepo portsrepo.JournalEntryRepositoryWithTx
	accountRepo portsrepo.ChartOfAccountsReader
}

// NewJournalEntryService creates a new journal entry service.
func NewJournalEntryService(
	journalRepo portsrepo.JournalEntryRepositoryWithTx,
	accountRepo portsrepo.ChartOfAccountsReader,
	options ...ServiceOption,
) portssvc.JournalEntrySvcFacade {
	return &journalEntryService{
		BaseService: newBaseService(options...),
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalEntrySvcFacade = (*journalEntryService)(nil)

func toDomainLine(req dto.JournalLineRequest) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		AccountCode: req.AccountCode,
		Description: req.Description,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Reference:   req.Reference,
	}
}

// ensureAccountsExist rejects lines that reference codes missing from the chart.
func (s *journalEntryService) ensureAccountsExist(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	found, err := s.accountRepo.FindAccountTypes(ctx, codes)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up account types")
		return err
	}
	var missing []string
	for _, code := range codes {
		if _, ok := found[code]; !ok {
			missing = append(missing, code)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: unknown account codes %s", apperrors.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

func uniqueCodes(lines []dto.JournalLineRequest) []string {
	seen := make(map[string]bool, len(lines))
	codes := make([]string, 0, len(lines))
	for _, l := range lines {
		if !seen[l.AccountCode] {
			seen[l.AccountCode] = true
			codes = append(codes, l.AccountCode)
		}
	}
	return codes
}

func (s *journalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	entryType, err := domain.ParseEntryType(req.EntryType)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAccountsExist(ctx, uniqueCodes(req.Lines)); err != nil {
		return nil, err
	}

	now := s.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: req.EntryNumber,
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Reference:   req.Reference,
		EntryType:   entryType,
		Status:      domain.Draft,
		TotalAmount: decimal.Zero,
		Lines:       make([]domain.JournalEntryLine, 0, len(req.Lines)),
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if entry.EntryNumber == "" {
		entry.EntryNumber = fmt.Sprintf("JE-%s-%s", req.EntryDate.Format("20060102"), strings.ToUpper(entry.EntryID[:8]))
	}
	for _, l := range req.Lines {
		if _, err := accounting.AddLine(&entry, toDomainLine(l)); err != nil {
			return nil, err
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry",
			slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.Metrics.RecordEntryTransition(string(domain.Draft))
	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

func (s *journalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		s.LogDebug(ctx, "Journal entry lookup failed",
			slog.String("entry_id", entryID),
			slog.String("error", err.Error()))
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	filter := portsrepo.ListEntriesFilter{Limit: params.Limit}
	if params.Status != "" {
		status, err := domain.ParseEntryStatus(params.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if params.EntryType != "" {
		entryType, err := domain.ParseEntryType(params.EntryType)
		if err != nil {
			return nil, err
		}
		filter.EntryType = &entryType
	}
	if params.NextToken != "" {
		token := params.NextToken
		filter.NextToken = &token
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.Int("limit", params.Limit))
		return nil, err
	}

	resp := &dto.ListJournalEntriesResponse{
		Entries:   make([]dto.JournalEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Entries[i] = dto.ToJournalEntryResponse(&entries[i])
	}
	return resp, nil
}

// mutateDraft loads the entry under a row lock, applies change, writes the line
// delta through persist, updates the entry row and commits. Nothing is written
// when change fails.
func (s *journalEntryService) mutateDraft(
	ctx context.Context,
	entryID string,
	change func(entry *domain.JournalEntry) error,
	persist func(ctx context.Context, tx pgx.Tx) error,
) (*domain.JournalEntry, error) {
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction", slog.String("entry_id", entryID))
		return nil, err
	}
	defer func() {
		_ = s.journalRepo.Rollback(ctx, tx)
	}()

	entry, err := s.journalRepo.FindEntryByIDForUpdate(ctx, tx, entryID)
	if err != nil {
		return nil, err
	}
	if err := change(entry); err != nil {
		return nil, err
	}
	if persist != nil {
		if err := persist(ctx, tx); err != nil {
			s.LogError(ctx, err, "Failed to persist journal lines", slog.String("entry_id", entryID))
			return nil, err
		}
	}
	if err := s.journalRepo.UpdateEntryInTx(ctx, tx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *journalEntryService) AddLine(ctx context.Context, entryID string, req dto.JournalLineRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.ensureAccountsExist(ctx, []string{req.AccountCode}); err != nil {
		return nil, err
	}

	var added domain.JournalEntryLine
	entry, err := s.mutateDraft(ctx, entryID,
		func(entry *domain.JournalEntry) error {
			line, err := accounting.AddLine(entry, toDomainLine(req))
			if err != nil {
				return err
			}
			added = line
			entry.Touch(userID, s.Now())
			return nil
		},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.journalRepo.InsertLineInTx(ctx, tx, added)
		},
	)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal line added",
		slog.String("entry_id", entryID),
		slog.String("line_id", added.LineID))
	return entry, nil
}

func (s *journalEntryService) RemoveLine(ctx context.Context, entryID string, lineID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.mutateDraft(ctx, entryID,
		func(entry *domain.JournalEntry) error {
			if err := accounting.RemoveLine(entry, lineID); err != nil {
				return err
			}
			entry.Touch(userID, s.Now())
			return nil
		},
		func(ctx context.Context, tx pgx.Tx) error {
			return s.journalRepo.DeleteLineInTx(ctx, tx, entryID, lineID)
		},
	)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Journal line removed",
		slog.String("entry_id", entryID),
		slog.String("line_id", lineID))
	return entry, nil
}

func (s *journalEntryService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.mutateDraft(ctx, entryID,
		func(entry *domain.JournalEntry) error {
			return accounting.PostEntry(entry, userID, s.Now())
		},
		nil,
	)
	if err != nil {
		s.GetLogger(ctx).Warn("Journal entry not posted",
			slog.String("entry_id", entryID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.Metrics.RecordEntryTransition(string(domain.Posted))
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("total_amount", entry.TotalAmount.StringFixed(2)))
	return entry, nil
}

func (s *journalEntryService) CancelEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.mutateDraft(ctx, entryID,
		func(entry *domain.JournalEntry) error {
			return accounting.CancelEntry(entry, userID, s.Now())
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	s.Metrics.RecordEntryTransition(string(domain.Cancelled))
	s.LogInfo(ctx, "Journal entry cancelled", slog.String("entry_id", entryID))
	return entry, nil
}
