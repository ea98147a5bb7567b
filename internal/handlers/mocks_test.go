package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccountsEntry, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccountsEntry), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.ChartOfAccountsEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccountsEntry), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.ChartOfAccountsEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccountsEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalEntryService ---
type MockJournalEntryService struct {
	mock.Mock
}

func (m *MockJournalEntryService) entryResult(args mock.Arguments) (*domain.JournalEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, entryID))
}

func (m *MockJournalEntryService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalEntryService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, req, userID))
}

func (m *MockJournalEntryService) AddLine(ctx context.Context, entryID string, req dto.JournalLineRequest, userID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, entryID, req, userID))
}

func (m *MockJournalEntryService) RemoveLine(ctx context.Context, entryID string, lineID string, userID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, entryID, lineID, userID))
}

func (m *MockJournalEntryService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, entryID, userID))
}

func (m *MockJournalEntryService) CancelEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	return m.entryResult(m.Called(ctx, entryID, userID))
}

var _ portssvc.JournalEntrySvcFacade = (*MockJournalEntryService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetAccountBalances(ctx context.Context, from, to *time.Time) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

var _ portssvc.LedgerSvc = (*MockLedgerService)(nil)
