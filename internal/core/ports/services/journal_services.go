package services

import (
	"context"
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/dto"
)

// JournalEntryReaderSvc defines read operations for journal entries
type JournalEntryReaderSvc interface {
	// GetEntryByID retrieves an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries, newest first.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalEntryWriterSvc defines write operations for journal entries
type JournalEntryWriterSvc interface {
	// CreateEntry persists a new DRAFT entry with its initial lines.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// AddLine appends a line to a DRAFT entry.
	AddLine(ctx context.Context, entryID string, req dto.JournalLineRequest, userID string) (*domain.JournalEntry, error)

	// RemoveLine drops a line from a DRAFT entry.
	RemoveLine(ctx context.Context, entryID string, lineID string, userID string) (*domain.JournalEntry, error)

	// PostEntry moves a balanced DRAFT entry to POSTED.
	PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)

	// CancelEntry moves a DRAFT entry to CANCELLED.
	CancelEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalEntrySvcFacade combines all journal-entry service interfaces
type JournalEntrySvcFacade interface {
	JournalEntryReaderSvc
	JournalEntryWriterSvc
}

// LedgerSvc folds posted lines into account balances.
type LedgerSvc interface {
	// GetAccountBalances returns one balance per account touched by POSTED entries
	// dated within [from, to]. A nil bound is open.
	GetAccountBalances(ctx context.Context, from, to *time.Time) ([]domain.AccountBalance, error)
}
