package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ListEntriesFilter narrows a journal entry listing.
type ListEntriesFilter struct {
	Status    *domain.EntryStatus
	EntryType *domain.EntryType
	Limit     int
	NextToken *string
}

// JournalEntryReader defines read operations for journal entries
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry with its lines ordered by line order.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a page of entries (without lines), newest first.
	// It returns the entries and a token for the next page, if any.
	ListEntries(ctx context.Context, filter ListEntriesFilter) ([]domain.JournalEntry, *string, error)

	// ListPostedLines retrieves every line of POSTED entries dated within [from, to].
	// A nil bound is open.
	ListPostedLines(ctx context.Context, from, to *time.Time) ([]domain.JournalEntryLine, error)
}

// JournalEntryWriter defines write operations for journal entries
type JournalEntryWriter interface {
	// SaveEntry persists a new entry together with its lines in one transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalEntryTransactionSupport defines the row-locking operations used to change
// a DRAFT entry (its lines or its status) atomically.
type JournalEntryTransactionSupport interface {
	// FindEntryByIDForUpdate loads an entry with its lines and locks the entry row.
	FindEntryByIDForUpdate(ctx context.Context, tx pgx.Tx, entryID string) (*domain.JournalEntry, error)

	// InsertLineInTx adds one line.
	InsertLineInTx(ctx context.Context, tx pgx.Tx, line domain.JournalEntryLine) error

	// DeleteLineInTx removes one line.
	DeleteLineInTx(ctx context.Context, tx pgx.Tx, entryID string, lineID string) error

	// UpdateEntryInTx writes status, total, posting and audit fields.
	UpdateEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error
}

// JournalEntryRepositoryFacade combines all journal-entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	JournalEntryTransactionSupport
}

// JournalEntryRepositoryWithTx extends JournalEntryRepositoryFacade with transaction capabilities
type JournalEntryRepositoryWithTx interface {
	JournalEntryRepositoryFacade
	TransactionManager
}
