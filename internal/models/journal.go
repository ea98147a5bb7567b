package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one row of the journal_entries table.
type JournalEntry struct {
	EntryID     string          `db:"entry_id"`
	EntryNumber string          `db:"entry_number"`
	EntryDate   time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	Reference   *string         `db:"reference"`
	EntryType   string          `db:"entry_type"`
	Status      string          `db:"status"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PostedDate  *time.Time      `db:"posted_date"`
	PostedBy    *string         `db:"posted_by"`
	AuditFields
}

// JournalEntryLine is one row of the journal_entry_lines table.
type JournalEntryLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountCode string          `db:"account_code"`
	Description *string         `db:"description"`
	Debit       decimal.Decimal `db:"debit_amount"`
	Credit      decimal.Decimal `db:"credit_amount"`
	LineOrder   int             `db:"line_order"`
	Reference   *string         `db:"reference"`
}
