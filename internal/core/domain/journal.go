package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft     EntryStatus = "DRAFT"
	Posted    EntryStatus = "POSTED"
	Cancelled EntryStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible.
func (s EntryStatus) IsTerminal() bool {
	return s == Posted || s == Cancelled
}

// ParseEntryStatus converts a tag into an EntryStatus.
func ParseEntryStatus(s string) (EntryStatus, error) {
	st := EntryStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case Draft, Posted, Cancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown entry status %q", apperrors.ErrInvalidInput, s)
}

// EntryType classifies the business event behind a journal entry.
type EntryType string

const (
	EntrySales          EntryType = "SALES"
	EntryPurchases      EntryType = "PURCHASES"
	EntryPayments       EntryType = "PAYMENTS"
	EntryReceipts       EntryType = "RECEIPTS"
	EntryAdjustments    EntryType = "ADJUSTMENTS"
	EntryOpeningBalance EntryType = "OPENING_BALANCE"
	EntryClosing        EntryType = "CLOSING"
	EntryTransfer       EntryType = "TRANSFER"
	EntryDepreciation   EntryType = "DEPRECIATION"
	EntryProvision      EntryType = "PROVISION"
)

// ParseEntryType converts a tag into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case EntrySales, EntryPurchases, EntryPayments, EntryReceipts, EntryAdjustments,
		EntryOpeningBalance, EntryClosing, EntryTransfer, EntryDepreciation, EntryProvision:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown entry type %q", apperrors.ErrInvalidInput, s)
}

// JournalEntry is one double-entry bookkeeping transaction.
// Lines are owned by the entry and ordered by LineOrder.
type JournalEntry struct {
	EntryID     string             `json:"entryID"`
	EntryNumber string             `json:"entryNumber"`
	EntryDate   time.Time          `json:"entryDate"`
	Description string             `json:"description"`
	Reference   string             `json:"reference,omitempty"`
	EntryType   EntryType          `json:"entryType"`
	Status      EntryStatus        `json:"status"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	PostedDate  *time.Time         `json:"postedDate,omitempty"`
	PostedBy    string             `json:"postedBy,omitempty"`
	Lines       []JournalEntryLine `json:"lines,omitempty"`
	AuditFields
}

// JournalEntryLine affects one account. At most one of Debit and Credit is non-zero.
type JournalEntryLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	LineOrder   int             `json:"lineOrder"`
	Reference   string          `json:"reference,omitempty"`
}

// IsDebit reports whether the line debits its account.
func (l JournalEntryLine) IsDebit() bool {
	return l.Debit.IsPositive()
}

// IsCredit reports whether the line credits its account.
func (l JournalEntryLine) IsCredit() bool {
	return l.Credit.IsPositive()
}

// Amount returns whichever side is set.
func (l JournalEntryLine) Amount() decimal.Decimal {
	if l.IsDebit() {
		return l.Debit
	}
	return l.Credit
}
