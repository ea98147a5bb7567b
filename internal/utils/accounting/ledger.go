// Package accounting holds the journal entry state machine and the balance rules
// applied over the chart of accounts. Nothing here touches storage.
package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidateLine checks a single journal line. Exactly one side must carry a
// positive amount with at most 2 fractional digits.
func ValidateLine(line domain.JournalEntryLine) error {
	if line.AccountCode == "" {
		return fmt.Errorf("%w: account code is required on line %s", apperrors.ErrInvalidInput, line.LineID)
	}
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("%w: debit and credit must not be negative on line %s", apperrors.ErrInvalidInput, line.LineID)
	}
	if line.Debit.IsPositive() && line.Credit.IsPositive() {
		return fmt.Errorf("%w: line %s sets both debit and credit", apperrors.ErrInvalidInput, line.LineID)
	}
	if !line.IsDebit() && !line.IsCredit() {
		return fmt.Errorf("%w: line %s has no amount", apperrors.ErrInvalidInput, line.LineID)
	}
	if !money.IsCurrencyScale(line.Debit) || !money.IsCurrencyScale(line.Credit) {
		return fmt.Errorf("%w: line %s amount has more than %d fractional digits",
			apperrors.ErrInvalidInput, line.LineID, money.CurrencyPlaces)
	}
	return nil
}

// SumDebits adds debits in line order.
func SumDebits(lines []domain.JournalEntryLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Debit)
	}
	return sum
}

// SumCredits adds credits in line order.
func SumCredits(lines []domain.JournalEntryLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Credit)
	}
	return sum
}

// ValidateEntryBalance requires at least one line, every line valid, and
// debits exactly equal to credits. An empty entry is never balanced.
func ValidateEntryBalance(entry domain.JournalEntry) error {
	if len(entry.Lines) == 0 {
		return fmt.Errorf("%w: journal entry %s has no lines", apperrors.ErrInvalidInput, entry.EntryID)
	}
	for _, l := range entry.Lines {
		if err := ValidateLine(l); err != nil {
			return err
		}
	}
	debits, credits := SumDebits(entry.Lines), SumCredits(entry.Lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: entry %s debits %s, credits %s",
			apperrors.ErrImbalancedEntry, entry.EntryID, debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

func requireDraft(entry *domain.JournalEntry, action string) error {
	if entry.Status.IsTerminal() {
		return fmt.Errorf("%w: cannot %s entry %s in status %s", apperrors.ErrIllegalTransition, action, entry.EntryID, entry.Status)
	}
	return nil
}

// PostEntry moves a balanced DRAFT entry to POSTED. The entry is left untouched on error.
func PostEntry(entry *domain.JournalEntry, postedBy string, at time.Time) error {
	if err := requireDraft(entry, "post"); err != nil {
		return err
	}
	if err := ValidateEntryBalance(*entry); err != nil {
		return err
	}
	entry.Status = domain.Posted
	entry.TotalAmount = SumDebits(entry.Lines)
	entry.PostedDate = &at
	entry.PostedBy = postedBy
	entry.Touch(postedBy, at)
	return nil
}

// CancelEntry moves a DRAFT entry to CANCELLED without any balance check.
func CancelEntry(entry *domain.JournalEntry, cancelledBy string, at time.Time) error {
	if err := requireDraft(entry, "cancel"); err != nil {
		return err
	}
	entry.Status = domain.Cancelled
	entry.Touch(cancelledBy, at)
	return nil
}

// RecalculateTotals re-derives TotalAmount from the current line set.
func RecalculateTotals(entry *domain.JournalEntry) {
	entry.TotalAmount = SumDebits(entry.Lines)
}

func nextLineOrder(lines []domain.JournalEntryLine) int {
	next := 1
	for _, l := range lines {
		if l.LineOrder >= next {
			next = l.LineOrder + 1
		}
	}
	return next
}

// AddLine appends a validated line to a DRAFT entry and recalculates totals.
// The returned line carries the assigned id and order index.
func AddLine(entry *domain.JournalEntry, line domain.JournalEntryLine) (domain.JournalEntryLine, error) {
	if err := requireDraft(entry, "add a line to"); err != nil {
		return domain.JournalEntryLine{}, err
	}
	if err := ValidateLine(line); err != nil {
		return domain.JournalEntryLine{}, err
	}
	if line.LineID == "" {
		line.LineID = uuid.NewString()
	}
	line.EntryID = entry.EntryID
	line.LineOrder = nextLineOrder(entry.Lines)

	entry.Lines = append(entry.Lines, line)
	RecalculateTotals(entry)
	return line, nil
}

// RemoveLine drops a line from a DRAFT entry and recalculates totals.
func RemoveLine(entry *domain.JournalEntry, lineID string) error {
	if err := requireDraft(entry, "remove a line from"); err != nil {
		return err
	}
	for i, l := range entry.Lines {
		if l.LineID == lineID {
			entry.Lines = append(entry.Lines[:i:i], entry.Lines[i+1:]...)
			RecalculateTotals(entry)
			return nil
		}
	}
	return fmt.Errorf("%w: line %s on entry %s", apperrors.ErrNotFound, lineID, entry.EntryID)
}
