package mapping

import (
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/models"
)

// ToModelJournalEntry converts a domain entry to its row. Lines are mapped separately.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryNumber: d.EntryNumber,
		EntryDate:   d.EntryDate,
		Description: d.Description,
		Reference:   nullable(d.Reference),
		EntryType:   string(d.EntryType),
		Status:      string(d.Status),
		TotalAmount: d.TotalAmount,
		PostedDate:  d.PostedDate,
		PostedBy:    nullable(d.PostedBy),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts an entry row and its line rows to a domain entry
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalEntryLine) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryNumber: m.EntryNumber,
		EntryDate:   m.EntryDate,
		Description: m.Description,
		Reference:   deref(m.Reference),
		EntryType:   domain.EntryType(m.EntryType),
		Status:      domain.EntryStatus(m.Status),
		TotalAmount: m.TotalAmount,
		PostedDate:  m.PostedDate,
		PostedBy:    deref(m.PostedBy),
		Lines:       ToDomainJournalLineSlice(lines),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain line to its row
func ToModelJournalLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountCode: d.AccountCode,
		Description: nullable(d.Description),
		Debit:       d.Debit,
		Credit:      d.Credit,
		LineOrder:   d.LineOrder,
		Reference:   nullable(d.Reference),
	}
}

// ToDomainJournalLine converts a line row to a domain line
func ToDomainJournalLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Description: deref(m.Description),
		Debit:       m.Debit,
		Credit:      m.Credit,
		LineOrder:   m.LineOrder,
		Reference:   deref(m.Reference),
	}
}

// ToDomainJournalLineSlice converts line rows to domain lines
func ToDomainJournalLineSlice(ms []models.JournalEntryLine) []domain.JournalEntryLine {
	ds := make([]domain.JournalEntryLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
