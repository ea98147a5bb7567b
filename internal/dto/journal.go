package dto

import (
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit or credit line.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit" binding:"dgte0,dscale2"`
	Credit      decimal.Decimal `json:"credit" binding:"dgte0,dscale2"`
	Reference   string          `json:"reference"`
}

// CreateJournalEntryRequest defines the data needed to open a DRAFT journal entry.
type CreateJournalEntryRequest struct {
	EntryNumber string               `json:"entryNumber"` // Generated when empty
	EntryDate   time.Time            `json:"entryDate" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Reference   string               `json:"reference"`
	EntryType   string               `json:"entryType" binding:"required,entrytype"`
	Lines       []JournalLineRequest `json:"lines" binding:"dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string `json:"lineID"`
	AccountCode string `json:"accountCode"`
	Description string `json:"description,omitempty"`
	Debit       string `json:"debit"`
	Credit      string `json:"credit"`
	LineOrder   int    `json:"lineOrder"`
	Reference   string `json:"reference,omitempty"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	EntryNumber string                `json:"entryNumber"`
	EntryDate   time.Time             `json:"entryDate"`
	Description string                `json:"description"`
	Reference   string                `json:"reference,omitempty"`
	EntryType   string                `json:"entryType"`
	Status      string                `json:"status"`
	TotalAmount string                `json:"totalAmount"`
	PostedDate  *time.Time            `json:"postedDate,omitempty"`
	PostedBy    string                `json:"postedBy,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
}

// ToJournalLineResponse converts a domain.JournalEntryLine to JournalLineResponse DTO.
func ToJournalLineResponse(l domain.JournalEntryLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountCode: l.AccountCode,
		Description: l.Description,
		Debit:       money.Format(l.Debit),
		Credit:      money.Format(l.Credit),
		LineOrder:   l.LineOrder,
		Reference:   l.Reference,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = ToJournalLineResponse(l)
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		EntryNumber: e.EntryNumber,
		EntryDate:   e.EntryDate,
		Description: e.Description,
		Reference:   e.Reference,
		EntryType:   string(e.EntryType),
		Status:      string(e.Status),
		TotalAmount: money.Format(e.TotalAmount),
		PostedDate:  e.PostedDate,
		PostedBy:    e.PostedBy,
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT POSTED CANCELLED"`
	EntryType string `form:"entryType" binding:"omitempty,entrytype"`
}

// ListJournalEntriesResponse wraps a page of entries and the cursor for the next one.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// LedgerBalancesParams bounds the posted lines folded into balances.
type LedgerBalancesParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountCode string `json:"accountCode"`
	AccountType string `json:"accountType"`
	DebitTotal  string `json:"debitTotal"`
	CreditTotal string `json:"creditTotal"`
	Balance     string `json:"balance"`
}

// ToAccountBalanceResponses converts computed balances to response DTOs.
func ToAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = AccountBalanceResponse{
			AccountCode: b.AccountCode,
			AccountType: string(b.AccountType),
			DebitTotal:  money.Format(b.DebitTotal),
			CreditTotal: money.Format(b.CreditTotal),
			Balance:     money.Format(b.Balance),
		}
	}
	return res
}
