package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountCategory refines an AccountType following the PCMN layout.
type AccountCategory string

const (
	CurrentAssets       AccountCategory = "CURRENT_ASSETS"
	FixedAssets         AccountCategory = "FIXED_ASSETS"
	CashAndEquivalents  AccountCategory = "CASH_AND_EQUIVALENTS"
	CurrentLiabilities  AccountCategory = "CURRENT_LIABILITIES"
	LongTermLiabilities AccountCategory = "LONG_TERM_LIABILITIES"
	Capital             AccountCategory = "CAPITAL"
	Reserves            AccountCategory = "RESERVES"
	RetainedEarnings    AccountCategory = "RETAINED_EARNINGS"
	OperatingRevenue    AccountCategory = "OPERATING_REVENUE"
	FinancialRevenue    AccountCategory = "FINANCIAL_REVENUE"
	ExceptionalRevenue  AccountCategory = "EXCEPTIONAL_REVENUE"
	OperatingExpenses   AccountCategory = "OPERATING_EXPENSES"
	FinancialExpenses   AccountCategory = "FINANCIAL_EXPENSES"
	ExceptionalExpenses AccountCategory = "EXCEPTIONAL_EXPENSES"
	TaxExpenses         AccountCategory = "TAX_EXPENSES"
)

// categoryTypes maps each category to the only account type it may belong to.
var categoryTypes = map[AccountCategory]AccountType{
	CurrentAssets:       Asset,
	FixedAssets:         Asset,
	CashAndEquivalents:  Asset,
	CurrentLiabilities:  Liability,
	LongTermLiabilities: Liability,
	Capital:             Equity,
	Reserves:            Equity,
	RetainedEarnings:    Equity,
	OperatingRevenue:    Revenue,
	FinancialRevenue:    Revenue,
	ExceptionalRevenue:  Revenue,
	OperatingExpenses:   Expense,
	FinancialExpenses:   Expense,
	ExceptionalExpenses: Expense,
	TaxExpenses:         Expense,
}

// ParseAccountType converts a tag into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown account type %q", apperrors.ErrInvalidInput, s)
}

// ParseAccountCategory converts a tag into an AccountCategory.
func ParseAccountCategory(s string) (AccountCategory, error) {
	c := AccountCategory(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := categoryTypes[c]; !ok {
		return "", fmt.Errorf("%w: unknown account category %q", apperrors.ErrInvalidInput, s)
	}
	return c, nil
}

// TypeOf reports which account type the category belongs to.
func (c AccountCategory) TypeOf() AccountType {
	return categoryTypes[c]
}

// ChartOfAccountsEntry is one classification node of the chart of accounts.
// ParentCode is empty for root accounts.
type ChartOfAccountsEntry struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Category    AccountCategory `json:"category"`
	ParentCode  string          `json:"parentCode,omitempty"`
	PCMNCode    string          `json:"pcmnCode,omitempty"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// HasParent reports whether the node hangs under another account.
func (a ChartOfAccountsEntry) HasParent() bool {
	return a.ParentCode != ""
}
