package domain

import "github.com/shopspring/decimal"

// AccountBalance is the signed running balance of one account over a set of lines.
// Balance is positive on the account's natural side.
type AccountBalance struct {
	AccountCode string          `json:"accountCode"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"`
}
