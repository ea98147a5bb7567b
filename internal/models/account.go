package models

// ChartOfAccounts is one row of the chart_of_accounts table.
// Empty ParentCode, Category and PCMNCode are stored as NULL.
type ChartOfAccounts struct {
	AccountCode string  `db:"account_code"`
	AccountName string  `db:"account_name"`
	AccountType string  `db:"account_type"`
	Category    *string `db:"category"`
	ParentCode  *string `db:"parent_code"`
	PCMNCode    *string `db:"pcmn_code"`
	Description *string `db:"description"`
	IsActive    bool    `db:"is_active"`
	AuditFields
}
