package mapping

import (
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/models"
)

// ToModelAccount converts a domain chart entry to its row
func ToModelAccount(d domain.ChartOfAccountsEntry) models.ChartOfAccounts {
	return models.ChartOfAccounts{
		AccountCode: d.AccountCode,
		AccountName: d.AccountName,
		AccountType: string(d.AccountType),
		Category:    nullable(string(d.Category)),
		ParentCode:  nullable(d.ParentCode),
		PCMNCode:    nullable(d.PCMNCode),
		Description: nullable(d.Description),
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a chart row to a domain chart entry
func ToDomainAccount(m models.ChartOfAccounts) domain.ChartOfAccountsEntry {
	return domain.ChartOfAccountsEntry{
		AccountCode: m.AccountCode,
		AccountName: m.AccountName,
		AccountType: domain.AccountType(m.AccountType),
		Category:    domain.AccountCategory(deref(m.Category)),
		ParentCode:  deref(m.ParentCode),
		PCMNCode:    deref(m.PCMNCode),
		Description: deref(m.Description),
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of chart rows to a slice of domain entries
func ToDomainAccountSlice(ms []models.ChartOfAccounts) []domain.ChartOfAccountsEntry {
	ds := make([]domain.ChartOfAccountsEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
