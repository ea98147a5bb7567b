package services

import (
	portsrepo "github.com/SscSPs/compta_maroc/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Vat:            NewVatService(options...),
		Payroll:        NewPayrollService(options...),
		Invoice:        NewInvoiceService(options...),
		Recommendation: NewRecommendationService(options...),
		Account:        NewAccountService(repos.AccountRepo, options...),
		JournalEntry:   NewJournalEntryService(repos.JournalRepo, repos.AccountRepo, options...),
		Ledger:         NewLedgerService(repos.JournalRepo, repos.AccountRepo, options...),
	}
}
