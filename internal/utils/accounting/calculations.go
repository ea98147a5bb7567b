package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the correct sign to a line amount based on account type.
// This is used in both services and repositories to ensure consistent accounting logic.
func CalculateSignedAmount(line domain.JournalEntryLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount()
	isDebit := line.IsDebit()

	// DEBIT to ASSET/EXPENSE -> Positive (+)
	// CREDIT to ASSET/EXPENSE -> Negative (-)
	// DEBIT to LIABILITY/EQUITY/REVENUE -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+)
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown account type '%s' for account %s", apperrors.ErrInvalidInput, accountType, line.AccountCode)
	}
	return signedAmount, nil
}

// ComputeAccountBalances folds lines into one balance per account, sorted by account code.
// Every referenced account must be present in accountTypes.
func ComputeAccountBalances(lines []domain.JournalEntryLine, accountTypes map[string]domain.AccountType) ([]domain.AccountBalance, error) {
	byCode := make(map[string]*domain.AccountBalance)
	for _, line := range lines {
		accountType, ok := accountTypes[line.AccountCode]
		if !ok {
			return nil, fmt.Errorf("%w: account type not found for account %s", apperrors.ErrNotFound, line.AccountCode)
		}
		signed, err := CalculateSignedAmount(line, accountType)
		if err != nil {
			return nil, err
		}

		bal, ok := byCode[line.AccountCode]
		if !ok {
			bal = &domain.AccountBalance{
				AccountCode: line.AccountCode,
				AccountType: accountType,
				DebitTotal:  decimal.Zero,
				CreditTotal: decimal.Zero,
				Balance:     decimal.Zero,
			}
			byCode[line.AccountCode] = bal
		}
		bal.DebitTotal = bal.DebitTotal.Add(line.Debit)
		bal.CreditTotal = bal.CreditTotal.Add(line.Credit)
		bal.Balance = bal.Balance.Add(signed)
	}

	balances := make([]domain.AccountBalance, 0, len(byCode))
	for _, b := range byCode {
		balances = append(balances, *b)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountCode < balances[j].AccountCode
	})
	return balances, nil
}

// ValidateChart checks that account codes are unique, that every parent exists,
// that each category agrees with its account type and that the hierarchy has no cycle.
func ValidateChart(accounts []domain.ChartOfAccountsEntry) error {
	parents := make(map[string]string, len(accounts))
	for _, a := range accounts {
		if a.AccountCode == "" {
			return fmt.Errorf("%w: account code is required", apperrors.ErrInvalidInput)
		}
		if _, dup := parents[a.AccountCode]; dup {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, a.AccountCode)
		}
		if a.Category != "" && a.Category.TypeOf() != a.AccountType {
			return fmt.Errorf("%w: category %s does not belong to account type %s (account %s)",
				apperrors.ErrInvalidInput, a.Category, a.AccountType, a.AccountCode)
		}
		parents[a.AccountCode] = a.ParentCode
	}

	for code, parent := range parents {
		if parent == "" {
			continue
		}
		if _, ok := parents[parent]; !ok {
			return fmt.Errorf("%w: parent %s of account %s does not exist", apperrors.ErrInvalidInput, parent, code)
		}
	}

	for code := range parents {
		seen := map[string]bool{code: true}
		for p := parents[code]; p != ""; p = parents[p] {
			if seen[p] {
				return fmt.Errorf("%w: account hierarchy cycle through %s", apperrors.ErrInvalidInput, code)
			}
			seen[p] = true
		}
	}
	return nil
}
