package fiscal

import (
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Social contribution rates, in percent of gross salary.
var (
	CnssEmployeeRate = decimal.RequireFromString("4.48")
	CnssEmployerRate = decimal.RequireFromString("16.98")
	AmoEmployeeRate  = decimal.RequireFromString("2.26")
	AmoEmployerRate  = decimal.RequireFromString("3.96")
	FormationRate    = decimal.RequireFromString("1.60") // employer only
)

// TaxFreeThreshold is the monthly taxable income at or below which no income tax is due.
var TaxFreeThreshold = decimal.NewFromInt(2500)

type taxBracket struct {
	ceiling decimal.Decimal
	rate    decimal.Decimal
}

// taxBrackets are ordered by ceiling. Income above the last ceiling is taxed at topRate.
var taxBrackets = []taxBracket{
	{ceiling: decimal.NewFromInt(2500), rate: decimal.Zero},
	{ceiling: decimal.NewFromInt(4166), rate: decimal.NewFromInt(10)},
	{ceiling: decimal.NewFromInt(5000), rate: decimal.NewFromInt(20)},
	{ceiling: decimal.NewFromInt(6666), rate: decimal.NewFromInt(30)},
	{ceiling: decimal.NewFromInt(15000), rate: decimal.NewFromInt(34)},
	{ceiling: decimal.NewFromInt(120000), rate: decimal.NewFromInt(38)},
}

var topRate = decimal.NewFromInt(40)

// CnssEmployee is the employee social security share.
func CnssEmployee(gross decimal.Decimal) decimal.Decimal {
	return money.PercentOf(gross, CnssEmployeeRate)
}

// CnssEmployer is the employer social security share.
func CnssEmployer(gross decimal.Decimal) decimal.Decimal {
	return money.PercentOf(gross, CnssEmployerRate)
}

// AmoEmployee is the employee medical insurance share.
func AmoEmployee(gross decimal.Decimal) decimal.Decimal {
	return money.PercentOf(gross, AmoEmployeeRate)
}

// AmoEmployer is the employer medical insurance share.
func AmoEmployer(gross decimal.Decimal) decimal.Decimal {
	return money.PercentOf(gross, AmoEmployerRate)
}

// Formation is the employer-only professional training levy.
func Formation(gross decimal.Decimal) decimal.Decimal {
	return money.PercentOf(gross, FormationRate)
}

// TotalEmployeeDeductions is CNSS + AMO withheld from the employee, each rounded first.
func TotalEmployeeDeductions(gross decimal.Decimal) decimal.Decimal {
	return CnssEmployee(gross).Add(AmoEmployee(gross))
}

// TotalEmployerContributions is CNSS + AMO + formation paid on top of gross.
func TotalEmployerContributions(gross decimal.Decimal) decimal.Decimal {
	return money.Sum(CnssEmployer(gross), AmoEmployer(gross), Formation(gross))
}

// TaxableIncome is gross minus employee social deductions.
func TaxableIncome(gross decimal.Decimal) decimal.Decimal {
	return gross.Sub(TotalEmployeeDeductions(gross))
}

// IncomeTax walks the progressive brackets. Each bracket's slice is taxed at its
// own rate and rounded to 2 digits on its own before being added; the sum is
// never rounded as a whole.
func IncomeTax(taxable decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(TaxFreeThreshold) {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := taxable
	previous := decimal.Zero
	for i, b := range taxBrackets {
		if !remaining.IsPositive() {
			break
		}
		slice := decimal.Min(remaining, b.ceiling.Sub(previous))
		if i > 0 {
			tax = tax.Add(money.PercentOf(slice, b.rate))
		}
		remaining = remaining.Sub(slice)
		previous = b.ceiling
	}
	if remaining.IsPositive() {
		tax = tax.Add(money.PercentOf(remaining, topRate))
	}
	return tax
}

// NetSalary is gross - employee deductions - income tax.
func NetSalary(gross decimal.Decimal) decimal.Decimal {
	deductions := TotalEmployeeDeductions(gross)
	return gross.Sub(deductions).Sub(IncomeTax(gross.Sub(deductions)))
}

// CalculatePayroll computes the full breakdown for one gross salary.
func CalculatePayroll(gross decimal.Decimal) (domain.PayrollResult, error) {
	if err := money.ValidateNonNegative("grossSalary", gross); err != nil {
		return domain.PayrollResult{}, err
	}

	cnssEmp := CnssEmployee(gross)
	amoEmp := AmoEmployee(gross)
	deductions := cnssEmp.Add(amoEmp)
	taxable := gross.Sub(deductions)
	incomeTax := IncomeTax(taxable)

	cnssEr := CnssEmployer(gross)
	amoEr := AmoEmployer(gross)
	formation := Formation(gross)
	employerTotal := money.Sum(cnssEr, amoEr, formation)

	return domain.PayrollResult{
		GrossSalary:                gross,
		CnssEmployee:               cnssEmp,
		AmoEmployee:                amoEmp,
		TotalEmployeeDeductions:    deductions,
		TaxableIncome:              taxable,
		IncomeTax:                  incomeTax,
		NetSalary:                  taxable.Sub(incomeTax),
		CnssEmployer:               cnssEr,
		AmoEmployer:                amoEr,
		Formation:                  formation,
		TotalEmployerContributions: employerTotal,
		TotalEmployerCost:          gross.Add(employerTotal),
	}, nil
}

// CalculatePayrollRun computes payslips for every payable employee, in input order.
// Employees that are not payable are listed in Skipped. A negative salary fails
// the whole run.
func CalculatePayrollRun(employees []domain.PayrollEmployee) (domain.PayrollRun, error) {
	run := domain.PayrollRun{
		Payslips:          make([]domain.PayslipLine, 0, len(employees)),
		Skipped:           []string{},
		TotalGross:        decimal.Zero,
		TotalNet:          decimal.Zero,
		TotalIncomeTax:    decimal.Zero,
		TotalEmployerCost: decimal.Zero,
	}
	for _, e := range employees {
		if !e.Status.IsPayable() {
			run.Skipped = append(run.Skipped, e.EmployeeID)
			continue
		}
		res, err := CalculatePayroll(e.BaseSalary)
		if err != nil {
			return domain.PayrollRun{}, err
		}
		run.Payslips = append(run.Payslips, domain.PayslipLine{EmployeeID: e.EmployeeID, FullName: e.FullName, Result: res})
		run.TotalGross = run.TotalGross.Add(res.GrossSalary)
		run.TotalNet = run.TotalNet.Add(res.NetSalary)
		run.TotalIncomeTax = run.TotalIncomeTax.Add(res.IncomeTax)
		run.TotalEmployerCost = run.TotalEmployerCost.Add(res.TotalEmployerCost)
	}
	return run, nil
}
