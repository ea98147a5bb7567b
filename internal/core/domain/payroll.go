package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EmploymentStatus is the contract state of an employee.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "ACTIVE"
	EmploymentInactive   EmploymentStatus = "INACTIVE"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
	EmploymentOnLeave    EmploymentStatus = "ON_LEAVE"
)

// ParseEmploymentStatus converts a tag into an EmploymentStatus.
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	st := EmploymentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case EmploymentActive, EmploymentInactive, EmploymentTerminated, EmploymentOnLeave:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown employment status %q", apperrors.ErrInvalidInput, s)
}

// IsPayable reports whether a salary is due for the period.
func (s EmploymentStatus) IsPayable() bool {
	return s == EmploymentActive || s == EmploymentOnLeave
}

// PayrollResult is the monthly breakdown for one gross salary.
type PayrollResult struct {
	GrossSalary                decimal.Decimal `json:"grossSalary"`
	CnssEmployee               decimal.Decimal `json:"cnssEmployee"`
	AmoEmployee                decimal.Decimal `json:"amoEmployee"`
	TotalEmployeeDeductions    decimal.Decimal `json:"totalEmployeeDeductions"`
	TaxableIncome              decimal.Decimal `json:"taxableIncome"`
	IncomeTax                  decimal.Decimal `json:"incomeTax"`
	NetSalary                  decimal.Decimal `json:"netSalary"`
	CnssEmployer               decimal.Decimal `json:"cnssEmployer"`
	AmoEmployer                decimal.Decimal `json:"amoEmployer"`
	Formation                  decimal.Decimal `json:"formation"`
	TotalEmployerContributions decimal.Decimal `json:"totalEmployerContributions"`
	TotalEmployerCost          decimal.Decimal `json:"totalEmployerCost"`
}

// PayrollEmployee is the minimal employee record a payroll run needs.
type PayrollEmployee struct {
	EmployeeID string           `json:"employeeID"`
	FullName   string           `json:"fullName"`
	BaseSalary decimal.Decimal  `json:"baseSalary"`
	Status     EmploymentStatus `json:"status"`
}

// PayslipLine pairs an employee with their computed breakdown.
type PayslipLine struct {
	EmployeeID string        `json:"employeeID"`
	FullName   string        `json:"fullName"`
	Result     PayrollResult `json:"result"`
}

// PayrollRun aggregates the payslips of one period.
type PayrollRun struct {
	Payslips          []PayslipLine   `json:"payslips"`
	Skipped           []string        `json:"skipped"`
	TotalGross        decimal.Decimal `json:"totalGross"`
	TotalNet          decimal.Decimal `json:"totalNet"`
	TotalIncomeTax    decimal.Decimal `json:"totalIncomeTax"`
	TotalEmployerCost decimal.Decimal `json:"totalEmployerCost"`
}
