package dto

import (
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CalculatePayrollRequest carries one monthly gross salary.
type CalculatePayrollRequest struct {
	GrossSalary decimal.Decimal `json:"grossSalary" binding:"dgte0" swaggertype:"string" example:"10000.00"`
}

// PayrollEmployeeRequest is one employee of a payroll run.
type PayrollEmployeeRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	FullName   string          `json:"fullName"`
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"dgte0" swaggertype:"string"`
	Status     string          `json:"status" binding:"required,oneof=ACTIVE INACTIVE TERMINATED ON_LEAVE"`
}

// PayrollRunRequest lists the employees of one period.
type PayrollRunRequest struct {
	Employees []PayrollEmployeeRequest `json:"employees" binding:"required,min=1,dive"`
}

// ToPayrollEmployees converts the request to domain employees.
func (r PayrollRunRequest) ToPayrollEmployees() []domain.PayrollEmployee {
	employees := make([]domain.PayrollEmployee, len(r.Employees))
	for i, e := range r.Employees {
		employees[i] = domain.PayrollEmployee{
			EmployeeID: e.EmployeeID,
			FullName:   e.FullName,
			BaseSalary: e.BaseSalary,
			Status:     domain.EmploymentStatus(e.Status),
		}
	}
	return employees
}

// PayrollResponse defines the data returned for one payroll computation.
type PayrollResponse struct {
	GrossSalary                string `json:"grossSalary"`
	CnssEmployee               string `json:"cnssEmployee"`
	AmoEmployee                string `json:"amoEmployee"`
	TotalEmployeeDeductions    string `json:"totalEmployeeDeductions"`
	TaxableIncome              string `json:"taxableIncome"`
	IncomeTax                  string `json:"incomeTax"`
	NetSalary                  string `json:"netSalary"`
	CnssEmployer               string `json:"cnssEmployer"`
	AmoEmployer                string `json:"amoEmployer"`
	Formation                  string `json:"formation"`
	TotalEmployerContributions string `json:"totalEmployerContributions"`
	TotalEmployerCost          string `json:"totalEmployerCost"`
}

// ToPayrollResponse converts a domain.PayrollResult to PayrollResponse DTO.
func ToPayrollResponse(r domain.PayrollResult) PayrollResponse {
	return PayrollResponse{
		GrossSalary:                money.Format(r.GrossSalary),
		CnssEmployee:               money.Format(r.CnssEmployee),
		AmoEmployee:                money.Format(r.AmoEmployee),
		TotalEmployeeDeductions:    money.Format(r.TotalEmployeeDeductions),
		TaxableIncome:              money.Format(r.TaxableIncome),
		IncomeTax:                  money.Format(r.IncomeTax),
		NetSalary:                  money.Format(r.NetSalary),
		CnssEmployer:               money.Format(r.CnssEmployer),
		AmoEmployer:                money.Format(r.AmoEmployer),
		Formation:                  money.Format(r.Formation),
		TotalEmployerContributions: money.Format(r.TotalEmployerContributions),
		TotalEmployerCost:          money.Format(r.TotalEmployerCost),
	}
}

// PayslipResponse pairs an employee with their computed breakdown.
type PayslipResponse struct {
	EmployeeID string          `json:"employeeID"`
	FullName   string          `json:"fullName,omitempty"`
	Payroll    PayrollResponse `json:"payroll"`
}

// PayrollRunResponse defines the data returned for a payroll run.
type PayrollRunResponse struct {
	Payslips          []PayslipResponse `json:"payslips"`
	Skipped           []string          `json:"skipped"`
	TotalGross        string            `json:"totalGross"`
	TotalNet          string            `json:"totalNet"`
	TotalIncomeTax    string            `json:"totalIncomeTax"`
	TotalEmployerCost string            `json:"totalEmployerCost"`
}

// ToPayrollRunResponse converts a domain.PayrollRun to its DTO.
func ToPayrollRunResponse(run domain.PayrollRun) PayrollRunResponse {
	slips := make([]PayslipResponse, len(run.Payslips))
	for i, p := range run.Payslips {
		slips[i] = PayslipResponse{EmployeeID: p.EmployeeID, FullName: p.FullName, Payroll: ToPayrollResponse(p.Result)}
	}
	return PayrollRunResponse{
		Payslips:          slips,
		Skipped:           run.Skipped,
		TotalGross:        money.Format(run.TotalGross),
		TotalNet:          money.Format(run.TotalNet),
		TotalIncomeTax:    money.Format(run.TotalIncomeTax),
		TotalEmployerCost: money.Format(run.TotalEmployerCost),
	}
}
