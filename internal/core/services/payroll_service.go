package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/core/fiscal"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

const payrollEngine = "payroll"

type payrollService struct {
	BaseService
}

// NewPayrollService creates the payroll engine service.
func NewPayrollService(options ...ServiceOption) portssvc.PayrollSvc {
	return &payrollService{BaseService: newBaseService(options...)}
}

var _ portssvc.PayrollSvc = (*payrollService)(nil)

func (s *payrollService) CalculatePayroll(ctx context.Context, grossSalary decimal.Decimal) (domain.PayrollResult, error) {
	res, err := fiscal.CalculatePayroll(grossSalary)
	s.Record(ctx, payrollEngine, "calculate", err)
	return res, err
}

func (s *payrollService) RunPayroll(ctx context.Context, employees []domain.PayrollEmployee) (domain.PayrollRun, error) {
	run, err := fiscal.CalculatePayrollRun(employees)
	s.Record(ctx, payrollEngine, "run", err)
	if err != nil {
		return domain.PayrollRun{}, err
	}
	s.LogInfo(ctx, "Payroll run computed",
		slog.Int("payslips", len(run.Payslips)),
		slog.Int("skipped", len(run.Skipped)),
		slog.String("total_gross", money.Format(run.TotalGross)))
	return run, nil
}
