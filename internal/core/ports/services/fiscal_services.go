package services

import (
	"context"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/shopspring/decimal"
)

// VatSvc exposes the VAT engine.
type VatSvc interface {
	// CalculateVat classifies the product type and computes VAT on the amount.
	CalculateVat(ctx context.Context, req dto.CalculateVatRequest) (domain.VatCalculationResult, error)

	// CalculateSimpleVat computes VAT for an explicit VAT type.
	CalculateSimpleVat(ctx context.Context, req dto.CalculateSimpleVatRequest) (domain.VatCalculationResult, error)

	// ReverseVat splits a VAT-inclusive total into base and VAT.
	ReverseVat(ctx context.Context, req dto.ReverseVatRequest) (domain.ReverseVatResult, error)

	// QuarterlyReturn nets collected VAT against deductible VAT.
	QuarterlyReturn(ctx context.Context, req dto.QuarterlyReturnRequest) (domain.QuarterlyVatReturn, error)

	// IsVatExempt reports whether the annual turnover is under the exemption threshold.
	IsVatExempt(ctx context.Context, annualTurnover decimal.Decimal) (bool, error)

	// RateTable lists every VAT type with its rate.
	RateTable(ctx context.Context) []domain.VatRateInfo
}

// PayrollSvc exposes the payroll engine.
type PayrollSvc interface {
	// CalculatePayroll computes the monthly breakdown of one gross salary.
	CalculatePayroll(ctx context.Context, grossSalary decimal.Decimal) (domain.PayrollResult, error)

	// RunPayroll computes payslips for every payable employee of a period.
	RunPayroll(ctx context.Context, employees []domain.PayrollEmployee) (domain.PayrollRun, error)
}

// InvoiceSvc prices invoice items and derives invoice totals.
type InvoiceSvc interface {
	CalculateInvoice(ctx context.Context, req dto.CalculateInvoiceRequest) (*domain.Invoice, error)
}

// RecommendationSvc evaluates the advisory threshold rules.
type RecommendationSvc interface {
	GenerateRecommendations(ctx context.Context, req dto.RecommendationsRequest) []domain.Recommendation
}
