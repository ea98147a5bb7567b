package services

import (
	"context"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/core/fiscal"
	portssvc "github.com/SscSPs/compta_maroc/internal/core/ports/services"
	"github.com/SscSPs/compta_maroc/internal/dto"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

const vatEngine = "vat"

type vatService struct {
	BaseService
}

// NewVatService creates the VAT engine service.
func NewVatService(options ...ServiceOption) portssvc.VatSvc {
	return &vatService{BaseService: newBaseService(options...)}
}

var _ portssvc.VatSvc = (*vatService)(nil)

func (s *vatService) CalculateVat(ctx context.Context, req dto.CalculateVatRequest) (domain.VatCalculationResult, error) {
	res, err := fiscal.CalculateMoroccanVat(req.Amount, req.BusinessType, req.ProductType)
	s.Record(ctx, vatEngine, "calculate", err)
	return res, err
}

func (s *vatService) CalculateSimpleVat(ctx context.Context, req dto.CalculateSimpleVatRequest) (domain.VatCalculationResult, error) {
	res, err := s.calculateSimple(req)
	s.Record(ctx, vatEngine, "calculate_simple", err)
	return res, err
}

func (s *vatService) calculateSimple(req dto.CalculateSimpleVatRequest) (domain.VatCalculationResult, error) {
	if err := money.ValidateNonNegative("amount", req.Amount); err != nil {
		return domain.VatCalculationResult{}, err
	}
	vatType, err := fiscal.ParseVatType(req.VatType)
	if err != nil {
		return domain.VatCalculationResult{}, err
	}
	rate, err := fiscal.RateForType(vatType)
	if err != nil {
		return domain.VatCalculationResult{}, err
	}
	vat, err := fiscal.VatAmountForType(req.Amount, vatType)
	if err != nil {
		return domain.VatCalculationResult{}, err
	}
	return domain.VatCalculationResult{
		BaseAmount:  req.Amount,
		VatAmount:   vat,
		TotalAmount: fiscal.TotalWithVat(req.Amount, rate),
		VatRate:     rate,
		VatType:     vatType,
	}, nil
}

func (s *vatService) ReverseVat(ctx context.Context, req dto.ReverseVatRequest) (domain.ReverseVatResult, error) {
	res, err := fiscal.ReverseVat(req.TotalAmount, req.VatRate)
	s.Record(ctx, vatEngine, "reverse", err)
	return res, err
}

func (s *vatService) QuarterlyReturn(ctx context.Context, req dto.QuarterlyReturnRequest) (domain.QuarterlyVatReturn, error) {
	if err := money.ValidateNonNegative("salesVat", req.SalesVat); err != nil {
		s.Record(ctx, vatEngine, "quarterly_return", err)
		return domain.QuarterlyVatReturn{}, err
	}
	if err := money.ValidateNonNegative("purchaseVat", req.PurchaseVat); err != nil {
		s.Record(ctx, vatEngine, "quarterly_return", err)
		return domain.QuarterlyVatReturn{}, err
	}
	ret := fiscal.QuarterlyReturn(req.SalesVat, req.PurchaseVat)
	s.Record(ctx, vatEngine, "quarterly_return", nil)
	return ret, nil
}

func (s *vatService) IsVatExempt(ctx context.Context, annualTurnover decimal.Decimal) (bool, error) {
	if err := money.ValidateNonNegative("annualTurnover", annualTurnover); err != nil {
		s.Record(ctx, vatEngine, "exemption_check", err)
		return false, err
	}
	s.Record(ctx, vatEngine, "exemption_check", nil)
	return fiscal.IsVatExempt(annualTurnover), nil
}

func (s *vatService) RateTable(ctx context.Context) []domain.VatRateInfo {
	return fiscal.RateTable()
}
