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

const invoiceEngine = "invoice"

type invoiceService struct {
	BaseService
}

// NewInvoiceService creates the invoice totals service.
func NewInvoiceService(options ...ServiceOption) portssvc.InvoiceSvc {
	return &invoiceService{BaseService: newBaseService(options...)}
}

var _ portssvc.InvoiceSvc = (*invoiceService)(nil)

func (s *invoiceService) CalculateInvoice(ctx context.Context, req dto.CalculateInvoiceRequest) (*domain.Invoice, error) {
	inv, err := s.buildInvoice(req)
	s.Record(ctx, invoiceEngine, "calculate", err)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) buildInvoice(req dto.CalculateInvoiceRequest) (*domain.Invoice, error) {
	if err := money.ValidateNonNegative("paidAmount", req.PaidAmount); err != nil {
		return nil, err
	}
	inv := &domain.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		Status:        domain.InvoiceDraft,
		Items:         make([]domain.InvoiceItem, 0, len(req.Items)),
		PaidAmount:    req.PaidAmount,
	}
	for _, it := range req.Items {
		rate, err := itemRate(it)
		if err != nil {
			return nil, err
		}
		item, err := fiscal.NewInvoiceItem(it.Description, it.Quantity, it.UnitPrice, rate)
		if err != nil {
			return nil, err
		}
		item.Unit = it.Unit
		fiscal.AddInvoiceItem(inv, item)
	}
	return inv, nil
}

// itemRate resolves the rate of an item: explicit VAT type, then explicit rate, then STANDARD.
func itemRate(it dto.InvoiceItemRequest) (decimal.Decimal, error) {
	if it.VatType != "" {
		vatType, err := fiscal.ParseVatType(it.VatType)
		if err != nil {
			return decimal.Zero, err
		}
		return fiscal.RateForType(vatType)
	}
	if it.VatRate != nil {
		return *it.VatRate, nil
	}
	return fiscal.RateForType(domain.VatStandard)
}
