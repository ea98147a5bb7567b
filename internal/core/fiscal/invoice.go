package fiscal

import (
	"fmt"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var maxVatRate = decimal.NewFromInt(100)

// NewInvoiceItem prices one line: lineTotal = round2(qty * unitPrice),
// vat = round2(lineTotal * vatRate / 100).
func NewInvoiceItem(description string, quantity, unitPrice, vatRate decimal.Decimal) (domain.InvoiceItem, error) {
	if description == "" {
		return domain.InvoiceItem{}, fmt.Errorf("%w: item description is required", apperrors.ErrInvalidInput)
	}
	if err := money.ValidatePositive("quantity", quantity); err != nil {
		return domain.InvoiceItem{}, err
	}
	if err := money.ValidateNonNegative("unitPrice", unitPrice); err != nil {
		return domain.InvoiceItem{}, err
	}
	if err := money.ValidateNonNegative("vatRate", vatRate); err != nil {
		return domain.InvoiceItem{}, err
	}
	if vatRate.GreaterThan(maxVatRate) {
		return domain.InvoiceItem{}, fmt.Errorf("%w: vatRate must not exceed 100, got %s", apperrors.ErrInvalidInput, vatRate)
	}

	lineTotal := money.Round2(quantity.Mul(unitPrice))
	return domain.InvoiceItem{
		ItemID:      uuid.NewString(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		VatRate:     vatRate,
		LineTotal:   lineTotal,
		VatAmount:   VatAmount(lineTotal, vatRate),
	}, nil
}

// RecalculateInvoice derives subtotal, VAT and total from the current items.
// It must run after every change to the item set.
func RecalculateInvoice(inv *domain.Invoice) {
	subtotal := decimal.Zero
	vat := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.LineTotal)
		vat = vat.Add(item.VatAmount)
	}
	inv.Subtotal = subtotal
	inv.VatAmount = vat
	inv.TotalAmount = subtotal.Add(vat)
}

// AddInvoiceItem appends an item and recalculates in the same step.
func AddInvoiceItem(inv *domain.Invoice, item domain.InvoiceItem) {
	inv.Items = append(inv.Items, item)
	RecalculateInvoice(inv)
}

// RemoveInvoiceItem drops the item with itemID and recalculates in the same step.
func RemoveInvoiceItem(inv *domain.Invoice, itemID string) error {
	for i, item := range inv.Items {
		if item.ItemID == itemID {
			inv.Items = append(inv.Items[:i:i], inv.Items[i+1:]...)
			RecalculateInvoice(inv)
			return nil
		}
	}
	return fmt.Errorf("%w: invoice item %s", apperrors.ErrNotFound, itemID)
}
