package dto

import (
	"time"

	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one billed line. VatType wins over VatRate when both are set.
type InvoiceItemRequest struct {
	Description string           `json:"description" binding:"required"`
	Quantity    decimal.Decimal  `json:"quantity" binding:"dgte0" swaggertype:"string"`
	UnitPrice   decimal.Decimal  `json:"unitPrice" binding:"dgte0" swaggertype:"string"`
	VatRate     *decimal.Decimal `json:"vatRate" swaggertype:"string"`
	VatType     string           `json:"vatType" binding:"omitempty,vattype"`
	Unit        string           `json:"unit"`
}

// CalculateInvoiceRequest carries the items of an invoice to total.
type CalculateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber"`
	InvoiceDate   time.Time            `json:"invoiceDate"`
	DueDate       *time.Time           `json:"dueDate"`
	PaidAmount    decimal.Decimal      `json:"paidAmount" binding:"dgte0" swaggertype:"string"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemResponse defines the data returned for a priced invoice line.
type InvoiceItemResponse struct {
	ItemID      string `json:"itemID"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	VatRate     string `json:"vatRate"`
	LineTotal   string `json:"lineTotal"`
	VatAmount   string `json:"vatAmount"`
	Unit        string `json:"unit,omitempty"`
}

// InvoiceResponse defines the data returned for a totalled invoice.
type InvoiceResponse struct {
	InvoiceNumber string                `json:"invoiceNumber,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      string                `json:"subtotal"`
	VatAmount     string                `json:"vatAmount"`
	TotalAmount   string                `json:"totalAmount"`
	PaidAmount    string                `json:"paidAmount"`
	BalanceDue    string                `json:"balanceDue"`
	IsFullyPaid   bool                  `json:"isFullyPaid"`
	IsOverdue     bool                  `json:"isOverdue"`
}

// ToInvoiceResponse converts a domain.Invoice to its DTO, evaluating overdue state at now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = InvoiceItemResponse{
			ItemID:      it.ItemID,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money.Format(it.UnitPrice),
			VatRate:     money.Format(it.VatRate),
			LineTotal:   money.Format(it.LineTotal),
			VatAmount:   money.Format(it.VatAmount),
			Unit:        it.Unit,
		}
	}
	return InvoiceResponse{
		InvoiceNumber: inv.InvoiceNumber,
		Items:         items,
		Subtotal:      money.Format(inv.Subtotal),
		VatAmount:     money.Format(inv.VatAmount),
		TotalAmount:   money.Format(inv.TotalAmount),
		PaidAmount:    money.Format(inv.PaidAmount),
		BalanceDue:    money.Format(inv.BalanceDue()),
		IsFullyPaid:   inv.IsFullyPaid(),
		IsOverdue:     inv.IsOverdue(now),
	}
}
