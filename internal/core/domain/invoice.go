package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks an invoice through its billing cycle.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoiceViewed    InvoiceStatus = "VIEWED"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
)

// InvoiceItem is one billed line. LineTotal is before tax.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VatRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	VatAmount   decimal.Decimal `json:"vatAmount"`
	Unit        string          `json:"unit,omitempty"`
}

// Invoice holds items and the totals derived from them.
// Subtotal, VatAmount and TotalAmount are only valid after a recalculation.
type Invoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VatAmount     decimal.Decimal `json:"vatAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
}

// BalanceDue is what remains to be paid.
func (i Invoice) BalanceDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// IsFullyPaid reports whether payments cover the total.
func (i Invoice) IsFullyPaid() bool {
	return i.PaidAmount.GreaterThanOrEqual(i.TotalAmount)
}

// IsOverdue reports whether the due date has passed with a balance outstanding.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.DueDate != nil && now.After(*i.DueDate) && !i.IsFullyPaid()
}
