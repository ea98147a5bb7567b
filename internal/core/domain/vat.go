package domain

import (
	"github.com/shopspring/decimal"
)

// VatType is one of the Moroccan VAT rate tags.
// EXEMPT and ZERO_RATE share a 0% rate but are distinct: an exempt supply carries
// no VAT liability at all, a zero-rated one is taxable at 0% and keeps the
// right to recover input VAT.
type VatType string

const (
	VatStandard     VatType = "STANDARD"
	VatReduced1     VatType = "REDUCED_1"
	VatReduced2     VatType = "REDUCED_2"
	VatReduced3     VatType = "REDUCED_3"
	VatSuperReduced VatType = "SUPER_REDUCED"
	VatExempt       VatType = "EXEMPT"
	VatZeroRate     VatType = "ZERO_RATE"
)

// AllVatTypes lists the tags in rate-table order.
var AllVatTypes = []VatType{
	VatStandard, VatReduced1, VatReduced2, VatReduced3, VatSuperReduced, VatExempt, VatZeroRate,
}

// VatCalculationResult summarizes one forward VAT computation.
type VatCalculationResult struct {
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	VatAmount   decimal.Decimal `json:"vatAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	VatRate     decimal.Decimal `json:"vatRate"`
	VatType     VatType         `json:"vatType"`
}

// ReverseVatResult splits a VAT-inclusive total into base and VAT.
type ReverseVatResult struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	VatAmount   decimal.Decimal `json:"vatAmount"`
	VatRate     decimal.Decimal `json:"vatRate"`
}

// QuarterlyVatReturn is the net position of one declaration period.
// NetVat is negative when a refund is due.
type QuarterlyVatReturn struct {
	SalesVat    decimal.Decimal `json:"salesVat"`
	PurchaseVat decimal.Decimal `json:"purchaseVat"`
	NetVat      decimal.Decimal `json:"netVat"`
	PaymentDue  decimal.Decimal `json:"paymentDue"`
	RefundDue   decimal.Decimal `json:"refundDue"`
	IsRefund    bool            `json:"isRefund"`
}

// VatRateInfo describes one entry of the rate table.
type VatRateInfo struct {
	VatType             VatType         `json:"vatType"`
	RatePercentage      decimal.Decimal `json:"ratePercentage"`
	InputVatRecoverable bool            `json:"inputVatRecoverable"`
}
