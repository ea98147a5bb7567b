package dto

import (
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CalculateVatRequest classifies a product and computes VAT on a base amount.
type CalculateVatRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"dgte0" swaggertype:"string" example:"1000.00"`
	BusinessType string          `json:"businessType"`
	ProductType  string          `json:"productType" example:"medicine"`
}

// CalculateSimpleVatRequest computes VAT for an explicit VAT type.
type CalculateSimpleVatRequest struct {
	Amount  decimal.Decimal `json:"amount" binding:"dgte0" swaggertype:"string" example:"1000.00"`
	VatType string          `json:"vatType" binding:"required,vattype" example:"STANDARD"`
}

// ReverseVatRequest splits a VAT-inclusive total.
type ReverseVatRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"dgte0" swaggertype:"string" example:"1200.00"`
	VatRate     decimal.Decimal `json:"vatRate" binding:"dgte0" swaggertype:"string" example:"20"`
}

// QuarterlyReturnRequest nets collected VAT against deductible VAT.
type QuarterlyReturnRequest struct {
	SalesVat    decimal.Decimal `json:"salesVat" binding:"dgte0" swaggertype:"string"`
	PurchaseVat decimal.Decimal `json:"purchaseVat" binding:"dgte0" swaggertype:"string"`
}

// ExemptionCheckParams is the query of the exemption check.
type ExemptionCheckParams struct {
	AnnualTurnover string `form:"annualTurnover" binding:"required,numeric" example:"450000"`
}

// VatCalculationResponse defines the data returned for a VAT computation.
type VatCalculationResponse struct {
	BaseAmount  string `json:"baseAmount"`
	VatAmount   string `json:"vatAmount"`
	TotalAmount string `json:"totalAmount"`
	VatRate     string `json:"vatRate"`
	VatType     string `json:"vatType"`
}

// ToVatCalculationResponse converts a domain.VatCalculationResult to its DTO.
func ToVatCalculationResponse(r domain.VatCalculationResult) VatCalculationResponse {
	return VatCalculationResponse{
		BaseAmount:  money.Format(r.BaseAmount),
		VatAmount:   money.Format(r.VatAmount),
		TotalAmount: money.Format(r.TotalAmount),
		VatRate:     money.Format(r.VatRate),
		VatType:     string(r.VatType),
	}
}

// ReverseVatResponse defines the data returned for a reverse VAT computation.
type ReverseVatResponse struct {
	TotalAmount string `json:"totalAmount"`
	BaseAmount  string `json:"baseAmount"`
	VatAmount   string `json:"vatAmount"`
	VatRate     string `json:"vatRate"`
}

// ToReverseVatResponse converts a domain.ReverseVatResult to its DTO.
func ToReverseVatResponse(r domain.ReverseVatResult) ReverseVatResponse {
	return ReverseVatResponse{
		TotalAmount: money.Format(r.TotalAmount),
		BaseAmount:  money.Format(r.BaseAmount),
		VatAmount:   money.Format(r.VatAmount),
		VatRate:     money.Format(r.VatRate),
	}
}

// QuarterlyReturnResponse defines the data returned for a quarterly return.
type QuarterlyReturnResponse struct {
	SalesVat    string `json:"salesVat"`
	PurchaseVat string `json:"purchaseVat"`
	NetVat      string `json:"netVat"`
	PaymentDue  string `json:"paymentDue"`
	RefundDue   string `json:"refundDue"`
	IsRefund    bool   `json:"isRefund"`
}

// ToQuarterlyReturnResponse converts a domain.QuarterlyVatReturn to its DTO.
func ToQuarterlyReturnResponse(r domain.QuarterlyVatReturn) QuarterlyReturnResponse {
	return QuarterlyReturnResponse{
		SalesVat:    money.Format(r.SalesVat),
		PurchaseVat: money.Format(r.PurchaseVat),
		NetVat:      money.Format(r.NetVat),
		PaymentDue:  money.Format(r.PaymentDue),
		RefundDue:   money.Format(r.RefundDue),
		IsRefund:    r.IsRefund,
	}
}

// ExemptionCheckResponse reports the exemption decision and the threshold it used.
type ExemptionCheckResponse struct {
	AnnualTurnover string `json:"annualTurnover"`
	Threshold      string `json:"threshold"`
	IsExempt       bool   `json:"isExempt"`
}

// VatRateResponse is one row of the VAT rate table.
type VatRateResponse struct {
	VatType             string `json:"vatType"`
	RatePercentage      string `json:"ratePercentage"`
	InputVatRecoverable bool   `json:"inputVatRecoverable"`
}

// ToVatRateResponses converts the rate table to DTOs.
func ToVatRateResponses(rates []domain.VatRateInfo) []VatRateResponse {
	res := make([]VatRateResponse, len(rates))
	for i, r := range rates {
		res[i] = VatRateResponse{
			VatType:             string(r.VatType),
			RatePercentage:      money.Format(r.RatePercentage),
			InputVatRecoverable: r.InputVatRecoverable,
		}
	}
	return res
}
