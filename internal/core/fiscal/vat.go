// Package fiscal implements the Moroccan VAT, payroll and invoice computations and
// the advisory threshold rules. Every function is pure: package-level tables are
// never written after init, so callers may invoke them concurrently.
package fiscal

import (
	"fmt"
	"strings"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/SscSPs/compta_maroc/internal/utils/money"
	"github.com/shopspring/decimal"
)

// VatExemptionThreshold is the annual turnover (MAD) under which a business is
// VAT exempt. The recommendation rules use the same constant for the
// VAT registration trigger.
var VatExemptionThreshold = decimal.RequireFromString("500000.00")

var vatRates = map[domain.VatType]decimal.Decimal{
	domain.VatStandard:     decimal.RequireFromString("20.00"),
	domain.VatReduced1:     decimal.RequireFromString("14.00"),
	domain.VatReduced2:     decimal.RequireFromString("10.00"),
	domain.VatReduced3:     decimal.RequireFromString("7.00"),
	domain.VatSuperReduced: decimal.RequireFromString("5.50"),
	domain.VatExempt:       decimal.Zero,
	domain.VatZeroRate:     decimal.Zero,
}

// productVatTypes is keyed on lower-cased product type.
var productVatTypes = map[string]domain.VatType{
	"food_basic":     domain.VatExempt,
	"bread":          domain.VatExempt,
	"milk":           domain.VatExempt,
	"food_processed": domain.VatReduced2,
	"medicine":       domain.VatReduced3,
	"books":          domain.VatReduced3,
	"hotel":          domain.VatReduced1,
	"restaurant":     domain.VatReduced1,
	"luxury":         domain.VatStandard,
	"alcohol":        domain.VatStandard,
	"tobacco":        domain.VatStandard,
}

// ParseVatType converts a tag into a VatType.
func ParseVatType(s string) (domain.VatType, error) {
	t := domain.VatType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := vatRates[t]; !ok {
		return "", fmt.Errorf("%w: unknown VAT type %q", apperrors.ErrInvalidInput, s)
	}
	return t, nil
}

// RateForType returns the percentage for a VAT tag.
func RateForType(vatType domain.VatType) (decimal.Decimal, error) {
	rate, ok := vatRates[vatType]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown VAT type %q", apperrors.ErrInvalidInput, vatType)
	}
	return rate, nil
}

// RecoverableInputVat reports whether VAT paid on a purchase of this type can be
// deducted. Exempt supplies sit outside the VAT system and carry no recovery right;
// zero-rated ones stay inside it.
func RecoverableInputVat(vatType domain.VatType) bool {
	_, known := vatRates[vatType]
	return known && vatType != domain.VatExempt
}

// RateTable lists every tag with its rate, in declaration order.
func RateTable() []domain.VatRateInfo {
	table := make([]domain.VatRateInfo, 0, len(domain.AllVatTypes))
	for _, t := range domain.AllVatTypes {
		table = append(table, domain.VatRateInfo{
			VatType:             t,
			RatePercentage:      vatRates[t],
			InputVatRecoverable: RecoverableInputVat(t),
		})
	}
	return table
}

// VatAmount returns round2(base * ratePercent / 100).
func VatAmount(base, ratePercent decimal.Decimal) decimal.Decimal {
	return money.PercentOf(base, ratePercent)
}

// TotalWithVat returns base + VatAmount(base, ratePercent).
func TotalWithVat(base, ratePercent decimal.Decimal) decimal.Decimal {
	return base.Add(VatAmount(base, ratePercent))
}

// BaseFromTotal strips VAT from a VAT-inclusive total. The divisor is rounded to 4
// digits before the final 2-digit rounding.
func BaseFromTotal(total, ratePercent decimal.Decimal) decimal.Decimal {
	divisor := decimal.NewFromInt(1).Add(money.Round4(ratePercent.Div(money.Hundred())))
	return money.SafeDiv(total, divisor, money.CurrencyPlaces)
}

// VatFromTotal returns total - BaseFromTotal(total, ratePercent).
func VatFromTotal(total, ratePercent decimal.Decimal) decimal.Decimal {
	return total.Sub(BaseFromTotal(total, ratePercent))
}

// VatAmountForType is VatAmount using the rate of a tag.
func VatAmountForType(base decimal.Decimal, vatType domain.VatType) (decimal.Decimal, error) {
	rate, err := RateForType(vatType)
	if err != nil {
		return decimal.Zero, err
	}
	return VatAmount(base, rate), nil
}

// ReverseVat splits a VAT-inclusive total into base and VAT.
func ReverseVat(total, ratePercent decimal.Decimal) (domain.ReverseVatResult, error) {
	if err := money.ValidateNonNegative("total", total); err != nil {
		return domain.ReverseVatResult{}, err
	}
	if err := money.ValidateNonNegative("vatRate", ratePercent); err != nil {
		return domain.ReverseVatResult{}, err
	}
	base := BaseFromTotal(total, ratePercent)
	return domain.ReverseVatResult{
		TotalAmount: total,
		BaseAmount:  base,
		VatAmount:   total.Sub(base),
		VatRate:     ratePercent,
	}, nil
}

// ClassifyVatType picks the VAT tag for a product type; businessType is accepted
// for future rules but not branched on. Unknown or empty product types are STANDARD.
func ClassifyVatType(businessType, productType string) domain.VatType {
	if t, ok := productVatTypes[strings.ToLower(strings.TrimSpace(productType))]; ok {
		return t
	}
	return domain.VatStandard
}

// CalculateMoroccanVat classifies the product and computes VAT on amount.
func CalculateMoroccanVat(amount decimal.Decimal, businessType, productType string) (domain.VatCalculationResult, error) {
	if err := money.ValidateNonNegative("amount", amount); err != nil {
		return domain.VatCalculationResult{}, err
	}
	vatType := ClassifyVatType(businessType, productType)
	rate := vatRates[vatType]
	vat := VatAmount(amount, rate)
	return domain.VatCalculationResult{
		BaseAmount:  amount,
		VatAmount:   vat,
		TotalAmount: amount.Add(vat),
		VatRate:     rate,
		VatType:     vatType,
	}, nil
}

// IsVatExempt reports annualTurnover < VatExemptionThreshold. Exactly the
// threshold is not exempt.
func IsVatExempt(annualTurnover decimal.Decimal) bool {
	return annualTurnover.LessThan(VatExemptionThreshold)
}

// QuarterlyReturn nets sales VAT against deductible purchase VAT.
func QuarterlyReturn(salesVat, purchaseVat decimal.Decimal) domain.QuarterlyVatReturn {
	net := salesVat.Sub(purchaseVat)
	ret := domain.QuarterlyVatReturn{
		SalesVat:    salesVat,
		PurchaseVat: purchaseVat,
		NetVat:      net,
		PaymentDue:  decimal.Zero,
		RefundDue:   decimal.Zero,
	}
	if net.IsNegative() {
		ret.RefundDue = net.Neg()
		ret.IsRefund = true
	} else {
		ret.PaymentDue = net
	}
	return ret
}
