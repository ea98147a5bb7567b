// Package money holds the fixed-point helpers every fiscal computation goes through.
// Currency values carry 2 fractional digits, rate math carries 4, and rounding is
// half-up only where a value is handed back to a caller.
package money

import (
	"fmt"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// CurrencyPlaces is the scale of every amount returned to callers.
	CurrencyPlaces int32 = 2
	// RatePlaces is the scale used for intermediate rate divisors.
	RatePlaces int32 = 4
)

var hundred = decimal.NewFromInt(100)

// Hundred returns the decimal 100.
func Hundred() decimal.Decimal {
	return hundred
}

// Round2 rounds half-up (away from zero) to 2 fractional digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Round4 rounds half-up (away from zero) to 4 fractional digits.
func Round4(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// PercentOf returns round2(base * ratePercent / 100). The product is kept exact.
func PercentOf(base, ratePercent decimal.Decimal) decimal.Decimal {
	return Round2(base.Mul(ratePercent).Div(hundred))
}

// SafeDiv divides num by den rounded to places, or returns zero when den is zero.
// A zero denominator means "not applicable" here, never an error.
func SafeDiv(num, den decimal.Decimal, places int32) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.DivRound(den, places)
}

// Ratio returns part as a percentage of whole, 2 digits, zero when whole is zero.
func Ratio(part, whole decimal.Decimal) decimal.Decimal {
	return SafeDiv(part.Mul(hundred), whole, CurrencyPlaces)
}

// MarginPercentage returns (price-cost)/cost at 4 digits times 100; zero when cost is zero.
func MarginPercentage(price, cost decimal.Decimal) decimal.Decimal {
	if cost.IsZero() {
		return decimal.Zero
	}
	return SafeDiv(price.Sub(cost), cost, RatePlaces).Mul(hundred)
}

// ValidateNonNegative rejects negative amounts for fields that must be >= 0.
func ValidateNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrInvalidInput, field, d.String())
	}
	return nil
}

// ValidatePositive rejects zero or negative amounts.
func ValidatePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero, got %s", apperrors.ErrInvalidInput, field, d.String())
	}
	return nil
}

// IsCurrencyScale reports whether d needs no rounding to 2 fractional digits.
func IsCurrencyScale(d decimal.Decimal) bool {
	return d.Equal(Round2(d))
}

// Sum adds amounts in the given order.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Format renders an amount with exactly 2 fractional digits, e.g. "1737.60".
func Format(d decimal.Decimal) string {
	return d.StringFixed(CurrencyPlaces)
}
