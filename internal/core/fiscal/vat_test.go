package fiscal

import (
	"sync"
	"testing"

	"github.com/SscSPs/compta_maroc/internal/apperrors"
	"github.com/SscSPs/compta_maroc/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVatAmountAndTotal(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		rate      string
		wantVat   string
		wantTotal string
	}{
		{"standard", "1000.00", "20.00", "200.00", "1200.00"},
		{"super reduced", "100.00", "5.50", "5.50", "105.50"},
		{"half rounds up", "0.25", "10.00", "0.03", "0.28"},
		{"zero rate", "999.99", "0", "0.00", "999.99"},
		{"zero base", "0", "20.00", "0.00", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVat, VatAmount(dec(tt.base), dec(tt.rate)).StringFixed(2))
			assert.Equal(t, tt.wantTotal, TotalWithVat(dec(tt.base), dec(tt.rate)).StringFixed(2))
		})
	}
}

func TestBaseFromTotal(t *testing.T) {
	assert.Equal(t, "1000.00", BaseFromTotal(dec("1200.00"), dec("20")).StringFixed(2))
	assert.Equal(t, "200.00", VatFromTotal(dec("1200.00"), dec("20")).StringFixed(2))
	assert.Equal(t, "100.00", BaseFromTotal(dec("105.50"), dec("5.5")).StringFixed(2))
	assert.Equal(t, "500.00", BaseFromTotal(dec("500.00"), decimal.Zero).StringFixed(2))
}

func TestBaseFromTotalRoundTrip(t *testing.T) {
	tolerance := dec("0.01")
	bases := []string{"0.01", "1.00", "19.99", "100.00", "1234.56", "99999.99", "250000.37"}
	for _, vt := range domain.AllVatTypes {
		rate, err := RateForType(vt)
		require.NoError(t, err)
		for _, b := range bases {
			base := dec(b)
			got := BaseFromTotal(TotalWithVat(base, rate), rate)
			assert.True(t, got.Sub(base).Abs().LessThanOrEqual(tolerance),
				"round trip for %s at %s gave %s", b, vt, got)
		}
	}
}

func TestRateForType(t *testing.T) {
	expected := map[domain.VatType]string{
		domain.VatStandard:     "20.00",
		domain.VatReduced1:     "14.00",
		domain.VatReduced2:     "10.00",
		domain.VatReduced3:     "7.00",
		domain.VatSuperReduced: "5.50",
		domain.VatExempt:       "0.00",
		domain.VatZeroRate:     "0.00",
	}
	for vt, want := range expected {
		rate, err := RateForType(vt)
		require.NoError(t, err)
		assert.Equal(t, want, rate.StringFixed(2), string(vt))
	}

	_, err := RateForType(domain.VatType("LUXURY_PLUS"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestParseVatType(t *testing.T) {
	vt, err := ParseVatType(" reduced_1 ")
	require.NoError(t, err)
	assert.Equal(t, domain.VatReduced1, vt)

	_, err = ParseVatType("FOO")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTypeBasedVariants(t *testing.T) {
	vat, err := VatAmountForType(dec("200.00"), domain.VatReduced1)
	require.NoError(t, err)
	assert.Equal(t, "28.00", vat.StringFixed(2))

	vat, err = VatAmountForType(dec("200.00"), domain.VatExempt)
	require.NoError(t, err)
	assert.Equal(t, "0.00", vat.StringFixed(2))

	_, err = VatAmountForType(dec("200.00"), domain.VatType("NOPE"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestClassifyVatType(t *testing.T) {
	tests := map[string]domain.VatType{
		"food_basic":     domain.VatExempt,
		"BREAD":          domain.VatExempt,
		"Milk":           domain.VatExempt,
		"food_processed": domain.VatReduced2,
		"medicine":       domain.VatReduced3,
		"books":          domain.VatReduced3,
		"hotel":          domain.VatReduced1,
		"restaurant":     domain.VatReduced1,
		"luxury":         domain.VatStandard,
		"alcohol":        domain.VatStandard,
		"tobacco":        domain.VatStandard,
		"electronics":    domain.VatStandard,
		"":               domain.VatStandard,
	}
	for product, want := range tests {
		assert.Equal(t, want, ClassifyVatType("RETAIL", product), "product %q", product)
	}
}

func TestCalculateMoroccanVat(t *testing.T) {
	res, err := CalculateMoroccanVat(dec("1000.00"), "PHARMACY", "MEDICINE")
	require.NoError(t, err)
	assert.Equal(t, domain.VatReduced3, res.VatType)
	assert.Equal(t, "7.00", res.VatRate.StringFixed(2))
	assert.Equal(t, "1000.00", res.BaseAmount.StringFixed(2))
	assert.Equal(t, "70.00", res.VatAmount.StringFixed(2))
	assert.Equal(t, "1070.00", res.TotalAmount.StringFixed(2))

	res, err = CalculateMoroccanVat(dec("50.00"), "", "bread")
	require.NoError(t, err)
	assert.Equal(t, domain.VatExempt, res.VatType)
	assert.True(t, res.VatAmount.IsZero())
	assert.Equal(t, "50.00", res.TotalAmount.StringFixed(2))

	_, err = CalculateMoroccanVat(dec("-1.00"), "", "bread")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestReverseVat(t *testing.T) {
	res, err := ReverseVat(dec("1140.00"), dec("14"))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", res.BaseAmount.StringFixed(2))
	assert.Equal(t, "140.00", res.VatAmount.StringFixed(2))
	assert.True(t, res.BaseAmount.Add(res.VatAmount).Equal(res.TotalAmount))

	_, err = ReverseVat(dec("-5"), dec("14"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = ReverseVat(dec("5"), dec("-14"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestIsVatExempt(t *testing.T) {
	assert.True(t, IsVatExempt(dec("0")))
	assert.True(t, IsVatExempt(dec("499999.99")))
	assert.False(t, IsVatExempt(dec("500000.00")))
	assert.False(t, IsVatExempt(dec("500000.01")))
}

func TestQuarterlyReturn(t *testing.T) {
	payable := QuarterlyReturn(dec("5000.00"), dec("3000.00"))
	assert.Equal(t, "2000.00", payable.NetVat.StringFixed(2))
	assert.Equal(t, "2000.00", payable.PaymentDue.StringFixed(2))
	assert.True(t, payable.RefundDue.IsZero())
	assert.False(t, payable.IsRefund)

	refund := QuarterlyReturn(dec("3000.00"), dec("5000.00"))
	assert.Equal(t, "-2000.00", refund.NetVat.StringFixed(2))
	assert.True(t, refund.PaymentDue.IsZero())
	assert.Equal(t, "2000.00", refund.RefundDue.StringFixed(2))
	assert.True(t, refund.IsRefund)

	even := QuarterlyReturn(dec("1000.00"), dec("1000.00"))
	assert.True(t, even.NetVat.IsZero())
	assert.True(t, even.PaymentDue.IsZero())
	assert.False(t, even.IsRefund)
}

func TestRecoverableInputVat(t *testing.T) {
	assert.False(t, RecoverableInputVat(domain.VatExempt))
	assert.True(t, RecoverableInputVat(domain.VatZeroRate))
	assert.True(t, RecoverableInputVat(domain.VatStandard))
	assert.False(t, RecoverableInputVat(domain.VatType("UNKNOWN")))
}

func TestRateTable(t *testing.T) {
	table := RateTable()
	require.Len(t, table, len(domain.AllVatTypes))
	for i, row := range table {
		assert.Equal(t, domain.AllVatTypes[i], row.VatType)
	}
	assert.Equal(t, "20.00", table[0].RatePercentage.StringFixed(2))
}

func TestVatConcurrentCallsAgree(t *testing.T) {
	want, err := CalculateMoroccanVat(dec("1234.56"), "", "hotel")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]domain.VatCalculationResult, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = CalculateMoroccanVat(dec("1234.56"), "", "hotel")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.True(t, want.VatAmount.Equal(got.VatAmount))
		assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
	}
}

func TestQuarterlyReturnSmallFigures(t *testing.T) {
	refund := QuarterlyReturn(dec("1000"), dec("1500"))
	assert.Equal(t, "-500.00", refund.NetVat.StringFixed(2))
	assert.True(t, refund.PaymentDue.IsZero())
	assert.Equal(t, "500.00", refund.RefundDue.StringFixed(2))

	due := QuarterlyReturn(dec("1500"), dec("1000"))
	assert.Equal(t, "500.00", due.NetVat.StringFixed(2))
	assert.Equal(t, "500.00", due.PaymentDue.StringFixed(2))
	assert.True(t, due.RefundDue.IsZero())
}
