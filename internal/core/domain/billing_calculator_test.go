package domain_test

import (
	"testing"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTaxRates_Calculate(t *testing.T) {
	tests := []struct {
		name           string
		billingValue   string
		dpDeduction    string
		retention      string
		taxBase        string
		vat            string
		withholdingTax string
		netReceivable  string
	}{
		{
			name:           "500 million with 75 million down payment",
			billingValue:   "500000000",
			dpDeduction:    "75000000",
			retention:      "25000000",
			taxBase:        "400000000",
			vat:            "44000000",
			withholdingTax: "10600000",
			netReceivable:  "433400000",
		},
		{
			name:           "600 million with 90 million down payment",
			billingValue:   "600000000",
			dpDeduction:    "90000000",
			retention:      "30000000",
			taxBase:        "480000000",
			vat:            "52800000",
			withholdingTax: "12720000",
			netReceivable:  "520080000",
		},
		{
			name:           "no down payment",
			billingValue:   "100000000",
			dpDeduction:    "0",
			retention:      "5000000",
			taxBase:        "95000000",
			vat:            "10450000",
			withholdingTax: "2517500",
			netReceivable:  "102932500",
		},
		{
			name:           "each field rounded on its own",
			billingValue:   "1234567",
			dpDeduction:    "0",
			retention:      "61728",   // 61728.35
			taxBase:        "1172839", // 1234567 - 61728
			vat:            "129012",  // 129012.29
			withholdingTax: "31080",   // 31080.2335
			netReceivable:  "1270771",
		},
	}

	rates := domain.DefaultTaxRates()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rates.Calculate(d(tt.billingValue), d(tt.dpDeduction))
			require.NoError(t, err)

			assert.True(t, d(tt.retention).Equal(got.Retention), "retention: got %s", got.Retention)
			assert.True(t, d(tt.taxBase).Equal(got.TaxBase), "taxBase: got %s", got.TaxBase)
			assert.True(t, d(tt.vat).Equal(got.VAT), "vat: got %s", got.VAT)
			assert.True(t, d(tt.withholdingTax).Equal(got.WithholdingTax), "withholdingTax: got %s", got.WithholdingTax)
			assert.True(t, d(tt.netReceivable).Equal(got.NetReceivable), "netReceivable: got %s", got.NetReceivable)

			// Identities hold exactly on the rounded terms.
			assert.True(t, got.TaxBase.Equal(got.BillingValue.Sub(got.DownPaymentDeduction).Sub(got.Retention)))
			assert.True(t, got.NetReceivable.Equal(got.TaxBase.Add(got.VAT).Sub(got.WithholdingTax)))
		})
	}
}

func TestTaxRates_Calculate_InvalidInput(t *testing.T) {
	tests := []struct {
		name         string
		billingValue string
		dpDeduction  string
	}{
		{"zero billing value", "0", "0"},
		{"negative billing value", "-100", "0"},
		{"negative deduction", "1000000", "-1"},
		{"deduction equals billing value", "1000000", "1000000"},
		{"deduction greater than billing value", "1000000", "2000000"},
		{"retention leaves no tax base", "1000000", "950000"},
	}

	rates := domain.DefaultTaxRates()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rates.Calculate(d(tt.billingValue), d(tt.dpDeduction))
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		})
	}
}

func TestTaxRates_Calculate_Idempotent(t *testing.T) {
	rates := domain.DefaultTaxRates()
	first, err := rates.Calculate(d("777777777"), d("12345678"))
	require.NoError(t, err)
	second, err := rates.Calculate(d("777777777"), d("12345678"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTaxRates_Calculate_CustomRates(t *testing.T) {
	rates := domain.TaxRates{
		RetentionRate:   d("0.10"),
		VATRate:         d("0.12"),
		WithholdingRate: d("0.02"),
	}
	got, err := rates.Calculate(d("1000000"), d("100000"))
	require.NoError(t, err)

	assert.True(t, d("100000").Equal(got.Retention))
	assert.True(t, d("800000").Equal(got.TaxBase))
	assert.True(t, d("96000").Equal(got.VAT))
	assert.True(t, d("16000").Equal(got.WithholdingTax))
	assert.True(t, d("880000").Equal(got.NetReceivable))
}
