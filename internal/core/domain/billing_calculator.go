package domain

import (
	"fmt"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TaxRates holds the percentages used to derive billing amounts.
type TaxRates struct {
	RetentionRate   decimal.Decimal `json:"retentionRate"`
	VATRate         decimal.Decimal `json:"vatRate"`
	WithholdingRate decimal.Decimal `json:"withholdingRate"`
}

// DefaultTaxRates returns 5% retention, 11% VAT (PPN) and 2.65% withholding (PPh).
func DefaultTaxRates() TaxRates {
	return TaxRates{
		RetentionRate:   decimal.RequireFromString("0.05"),
		VATRate:         decimal.RequireFromString("0.11"),
		WithholdingRate: decimal.RequireFromString("0.0265"),
	}
}

// BillingAmounts is the result of a billing calculation.
type BillingAmounts struct {
	BillingValue         decimal.Decimal `json:"billingValue"`
	DownPaymentDeduction decimal.Decimal `json:"downPaymentDeduction"`
	Retention            decimal.Decimal `json:"retention"`
	TaxBase              decimal.Decimal `json:"taxBase"`
	VAT                  decimal.Decimal `json:"vat"`
	WithholdingTax       decimal.Decimal `json:"withholdingTax"`
	NetReceivable        decimal.Decimal `json:"netReceivable"`
}

// Calculate derives retention, DPP, VAT, withholding tax and net receivable.
// Every derived field is rounded to a whole currency unit (half away from
// zero) as soon as it is computed, and later fields use the rounded values.
func (r TaxRates) Calculate(billingValue, downPaymentDeduction decimal.Decimal) (BillingAmounts, error) {
	if !billingValue.IsPositive() {
		return BillingAmounts{}, fmt.Errorf("%w: billing value must be greater than zero", apperrors.ErrInvalidInput)
	}
	if downPaymentDeduction.IsNegative() {
		return BillingAmounts{}, fmt.Errorf("%w: down payment deduction must not be negative", apperrors.ErrInvalidInput)
	}
	if downPaymentDeduction.GreaterThanOrEqual(billingValue) {
		return BillingAmounts{}, fmt.Errorf("%w: down payment deduction must be less than billing value", apperrors.ErrInvalidInput)
	}

	retention := billingValue.Mul(r.RetentionRate).Round(0)
	taxBase := billingValue.Sub(downPaymentDeduction).Sub(retention)
	if !taxBase.IsPositive() {
		return BillingAmounts{}, fmt.Errorf("%w: tax base (DPP) must be greater than zero, got %s", apperrors.ErrInvalidInput, taxBase.String())
	}
	vat := taxBase.Mul(r.VATRate).Round(0)
	withholding := taxBase.Mul(r.WithholdingRate).Round(0)

	return BillingAmounts{
		BillingValue:         billingValue,
		DownPaymentDeduction: downPaymentDeduction,
		Retention:            retention,
		TaxBase:              taxBase,
		VAT:                  vat,
		WithholdingTax:       withholding,
		NetReceivable:        taxBase.Add(vat).Sub(withholding),
	}, nil
}
