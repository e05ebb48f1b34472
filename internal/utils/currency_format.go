package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the Indonesian way: "Rp 1.234.567" for whole
// amounts and "Rp 1.234,50" when there is a fractional part.
func FormatRupiah(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	whole := amount.Truncate(0)
	frac := amount.Sub(whole)

	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := sign + "Rp " + b.String()
	if !frac.IsZero() {
		out += "," + frac.StringFixed(2)[2:]
	}
	return out
}

// FormatWithPrecision formats an amount with the given number of decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
