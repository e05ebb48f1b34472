package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/utils"
)

var calcCmd = &cobra.Command{
	Use:   "calc <billing-value> [down-payment-deduction]",
	Short: "Calculate retention, DPP, PPN, PPh and net receivable for a billing",
	Long: `Runs the billing calculation with the rates from the environment
(TAX_RETENTION_RATE, TAX_VAT_RATE, TAX_WITHHOLDING_RATE) without touching
the database.`,
	Example: `  # Billing of Rp 1.000.000.000 with Rp 100.000.000 down payment deducted
  bizadmin calc 1000000000 100000000

  # Same, as JSON
  bizadmin calc 1000000000 100000000 --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCalc,
}

var calcJSON bool

func init() {
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")
}

func runCalc(cmd *cobra.Command, args []string) error {
	billingValue, err := decimal.NewFromString(args[0])
	if err != nil {
		return fmt.Errorf("invalid billing value %q: %w", args[0], err)
	}
	downPayment := decimal.Zero
	if len(args) == 2 {
		if downPayment, err = decimal.NewFromString(args[1]); err != nil {
			return fmt.Errorf("invalid down payment deduction %q: %w", args[1], err)
		}
	}

	cfg, _, err := loadRuntime()
	if err != nil {
		return err
	}
	rates := domain.TaxRates{
		RetentionRate:   cfg.RetentionRate,
		VATRate:         cfg.VATRate,
		WithholdingRate: cfg.WithholdingRate,
	}

	amounts, err := rates.Calculate(billingValue, downPayment)
	if err != nil {
		return err
	}

	if calcJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(amounts)
	}
	return printAmounts(cmd.OutOrStdout(), rates, amounts)
}

func printAmounts(w io.Writer, rates domain.TaxRates, a domain.BillingAmounts) error {
	pct := func(rate decimal.Decimal) string {
		return rate.Mul(decimal.NewFromInt(100)).String() + "%"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label, rate string
		amount      decimal.Decimal
	}{
		{"Nilai tagihan", "", a.BillingValue},
		{"Potongan uang muka", "", a.DownPaymentDeduction},
		{"Retensi", pct(rates.RetentionRate), a.Retention},
		{"DPP", "", a.TaxBase},
		{"PPN", pct(rates.VATRate), a.VAT},
		{"PPh", pct(rates.WithholdingRate), a.WithholdingTax},
		{"Piutang bersih", "", a.NetReceivable},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t\n", r.label, r.rate, utils.FormatRupiah(r.amount)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
