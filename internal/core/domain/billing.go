package domain

import (
	"fmt"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BillingStatus is the payment state of a billing. The zero value is not a
// valid status; values only enter the program through ParseBillingStatus.
type BillingStatus uint8

const (
	BillingUnpaid BillingStatus = iota + 1
	BillingPaidRetentionHeld
	BillingPaid
)

// Wire tokens. These are persisted and exchanged with the frontend as-is.
const (
	BillingUnpaidToken            = "BELUM_DIBAYAR"
	BillingPaidRetentionHeldToken = "DIBAYAR_RETENSI_BELUM_DIBAYARKAN"
	BillingPaidToken              = "DIBAYAR"
)

var billingStatusTokens = map[BillingStatus]string{
	BillingUnpaid:            BillingUnpaidToken,
	BillingPaidRetentionHeld: BillingPaidRetentionHeldToken,
	BillingPaid:              BillingPaidToken,
}

// BillingStatuses lists every status in workflow order.
var BillingStatuses = []BillingStatus{BillingUnpaid, BillingPaidRetentionHeld, BillingPaid}

// ParseBillingStatus decodes a wire token.
func ParseBillingStatus(token string) (BillingStatus, error) {
	for status, t := range billingStatusTokens {
		if t == token {
			return status, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown billing status %q", apperrors.ErrValidation, token)
}

// String returns the wire token, or "" for the zero value.
func (s BillingStatus) String() string {
	return billingStatusTokens[s]
}

// IsValid reports whether s is one of the three known statuses.
func (s BillingStatus) IsValid() bool {
	_, ok := billingStatusTokens[s]
	return ok
}

// IsSettled reports whether the billing has been paid, with or without retention.
func (s BillingStatus) IsSettled() bool {
	return s == BillingPaid || s == BillingPaidRetentionHeld
}

func (s BillingStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: cannot encode billing status %d", apperrors.ErrValidation, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *BillingStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseBillingStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Billing is an invoice issued against a project. The monetary fields from
// Retention through NetReceivable are always derived from BillingValue and
// DownPaymentDeduction; use ApplyAmounts rather than assigning them.
type Billing struct {
	BillingID            string          `json:"billingID"`
	ProjectID            string          `json:"projectID"`
	CompanyID            string          `json:"companyID"`
	InvoiceNumber        string          `json:"invoiceNumber"`
	BillingDate          time.Time       `json:"billingDate"`
	Description          string          `json:"description"`
	BillingValue         decimal.Decimal `json:"billingValue"`
	DownPaymentDeduction decimal.Decimal `json:"downPaymentDeduction"`
	Retention            decimal.Decimal `json:"retention"`
	TaxBase              decimal.Decimal `json:"taxBase"`        // DPP
	VAT                  decimal.Decimal `json:"vat"`            // PPN
	WithholdingTax       decimal.Decimal `json:"withholdingTax"` // PPh
	NetReceivable        decimal.Decimal `json:"netReceivable"`
	Status               BillingStatus   `json:"status"`
	PaymentDate          *time.Time      `json:"paymentDate,omitempty"`
	RetentionPaid        bool            `json:"retentionPaid"`
	AuditFields
}

// ApplyAmounts copies a calculation result onto the billing.
func (b *Billing) ApplyAmounts(a BillingAmounts) {
	b.BillingValue = a.BillingValue
	b.DownPaymentDeduction = a.DownPaymentDeduction
	b.Retention = a.Retention
	b.TaxBase = a.TaxBase
	b.VAT = a.VAT
	b.WithholdingTax = a.WithholdingTax
	b.NetReceivable = a.NetReceivable
}

// Amounts returns the billing's monetary fields as a BillingAmounts.
func (b *Billing) Amounts() BillingAmounts {
	return BillingAmounts{
		BillingValue:         b.BillingValue,
		DownPaymentDeduction: b.DownPaymentDeduction,
		Retention:            b.Retention,
		TaxBase:              b.TaxBase,
		VAT:                  b.VAT,
		WithholdingTax:       b.WithholdingTax,
		NetReceivable:        b.NetReceivable,
	}
}
