package models

import (
	"fmt"
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Billing is a row of the billings table. Status holds the wire token.
type Billing struct {
	BillingID            string          `db:"billing_id"`
	ProjectID            string          `db:"project_id"`
	CompanyID            string          `db:"company_id"`
	InvoiceNumber        string          `db:"invoice_number"`
	BillingDate          time.Time       `db:"billing_date"`
	Description          string          `db:"description"`
	BillingValue         decimal.Decimal `db:"billing_value"`
	DownPaymentDeduction decimal.Decimal `db:"down_payment_deduction"`
	Retention            decimal.Decimal `db:"retention"`
	TaxBase              decimal.Decimal `db:"tax_base"`
	VAT                  decimal.Decimal `db:"vat"`
	WithholdingTax       decimal.Decimal `db:"withholding_tax"`
	NetReceivable        decimal.Decimal `db:"net_receivable"`
	Status               string          `db:"status"`
	PaymentDate          *time.Time      `db:"payment_date"`
	RetentionPaid        bool            `db:"retention_paid"`
	AuditFields
}

func ToModelBilling(d domain.Billing) Billing {
	return Billing{
		BillingID:            d.BillingID,
		ProjectID:            d.ProjectID,
		CompanyID:            d.CompanyID,
		InvoiceNumber:        d.InvoiceNumber,
		BillingDate:          d.BillingDate,
		Description:          d.Description,
		BillingValue:         d.BillingValue,
		DownPaymentDeduction: d.DownPaymentDeduction,
		Retention:            d.Retention,
		TaxBase:              d.TaxBase,
		VAT:                  d.VAT,
		WithholdingTax:       d.WithholdingTax,
		NetReceivable:        d.NetReceivable,
		Status:               d.Status.String(),
		PaymentDate:          d.PaymentDate,
		RetentionPaid:        d.RetentionPaid,
		AuditFields:          toModelAudit(d.AuditFields),
	}
}

// ToDomainBilling fails when the stored status token is unknown.
func ToDomainBilling(m Billing) (domain.Billing, error) {
	status, err := domain.ParseBillingStatus(m.Status)
	if err != nil {
		return domain.Billing{}, fmt.Errorf("billing %s: %w", m.BillingID, err)
	}
	return domain.Billing{
		BillingID:            m.BillingID,
		ProjectID:            m.ProjectID,
		CompanyID:            m.CompanyID,
		InvoiceNumber:        m.InvoiceNumber,
		BillingDate:          m.BillingDate,
		Description:          m.Description,
		BillingValue:         m.BillingValue,
		DownPaymentDeduction: m.DownPaymentDeduction,
		Retention:            m.Retention,
		TaxBase:              m.TaxBase,
		VAT:                  m.VAT,
		WithholdingTax:       m.WithholdingTax,
		NetReceivable:        m.NetReceivable,
		Status:               status,
		PaymentDate:          m.PaymentDate,
		RetentionPaid:        m.RetentionPaid,
		AuditFields:          m.AuditFields.toDomain(),
	}, nil
}
