package dto

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateBillingRequest is the input of a billing preview.
type CalculateBillingRequest struct {
	BillingValue         decimal.Decimal `json:"billingValue"`
	DownPaymentDeduction decimal.Decimal `json:"downPaymentDeduction"`
}

// CreateBillingRequest defines data for issuing a billing. Derived amounts are
// always computed server side.
type CreateBillingRequest struct {
	InvoiceNumber        string          `json:"invoiceNumber" binding:"required,max=100"`
	BillingDate          time.Time       `json:"billingDate" binding:"required"`
	Description          string          `json:"description" binding:"max=1000"`
	BillingValue         decimal.Decimal `json:"billingValue"`
	DownPaymentDeduction decimal.Decimal `json:"downPaymentDeduction"`
}

// UpdateBillingRequest defines the updatable fields of a billing. Nil fields are left unchanged.
type UpdateBillingRequest struct {
	InvoiceNumber        *string          `json:"invoiceNumber" binding:"omitempty,max=100"`
	BillingDate          *time.Time       `json:"billingDate"`
	Description          *string          `json:"description" binding:"omitempty,max=1000"`
	BillingValue         *decimal.Decimal `json:"billingValue"`
	DownPaymentDeduction *decimal.Decimal `json:"downPaymentDeduction"`
}

// UpdateBillingStatusRequest moves a billing to another payment status.
type UpdateBillingStatusRequest struct {
	Status      domain.BillingStatus `json:"status" binding:"required,billingstatus"`
	PaymentDate *time.Time           `json:"paymentDate"`
}

// BillingResponse is a billing with its display label.
type BillingResponse struct {
	domain.Billing
	StatusLabel string `json:"statusLabel"`
}

// ToBillingResponse converts domain.Billing to DTO.
func ToBillingResponse(b *domain.Billing) BillingResponse {
	return BillingResponse{Billing: *b, StatusLabel: domain.BillingStatusLabel(b.Status)}
}

// ListBillingsResponse wraps the billings of a project.
type ListBillingsResponse struct {
	Billings []BillingResponse `json:"billings"`
}

// ToListBillingsResponse converts a slice of domain.Billing to DTO.
func ToListBillingsResponse(bs []domain.Billing) ListBillingsResponse {
	list := make([]BillingResponse, len(bs))
	for i := range bs {
		list[i] = ToBillingResponse(&bs[i])
	}
	return ListBillingsResponse{Billings: list}
}

// BillingStatusResponse is the outcome of a status change. Warnings lists the
// soft business rules the change broke; the change has been applied regardless.
type BillingStatusResponse struct {
	Billing  BillingResponse `json:"billing"`
	Warnings []string        `json:"warnings"`
}
