package services

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/shopspring/decimal"
)

// BillingCalculatorSvc previews billing amounts without persisting anything.
type BillingCalculatorSvc interface {
	CalculateBilling(ctx context.Context, companyID, userID string, billingValue, downPaymentDeduction decimal.Decimal) (*domain.BillingAmounts, error)
}

// BillingReaderSvc defines read operations for billings
type BillingReaderSvc interface {
	GetBilling(ctx context.Context, companyID, projectID, billingID, userID string) (*domain.Billing, error)
	ListBillings(ctx context.Context, companyID, projectID, userID string) ([]domain.Billing, error)
}

// BillingWriterSvc defines write operations for billings
type BillingWriterSvc interface {
	CreateBilling(ctx context.Context, companyID, projectID string, req dto.CreateBillingRequest, userID string) (*domain.Billing, error)
	UpdateBilling(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingRequest, userID string) (*domain.Billing, error)
	DeleteBilling(ctx context.Context, companyID, projectID, billingID, userID string) error
}

// BillingStatusSvc moves billings between payment statuses.
type BillingStatusSvc interface {
	// UpdateBillingStatus applies the transition and returns the warnings it raised.
	UpdateBillingStatus(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingStatusRequest, userID string) (*domain.Billing, *domain.TransitionDecision, error)
}

// BillingSvcFacade combines all billing-related service interfaces
type BillingSvcFacade interface {
	BillingCalculatorSvc
	BillingReaderSvc
	BillingWriterSvc
	BillingStatusSvc
}
