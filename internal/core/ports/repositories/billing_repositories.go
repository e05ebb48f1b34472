package repositories

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// BillingReader defines read operations for billing data
type BillingReader interface {
	// FindBillingByID retrieves a billing that belongs to projectID.
	FindBillingByID(ctx context.Context, projectID, billingID string) (*domain.Billing, error)

	// ListBillingsByProject retrieves every billing of a project ordered by billing date.
	ListBillingsByProject(ctx context.Context, projectID string) ([]domain.Billing, error)
}

// BillingWriter defines write operations for billing data
type BillingWriter interface {
	SaveBilling(ctx context.Context, billing domain.Billing) error

	// UpdateBilling persists descriptive and monetary fields. Status is left untouched.
	UpdateBilling(ctx context.Context, billing domain.Billing) error

	// UpdateBillingStatus persists status, payment date and retention flag.
	UpdateBillingStatus(ctx context.Context, billing domain.Billing) error

	DeleteBilling(ctx context.Context, projectID, billingID string) error
}

// BillingRepositoryFacade combines all billing-related repository interfaces
type BillingRepositoryFacade interface {
	BillingReader
	BillingWriter
}
