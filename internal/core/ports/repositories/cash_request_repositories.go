package repositories

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// CashRequestReader defines read operations for cash requests
type CashRequestReader interface {
	// FindCashRequestByID retrieves a cash request with its items and history.
	FindCashRequestByID(ctx context.Context, projectID, cashRequestID string) (*domain.CashRequest, error)

	// ListCashRequestsByProject retrieves a page of cash request headers, newest first.
	// Items and history are not loaded.
	ListCashRequestsByProject(ctx context.Context, projectID string, status *domain.CashRequestStatus, limit int, nextToken *string) ([]domain.CashRequest, *string, error)

	// ListAllCashRequestsByProject retrieves every cash request header of a project.
	ListAllCashRequestsByProject(ctx context.Context, projectID string) ([]domain.CashRequest, error)
}

// CashRequestWriter defines write operations for cash requests. Every method
// writes the request, its items and the history entry in one database transaction.
type CashRequestWriter interface {
	// SaveCashRequest inserts the request, its items and the CREATED history entry.
	SaveCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error

	// UpdateCashRequest replaces header fields and items of a pending request and
	// appends the UPDATED history entry.
	UpdateCashRequest(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error

	// UpdateCashRequestStatus records a decision on a pending request and appends
	// the matching history entry. It fails with ErrForbidden when the stored
	// request is no longer pending.
	UpdateCashRequestStatus(ctx context.Context, cashRequest domain.CashRequest, history domain.CashRequestHistory) error

	// DeleteCashRequest removes a pending request.
	DeleteCashRequest(ctx context.Context, projectID, cashRequestID string) error
}

// CashRequestRepositoryFacade combines all cash request repository interfaces
type CashRequestRepositoryFacade interface {
	CashRequestReader
	CashRequestWriter
}
