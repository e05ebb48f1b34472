package services

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// CashRequestReaderSvc defines read operations for cash requests
type CashRequestReaderSvc interface {
	GetCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) (*domain.CashRequest, error)
	ListCashRequests(ctx context.Context, companyID, projectID, userID string, params dto.ListCashRequestsParams) (*dto.ListCashRequestsResponse, error)
}

// CashRequestWriterSvc defines write operations for cash requests
type CashRequestWriterSvc interface {
	CreateCashRequest(ctx context.Context, companyID, projectID string, req dto.CreateCashRequestRequest, userID string) (*domain.CashRequest, error)
	// UpdateCashRequest replaces the items of a pending request.
	UpdateCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.UpdateCashRequestRequest, userID string) (*domain.CashRequest, error)
	// DeleteCashRequest removes a pending request. Only the requester or a company admin may do this.
	DeleteCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) error
}

// CashRequestApprovalSvc records approve/reject decisions.
type CashRequestApprovalSvc interface {
	DecideCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.DecideCashRequestRequest, userID string) (*domain.CashRequest, error)
}

// CashRequestSvcFacade combines all cash request service interfaces
type CashRequestSvcFacade interface {
	CashRequestReaderSvc
	CashRequestWriterSvc
	CashRequestApprovalSvc
}
