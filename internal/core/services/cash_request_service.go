package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// cashRequestService implements the CashRequestSvcFacade interface
type cashRequestService struct {
	projectScope
	cashRequestRepo portsrepo.CashRequestRepositoryFacade
	totals          domain.TotalValidator
}

// NewCashRequestService creates a new cash request service that checks totals with validator.
func NewCashRequestService(
	cashRequestRepo portsrepo.CashRequestRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	validator domain.TotalValidator,
	options ...ServiceOption,
) portssvc.CashRequestSvcFacade {
	svc := &cashRequestService{
		projectScope:    projectScope{projectRepo: projectRepo},
		cashRequestRepo: cashRequestRepo,
		totals:          validator,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.CashRequestSvcFacade = (*cashRequestService)(nil)

// requestNumber builds a human readable number such as CR-20260502-9F1C2A.
func requestNumber(cashRequestID string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(cashRequestID, "-", ""))[:6]
	return fmt.Sprintf("CR-%s-%s", now.Format("20060102"), suffix)
}

func (s *cashRequestService) GetCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) (*domain.CashRequest, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findCashRequest(ctx, projectID, cashRequestID)
}

func (s *cashRequestService) ListCashRequests(ctx context.Context, companyID, projectID, userID string, params dto.ListCashRequestsParams) (*dto.ListCashRequestsResponse, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var status *domain.CashRequestStatus
	if params.Status != nil {
		st := domain.CashRequestStatus(*params.Status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown cash request status %q", apperrors.ErrValidation, *params.Status)
		}
		status = &st
	}

	requests, nextToken, err := s.cashRequestRepo.ListCashRequestsByProject(ctx, projectID, status, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cash requests", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list cash requests: %w", err)
	}
	if requests == nil {
		requests = []domain.CashRequest{}
	}
	return &dto.ListCashRequestsResponse{CashRequests: requests, NextToken: nextToken}, nil
}

// CreateCashRequest validates the totals and stores the request, its items and
// the CREATED history entry together.
func (s *cashRequestService) CreateCashRequest(ctx context.Context, companyID, projectID string, req dto.CreateCashRequestRequest, userID string) (*domain.CashRequest, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	items := dto.ToDomainItems(req.Items)
	if err := s.totals.Validate(items, req.TotalAmount); err != nil {
		s.LogWarn(ctx, "Cash request rejected by total check",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := s.Now()
	cashRequestID := uuid.NewString()
	for i := range items {
		items[i].ItemID = uuid.NewString()
		items[i].CashRequestID = cashRequestID
	}
	history := s.newHistory(cashRequestID, domain.ActionCreated, userID, "", now)

	cr := domain.CashRequest{
		CashRequestID: cashRequestID,
		ProjectID:     projectID,
		CompanyID:     companyID,
		RequestNumber: requestNumber(cashRequestID, now),
		Description:   req.Description,
		RequestedBy:   userID,
		TotalAmount:   req.TotalAmount,
		Status:        domain.CashRequestPending,
		Items:         items,
		History:       []domain.CashRequestHistory{history},
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	if err := s.cashRequestRepo.SaveCashRequest(ctx, cr, history); err != nil {
		s.LogError(ctx, err, "Failed to save cash request", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to create cash request: %w", err)
	}

	s.LogInfo(ctx, "Cash request submitted",
		slog.String("cash_request_id", cashRequestID),
		slog.String("request_number", cr.RequestNumber),
		slog.String("total_amount", cr.TotalAmount.String()))
	return &cr, nil
}

// UpdateCashRequest replaces the description, total and items of a pending request.
func (s *cashRequestService) UpdateCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.UpdateCashRequestRequest, userID string) (*domain.CashRequest, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	cr, err := s.findCashRequest(ctx, projectID, cashRequestID)
	if err != nil {
		return nil, err
	}
	if err := cr.EnsureEditable(); err != nil {
		return nil, err
	}

	items := dto.ToDomainItems(req.Items)
	if err := s.totals.Validate(items, req.TotalAmount); err != nil {
		s.LogWarn(ctx, "Cash request update rejected by total check",
			slog.String("cash_request_id", cashRequestID),
			slog.String("error", err.Error()))
		return nil, err
	}
	for i := range items {
		items[i].ItemID = uuid.NewString()
		items[i].CashRequestID = cashRequestID
	}

	now := s.Now()
	cr.Description = req.Description
	cr.TotalAmount = req.TotalAmount
	cr.Items = items
	cr.Touch(userID, now)
	history := s.newHistory(cashRequestID, domain.ActionUpdated, userID, req.Comment, now)

	if err := s.cashRequestRepo.UpdateCashRequest(ctx, *cr, history); err != nil {
		s.LogError(ctx, err, "Failed to update cash request", slog.String("cash_request_id", cashRequestID))
		return nil, fmt.Errorf("failed to update cash request: %w", err)
	}
	cr.History = append(cr.History, history)

	s.LogInfo(ctx, "Cash request updated", slog.String("cash_request_id", cashRequestID))
	return cr, nil
}

// DeleteCashRequest removes a pending request. Only the requester or a company admin may do this.
func (s *cashRequestService) DeleteCashRequest(ctx context.Context, companyID, projectID, cashRequestID, userID string) error {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return err
	}

	cr, err := s.findCashRequest(ctx, projectID, cashRequestID)
	if err != nil {
		return err
	}
	if err := cr.EnsureEditable(); err != nil {
		return err
	}
	if cr.RequestedBy != userID {
		if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
			s.LogWarn(ctx, "Cash request delete refused: not requester or admin",
				slog.String("cash_request_id", cashRequestID))
			return fmt.Errorf("%w: only the requester or a company admin may delete a cash request", apperrors.ErrForbidden)
		}
	}

	if err := s.cashRequestRepo.DeleteCashRequest(ctx, projectID, cashRequestID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete cash request", slog.String("cash_request_id", cashRequestID))
		}
		return err
	}

	s.LogInfo(ctx, "Cash request deleted", slog.String("cash_request_id", cashRequestID))
	return nil
}

// DecideCashRequest approves or rejects a pending request. The requester can
// never decide on their own request.
func (s *cashRequestService) DecideCashRequest(ctx context.Context, companyID, projectID, cashRequestID string, req dto.DecideCashRequestRequest, userID string) (*domain.CashRequest, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	cr, err := s.findCashRequest(ctx, projectID, cashRequestID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if err := cr.Decide(userID, req.Status, now); err != nil {
		s.LogWarn(ctx, "Cash request decision refused",
			slog.String("cash_request_id", cashRequestID),
			slog.String("error", err.Error()))
		return nil, err
	}
	history := s.newHistory(cashRequestID, domain.ActionFor(req.Status), userID, req.Comment, now)

	if err := s.cashRequestRepo.UpdateCashRequestStatus(ctx, *cr, history); err != nil {
		if !errors.Is(err, apperrors.ErrForbidden) {
			s.LogError(ctx, err, "Failed to record cash request decision", slog.String("cash_request_id", cashRequestID))
		}
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}
	cr.History = append(cr.History, history)

	s.LogInfo(ctx, "Cash request decided",
		slog.String("cash_request_id", cashRequestID),
		slog.String("status", string(cr.Status)))
	return cr, nil
}

func (s *cashRequestService) newHistory(cashRequestID string, action domain.CashRequestAction, actorID, comment string, now time.Time) domain.CashRequestHistory {
	return domain.CashRequestHistory{
		HistoryID:     uuid.NewString(),
		CashRequestID: cashRequestID,
		Action:        action,
		ActorID:       actorID,
		Comment:       comment,
		CreatedAt:     now,
	}
}

func (s *cashRequestService) findCashRequest(ctx context.Context, projectID, cashRequestID string) (*domain.CashRequest, error) {
	cr, err := s.cashRequestRepo.FindCashRequestByID(ctx, projectID, cashRequestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find cash request", slog.String("cash_request_id", cashRequestID))
		}
		return nil, err
	}
	return cr, nil
}
