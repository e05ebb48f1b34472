package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/shopspring/decimal"
)

// billingService implements the BillingSvcFacade interface
type billingService struct {
	projectScope
	billingRepo portsrepo.BillingRepositoryFacade
	rates       domain.TaxRates
}

// NewBillingService creates a new billing service that derives amounts with rates.
func NewBillingService(
	billingRepo portsrepo.BillingRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	rates domain.TaxRates,
	options ...ServiceOption,
) portssvc.BillingSvcFacade {
	svc := &billingService{
		projectScope: projectScope{projectRepo: projectRepo},
		billingRepo:  billingRepo,
		rates:        rates,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.BillingSvcFacade = (*billingService)(nil)

// CalculateBilling previews the derived amounts without persisting anything
func (s *billingService) CalculateBilling(ctx context.Context, companyID, userID string, billingValue, downPaymentDeduction decimal.Decimal) (*domain.BillingAmounts, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	amounts, err := s.rates.Calculate(billingValue, downPaymentDeduction)
	if err != nil {
		return nil, err
	}
	return &amounts, nil
}

func (s *billingService) GetBilling(ctx context.Context, companyID, projectID, billingID, userID string) (*domain.Billing, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.findBilling(ctx, projectID, billingID)
}

func (s *billingService) ListBillings(ctx context.Context, companyID, projectID, userID string) ([]domain.Billing, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	billings, err := s.billingRepo.ListBillingsByProject(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list billings", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list billings: %w", err)
	}
	if billings == nil {
		return []domain.Billing{}, nil
	}
	return billings, nil
}

func (s *billingService) CreateBilling(ctx context.Context, companyID, projectID string, req dto.CreateBillingRequest, userID string) (*domain.Billing, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	amounts, err := s.rates.Calculate(req.BillingValue, req.DownPaymentDeduction)
	if err != nil {
		return nil, err
	}

	billing := domain.Billing{
		BillingID:     uuid.NewString(),
		ProjectID:     projectID,
		CompanyID:     companyID,
		InvoiceNumber: req.InvoiceNumber,
		BillingDate:   req.BillingDate,
		Description:   req.Description,
		Status:        domain.BillingUnpaid,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	billing.ApplyAmounts(amounts)

	if err := s.billingRepo.SaveBilling(ctx, billing); err != nil {
		s.LogError(ctx, err, "Failed to save billing",
			slog.String("project_id", projectID),
			slog.String("invoice_number", req.InvoiceNumber))
		return nil, fmt.Errorf("failed to create billing: %w", err)
	}

	s.LogInfo(ctx, "Billing created successfully",
		slog.String("project_id", projectID),
		slog.String("billing_id", billing.BillingID),
		slog.String("net_receivable", billing.NetReceivable.String()))
	return &billing, nil
}

// UpdateBilling edits a billing and recomputes every derived amount.
func (s *billingService) UpdateBilling(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingRequest, userID string) (*domain.Billing, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, err
	}

	billing, err := s.findBilling(ctx, projectID, billingID)
	if err != nil {
		return nil, err
	}

	if req.InvoiceNumber != nil {
		billing.InvoiceNumber = *req.InvoiceNumber
	}
	if req.BillingDate != nil {
		billing.BillingDate = *req.BillingDate
	}
	if req.Description != nil {
		billing.Description = *req.Description
	}
	billingValue, deduction := billing.BillingValue, billing.DownPaymentDeduction
	if req.BillingValue != nil {
		billingValue = *req.BillingValue
	}
	if req.DownPaymentDeduction != nil {
		deduction = *req.DownPaymentDeduction
	}

	amounts, err := s.rates.Calculate(billingValue, deduction)
	if err != nil {
		return nil, err
	}
	billing.ApplyAmounts(amounts)
	billing.Touch(userID, s.Now())

	if err := s.billingRepo.UpdateBilling(ctx, *billing); err != nil {
		s.LogError(ctx, err, "Failed to update billing", slog.String("billing_id", billingID))
		return nil, fmt.Errorf("failed to update billing: %w", err)
	}

	s.LogInfo(ctx, "Billing updated successfully", slog.String("billing_id", billingID))
	return billing, nil
}

func (s *billingService) DeleteBilling(ctx context.Context, companyID, projectID, billingID, userID string) error {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return err
	}

	if err := s.billingRepo.DeleteBilling(ctx, projectID, billingID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete billing", slog.String("billing_id", billingID))
		}
		return err
	}

	s.LogInfo(ctx, "Billing deleted", slog.String("billing_id", billingID))
	return nil
}

// UpdateBillingStatus applies a payment status change. Broken soft rules are
// returned as warnings and logged; they never block the change.
func (s *billingService) UpdateBillingStatus(ctx context.Context, companyID, projectID, billingID string, req dto.UpdateBillingStatusRequest, userID string) (*domain.Billing, *domain.TransitionDecision, error) {
	if _, err := s.authorizeProject(ctx, userID, companyID, projectID, domain.RoleMember); err != nil {
		return nil, nil, err
	}
	if !req.Status.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown billing status", apperrors.ErrValidation)
	}

	billing, err := s.findBilling(ctx, projectID, billingID)
	if err != nil {
		return nil, nil, err
	}

	canRelease := true
	if billing.Status == domain.BillingPaidRetentionHeld && req.Status == domain.BillingPaid {
		siblings, err := s.billingRepo.ListBillingsByProject(ctx, projectID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load sibling billings", slog.String("project_id", projectID))
			return nil, nil, fmt.Errorf("failed to check retention release: %w", err)
		}
		canRelease = domain.CanReleaseRetention(billingID, siblings)
	}

	decision := domain.EvaluateBillingTransition(billing.Status, req.Status, canRelease)
	now := s.Now()
	billing.ApplyStatus(req.Status, req.PaymentDate, now)
	billing.Touch(userID, now)

	if err := s.billingRepo.UpdateBillingStatus(ctx, *billing); err != nil {
		s.LogError(ctx, err, "Failed to update billing status", slog.String("billing_id", billingID))
		return nil, nil, fmt.Errorf("failed to update billing status: %w", err)
	}

	for _, warning := range decision.Warnings {
		s.LogWarn(ctx, "Billing status changed with warning",
			slog.String("billing_id", billingID),
			slog.String("from", decision.From.String()),
			slog.String("to", decision.To.String()),
			slog.String("warning", warning))
	}
	s.LogInfo(ctx, "Billing status updated",
		slog.String("billing_id", billingID),
		slog.String("status", billing.Status.String()))
	return billing, &decision, nil
}

func (s *billingService) findBilling(ctx context.Context, projectID, billingID string) (*domain.Billing, error) {
	billing, err := s.billingRepo.FindBillingByID(ctx, projectID, billingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find billing", slog.String("billing_id", billingID))
		}
		return nil, err
	}
	return billing, nil
}
