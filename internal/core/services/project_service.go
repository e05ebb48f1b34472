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
	"github.com/sourcegraph/conc/pool"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo     portsrepo.ProjectRepositoryFacade
	billingRepo     portsrepo.BillingReader
	transactionRepo portsrepo.TransactionReader
	cashRequestRepo portsrepo.CashRequestReader
}

// NewProjectService creates a new project service. The readers of billings,
// transactions and cash requests feed the project summary.
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	billingRepo portsrepo.BillingReader,
	transactionRepo portsrepo.TransactionReader,
	cashRequestRepo portsrepo.CashRequestReader,
	options ...ServiceOption,
) portssvc.ProjectSvcFacade {
	svc := &projectService{
		projectRepo:     projectRepo,
		billingRepo:     billingRepo,
		transactionRepo: transactionRepo,
		cashRequestRepo: cashRequestRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) GetProject(ctx context.Context, companyID, projectID, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project",
				slog.String("company_id", companyID),
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, companyID, userID string, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	var status *domain.ProjectStatus
	if params.Status != nil {
		st := domain.ProjectStatus(*params.Status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown project status %q", apperrors.ErrValidation, *params.Status)
		}
		status = &st
	}

	projects, nextToken, err := s.projectRepo.ListProjectsByCompany(ctx, companyID, status, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	s.LogDebug(ctx, "Projects listed successfully",
		slog.String("company_id", companyID),
		slog.Int("count", len(projects)))
	return &dto.ListProjectsResponse{Projects: projects, NextToken: nextToken}, nil
}

// GetProjectSummary loads billings, transactions and cash requests concurrently
// and folds them into the dashboard figures.
func (s *projectService) GetProjectSummary(ctx context.Context, companyID, projectID, userID string) (*domain.ProjectSummary, error) {
	project, err := s.GetProject(ctx, companyID, projectID, userID)
	if err != nil {
		return nil, err
	}

	var (
		billings     []domain.Billing
		transactions []domain.Transaction
		cashRequests []domain.CashRequest
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) (err error) {
		billings, err = s.billingRepo.ListBillingsByProject(ctx, projectID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		transactions, err = s.transactionRepo.ListAllTransactionsByProject(ctx, projectID)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		cashRequests, err = s.cashRequestRepo.ListAllCashRequestsByProject(ctx, projectID)
		return err
	})
	if err := p.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load project summary data", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to build project summary: %w", err)
	}

	summary := &domain.ProjectSummary{Project: *project}
	summary.SummarizeBillings(billings)
	summary.SummarizeTransactions(transactions)
	summary.SummarizeCashRequests(cashRequests)
	return summary, nil
}

func (s *projectService) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	project := domain.Project{
		ProjectID:     uuid.NewString(),
		CompanyID:     companyID,
		Code:          req.Code,
		Name:          req.Name,
		ClientName:    req.ClientName,
		Location:      req.Location,
		ContractValue: req.ContractValue,
		DownPayment:   req.DownPayment,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Status:        req.Status,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if project.Status == "" {
		project.Status = domain.ProjectActive
	}
	if err := validateProject(&project); err != nil {
		return nil, err
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project",
			slog.String("company_id", companyID),
			slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created successfully",
		slog.String("company_id", companyID),
		slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, companyID, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		project.Code = *req.Code
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Location != nil {
		project.Location = *req.Location
	}
	if req.ContractValue != nil {
		project.ContractValue = *req.ContractValue
	}
	if req.DownPayment != nil {
		project.DownPayment = *req.DownPayment
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if err := validateProject(project); err != nil {
		return nil, err
	}
	project.Touch(userID, s.Now())

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.LogInfo(ctx, "Project updated successfully", slog.String("project_id", projectID))
	return project, nil
}

// DeleteProject removes a project with everything recorded against it, so it
// needs the ADMIN role.
func (s *projectService) DeleteProject(ctx context.Context, companyID, projectID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, companyID, projectID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		}
		return err
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func validateProject(p *domain.Project) error {
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: unknown project status %q", apperrors.ErrValidation, p.Status)
	}
	if p.ContractValue.IsNegative() {
		return fmt.Errorf("%w: contract value must not be negative", apperrors.ErrValidation)
	}
	if p.DownPayment.IsNegative() {
		return fmt.Errorf("%w: down payment must not be negative", apperrors.ErrValidation)
	}
	if p.ContractValue.GreaterThan(decimal.Zero) && p.DownPayment.GreaterThan(p.ContractValue) {
		return fmt.Errorf("%w: down payment must not exceed contract value", apperrors.ErrValidation)
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}
	return nil
}
