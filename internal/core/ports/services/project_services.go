package services

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	GetProject(ctx context.Context, companyID, projectID, userID string) (*domain.Project, error)
	ListProjects(ctx context.Context, companyID, userID string, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error)
	// GetProjectSummary aggregates billings, transactions and cash requests of a project.
	GetProjectSummary(ctx context.Context, companyID, projectID, userID string) (*domain.ProjectSummary, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, userID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, companyID, projectID string, req dto.UpdateProjectRequest, userID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, companyID, projectID, userID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
