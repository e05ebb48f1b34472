package repositories

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project that belongs to companyID.
	FindProjectByID(ctx context.Context, companyID, projectID string) (*domain.Project, error)

	// ListProjectsByCompany retrieves a page of projects, newest start date first.
	ListProjectsByCompany(ctx context.Context, companyID string, status *domain.ProjectStatus, limit int, nextToken *string) ([]domain.Project, *string, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	// DeleteProject removes the project and everything recorded against it.
	DeleteProject(ctx context.Context, companyID, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
