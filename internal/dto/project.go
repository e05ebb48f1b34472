package dto

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines data for creating a project.
type CreateProjectRequest struct {
	Code          string               `json:"code" binding:"required,max=50"`
	Name          string               `json:"name" binding:"required,max=200"`
	ClientName    string               `json:"clientName" binding:"max=200"`
	Location      string               `json:"location" binding:"max=300"`
	ContractValue decimal.Decimal      `json:"contractValue"`
	DownPayment   decimal.Decimal      `json:"downPayment"`
	StartDate     time.Time            `json:"startDate" binding:"required"`
	EndDate       *time.Time           `json:"endDate"`
	Status        domain.ProjectStatus `json:"status" binding:"omitempty,projectstatus"`
}

// UpdateProjectRequest defines the updatable fields of a project. Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Code          *string               `json:"code" binding:"omitempty,max=50"`
	Name          *string               `json:"name" binding:"omitempty,max=200"`
	ClientName    *string               `json:"clientName" binding:"omitempty,max=200"`
	Location      *string               `json:"location" binding:"omitempty,max=300"`
	ContractValue *decimal.Decimal      `json:"contractValue"`
	DownPayment   *decimal.Decimal      `json:"downPayment"`
	StartDate     *time.Time            `json:"startDate"`
	EndDate       *time.Time            `json:"endDate"`
	Status        *domain.ProjectStatus `json:"status" binding:"omitempty,projectstatus"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,projectstatus"`
}

// ListProjectsResponse wraps a page of projects.
type ListProjectsResponse struct {
	Projects  []domain.Project `json:"projects"`
	NextToken *string          `json:"nextToken,omitempty"`
}
