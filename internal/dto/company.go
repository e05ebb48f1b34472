package dto

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Address string `json:"address" binding:"max=500"`
	NPWP    string `json:"npwp" binding:"omitempty,max=25"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	NPWP          string    `json:"npwp"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Address:       c.Address,
		NPWP:          c.NPWP,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

// ListCompaniesResponse wraps a list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToListCompaniesResponse converts a slice of domain.Company to DTO.
func ToListCompaniesResponse(cs []domain.Company) ListCompaniesResponse {
	list := make([]CompanyResponse, len(cs))
	for i := range cs {
		list[i] = ToCompanyResponse(&cs[i])
	}
	return ListCompaniesResponse{Companies: list}
}

// AddCompanyMemberRequest defines data for adding a user to a company.
type AddCompanyMemberRequest struct {
	UserID string             `json:"userID" binding:"required"`
	Role   domain.CompanyRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

// ListCompanyMembersResponse wraps a list of company members.
type ListCompanyMembersResponse struct {
	Members []domain.CompanyMember `json:"members"`
}
