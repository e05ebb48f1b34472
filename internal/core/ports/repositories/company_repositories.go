package repositories

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// ListCompaniesByUserID retrieves all active companies a user belongs to.
	ListCompaniesByUserID(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// SaveCompany persists a new company together with its first admin membership.
	SaveCompany(ctx context.Context, company domain.Company, admin domain.CompanyMember) error
}

// CompanyMembershipManager defines operations for managing company memberships
type CompanyMembershipManager interface {
	// AddUserToCompany adds a user to a company, or updates the role of an existing member.
	AddUserToCompany(ctx context.Context, member domain.CompanyMember) error

	// FindUserCompanyRole retrieves the membership of a user in a company.
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.CompanyMember, error)

	// ListUsersByCompanyID lists members of a company, excluding removed ones.
	ListUsersByCompanyID(ctx context.Context, companyID string) ([]domain.CompanyMember, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	CompanyMembershipManager
}
