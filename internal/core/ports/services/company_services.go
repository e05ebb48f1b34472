package services

import (
	"context"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company the requesting user is a member of.
	GetCompanyByID(ctx context.Context, companyID, requestingUserID string) (*domain.Company, error)

	// ListUserCompanies retrieves the companies a user belongs to.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)

	// ListCompanyMembers retrieves the members of a company.
	ListCompanyMembers(ctx context.Context, companyID, requestingUserID string) ([]domain.CompanyMember, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company and makes the creator its admin.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
}

// CompanyMembershipSvc defines operations for managing company membership
type CompanyMembershipSvc interface {
	// AddUserToCompany adds a user to a company with a role. Only admins may do this.
	AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddCompanyMemberRequest) (*domain.CompanyMember, error)
}

// CompanyAuthorizerSvc defines operations for company authorization
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has at least requiredRole in a company.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyMembershipSvc
	CompanyAuthorizerSvc
}
