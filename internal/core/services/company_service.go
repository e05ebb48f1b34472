package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	goCache "github.com/patrickmn/go-cache"
)

const (
	// DefaultMembershipCacheTTL bounds how long a role change can go unnoticed.
	DefaultMembershipCacheTTL = 30 * time.Second
	membershipCleanupInterval = 5 * time.Minute
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserReader
	roleCache   *goCache.Cache
}

// NewCompanyService creates a new company service. Membership roles are cached
// for ttl; a non-positive ttl falls back to DefaultMembershipCacheTTL.
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserReader,
	ttl time.Duration,
	options ...ServiceOption,
) portssvc.CompanySvcFacade {
	if ttl <= 0 {
		ttl = DefaultMembershipCacheTTL
	}
	svc := &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		roleCache:   goCache.New(ttl, membershipCleanupInterval),
	}
	svc.apply(options)
	// The company service is its own authorizer.
	svc.CompanyAuthorizer = svc
	return svc
}

// Ensure companyService implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func roleCacheKey(userID, companyID string) string {
	return companyID + ":" + userID
}

// GetCompanyByID retrieves a company the requesting user is a member of
func (s *companyService) GetCompanyByID(ctx context.Context, companyID, requestingUserID string) (*domain.Company, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID",
				slog.String("company_id", companyID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Company retrieved successfully", slog.String("company_id", companyID))
	return company, nil
}

// ListUserCompanies retrieves all companies a user belongs to
func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if companies == nil {
		return []domain.Company{}, nil
	}

	s.LogDebug(ctx, "Companies listed successfully",
		slog.Int("count", len(companies)),
		slog.String("user_id", userID))
	return companies, nil
}

// ListCompanyMembers retrieves the members of a company
func (s *companyService) ListCompanyMembers(ctx context.Context, companyID, requestingUserID string) ([]domain.CompanyMember, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	members, err := s.companyRepo.ListUsersByCompanyID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list company members",
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list members of company %s: %w", companyID, err)
	}
	if members == nil {
		return []domain.CompanyMember{}, nil
	}
	return members, nil
}

// CreateCompany creates a company and makes the creator its admin in one transaction
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	now := s.Now()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		NPWP:        req.NPWP,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	admin := domain.CompanyMember{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		JoinedAt:  now,
	}

	if err := s.companyRepo.SaveCompany(ctx, company, admin); err != nil {
		s.LogError(ctx, err, "Failed to save company",
			slog.String("company_name", req.Name),
			slog.String("creator_id", creatorUserID))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.roleCache.SetDefault(roleCacheKey(creatorUserID, company.CompanyID), domain.RoleAdmin)

	s.LogInfo(ctx, "Company created successfully",
		slog.String("company_id", company.CompanyID),
		slog.String("creator_id", creatorUserID))
	return &company, nil
}

// AddUserToCompany adds a user to a company with a specific role
func (s *companyService) AddUserToCompany(ctx context.Context, addingUserID, companyID string, req dto.AddCompanyMemberRequest) (*domain.CompanyMember, error) {
	if err := s.AuthorizeUser(ctx, addingUserID, companyID, domain.RoleAdmin); err != nil {
		s.LogWarn(ctx, "User not authorized to add members to company",
			slog.String("adding_user_id", addingUserID),
			slog.String("company_id", companyID))
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", apperrors.ErrValidation, req.UserID)
		}
		s.LogError(ctx, err, "Failed to look up user to add", slog.String("target_user_id", req.UserID))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	member := domain.CompanyMember{
		UserID:    user.UserID,
		UserName:  user.Name,
		CompanyID: companyID,
		Role:      req.Role,
		JoinedAt:  s.Now(),
	}
	if err := s.companyRepo.AddUserToCompany(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to add user to company",
			slog.String("target_user_id", req.UserID),
			slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to add user %s to company %s: %w", req.UserID, companyID, err)
	}
	s.roleCache.Delete(roleCacheKey(member.UserID, companyID))

	s.LogInfo(ctx, "User added to company successfully",
		slog.String("target_user_id", member.UserID),
		slog.String("company_id", companyID),
		slog.String("role", string(member.Role)),
		slog.String("added_by_user_id", addingUserID))
	return &member, nil
}

// AuthorizeUserAction checks if a user has the required role (or higher) within a company.
// Returns apperrors.ErrNotFound if the user is not a member, so company existence is not revealed.
// Returns apperrors.ErrForbidden if the user is a member but lacks the required role.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	role, err := s.memberRole(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if role.Satisfies(requiredRole) {
		return nil
	}

	s.LogWarn(ctx, "Authorization failed: User lacks required role",
		slog.String("user_id", userID),
		slog.String("company_id", companyID),
		slog.String("user_role", string(role)),
		slog.String("required_role", string(requiredRole)))
	return fmt.Errorf("%w: role %s required", apperrors.ErrForbidden, requiredRole)
}

func (s *companyService) memberRole(ctx context.Context, userID, companyID string) (domain.CompanyRole, error) {
	key := roleCacheKey(userID, companyID)
	if cached, ok := s.roleCache.Get(key); ok {
		return cached.(domain.CompanyRole), nil
	}

	membership, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Authorization failed: User is not a member of the company",
				slog.String("user_id", userID),
				slog.String("company_id", companyID))
			return "", fmt.Errorf("company %s: %w", companyID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to check user company role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return "", fmt.Errorf("failed to check authorization: %w", err)
	}

	s.roleCache.SetDefault(key, membership.Role)
	return membership.Role, nil
}
