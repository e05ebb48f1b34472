package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
	Clock             func() time.Time
}

// ServiceOption is a functional option shared by every service that embeds BaseService.
type ServiceOption func(*BaseService)

// WithCompanyAuthorizer adds the company authorizer dependency
func WithCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) ServiceOption {
	return func(s *BaseService) {
		s.CompanyAuthorizer = authorizer
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func (s *BaseService) apply(options []ServiceOption) {
	for _, option := range options {
		option(s)
	}
}

// Now returns the current time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role for a company.
// Without an authorizer every request is denied.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	if s.CompanyAuthorizer == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No company authorizer configured, denying access",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return apperrors.ErrForbidden
	}
	return s.CompanyAuthorizer.AuthorizeUserAction(ctx, userID, companyID, requiredRole)
}

// projectScope is embedded by services whose resources hang off a project.
type projectScope struct {
	BaseService
	projectRepo portsrepo.ProjectReader
}

// authorizeProject checks the caller's company role and that the project belongs to the company.
func (s *projectScope) authorizeProject(ctx context.Context, userID, companyID, projectID string, requiredRole domain.CompanyRole) (*domain.Project, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, requiredRole); err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("project %s: %w", projectID, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to load project",
			slog.String("company_id", companyID),
			slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return project, nil
}
