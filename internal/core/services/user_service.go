package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portsrepo "github.com/karyabangun/bizadmin/internal/core/ports/repositories"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...ServiceOption) portssvc.UserSvcFacade {
	svc := &userService{userRepo: userRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// CreateUser registers a local user
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	_, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("username %q is already taken", req.Username))
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check username availability", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	user := domain.User{
		UserID:       userID,
		Username:     req.Username,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("username", req.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered successfully", slog.String("user_id", userID))
	return &user, nil
}

// CreateOAuthUser returns the user linked to an external identity, creating it on first sign-in
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider",
			slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !emailVerified {
		return nil, apperrors.NewUnauthorizedError("email address is not verified with the identity provider")
	}

	userID := uuid.NewString()
	pid := providerUserID
	user := domain.User{
		UserID:         userID,
		Username:       oauthUsername(email, userID),
		Name:           name,
		AuthProvider:   provider,
		ProviderUserID: &pid,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}
	if email != "" {
		user.Email = &email
	}
	if user.Name == "" {
		user.Name = user.Username
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save OAuth user", slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", userID), slog.String("provider", string(provider)))
	return &user, nil
}

// oauthUsername derives a unique username from the email local part.
func oauthUsername(email, userID string) string {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	local = nonAlphanumeric.ReplaceAllString(local, "")
	if len(local) > 40 {
		local = local[:40]
	}
	if local == "" {
		local = "user"
	}
	return local + strings.ReplaceAll(userID, "-", "")[:8]
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by username", slog.String("username", username))
		}
		return nil, err
	}
	return user, nil
}

// AuthenticateUser checks a username/password pair. Unknown users and wrong
// passwords produce the same error.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Login attempt for unknown user", slog.String("username", username))
			return nil, apperrors.NewUnauthorizedError("invalid username or password")
		}
		s.LogError(ctx, err, "Failed to load user for login", slog.String("username", username))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		s.LogWarn(ctx, "Password login attempted for external account", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Invalid password", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid username or password")
	}
	return user, nil
}
