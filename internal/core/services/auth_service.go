package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/platform/config"
	"github.com/karyabangun/bizadmin/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService signs application access tokens.
type tokenService struct {
	secret string
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service from the JWT settings.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{
		secret: cfg.JWTSecret,
		issuer: cfg.JWTIssuer,
		ttl:    cfg.JWTExpiryDuration,
		now:    time.Now,
	}
}

// GenerateAccessToken signs a token for user and reports when it expires.
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.UserID == "" {
		return "", time.Time{}, apperrors.NewInternalServerError("cannot issue a token without a user")
	}
	issuedAt := s.now()
	token, err := utils.GenerateJWTAt(user.UserID, s.secret, issuedAt, s.ttl, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, issuedAt.Add(s.ttl), nil
}

// googleOAuthHandlerService talks to Google for the authorization code flow.
// The redirect URL is the frontend's, which receives the code first.
type googleOAuthHandlerService struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates the Google sign-in service.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *googleOAuthHandlerService) configured() error {
	if s.clientID == "" {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "Google sign-in is not configured", nil)
	}
	return nil
}

func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken checks signature, expiry and audience of a Google ID token.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
