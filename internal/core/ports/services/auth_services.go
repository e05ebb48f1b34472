package services

import (
	"context"
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues the bearer tokens accepted by the API.
type TokenSvcFacade interface {
	// GenerateAccessToken returns a signed token for user and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthHandlerSvcFacade backs sign-in with a Google account.
type GoogleOAuthHandlerSvcFacade interface {
	// ExchangeCodeForToken trades the code the frontend received for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken verifies the id_token against our client ID.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
