package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	portssvc "github.com/karyabangun/bizadmin/internal/core/ports/services"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

// googleOAuthHandler exchanges a Google authorization code for an application token.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.TokenService)
	rg.POST("/google/exchange-code", h.exchangeCode)
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code
// @Description Exchanges the code for Google tokens, validates the ID token, creates or links the user and returns an application JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.APIResponse "Invalid authorization code"
// @Failure 401 {object} dto.APIResponse "Invalid Google ID token"
// @Failure 504 {object} dto.APIResponse "Google unreachable"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			respondError(c, err, "Google sign-in unavailable")
			return
		}
		lower := strings.ToLower(err.Error())
		if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
			respondError(c, apperrors.NewBadRequestError("invalid or expired authorization code"), "Failed to exchange authorization code")
			return
		}
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		respondError(c, apperrors.NewGatewayTimeoutError("failed to communicate with Google"), "Failed to communicate with Google")
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		respondError(c, apperrors.NewInternalServerError("id token missing"), "Failed to retrieve ID token from Google")
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		respondError(c, apperrors.NewUnauthorizedError("invalid Google ID token"), "Google ID token validation failed")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token", slog.Any("claims", payload.Claims))
		respondError(c, apperrors.NewInternalServerError("essential claims missing"), "Essential user information missing from Google token")
		return
	}

	user, err := h.userService.CreateOAuthUser(ctx, name, email, domain.ProviderGoogle, payload.Subject, emailVerified)
	if err != nil {
		respondError(c, err, "Failed to process user authentication")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err, "Failed to generate access token")
		return
	}

	logger.Info("User signed in with Google", slog.String("user_id", user.UserID))
	respondOK(c, http.StatusOK, "Login successful", dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}
