package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karyabangun/bizadmin/internal/apperrors"
	"github.com/karyabangun/bizadmin/internal/core/domain"
	"github.com/karyabangun/bizadmin/internal/dto"
	"github.com/karyabangun/bizadmin/internal/middleware"
)

func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.NewSuccessResponse(message, data))
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request format: "+err.Error(), nil))
}

func respondUnauthorized(c *gin.Context) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized", nil))
}

// respondError maps a service error to a status and envelope. Server errors
// are logged with their cause and answered with a generic message.
func respondError(c *gin.Context, err error, failure string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)

	var mismatch *domain.TotalMismatchError
	if errors.As(err, &mismatch) {
		logger.Warn(failure, slog.String("error", err.Error()))
		c.JSON(status, dto.NewErrorResponse(err.Error(), dto.MismatchResponse{
			Expected: mismatch.Expected,
			Actual:   mismatch.Actual,
			Line:     mismatch.Line,
		}))
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(status, dto.NewErrorResponse(failure, nil))
		return
	}

	logger.Warn(failure, slog.String("error", err.Error()), slog.Int("status", status))
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}
	c.JSON(status, dto.NewErrorResponse(message, nil))
}

// requireUser returns the authenticated user id or writes a 401.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
	}
	return userID, ok
}
