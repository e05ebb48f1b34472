package dto

import (
	"time"

	"github.com/karyabangun/bizadmin/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a local user.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50,alphanum"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Name     string  `json:"name" binding:"required,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest carries username/password credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ExchangeCodeRequest carries the Google authorization code sent by the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID       string              `json:"userID"`
	Username     string              `json:"username"`
	Name         string              `json:"name"`
	Email        *string             `json:"email,omitempty"`
	AuthProvider domain.AuthProvider `json:"authProvider"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}
