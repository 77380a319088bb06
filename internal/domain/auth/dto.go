package auth

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest for POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest for POST /auth/refresh and /auth/logout
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse returned after login/register
type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Tokens  TokensResponse  `json:"tokens"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	CreditBalance int       `json:"credit_balance"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     string    `json:"created_at"`
}

// TokensResponse represents tokens in API response
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds until access token expires
}

// NewAccountResponse creates AccountResponse from account data
func NewAccountResponse(id uuid.UUID, email, name, role string, balance int, isActive bool, createdAt time.Time) AccountResponse {
	return AccountResponse{
		ID:            id,
		Email:         email,
		Name:          name,
		Role:          role,
		CreditBalance: balance,
		IsActive:      isActive,
		CreatedAt:     createdAt.Format(time.RFC3339),
	}
}
