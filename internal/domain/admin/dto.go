package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/omnihub/omnihub-api/internal/domain/account"
)

// AdjustCreditsRequest for POST /admin/accounts/{id}/credits
type AdjustCreditsRequest struct {
	Amount int    `json:"amount" validate:"required"`
	Reason string `json:"reason" validate:"required,min=2,max=255"`
}

// AccountResponse represents an account in admin listings
type AccountResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	CreditBalance int       `json:"credit_balance"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// NewAccountResponse maps an account entity to the admin view
func NewAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Email:         a.Email,
		Name:          a.Name,
		Role:          string(a.Role),
		CreditBalance: a.CreditBalance,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}
