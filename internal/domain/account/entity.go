package account

import (
	"time"

	"github.com/google/uuid"
)

// Role represents account role (matches account_role enum)
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account represents a user account with a credit balance
type Account struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	Name          string    `db:"name"`
	PasswordHash  string    `db:"password_hash"`
	Role          Role      `db:"role"`
	CreditBalance int       `db:"credit_balance"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// IsAdmin returns true if the account has the admin role
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
