package account

import "errors"

var (
	// ErrNotFound is returned when the account does not exist
	ErrNotFound = errors.New("account not found")

	// ErrEmailTaken is returned when the email is already registered
	ErrEmailTaken = errors.New("email already registered")

	// ErrInsufficientCredits is returned when a debit would take the balance below zero
	ErrInsufficientCredits = errors.New("insufficient credits")
)
