package admin

import "errors"

var (
	ErrCannotSuspendAdmin = errors.New("admin accounts cannot be suspended")
	ErrInvalidAdjustment  = errors.New("adjustment amount must be non-zero")
)
