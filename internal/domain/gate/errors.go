package gate

import "errors"

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrAccountSuspended = errors.New("account is suspended")

	// ErrChargeFailed means the tool call succeeded but the accounting
	// transaction could not be committed. The caller was not debited.
	ErrChargeFailed = errors.New("charge could not be committed")
)
