package tools

import "errors"

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrChannelInactive = errors.New("channel is not active")
	ErrMailboxFields   = errors.New("login and domain are required to check an inbox")
)
