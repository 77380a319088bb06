package usage

import (
	"time"

	"github.com/google/uuid"
)

// Status of a tool invocation attempt
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Record is a single immutable row in the usage log. Every tool invocation
// attempt gets one, successful or not. CreditsCharged is 0 on failure.
type Record struct {
	ID             uuid.UUID `db:"id" json:"id"`
	AccountID      uuid.UUID `db:"account_id" json:"account_id"`
	Tool           string    `db:"tool" json:"tool"`
	CreditsCharged int       `db:"credits_charged" json:"credits_charged"`
	Status         Status    `db:"status" json:"status"`
	Detail         string    `db:"detail" json:"detail"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
