package ledger

import (
	"time"

	"github.com/google/uuid"
)

// ActorSystem marks entries written by the tool charge path rather than an admin.
const ActorSystem = "system"

// Entry is a single immutable row in the credit ledger.
// Amount is signed: positive for grants, negative for deductions.
// BalanceAfter is the account balance after the amount was applied.
type Entry struct {
	ID           uuid.UUID `db:"id" json:"id"`
	AccountID    uuid.UUID `db:"account_id" json:"account_id"`
	Amount       int       `db:"amount" json:"amount"`
	BalanceAfter int       `db:"balance_after" json:"balance_after"`
	Reason       string    `db:"reason" json:"reason"`
	Actor        string    `db:"actor" json:"actor"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
