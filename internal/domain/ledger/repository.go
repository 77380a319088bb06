package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository provides append and read access to the credit ledger.
// The ledger is insert-only: no update or delete statements exist here.
type Repository interface {
	// AppendTx writes a ledger entry inside an external transaction.
	// Must only be called after the corresponding balance mutation succeeded
	// within the same transaction.
	AppendTx(ctx context.Context, tx *sqlx.Tx, e *Entry) error

	// Query returns entries newest first. A nil accountID returns all accounts
	// (admin scope).
	Query(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]Entry, error)

	// SumAmounts returns the sum of all entry amounts for an account.
	// Audit helper: must equal the account's current balance.
	SumAmounts(ctx context.Context, accountID uuid.UUID) (int, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new ledger repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) AppendTx(ctx context.Context, tx *sqlx.Tx, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	query := `
		INSERT INTO ledger_entries (id, account_id, amount, balance_after, reason, actor)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := tx.QueryRowContext(ctx, query,
		e.ID,
		e.AccountID,
		e.Amount,
		e.BalanceAfter,
		e.Reason,
		e.Actor,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("ledger repository append: %w", err)
	}

	return nil
}

func (r *repository) Query(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	entries := make([]Entry, 0)

	if accountID != nil {
		query := `
			SELECT id, account_id, amount, balance_after, reason, actor, created_at
			FROM ledger_entries
			WHERE account_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`
		if err := r.db.SelectContext(ctx, &entries, query, *accountID, limit, offset); err != nil {
			return nil, fmt.Errorf("ledger repository query: %w", err)
		}
		return entries, nil
	}

	query := `
		SELECT id, account_id, amount, balance_after, reason, actor, created_at
		FROM ledger_entries
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &entries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("ledger repository query: %w", err)
	}
	return entries, nil
}

func (r *repository) SumAmounts(ctx context.Context, accountID uuid.UUID) (int, error) {
	var sum int
	err := r.db.GetContext(ctx, &sum,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE account_id = $1`,
		accountID,
	)
	if err != nil {
		return 0, fmt.Errorf("ledger repository sum amounts: %w", err)
	}
	return sum, nil
}
