package usage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository provides append and read access to the usage log. Insert-only.
type Repository interface {
	// Record writes a usage record outside any transaction (failed calls).
	Record(ctx context.Context, rec *Record) error

	// RecordTx writes a usage record inside an external transaction
	// (successful charges, alongside the balance debit and ledger row).
	RecordTx(ctx context.Context, tx *sqlx.Tx, rec *Record) error

	// Query returns records newest first. A nil accountID returns all
	// accounts (admin scope).
	Query(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]Record, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new usage repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const insertQuery = `
	INSERT INTO usage_records (id, account_id, tool, credits_charged, status, detail)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
`

func (r *repository) Record(ctx context.Context, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := r.db.QueryRowContext(ctx, insertQuery,
		rec.ID, rec.AccountID, rec.Tool, rec.CreditsCharged, rec.Status, rec.Detail,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("usage repository record: %w", err)
	}
	return nil
}

func (r *repository) RecordTx(ctx context.Context, tx *sqlx.Tx, rec *Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := tx.QueryRowContext(ctx, insertQuery,
		rec.ID, rec.AccountID, rec.Tool, rec.CreditsCharged, rec.Status, rec.Detail,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("usage repository record: %w", err)
	}
	return nil
}

func (r *repository) Query(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	records := make([]Record, 0)

	if accountID != nil {
		query := `
			SELECT id, account_id, tool, credits_charged, status, detail, created_at
			FROM usage_records
			WHERE account_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`
		if err := r.db.SelectContext(ctx, &records, query, *accountID, limit, offset); err != nil {
			return nil, fmt.Errorf("usage repository query: %w", err)
		}
		return records, nil
	}

	query := `
		SELECT id, account_id, tool, credits_charged, status, detail, created_at
		FROM usage_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, fmt.Errorf("usage repository query: %w", err)
	}
	return records, nil
}
