package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines account data access
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, limit, offset int) ([]Account, error)
	Count(ctx context.Context) (int, error)

	GetBalance(ctx context.Context, id uuid.UUID) (int, error)
	IsActive(ctx context.Context, id uuid.UUID) (bool, error)

	// AdjustBalance atomically applies delta to the account's balance.
	// Returns ErrInsufficientCredits when delta is negative and the balance
	// would go below zero; never leaves a negative balance.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta int) (int, error)
	// AdjustBalanceTx is AdjustBalance inside an external transaction.
	AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int) (int, error)

	// SetActive suspends or reactivates an account. Idempotent.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new account repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const accountColumns = `id, email, name, password_hash, role, credit_balance, is_active, created_at, updated_at`

func (r *repository) Create(ctx context.Context, a *Account) error {
	query := `
		INSERT INTO accounts (id, email, name, password_hash, role, credit_balance, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Email,
		a.Name,
		a.PasswordHash,
		a.Role,
		a.CreditBalance,
		a.IsActive,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("account repository create: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	var a Account
	err := r.db.GetContext(ctx, &a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account repository get by id: %w", err)
	}

	return &a, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	var a Account
	err := r.db.GetContext(ctx, &a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("account repository get by email: %w", err)
	}

	return &a, nil
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Account, error) {
	if limit <= 0 {
		limit = 50
	}

	accounts := make([]Account, 0)
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &accounts, query, limit, offset); err != nil {
		return nil, fmt.Errorf("account repository list: %w", err)
	}

	return accounts, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM accounts`); err != nil {
		return 0, fmt.Errorf("account repository count: %w", err)
	}
	return count, nil
}

func (r *repository) GetBalance(ctx context.Context, id uuid.UUID) (int, error) {
	var balance int
	err := r.db.GetContext(ctx, &balance, `SELECT credit_balance FROM accounts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("account repository get balance: %w", err)
	}
	return balance, nil
}

func (r *repository) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := r.db.GetContext(ctx, &active, `SELECT is_active FROM accounts WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("account repository is active: %w", err)
	}
	return active, nil
}

// adjustBalanceQuery applies the delta only when the result stays >= 0,
// so concurrent debits serialize on the row and can never overdraw.
const adjustBalanceQuery = `
	UPDATE accounts
	SET credit_balance = credit_balance + $2, updated_at = NOW()
	WHERE id = $1 AND credit_balance + $2 >= 0
	RETURNING credit_balance
`

func (r *repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var newBalance int
	err := r.db.QueryRowContext(ctx, adjustBalanceQuery, id, delta).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, r.classifyAdjustFailure(ctx, id)
		}
		return 0, fmt.Errorf("account repository adjust balance: %w", err)
	}
	return newBalance, nil
}

func (r *repository) AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int) (int, error) {
	var newBalance int
	err := tx.QueryRowContext(ctx, adjustBalanceQuery, id, delta).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, r.classifyAdjustFailure(ctx, id)
		}
		return 0, fmt.Errorf("account repository adjust balance: %w", err)
	}
	return newBalance, nil
}

// classifyAdjustFailure distinguishes a missing account from an overdraw.
func (r *repository) classifyAdjustFailure(ctx context.Context, id uuid.UUID) error {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("account repository adjust balance: %w", err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInsufficientCredits
}

func (r *repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET is_active = $2, updated_at = NOW() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("account repository set active: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
