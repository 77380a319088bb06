package gate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/domain/ledger"
	"github.com/omnihub/omnihub-api/internal/domain/usage"
)

// Receipt is the persisted outcome of a committed charge.
type Receipt struct {
	Balance int
	Usage   usage.Record
	Ledger  ledger.Entry
}

// Store persists the accounting side of gated tool calls. The debit, the
// ledger entry and the usage record for one successful call commit together
// or not at all.
type Store interface {
	CommitCharge(ctx context.Context, accountID uuid.UUID, tool Tool, cost int, detail string) (*Receipt, error)
	RecordFailure(ctx context.Context, accountID uuid.UUID, tool Tool, detail string) (*usage.Record, error)

	// AdjustWithLedger applies a signed delta and its ledger entry in one
	// transaction. Shared with admin credit adjustments so there is a single
	// code path that mutates balances.
	AdjustWithLedger(ctx context.Context, accountID uuid.UUID, delta int, reason, actor string) (*ledger.Entry, error)
}

type store struct {
	db       *sqlx.DB
	accounts account.Repository
	entries  ledger.Repository
	records  usage.Repository
}

// NewStore creates new gate store
func NewStore(db *sqlx.DB, accounts account.Repository, entries ledger.Repository, records usage.Repository) Store {
	return &store{
		db:       db,
		accounts: accounts,
		entries:  entries,
		records:  records,
	}
}

func (s *store) CommitCharge(ctx context.Context, accountID uuid.UUID, tool Tool, cost int, detail string) (*Receipt, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gate store begin tx: %w", err)
	}
	defer tx.Rollback()

	newBalance, err := s.accounts.AdjustBalanceTx(ctx, tx, accountID, -cost)
	if err != nil {
		return nil, err
	}

	entry := ledger.Entry{
		AccountID:    accountID,
		Amount:       -cost,
		BalanceAfter: newBalance,
		Reason:       string(tool) + " usage",
		Actor:        ledger.ActorSystem,
	}
	if err := s.entries.AppendTx(ctx, tx, &entry); err != nil {
		return nil, err
	}

	rec := usage.Record{
		AccountID:      accountID,
		Tool:           string(tool),
		CreditsCharged: cost,
		Status:         usage.StatusSuccess,
		Detail:         detail,
	}
	if err := s.records.RecordTx(ctx, tx, &rec); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("gate store commit: %w", err)
	}

	return &Receipt{Balance: newBalance, Usage: rec, Ledger: entry}, nil
}

func (s *store) RecordFailure(ctx context.Context, accountID uuid.UUID, tool Tool, detail string) (*usage.Record, error) {
	rec := usage.Record{
		AccountID:      accountID,
		Tool:           string(tool),
		CreditsCharged: 0,
		Status:         usage.StatusFailure,
		Detail:         detail,
	}
	if err := s.records.Record(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *store) AdjustWithLedger(ctx context.Context, accountID uuid.UUID, delta int, reason, actor string) (*ledger.Entry, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gate store begin tx: %w", err)
	}
	defer tx.Rollback()

	newBalance, err := s.accounts.AdjustBalanceTx(ctx, tx, accountID, delta)
	if err != nil {
		return nil, err
	}

	entry := ledger.Entry{
		AccountID:    accountID,
		Amount:       delta,
		BalanceAfter: newBalance,
		Reason:       reason,
		Actor:        actor,
	}
	if err := s.entries.AppendTx(ctx, tx, &entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("gate store commit: %w", err)
	}

	return &entry, nil
}
