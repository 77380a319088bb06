package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/domain/gate"
	"github.com/omnihub/omnihub-api/internal/domain/ledger"
	"github.com/omnihub/omnihub-api/internal/domain/usage"
)

// Service handles admin business logic
type Service struct {
	accounts account.Repository
	store    gate.Store
	entries  ledger.Repository
	records  usage.Repository
}

// NewService creates admin service
func NewService(accounts account.Repository, store gate.Store, entries ledger.Repository, records usage.Repository) *Service {
	return &Service{
		accounts: accounts,
		store:    store,
		entries:  entries,
		records:  records,
	}
}

// ListAccounts returns a page of accounts with the total count
func (s *Service) ListAccounts(ctx context.Context, limit, offset int) ([]account.Account, int, error) {
	accounts, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// GetAccount returns one account by id
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// AdjustCredits applies a signed credit adjustment with its ledger entry.
// Goes through the same balance+ledger pairing as tool charges, so a deduction
// that would leave the balance negative is rejected the same way.
func (s *Service) AdjustCredits(ctx context.Context, adminID, accountID uuid.UUID, amount int, reason string) (*ledger.Entry, error) {
	if amount == 0 {
		return nil, ErrInvalidAdjustment
	}

	adm, err := s.accounts.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	return s.store.AdjustWithLedger(ctx, accountID, amount, reason, adm.Email)
}

// SetSuspended suspends or reactivates an account. Admin accounts cannot be
// suspended.
func (s *Service) SetSuspended(ctx context.Context, accountID uuid.UUID, suspended bool) (*account.Account, error) {
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if suspended && a.IsAdmin() {
		return nil, ErrCannotSuspendAdmin
	}

	if err := s.accounts.SetActive(ctx, accountID, !suspended); err != nil {
		return nil, err
	}

	a.IsActive = !suspended
	return a, nil
}

// QueryLedger returns ledger entries, all accounts or one, newest first
func (s *Service) QueryLedger(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]ledger.Entry, error) {
	return s.entries.Query(ctx, accountID, limit, offset)
}

// QueryUsage returns usage records, all accounts or one, newest first
func (s *Service) QueryUsage(ctx context.Context, accountID *uuid.UUID, limit, offset int) ([]usage.Record, error) {
	return s.records.Query(ctx, accountID, limit, offset)
}
