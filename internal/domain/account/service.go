package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/omnihub/omnihub-api/internal/domain/ledger"
	"github.com/omnihub/omnihub-api/internal/domain/usage"
)

// Service handles account-facing queries: own balance and own history.
type Service struct {
	repo    Repository
	entries ledger.Repository
	records usage.Repository
}

// NewService creates account service
func NewService(repo Repository, entries ledger.Repository, records usage.Repository) *Service {
	return &Service{repo: repo, entries: entries, records: records}
}

// GetBalance returns the current credit balance
func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (int, error) {
	return s.repo.GetBalance(ctx, accountID)
}

// GetLedger returns the account's own ledger entries, newest first
func (s *Service) GetLedger(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]ledger.Entry, error) {
	return s.entries.Query(ctx, &accountID, limit, offset)
}

// GetUsage returns the account's own usage records, newest first
func (s *Service) GetUsage(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]usage.Record, error) {
	return s.records.Query(ctx, &accountID, limit, offset)
}
