package gate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/domain/usage"
)

// AdapterFunc performs the actual tool call. It runs under a deadline derived
// from the gate's timeout and must respect ctx cancellation.
type AdapterFunc func(ctx context.Context) (any, error)

// Detailer lets an adapter payload refine the recorded usage detail after the
// call, e.g. to note a degraded upstream mode.
type Detailer interface {
	ChargeDetail() string
}

// AccountReader is the slice of the account store the gate needs.
type AccountReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
}

// Publisher broadcasts usage records to listeners (admin live feed).
// Publishing is best effort and never blocks or fails a charge.
type Publisher interface {
	PublishUsage(ctx context.Context, rec usage.Record)
}

// Result of a successful gated call.
type Result struct {
	Data    any `json:"data"`
	Cost    int `json:"cost"`
	Balance int `json:"balance"`
}

// Service is the credit authorization gate. Every paid tool call goes through
// Charge: eligibility checks first, then the adapter call, then the debit.
// A failed adapter call is never debited.
type Service struct {
	store    Store
	accounts AccountReader
	events   Publisher
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewService creates new gate service. events may be nil.
func NewService(store Store, accounts AccountReader, events Publisher, timeout time.Duration, logger zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		store:    store,
		accounts: accounts,
		events:   events,
		timeout:  timeout,
		logger:   logger,
	}
}

// Charge runs one gated tool call.
//
// Order matters: the account must exist, be active and afford the cost before
// the adapter runs. The debit, ledger entry and usage record commit in one
// transaction only after the adapter returned successfully. The conditional
// balance update re-checks affordability at commit time, so concurrent calls
// cannot overdraw even though they all passed the precheck.
func (s *Service) Charge(ctx context.Context, accountID uuid.UUID, tool Tool, detail string, call AdapterFunc) (*Result, error) {
	cost, ok := Cost(tool)
	if !ok {
		return nil, ErrUnknownTool
	}

	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !acct.IsActive {
		return nil, ErrAccountSuspended
	}
	if acct.CreditBalance < cost {
		return nil, account.ErrInsufficientCredits
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	data, callErr := call(callCtx)
	cancel()
	if callErr != nil {
		s.recordFailure(ctx, accountID, tool, callErr.Error())
		return nil, fmt.Errorf("tool %s: %w", tool, callErr)
	}
	if d, ok := data.(Detailer); ok && d.ChargeDetail() != "" {
		detail = d.ChargeDetail()
	}

	receipt, err := s.store.CommitCharge(ctx, accountID, tool, cost, detail)
	if err != nil {
		if errors.Is(err, account.ErrInsufficientCredits) {
			// Drained by a concurrent call between precheck and commit.
			s.recordFailure(ctx, accountID, tool, "insufficient credits at commit")
			return nil, account.ErrInsufficientCredits
		}
		// The tool already ran; an uncommitted charge must be loud.
		s.logger.Error().
			Err(err).
			Str("account_id", accountID.String()).
			Str("tool", string(tool)).
			Int("cost", cost).
			Msg("Charge commit failed after successful tool call")
		return nil, ErrChargeFailed
	}

	s.publish(ctx, receipt.Usage)

	return &Result{Data: data, Cost: cost, Balance: receipt.Balance}, nil
}

func (s *Service) recordFailure(ctx context.Context, accountID uuid.UUID, tool Tool, detail string) {
	rec, err := s.store.RecordFailure(ctx, accountID, tool, detail)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("account_id", accountID.String()).
			Str("tool", string(tool)).
			Msg("Failed to record tool failure")
		return
	}
	s.publish(ctx, *rec)
}

func (s *Service) publish(ctx context.Context, rec usage.Record) {
	if s.events == nil {
		return
	}
	s.events.PublishUsage(ctx, rec)
}
