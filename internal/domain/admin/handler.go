package admin

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/middleware"
	"github.com/omnihub/omnihub-api/internal/pkg/response"
	"github.com/omnihub/omnihub-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListAccounts handles GET /admin/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)

	accounts, total, err := h.service.ListAccounts(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list accounts")
		response.InternalError(w)
		return
	}

	views := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		views = append(views, NewAccountResponse(&accounts[i]))
	}

	response.WithMeta(w, views, response.Meta{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasNext: offset+len(views) < total,
	})
}

// GetAccount handles GET /admin/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := parseAccountID(w, r)
	if !ok {
		return
	}

	a, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		if err == account.ErrNotFound {
			response.NotFound(w, "Account not found")
			return
		}
		log.Error().Err(err).Str("account_id", id.String()).Msg("failed to get account")
		response.InternalError(w)
		return
	}

	response.OK(w, NewAccountResponse(a))
}

// AdjustCredits handles POST /admin/accounts/{id}/credits
func (h *Handler) AdjustCredits(w http.ResponseWriter, r *http.Request) {
	id, ok := parseAccountID(w, r)
	if !ok {
		return
	}

	var req AdjustCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	adminID := middleware.GetAccountID(r.Context())

	entry, err := h.service.AdjustCredits(r.Context(), adminID, id, req.Amount, req.Reason)
	if err != nil {
		switch err {
		case ErrInvalidAdjustment:
			response.BadRequest(w, "Amount must be non-zero")
		case account.ErrNotFound:
			response.NotFound(w, "Account not found")
		case account.ErrInsufficientCredits:
			response.Conflict(w, "Adjustment would make the balance negative")
		default:
			log.Error().
				Err(err).
				Str("account_id", id.String()).
				Int("amount", req.Amount).
				Msg("failed to adjust credits")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, entry)
}

// Suspend handles POST /admin/accounts/{id}/suspend
func (h *Handler) Suspend(w http.ResponseWriter, r *http.Request) {
	h.setSuspended(w, r, true)
}

// Activate handles POST /admin/accounts/{id}/activate
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setSuspended(w, r, false)
}

func (h *Handler) setSuspended(w http.ResponseWriter, r *http.Request, suspended bool) {
	id, ok := parseAccountID(w, r)
	if !ok {
		return
	}

	a, err := h.service.SetSuspended(r.Context(), id, suspended)
	if err != nil {
		switch err {
		case account.ErrNotFound:
			response.NotFound(w, "Account not found")
		case ErrCannotSuspendAdmin:
			response.Forbidden(w, "Admin accounts cannot be suspended")
		default:
			log.Error().
				Err(err).
				Str("account_id", id.String()).
				Bool("suspended", suspended).
				Msg("failed to change account status")
			response.InternalError(w)
		}
		return
	}

	response.OK(w, NewAccountResponse(a))
}

// Ledger handles GET /admin/ledger
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	accountID, ok := parseOptionalAccountFilter(w, r)
	if !ok {
		return
	}

	entries, err := h.service.QueryLedger(r.Context(), accountID, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to query ledger")
		response.InternalError(w)
		return
	}

	response.OK(w, entries)
}

// Usage handles GET /admin/usage
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	accountID, ok := parseOptionalAccountFilter(w, r)
	if !ok {
		return
	}

	records, err := h.service.QueryUsage(r.Context(), accountID, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to query usage")
		response.InternalError(w)
		return
	}

	response.OK(w, records)
}

func parseAccountID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid account id")
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalAccountFilter(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("account_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(w, "Invalid account_id filter")
		return nil, false
	}
	return &id, true
}

func parseLimitOffset(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
