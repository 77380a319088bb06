package account

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/omnihub/omnihub-api/internal/middleware"
	"github.com/omnihub/omnihub-api/internal/pkg/response"
)

// Handler handles account HTTP requests (self-service)
type Handler struct {
	service *Service
}

// NewHandler creates account handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Balance handles GET /account/balance
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())

	balance, err := h.service.GetBalance(r.Context(), accountID)
	if err != nil {
		if err == ErrNotFound {
			response.NotFound(w, "Account not found")
			return
		}
		log.Error().Err(err).Str("account_id", accountID.String()).Msg("failed to get balance")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]int{"balance": balance})
}

// Ledger handles GET /account/ledger
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	limit, offset := parsePagination(r)

	entries, err := h.service.GetLedger(r.Context(), accountID, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("account_id", accountID.String()).Msg("failed to get ledger")
		response.InternalError(w)
		return
	}

	response.OK(w, entries)
}

// Usage handles GET /account/usage
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r.Context())
	limit, offset := parsePagination(r)

	records, err := h.service.GetUsage(r.Context(), accountID, limit, offset)
	if err != nil {
		log.Error().Err(err).Str("account_id", accountID.String()).Msg("failed to get usage history")
		response.InternalError(w)
		return
	}

	response.OK(w, records)
}

func parsePagination(r *http.Request) (limit, offset int) {
	query := r.URL.Query()
	page := 1
	limit = 20
	if p := query.Get("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := query.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	offset = (page - 1) * limit
	return limit, offset
}
