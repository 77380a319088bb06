package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns account router (all routes require auth)
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/balance", h.Balance)
	r.Get("/ledger", h.Ledger)
	r.Get("/usage", h.Usage)

	return r
}
