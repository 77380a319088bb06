package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnihub/omnihub-api/internal/middleware"
)

// Routes returns admin router (auth + admin role required)
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(middleware.RequireAdmin())

	r.Get("/accounts", h.ListAccounts)
	r.Get("/accounts/{id}", h.GetAccount)
	r.Post("/accounts/{id}/credits", h.AdjustCredits)
	r.Post("/accounts/{id}/suspend", h.Suspend)
	r.Post("/accounts/{id}/activate", h.Activate)
	r.Get("/ledger", h.Ledger)
	r.Get("/usage", h.Usage)

	return r
}
