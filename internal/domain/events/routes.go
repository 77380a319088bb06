package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnihub/omnihub-api/internal/middleware"
)

// Routes returns events router (auth + admin role required)
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(middleware.RequireAdmin())

	r.Get("/ws", h.WebSocket)

	return r
}
