package tools

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns tools router (all routes require auth)
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/costs", h.Costs)
	r.Post("/phone-lookup", h.PhoneLookup)
	r.Post("/eyecon-lookup", h.EyeconLookup)
	r.Post("/temp-email", h.TempEmail)
	r.Post("/youtube-download", h.YouTubeDownload)
	r.Post("/image-enhance", h.ImageEnhance)
	r.Post("/tamasha-otp", h.TamashaOTP)
	r.Get("/live-tv/channels", h.Channels)
	r.Get("/live-tv/channels/{category}", h.ChannelsByCategory)
	r.Get("/live-tv/stream/{channel_id}", h.Stream)

	return r
}
