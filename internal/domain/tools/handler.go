package tools

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/domain/gate"
	"github.com/omnihub/omnihub-api/internal/middleware"
	"github.com/omnihub/omnihub-api/internal/pkg/errorhandler"
	"github.com/omnihub/omnihub-api/internal/pkg/response"
	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
	"github.com/omnihub/omnihub-api/internal/pkg/validator"
	"github.com/omnihub/omnihub-api/internal/pkg/videometa"
)

// Handler handles tool HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates tools handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Costs handles GET /tools/costs
func (h *Handler) Costs(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.service.Costs())
}

// PhoneLookup handles POST /tools/phone-lookup
func (h *Handler) PhoneLookup(w http.ResponseWriter, r *http.Request) {
	var req PhoneLookupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.PhoneLookup(r.Context(), middleware.GetAccountID(r.Context()), req.Phone)
	if err != nil {
		h.handleToolError(w, r, "phone_lookup", err)
		return
	}

	response.OK(w, result)
}

// EyeconLookup handles POST /tools/eyecon-lookup
func (h *Handler) EyeconLookup(w http.ResponseWriter, r *http.Request) {
	var req EyeconLookupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.EyeconLookup(r.Context(), middleware.GetAccountID(r.Context()), req.Phone)
	if err != nil {
		h.handleToolError(w, r, "eyecon_lookup", err)
		return
	}

	response.OK(w, result)
}

// TempEmail handles POST /tools/temp-email.
// action=generate is charged, action=check is free.
func (h *Handler) TempEmail(w http.ResponseWriter, r *http.Request) {
	var req TempEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	switch req.Action {
	case "generate":
		result, err := h.service.TempEmailGenerate(r.Context(), middleware.GetAccountID(r.Context()))
		if err != nil {
			h.handleToolError(w, r, "temp_email", err)
			return
		}
		response.OK(w, result)

	case "check":
		messages, err := h.service.TempEmailCheck(r.Context(), req.Login, req.Domain)
		if err != nil {
			if errors.Is(err, ErrMailboxFields) {
				response.BadRequest(w, "login and domain are required")
				return
			}
			h.handleToolError(w, r, "temp_email", err)
			return
		}
		response.OK(w, map[string]any{"messages": messages, "total": len(messages)})
	}
}

// YouTubeDownload handles POST /tools/youtube-download
func (h *Handler) YouTubeDownload(w http.ResponseWriter, r *http.Request) {
	var req YouTubeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.YouTubeDownload(r.Context(), middleware.GetAccountID(r.Context()), req.URL)
	if err != nil {
		if errors.Is(err, videometa.ErrInvalidURL) {
			response.BadRequest(w, "Invalid YouTube URL")
			return
		}
		h.handleToolError(w, r, "youtube_download", err)
		return
	}

	response.OK(w, result)
}

// ImageEnhance handles POST /tools/image-enhance
func (h *Handler) ImageEnhance(w http.ResponseWriter, r *http.Request) {
	var req ImageEnhanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.service.ImageEnhance(r.Context(), middleware.GetAccountID(r.Context()), req.ImageURL)
	if err != nil {
		h.handleToolError(w, r, "image_enhance", err)
		return
	}

	response.OK(w, result)
}

// TamashaOTP handles POST /tools/tamasha-otp.
// action=send is charged, action=verify is free.
func (h *Handler) TamashaOTP(w http.ResponseWriter, r *http.Request) {
	var req TamashaOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	switch req.Action {
	case "send":
		result, err := h.service.TamashaSendOTP(r.Context(), middleware.GetAccountID(r.Context()), req.Phone)
		if err != nil {
			h.handleToolError(w, r, "tamasha_otp", err)
			return
		}
		response.OK(w, result)

	case "verify":
		if req.OTP == "" {
			response.BadRequest(w, "otp is required for verification")
			return
		}
		result, err := h.service.TamashaVerifyOTP(r.Context(), req.Phone, req.OTP)
		if err != nil {
			h.handleToolError(w, r, "tamasha_otp", err)
			return
		}
		response.OK(w, result)
	}
}

// Channels handles GET /tools/live-tv/channels
func (h *Handler) Channels(w http.ResponseWriter, r *http.Request) {
	channels := h.service.Channels("")
	response.OK(w, map[string]any{"channels": channels, "total": len(channels)})
}

// ChannelsByCategory handles GET /tools/live-tv/channels/{category}
func (h *Handler) ChannelsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	channels := h.service.Channels(category)
	response.OK(w, map[string]any{"channels": channels, "total": len(channels), "category": category})
}

// Stream handles GET /tools/live-tv/stream/{channel_id}
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channel_id")

	result, err := h.service.Stream(r.Context(), middleware.GetAccountID(r.Context()), channelID)
	if err != nil {
		switch {
		case errors.Is(err, ErrChannelNotFound):
			response.NotFound(w, "Channel not found")
		case errors.Is(err, ErrChannelInactive):
			response.ServiceUnavailable(w, "Channel is not active")
		default:
			h.handleToolError(w, r, "live_tv", err)
		}
		return
	}

	response.OK(w, result)
}

// handleToolError maps gate and adapter errors to HTTP statuses.
func (h *Handler) handleToolError(w http.ResponseWriter, r *http.Request, tool string, err error) {
	switch {
	case errors.Is(err, account.ErrNotFound):
		response.NotFound(w, "Account not found")
	case errors.Is(err, account.ErrInsufficientCredits):
		response.PaymentRequired(w, "Insufficient credits")
	case errors.Is(err, gate.ErrAccountSuspended):
		response.Forbidden(w, "Account is suspended")
	case errors.Is(err, gate.ErrUnknownTool):
		response.BadRequest(w, "Unknown tool")
	case errors.Is(err, gate.ErrChargeFailed):
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CHARGE_COMMIT_FAILED", "Failed to record the charge for "+tool, err)
	case errors.Is(err, upstream.ErrTimeout):
		response.BadGateway(w, "Upstream request timed out")
	case errors.Is(err, upstream.ErrNetwork), errors.Is(err, upstream.ErrStatus):
		response.BadGateway(w, "Upstream service unavailable")
	default:
		errorhandler.HandleError(r.Context(), w, http.StatusBadGateway, "TOOL_CALL_FAILED", "Tool call failed", err)
	}
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return false
	}
	if errors := validator.Validate(req); errors != nil {
		response.ValidationError(w, errors)
		return false
	}
	return true
}
