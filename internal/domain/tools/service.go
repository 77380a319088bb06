package tools

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/omnihub/omnihub-api/internal/domain/gate"
	"github.com/omnihub/omnihub-api/internal/pkg/eyecon"
	"github.com/omnihub/omnihub-api/internal/pkg/imaging"
	"github.com/omnihub/omnihub-api/internal/pkg/livetv"
	"github.com/omnihub/omnihub-api/internal/pkg/phonedb"
	"github.com/omnihub/omnihub-api/internal/pkg/storage"
	"github.com/omnihub/omnihub-api/internal/pkg/tamasha"
	"github.com/omnihub/omnihub-api/internal/pkg/tempmail"
	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
	"github.com/omnihub/omnihub-api/internal/pkg/videometa"
)

// Service wires the tool adapters behind the credit gate.
type Service struct {
	gate     *gate.Service
	phones   *phonedb.Client
	eyecon   *eyecon.Client
	mail     *tempmail.Client
	videos   *videometa.Client
	tamasha  *tamasha.Client
	enhancer *imaging.Enhancer
	store    storage.Storage // nil when object storage is not configured
	fetch    *http.Client    // for pulling source images
}

// NewService creates tools service
func NewService(
	gateSvc *gate.Service,
	phones *phonedb.Client,
	eyeconClient *eyecon.Client,
	mail *tempmail.Client,
	videos *videometa.Client,
	tamashaClient *tamasha.Client,
	enhancer *imaging.Enhancer,
	store storage.Storage,
	fetchTimeout time.Duration,
) *Service {
	return &Service{
		gate:     gateSvc,
		phones:   phones,
		eyecon:   eyeconClient,
		mail:     mail,
		videos:   videos,
		tamasha:  tamashaClient,
		enhancer: enhancer,
		store:    store,
		fetch:    upstream.NewHTTPClient(fetchTimeout),
	}
}

// Costs returns the credit price list.
func (s *Service) Costs() map[string]int {
	return gate.Costs()
}

// PhoneLookup runs a charged SIM database lookup.
func (s *Service) PhoneLookup(ctx context.Context, accountID uuid.UUID, phone string) (*gate.Result, error) {
	sanitized := SanitizePhone(phone)
	return s.gate.Charge(ctx, accountID, gate.ToolPhoneLookup, sanitized, func(ctx context.Context) (any, error) {
		return s.phones.Lookup(ctx, sanitized)
	})
}

// eyeconPayload carries the lookup result and notes the degraded mode in the
// usage detail.
type eyeconPayload struct {
	*eyecon.Result
}

func (p eyeconPayload) ChargeDetail() string {
	return p.Query + " mode=" + p.Mode
}

// EyeconLookup runs a charged caller-ID lookup. Upstream auth failures
// degrade to a safe empty result and are still charged.
func (s *Service) EyeconLookup(ctx context.Context, accountID uuid.UUID, phone string) (*gate.Result, error) {
	sanitized := SanitizePhone(phone)
	return s.gate.Charge(ctx, accountID, gate.ToolEyeconLookup, sanitized, func(ctx context.Context) (any, error) {
		result, err := s.eyecon.Lookup(ctx, sanitized)
		if err != nil {
			return nil, err
		}
		return eyeconPayload{result}, nil
	})
}

// TempEmailGenerate creates a disposable mailbox. Charged.
func (s *Service) TempEmailGenerate(ctx context.Context, accountID uuid.UUID) (*gate.Result, error) {
	return s.gate.Charge(ctx, accountID, gate.ToolTempEmail, "generate", func(ctx context.Context) (any, error) {
		return s.mail.Generate(ctx)
	})
}

// TempEmailCheck lists messages for a mailbox. Free.
func (s *Service) TempEmailCheck(ctx context.Context, login, domain string) ([]tempmail.Message, error) {
	if login == "" || domain == "" {
		return nil, ErrMailboxFields
	}
	return s.mail.CheckInbox(ctx, login, domain)
}

// YouTubeDownload resolves video metadata and download links. Charged.
func (s *Service) YouTubeDownload(ctx context.Context, accountID uuid.UUID, rawURL string) (*gate.Result, error) {
	videoID, err := videometa.ExtractVideoID(rawURL)
	if err != nil {
		return nil, err
	}
	return s.gate.Charge(ctx, accountID, gate.ToolYoutube, videoID, func(ctx context.Context) (any, error) {
		return s.videos.Resolve(ctx, videoID)
	})
}

// EnhanceResult is the image enhancement response payload.
type EnhanceResult struct {
	Success     bool   `json:"success"`
	OriginalURL string `json:"original_url"`
	EnhancedURL string `json:"enhanced_url"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Message     string `json:"message,omitempty"`
}

// ImageEnhance fetches the source image, upscales and sharpens it locally and
// stores the artifact in object storage. Charged.
func (s *Service) ImageEnhance(ctx context.Context, accountID uuid.UUID, imageURL string) (*gate.Result, error) {
	return s.gate.Charge(ctx, accountID, gate.ToolImageEnhance, imageURL, func(ctx context.Context) (any, error) {
		return s.enhanceImage(ctx, imageURL)
	})
}

func (s *Service) enhanceImage(ctx context.Context, imageURL string) (*EnhanceResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("image fetch request error: %w", err)
	}

	resp, err := s.fetch.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "image fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.StatusError("image fetch", resp.StatusCode, nil)
	}

	enhanced, err := s.enhancer.Enhance(resp.Body)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		// No object storage configured; the caller keeps the original URL.
		return &EnhanceResult{
			Success:     true,
			OriginalURL: imageURL,
			EnhancedURL: imageURL,
			Width:       enhanced.Width,
			Height:      enhanced.Height,
			Message:     "Object storage not configured, enhanced artifact was not persisted",
		}, nil
	}

	key := enhancedKey(enhanced.ContentType)
	if err := s.store.Put(ctx, key, bytes.NewReader(enhanced.Data), enhanced.ContentType); err != nil {
		return nil, fmt.Errorf("image store error: %w", err)
	}

	return &EnhanceResult{
		Success:     true,
		OriginalURL: imageURL,
		EnhancedURL: s.store.GetURL(key),
		Width:       enhanced.Width,
		Height:      enhanced.Height,
	}, nil
}

func enhancedKey(contentType string) string {
	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	return path.Join("enhanced", uuid.New().String()+ext)
}

// TamashaSendOTP requests an OTP. Charged.
func (s *Service) TamashaSendOTP(ctx context.Context, accountID uuid.UUID, phone string) (*gate.Result, error) {
	sanitized := SanitizePhone(phone)
	return s.gate.Charge(ctx, accountID, gate.ToolTamashaOTP, "send:"+sanitized, func(ctx context.Context) (any, error) {
		return s.tamasha.SendOTP(ctx, sanitized)
	})
}

// TamashaVerifyOTP checks an OTP. Free.
func (s *Service) TamashaVerifyOTP(ctx context.Context, phone, otp string) (*tamasha.OTPResult, error) {
	return s.tamasha.VerifyOTP(ctx, SanitizePhone(phone), otp)
}

// Channels returns the live TV catalog, optionally filtered by category. Free.
func (s *Service) Channels(category string) []livetv.Channel {
	if category == "" {
		return livetv.All()
	}
	return livetv.ByCategory(category)
}

// StreamPayload is the charged stream resolution response.
type StreamPayload struct {
	Success     bool   `json:"success"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	StreamURL   string `json:"stream_url"`
	Category    string `json:"category"`
}

// Stream resolves a channel's stream URL. Charged.
func (s *Service) Stream(ctx context.Context, accountID uuid.UUID, channelID string) (*gate.Result, error) {
	ch, ok := livetv.ByID(channelID)
	if !ok {
		return nil, ErrChannelNotFound
	}
	if !ch.Active {
		return nil, ErrChannelInactive
	}

	return s.gate.Charge(ctx, accountID, gate.ToolLiveTV, channelID, func(ctx context.Context) (any, error) {
		return &StreamPayload{
			Success:     true,
			ChannelID:   ch.ID,
			ChannelName: ch.Name,
			StreamURL:   ch.StreamURL,
			Category:    ch.Category,
		}, nil
	})
}
