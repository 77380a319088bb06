// Package tamasha sends and verifies Tamasha login OTPs. Without a configured
// base URL the client runs in simulated mode so the flow stays testable.
package tamasha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
)

// OTPResult is the normalized OTP operation response.
type OTPResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Simulated bool   `json:"simulated"`
}

// Client represents the Tamasha OTP client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new Tamasha client. Empty baseURL enables simulated mode.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    upstream.NewHTTPClient(timeout),
	}
}

func (c *Client) simulated() bool {
	return strings.TrimSpace(c.baseURL) == ""
}

// SendOTP requests an OTP for a phone number.
func (c *Client) SendOTP(ctx context.Context, phone string) (*OTPResult, error) {
	if c.simulated() {
		return &OTPResult{
			Success:   true,
			Message:   "OTP sent successfully (simulated). Configure Tamasha API for full functionality.",
			Simulated: true,
		}, nil
	}

	return c.post(ctx, "/api/otp/send", map[string]string{"phone": phone})
}

// VerifyOTP checks an OTP code.
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*OTPResult, error) {
	if c.simulated() {
		return &OTPResult{
			Success:   true,
			Message:   "OTP verified (simulated). Configure Tamasha API for full functionality.",
			Simulated: true,
		}, nil
	}

	return c.post(ctx, "/api/otp/verify", map[string]string{"phone": phone, "otp": otp})
}

func (c *Client) post(ctx context.Context, path string, payload map[string]string) (*OTPResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("tamasha request error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("tamasha request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "tamasha", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.StatusError("tamasha", resp.StatusCode, nil)
	}

	var result OTPResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("tamasha decode error: %w", err)
	}
	return &result, nil
}
