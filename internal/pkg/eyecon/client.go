// Package eyecon queries the Eyecon caller-ID API. Auth headers come from
// config; when they are missing or rejected upstream the lookup degrades to a
// safe empty result instead of failing.
package eyecon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
)

// AuthHeaders carries the e-auth header set for live lookups.
type AuthHeaders struct {
	V string // e-auth-v
	A string // e-auth
	C string // e-auth-c
	K string // e-auth-k
}

// Configured reports whether all four auth headers are present.
func (h AuthHeaders) Configured() bool {
	return h.V != "" && h.A != "" && h.C != "" && h.K != ""
}

// Result is the normalized Eyecon response.
// Mode is "live" when upstream answered 200, "safe" when the lookup degraded.
type Result struct {
	Success           bool   `json:"success"`
	Mode              string `json:"mode"`
	Query             string `json:"query"`
	StatusCode        int    `json:"status_code"`
	Names             []any  `json:"names"`
	Raw               any    `json:"raw_data,omitempty"`
	Message           string `json:"message,omitempty"`
	HeadersConfigured bool   `json:"headers_configured"`
}

// Client represents the Eyecon HTTP client.
type Client struct {
	baseURL string
	auth    AuthHeaders
	http    *http.Client
}

// NewClient creates a new Eyecon client.
func NewClient(baseURL string, auth AuthHeaders, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		http:    upstream.NewHTTPClient(timeout),
	}
}

// Lookup queries caller-ID names for a sanitized phone number.
// Transport failures return an error; upstream auth failures and error
// statuses degrade to a safe empty result.
func (c *Client) Lookup(ctx context.Context, phone string) (*Result, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, fmt.Errorf("eyecon config error: base_url is empty")
	}

	params := url.Values{}
	params.Set("cli", phone)
	params.Set("lang", "en")
	params.Set("is_callerid", "true")
	params.Set("is_ic", "true")
	params.Set("cv", "vc_672_vn_4.2025.10.17.1932_a")
	params.Set("requestApi", "URLconnection")
	params.Set("source", "MenifaFragment")

	reqURL := c.baseURL + "/app/getnames.jsp?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("eyecon request error: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36")
	req.Header.Set("accept", "application/json")
	req.Header.Set("accept-charset", "UTF-8")
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	if c.auth.Configured() {
		req.Header.Set("e-auth-v", c.auth.V)
		req.Header.Set("e-auth", c.auth.A)
		req.Header.Set("e-auth-c", c.auth.C)
		req.Header.Set("e-auth-k", c.auth.K)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "eyecon", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("eyecon read error: %w", err)
	}

	var raw any
	_ = json.Unmarshal(body, &raw)

	result := &Result{
		Query:             phone,
		StatusCode:        resp.StatusCode,
		Names:             []any{},
		HeadersConfigured: c.auth.Configured(),
	}

	switch {
	case resp.StatusCode == http.StatusOK && raw != nil:
		result.Success = true
		result.Mode = "live"
		result.Names = extractNames(raw)
		result.Raw = raw

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		result.Success = true
		result.Mode = "safe"
		result.Message = "Eyecon authentication failed - headers may be invalid or expired"

	default:
		result.Success = true
		result.Mode = "safe"
		result.Message = fmt.Sprintf("Eyecon returned status %d", resp.StatusCode)
	}

	return result, nil
}

// extractNames pulls the name list out of the loosely-shaped upstream payload.
func extractNames(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case map[string]any:
		if names, ok := v["names"].([]any); ok {
			return names
		}
		if results, ok := v["results"].([]any); ok {
			return results
		}
		if name, ok := v["name"]; ok {
			return []any{map[string]any{"name": name}}
		}
	}
	return []any{}
}
