// Package phonedb queries the SIM database lookup API.
package phonedb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
)

// Result is the normalized lookup response.
type Result struct {
	Success      bool             `json:"success"`
	ResultsCount int              `json:"results_count"`
	Results      []map[string]any `json:"results"`
	Query        string           `json:"query"`
}

// Client represents the phone lookup HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new phone lookup client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    upstream.NewHTTPClient(timeout),
	}
}

// Lookup queries the database for a sanitized phone number.
func (c *Client) Lookup(ctx context.Context, phone string) (*Result, error) {
	if strings.TrimSpace(c.baseURL) == "" {
		return nil, fmt.Errorf("phone lookup config error: base_url is empty")
	}

	reqURL := c.baseURL + "/api/lookup?query=" + url.QueryEscape(phone)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("phone lookup request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "phone lookup", err)
	}
	defer resp.Body.Close()

	var raw struct {
		Success      bool             `json:"success"`
		ResultsCount int              `json:"results_count"`
		Results      []map[string]any `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("phone lookup decode error: %w", err)
	}

	results := raw.Results
	if results == nil {
		results = []map[string]any{}
	}

	return &Result{
		Success:      raw.Success,
		ResultsCount: raw.ResultsCount,
		Results:      results,
		Query:        phone,
	}, nil
}
