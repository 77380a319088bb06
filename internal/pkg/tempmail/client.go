// Package tempmail wraps a 1secmail-style disposable inbox API.
package tempmail

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omnihub/omnihub-api/internal/pkg/upstream"
)

const localDomain = "1secmail.com"

// Message is one inbox entry.
type Message struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}

// Mailbox is a generated disposable address.
type Mailbox struct {
	Email  string `json:"email"`
	Login  string `json:"login"`
	Domain string `json:"domain"`
	// Source is "api" or "local" depending on where the address came from.
	Source string `json:"source"`
}

// Client represents the temp mail HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new temp mail client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    upstream.NewHTTPClient(timeout),
	}
}

// Generate requests a random mailbox. Falls back to a locally generated
// address when the API is unreachable, so the charged operation still yields
// a usable inbox.
func (c *Client) Generate(ctx context.Context) (*Mailbox, error) {
	reqURL := c.baseURL + "/api/v1/?action=genRandomMailbox&count=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return localMailbox()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return localMailbox()
	}
	defer resp.Body.Close()

	var addrs []string
	if err := json.NewDecoder(resp.Body).Decode(&addrs); err != nil || len(addrs) == 0 {
		return localMailbox()
	}

	login, domain, ok := strings.Cut(addrs[0], "@")
	if !ok {
		return localMailbox()
	}

	return &Mailbox{Email: addrs[0], Login: login, Domain: domain, Source: "api"}, nil
}

// CheckInbox lists messages for a mailbox. Free operation; failures surface
// as errors rather than falling back.
func (c *Client) CheckInbox(ctx context.Context, login, domain string) ([]Message, error) {
	params := url.Values{}
	params.Set("action", "getMessages")
	params.Set("login", login)
	params.Set("domain", domain)

	reqURL := c.baseURL + "/api/v1/?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("temp mail request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, upstream.ClassifyError(ctx, "temp mail", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, upstream.StatusError("temp mail", resp.StatusCode, nil)
	}

	messages := make([]Message, 0)
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("temp mail decode error: %w", err)
	}
	return messages, nil
}

func localMailbox() (*Mailbox, error) {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	login := make([]byte, 10)
	for i := range login {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return nil, fmt.Errorf("temp mail local generation error: %w", err)
		}
		login[i] = chars[n.Int64()]
	}

	return &Mailbox{
		Email:  string(login) + "@" + localDomain,
		Login:  string(login),
		Domain: localDomain,
		Source: "local",
	}, nil
}
