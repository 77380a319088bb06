// Package upstream holds the shared plumbing for outbound tool API clients:
// a tuned http.Client and error classification (timeout / network / request).
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"syscall"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	ErrTimeout = errors.New("upstream timeout")
	ErrNetwork = errors.New("upstream network error")
	ErrStatus  = errors.New("upstream error status")
)

// NewHTTPClient builds an outbound client with sane connection limits.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// ClassifyError wraps a transport-level error with its failure class so
// callers can map it to an HTTP status with errors.Is.
func ClassifyError(ctx context.Context, op string, err error) error {
	if isTimeoutError(ctx, err) {
		return fmt.Errorf("%s: %w: %v", op, ErrTimeout, err)
	}
	if isNetworkError(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrNetwork, err)
	}
	return fmt.Errorf("%s request error: %w", op, err)
}

// StatusError reports a non-success upstream HTTP status.
func StatusError(op string, status int, body []byte) error {
	const maxBody = 512
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Errorf("%s: %w: status=%d body=%s", op, ErrStatus, status, string(body))
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
