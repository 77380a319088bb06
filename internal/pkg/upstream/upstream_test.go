package upstream

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestClassifyTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	err := ClassifyError(ctx, "test op", ctx.Err())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if !strings.Contains(err.Error(), "test op") {
		t.Fatalf("operation missing from error: %v", err)
	}
}

func TestClassifyNetworkError(t *testing.T) {
	wrapped := &url.Error{
		Op:  "Get",
		URL: "http://example.invalid",
		Err: &net.OpError{Op: "dial", Err: errors.New("connection refused")},
	}

	err := ClassifyError(context.Background(), "test op", wrapped)
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClassifyUnknownError(t *testing.T) {
	err := ClassifyError(context.Background(), "test op", errors.New("something else"))
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetwork) {
		t.Fatalf("unknown errors must not be classified: %v", err)
	}
}

func TestStatusErrorTruncatesBody(t *testing.T) {
	body := make([]byte, 2048)
	for i := range body {
		body[i] = 'x'
	}

	err := StatusError("test op", 502, body)
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
	if len(err.Error()) > 700 {
		t.Fatalf("body not truncated, error is %d bytes", len(err.Error()))
	}
}

func TestNewHTTPClientDefaultTimeout(t *testing.T) {
	c := NewHTTPClient(0)
	if c.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultTimeout, c.Timeout)
	}

	c = NewHTTPClient(5 * time.Second)
	if c.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", c.Timeout)
	}
}
