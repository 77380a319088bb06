package eyecon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testAuth() AuthHeaders {
	return AuthHeaders{V: "v", A: "a", C: "c", K: "k"}
}

/* ===== Test 1: 200 with JSON is a live result ===== */

func TestLookupLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/app/getnames.jsp" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cli"); got != "923001234567" {
			t.Errorf("unexpected cli %s", got)
		}
		if r.Header.Get("e-auth") != "a" {
			t.Error("auth headers not forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"names":[{"name":"Test Person"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testAuth(), 5*time.Second)
	result, err := client.Lookup(context.Background(), "923001234567")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if result.Mode != "live" {
		t.Fatalf("expected live mode, got %s", result.Mode)
	}
	if len(result.Names) != 1 {
		t.Fatalf("expected one name, got %d", len(result.Names))
	}
	if !result.HeadersConfigured {
		t.Fatal("headers should report configured")
	}
}

/* ===== Test 2: auth rejection degrades to safe mode ===== */

func TestLookupAuthRejectedDegradesToSafe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, testAuth(), 5*time.Second)
	result, err := client.Lookup(context.Background(), "923001234567")
	if err != nil {
		t.Fatalf("degraded lookup must not error: %v", err)
	}

	if result.Mode != "safe" {
		t.Fatalf("expected safe mode, got %s", result.Mode)
	}
	if !result.Success {
		t.Fatal("degraded result still counts as success")
	}
	if len(result.Names) != 0 {
		t.Fatalf("expected empty names, got %d", len(result.Names))
	}
	if result.Message == "" {
		t.Fatal("expected a degradation message")
	}
}

/* ===== Test 3: server errors also degrade instead of failing ===== */

func TestLookupServerErrorDegradesToSafe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, AuthHeaders{}, 5*time.Second)
	result, err := client.Lookup(context.Background(), "923001234567")
	if err != nil {
		t.Fatalf("degraded lookup must not error: %v", err)
	}

	if result.Mode != "safe" {
		t.Fatalf("expected safe mode, got %s", result.Mode)
	}
	if result.HeadersConfigured {
		t.Fatal("empty headers should report unconfigured")
	}
}

/* ===== Test 4: name extraction across payload shapes ===== */

func TestExtractNames(t *testing.T) {
	if got := extractNames([]any{"a", "b"}); len(got) != 2 {
		t.Fatalf("list payload: got %d names", len(got))
	}
	if got := extractNames(map[string]any{"names": []any{"a"}}); len(got) != 1 {
		t.Fatalf("names key: got %d names", len(got))
	}
	if got := extractNames(map[string]any{"results": []any{"a"}}); len(got) != 1 {
		t.Fatalf("results key: got %d names", len(got))
	}
	if got := extractNames(map[string]any{"name": "Test"}); len(got) != 1 {
		t.Fatalf("single name key: got %d names", len(got))
	}
	if got := extractNames(map[string]any{"other": 1}); len(got) != 0 {
		t.Fatalf("unknown shape: got %d names", len(got))
	}
}
