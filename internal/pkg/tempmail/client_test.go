package tempmail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestGenerateFromAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "genRandomMailbox" {
			t.Errorf("unexpected action %s", r.URL.Query().Get("action"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["abc123@1secmail.com"]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	box, err := client.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if box.Email != "abc123@1secmail.com" {
		t.Fatalf("got email %s", box.Email)
	}
	if box.Login != "abc123" || box.Domain != "1secmail.com" {
		t.Fatalf("got login=%s domain=%s", box.Login, box.Domain)
	}
	if box.Source != "api" {
		t.Fatalf("got source %s", box.Source)
	}
}

func TestGenerateFallsBackLocally(t *testing.T) {
	// Unparseable response forces the local fallback.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	box, err := client.Generate(context.Background())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if box.Source != "local" {
		t.Fatalf("expected local fallback, got %s", box.Source)
	}
	if !strings.HasSuffix(box.Email, "@1secmail.com") {
		t.Fatalf("unexpected fallback email %s", box.Email)
	}
	if len(box.Login) != 10 {
		t.Fatalf("expected 10-char login, got %q", box.Login)
	}
}

func TestCheckInbox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("action") != "getMessages" || q.Get("login") != "abc123" || q.Get("domain") != "1secmail.com" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"from":"sender@example.com","subject":"Hi","date":"2026-01-01 10:00:00"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	messages, err := client.CheckInbox(context.Background(), "abc123", "1secmail.com")
	if err != nil {
		t.Fatalf("check inbox failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("expected one message, got %d", len(messages))
	}
	if messages[0].From != "sender@example.com" {
		t.Fatalf("got from %s", messages[0].From)
	}
}

func TestCheckInboxErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.CheckInbox(context.Background(), "abc123", "1secmail.com"); err == nil {
		t.Fatal("inbox check failures must surface, not fall back")
	}
}
