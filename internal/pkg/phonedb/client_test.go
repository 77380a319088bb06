package phonedb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lookup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "923001234567" {
			t.Errorf("unexpected query %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"results_count":1,"results":[{"name":"Test Person","cnic":"12345"}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Lookup(context.Background(), "923001234567")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if !result.Success {
		t.Fatal("expected success")
	}
	if result.ResultsCount != 1 || len(result.Results) != 1 {
		t.Fatalf("expected one result, got count=%d len=%d", result.ResultsCount, len(result.Results))
	}
	if result.Query != "923001234567" {
		t.Fatalf("query not echoed: %s", result.Query)
	}
}

func TestLookupEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"results_count":0}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Lookup(context.Background(), "920000000000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if result.Results == nil {
		t.Fatal("results must never be nil")
	}
	if len(result.Results) != 0 {
		t.Fatalf("expected empty results, got %d", len(result.Results))
	}
}

func TestLookupEmptyBaseURL(t *testing.T) {
	client := NewClient("", 5*time.Second)
	if _, err := client.Lookup(context.Background(), "923001234567"); err == nil {
		t.Fatal("expected config error for empty base url")
	}
}
