package admin

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

func passthrough(next http.Handler) http.Handler { return next }

func TestRoutesRegistersAdminEndpoints(t *testing.T) {
	h := NewHandler(nil)
	r := h.Routes(passthrough)

	patterns := map[string]bool{}
	if err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		patterns[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	expected := []string{
		"GET /accounts",
		"GET /accounts/{id}",
		"POST /accounts/{id}/credits",
		"POST /accounts/{id}/suspend",
		"POST /accounts/{id}/activate",
		"GET /ledger",
		"GET /usage",
	}
	for _, p := range expected {
		if !patterns[p] {
			t.Fatalf("expected %s to be registered", p)
		}
	}
}
