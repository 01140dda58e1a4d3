package suggest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"

	"taskmaster-api/domain"
)

func TestHTTPSuggestRoundTrip(t *testing.T) {
	category := domain.CategoryWork
	priority := domain.PriorityHigh

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		var payload suggestPayload
		if err := sonic.ConfigStd.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload.Title != "Prepare client report" {
			t.Fatalf("unexpected title %q", payload.Title)
		}
		w.Header().Set("Content-Type", "application/json")
		body, _ := sonic.ConfigStd.Marshal(domain.Suggestion{Category: &category, Priority: &priority})
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, nil)
	got, err := s.Suggest(context.Background(), "Prepare client report")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if got.Category == nil || *got.Category != category {
		t.Fatalf("unexpected category: %v", got.Category)
	}
	if got.Priority == nil || *got.Priority != priority {
		t.Fatalf("unexpected priority: %v", got.Priority)
	}
	if got.DueDate != nil {
		t.Fatalf("expected no due date, got %v", got.DueDate)
	}
}

func TestHTTPSuggestNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, nil)
	if _, err := s.Suggest(context.Background(), "Prepare client report"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestHTTPSuggestShortTitleSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := NewHTTP(srv.URL, nil)
	if _, err := s.Suggest(context.Background(), "ab"); !errors.Is(err, ErrTitleTooShort) {
		t.Fatalf("expected ErrTitleTooShort, got %v", err)
	}
	if called {
		t.Fatal("short title should not reach the remote service")
	}
}
