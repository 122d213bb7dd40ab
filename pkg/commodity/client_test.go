package commodity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLocalCropName(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"wheat", "گندم"},
		{"rice", "چاول"},
		{"cotton", "کپاس"},
		{"coffee", "coffee"},
	}

	for _, tt := range tests {
		if got := LocalCropName(tt.slug); got != tt.want {
			t.Errorf("LocalCropName(%q) = %q, want %q", tt.slug, got, tt.want)
		}
	}
}

func TestFetchParsesPriceFields(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/api/Commodity/wheat" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("x-rapidapi-key") != "test-key" {
			t.Error("missing rapidapi key header")
		}
		w.Write([]byte(`{"name":"Wheat","current_price":255.5,"unit":"USD/ton","price_change":-2.5}`))
	}))
	defer server.Close()

	client := NewClient("test-key", time.Minute)
	client.baseURL = server.URL

	quote, err := client.Fetch(context.Background(), "wheat")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if quote.Name != "Wheat" {
		t.Errorf("Name = %q", quote.Name)
	}
	if quote.Slug != "wheat" {
		t.Errorf("Slug = %q", quote.Slug)
	}
	if quote.Price != 255.5 {
		t.Errorf("Price = %v, want current_price fallback", quote.Price)
	}
	if quote.Change == nil || *quote.Change != -2.5 {
		t.Errorf("Change = %v, want price_change fallback", quote.Change)
	}

	// Second fetch inside the TTL must come from cache
	if _, err := client.Fetch(context.Background(), "wheat"); err != nil {
		t.Fatalf("cached Fetch: %v", err)
	}
	if requests != 1 {
		t.Errorf("requests = %d, want 1", requests)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := NewClient("test-key", time.Minute)
	client.baseURL = server.URL

	if _, err := client.Fetch(context.Background(), "wheat"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestFetchUnconfigured(t *testing.T) {
	client := NewClient("", time.Minute)
	if client.Available() {
		t.Error("client without key should not be available")
	}
	if _, err := client.Fetch(context.Background(), "wheat"); err == nil {
		t.Error("expected error when key is not configured")
	}
}

func TestFetchAllSkipsFailingSlugs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/Commodity/wheat" {
			w.Write([]byte(`{"name":"Wheat","price":250}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", time.Minute)
	client.baseURL = server.URL

	quotes, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("got %d quotes, want 1", len(quotes))
	}
	if quotes[0].Slug != "wheat" {
		t.Errorf("Slug = %q", quotes[0].Slug)
	}
}
