package tagger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/janvolk/lostfound/internal/config"
)

func newTestClient(url string) *Client {
	return New(config.TaggerConfig{
		URL:     url,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	})
}

func TestClassifyObjectShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer header, got %q", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
			return
		}
		if req["inputs"] != "Blue Wallet leather" {
			t.Errorf("unexpected inputs: %v", req["inputs"])
		}
		params, _ := req["parameters"].(map[string]any)
		if params == nil {
			t.Error("expected parameters object")
			return
		}
		if multi, _ := params["multi_label"].(bool); multi {
			t.Error("expected multi_label=false")
		}
		labels, _ := params["candidate_labels"].([]any)
		if len(labels) != len(CandidateLabels) {
			t.Errorf("expected %d candidate labels, got %d", len(CandidateLabels), len(labels))
		}

		json.NewEncoder(w).Encode(map[string]any{
			"labels": []string{"Documents", "books"},
			"scores": []float64{0.9, 0.1},
		})
	}))
	defer server.Close()

	tag := newTestClient(server.URL).Classify(context.Background(), "Blue Wallet", "leather")
	if tag != "documents" {
		t.Errorf("expected 'documents' (first label, lowercased), got %q", tag)
	}
}

func TestClassifyListShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"label": "wallets_and_purses", "score": 0.95},
			{"label": "accessories", "score": 0.05},
		})
	}))
	defer server.Close()

	tag := newTestClient(server.URL).Classify(context.Background(), "Blue Wallet", "")
	if tag != "wallets_and_purses" {
		t.Errorf("expected 'wallets_and_purses', got %q", tag)
	}
}

func TestClassifyUnexpectedShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "model is loading"})
	}))
	defer server.Close()

	tag := newTestClient(server.URL).Classify(context.Background(), "Phone", "")
	if tag != FallbackLabel {
		t.Errorf("expected fallback label, got %q", tag)
	}
}

func TestClassifyNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	tag := newTestClient(server.URL).Classify(context.Background(), "Phone", "")
	if tag != FallbackLabel {
		t.Errorf("expected fallback label on network error, got %q", tag)
	}
}

func TestClassifyTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := New(config.TaggerConfig{URL: server.URL, Timeout: 50 * time.Millisecond})
	tag := client.Classify(context.Background(), "Phone", "")
	if tag != FallbackLabel {
		t.Errorf("expected fallback label on timeout, got %q", tag)
	}
}

func TestParseResponseMalformed(t *testing.T) {
	cases := []string{
		`{}`,
		`[]`,
		`{"labels": []}`,
		`[{"score": 0.5}]`,
		`not json at all`,
	}
	for _, body := range cases {
		if _, err := parseResponse([]byte(body)); err == nil {
			t.Errorf("expected error for body %q", body)
		}
	}
}
