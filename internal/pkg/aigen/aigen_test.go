package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(url string) *Client {
	return &Client{
		apiURL:     url,
		apiKey:     "test-key",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func sampleRequest() Request {
	return Request{
		ProjectTitle:        "Chat App",
		TechStack:           []string{"go", "redis"},
		ProjectDescription:  "Realtime chat with presence",
		FeaturesImplemented: "rooms, typing indicators",
		StudentRole:         "backend",
	}
}

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/generate" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ProjectTitle != "Chat App" {
			t.Errorf("unexpected project title %q", req.ProjectTitle)
		}

		json.NewEncoder(w).Encode(Result{
			Questions: map[string][]Question{
				"technical": {{Question: "How do you scale websockets?", Difficulty: "medium"}},
			},
		})
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Generate(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Questions["technical"]) != 1 {
		t.Fatalf("expected one technical question, got %v", result.Questions)
	}
}

func TestClientGenerate_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), sampleRequest())
	if !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
}

func TestClientGenerate_Unreachable(t *testing.T) {
	_, err := testClient("http://127.0.0.1:1").Generate(context.Background(), sampleRequest())
	if !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("expected ErrGenerationUnavailable, got %v", err)
	}
}
