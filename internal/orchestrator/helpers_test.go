package orchestrator_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"uipathctl/internal/orchestrator"
)

const (
	testToken  = "token-123"
	testFolder = "4242"
)

// fakeOrchestrator serves the identity endpoint and delegates /odata requests to
// a per-test handler.
type fakeOrchestrator struct {
	server *httptest.Server
	odata  http.HandlerFunc

	mu       sync.Mutex
	requests []*http.Request
	bodies   []map[string]any
}

func newFakeOrchestrator(t *testing.T, odata http.HandlerFunc) *fakeOrchestrator {
	t.Helper()
	fake := &fakeOrchestrator{odata: odata}
	mux := http.NewServeMux()
	mux.HandleFunc("/identity_/connect/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("client_secret") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + testToken + `","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/odata/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		fake.mu.Lock()
		fake.requests = append(fake.requests, r)
		fake.bodies = append(fake.bodies, body)
		fake.mu.Unlock()
		fake.odata(w, r)
	})
	fake.server = httptest.NewServer(mux)
	t.Cleanup(fake.server.Close)
	return fake
}

func (f *fakeOrchestrator) config(secret string) orchestrator.Config {
	return orchestrator.Config{
		BaseURL:      f.server.URL,
		TokenURL:     f.server.URL + "/identity_/connect/token",
		ClientID:     "client",
		ClientSecret: secret,
		Scope:        "OR.Assets OR.Queues",
	}
}

func (f *fakeOrchestrator) client(t *testing.T, opts ...orchestrator.Option) *orchestrator.Client {
	t.Helper()
	client, err := orchestrator.New(context.Background(), f.config("secret"), opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func (f *fakeOrchestrator) lastRequest(t *testing.T) (*http.Request, map[string]any) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		t.Fatal("expected at least one odata request")
	}
	return f.requests[len(f.requests)-1], f.bodies[len(f.bodies)-1]
}

func respondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
