// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"leadgen/internal/config"
	"leadgen/internal/models"
)

// WebhookServer is a fake automation webhook.
type WebhookServer struct {
	*httptest.Server
	calls atomic.Int32
}

// Calls returns how many requests the server has received.
func (s *WebhookServer) Calls() int {
	return int(s.calls.Load())
}

// NewWebhookServer starts a webhook that answers every request with status
// and body. The server is closed when the test ends.
func NewWebhookServer(t *testing.T, status int, body string) *WebhookServer {
	t.Helper()

	ws := &WebhookServer{}
	ws.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ws.Close)
	return ws
}

// LeadsBody renders leads in the workflow's response shape:
// {"leads": {"data": [...]}}.
func LeadsBody(t *testing.T, leads ...models.Lead) string {
	t.Helper()

	b, err := json.Marshal(map[string]any{
		"leads": map[string]any{"data": leads},
	})
	if err != nil {
		t.Fatalf("failed to encode leads: %v", err)
	}
	return string(b)
}

// TieredLeads returns one lead per potential tier.
func TieredLeads() []models.Lead {
	return []models.Lead{
		{Title: "Ana Lima - CEO Acme", Link: "https://linkedin.com/in/ana", Summary: "CEO", Analysis: "ALTO POTENCIAL - decisora"},
		{Title: "Bruno Reis - Founder Beta", Link: "https://linkedin.com/in/bruno", Summary: "Founder", Analysis: "MÉDIO POTENCIAL"},
		{Title: "Caio Alves - CFO Gama", Link: "https://linkedin.com/in/caio", Summary: "CFO", Analysis: "BAIXO POTENCIAL"},
	}
}

// Config returns a development config pointing at webhookURL with the
// default catalog.
func Config(webhookURL string) *config.Config {
	return &config.Config{
		Env:                  "development",
		ServerAddr:           ":0",
		BaseURL:              "http://localhost:3000",
		ViewsDir:             "../../views",
		WebhookURL:           webhookURL,
		WebhookTimeout:       5 * time.Second,
		WebhookRatePerMinute: 0,
		SessionSecret:        "test-secret-that-is-long-enough-for-production",
		SessionIdleTimeout:   time.Hour,
		SiteTitle:            "LinkedIn Lead Generator",
		SiteTagline:          "Test tagline",
		SiteFooter:           "Test footer",
		Catalog:              config.DefaultCatalog(),
	}
}
