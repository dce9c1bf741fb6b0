package jobs

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"leadgen/internal/metrics"
	"leadgen/internal/models"
)

// WebhookMonitor periodically checks that the webhook host answers.
type WebhookMonitor struct {
	url      string
	interval time.Duration
	client   *http.Client
	metrics  *metrics.Recorder
	now      func() time.Time

	mu     sync.RWMutex
	status models.ProbeStatus
}

// NewWebhookMonitor creates a new webhook monitor. rec may be nil.
func NewWebhookMonitor(url string, interval time.Duration, rec *metrics.Recorder) *WebhookMonitor {
	return &WebhookMonitor{
		url:      url,
		interval: interval,
		metrics:  rec,
		now:      time.Now,
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Start begins the background check loop. It returns when ctx is done.
func (m *WebhookMonitor) Start(ctx context.Context) {
	slog.Info("webhook monitor started", "interval", m.interval)

	// Run immediately on start
	m.Check(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("webhook monitor stopped")
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check probes the webhook once and records the result.
func (m *WebhookMonitor) Check(ctx context.Context) models.ProbeStatus {
	checkedAt := m.now()
	status := models.ProbeStatus{CheckedAt: &checkedAt}

	if err := m.probe(ctx); err != nil {
		status.Error = err.Error()
		slog.Warn("webhook unreachable", "error", err)
	} else {
		status.Reachable = true
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()

	m.metrics.SetWebhookReachable(status.Reachable)
	return status
}

// Status returns the result of the most recent check. CheckedAt is nil
// before the first check.
func (m *WebhookMonitor) Status() models.ProbeStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// probe sends a HEAD request. Any HTTP response means the host is reachable;
// workflow engines commonly reject HEAD on webhook paths.
func (m *WebhookMonitor) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "LeadGen-Monitor/1.0")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
