package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"leadgen/internal/models"
)

// Search outcome label values.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeRequestFailed   = "request_failed"
	OutcomeConnectionError = "connection_error"
	OutcomeNotConfigured   = "not_configured"
)

// Recorder holds the application's Prometheus collectors. A nil *Recorder
// is valid and records nothing.
type Recorder struct {
	searches         *prometheus.CounterVec
	leads            *prometheus.CounterVec
	webhookDuration  *prometheus.HistogramVec
	webhookReachable prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgen_searches_total",
			Help: "Total lead searches by outcome",
		}, []string{"outcome"}),
		leads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgen_leads_total",
			Help: "Total leads received from the webhook by potential tier",
		}, []string{"tier"}),
		webhookDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leadgen_webhook_request_duration_seconds",
			Help:    "Duration of webhook search calls by outcome",
			Buckets: []float64{0.5, 1, 5, 15, 30, 60, 120, 300},
		}, []string{"outcome"}),
		webhookReachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leadgen_webhook_reachable",
			Help: "1 if the last webhook probe got an HTTP response, 0 otherwise",
		}),
	}
	reg.MustRegister(r.searches, r.leads, r.webhookDuration, r.webhookReachable)
	return r
}

// RecordSearch counts one search attempt.
func (r *Recorder) RecordSearch(outcome string) {
	if r == nil {
		return
	}
	r.searches.WithLabelValues(outcome).Inc()
}

// RecordLeads adds the tier counts of a successful search.
func (r *Recorder) RecordLeads(counts models.TierCounts) {
	if r == nil {
		return
	}
	r.leads.WithLabelValues(string(models.TierHigh)).Add(float64(counts.High))
	r.leads.WithLabelValues(string(models.TierMedium)).Add(float64(counts.Medium))
	r.leads.WithLabelValues(string(models.TierLow)).Add(float64(counts.Low))
}

// ObserveWebhook records the duration of one webhook call.
func (r *Recorder) ObserveWebhook(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.webhookDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// SetWebhookReachable publishes the latest probe result.
func (r *Recorder) SetWebhookReachable(ok bool) {
	if r == nil {
		return
	}
	if ok {
		r.webhookReachable.Set(1)
	} else {
		r.webhookReachable.Set(0)
	}
}
