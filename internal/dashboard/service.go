// Package dashboard implements the user commands of the lead dashboard.
// Every command takes the caller's SessionState and returns the state to
// keep; the input state is never modified.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"leadgen/internal/analytics"
	"leadgen/internal/config"
	"leadgen/internal/filter"
	"leadgen/internal/metrics"
	"leadgen/internal/models"
	"leadgen/internal/query"
	"leadgen/internal/state"
	"leadgen/internal/webhook"
)

// Searcher performs one search call against the automation workflow.
type Searcher interface {
	Search(ctx context.Context, payload any) ([]models.Lead, error)
}

// SearchResult describes a completed search.
type SearchResult struct {
	Entry models.SearchHistoryEntry
	Leads []models.Lead
}

// Overview bundles every aggregate shown on the analytics and history tabs.
type Overview struct {
	Leads   analytics.LeadSummary    `json:"leads"`
	History analytics.HistorySummary `json:"history"`
	Trends  analytics.Trends         `json:"trends"`
}

// Service runs dashboard commands.
type Service struct {
	builder  *query.Builder
	searcher Searcher
	metrics  *metrics.Recorder
	now      func() time.Time
	newID    func() uuid.UUID
}

// NewService creates a command service. rec may be nil.
func NewService(builder *query.Builder, searcher Searcher, rec *metrics.Recorder) *Service {
	return &Service{
		builder:  builder,
		searcher: searcher,
		metrics:  rec,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Preview builds the query and payload for params without sending anything.
func (s *Service) Preview(params models.SearchParams) (query.Payload, error) {
	return s.builder.Build(params)
}

// Search validates params, calls the webhook once and, only on full
// success, replaces the current leads and appends one history entry. On
// any error the returned state is st itself.
func (s *Service) Search(ctx context.Context, st state.SessionState, params models.SearchParams) (state.SessionState, SearchResult, error) {
	payload, err := s.builder.Build(params)
	if err != nil {
		s.metrics.RecordSearch(metrics.OutcomeValidationError)
		return st, SearchResult{}, err
	}

	leads, err := s.searcher.Search(ctx, payload)
	if err != nil {
		s.metrics.RecordSearch(searchOutcome(err))
		slog.Warn("lead search failed", "query", payload.Query, "error", err)
		return st, SearchResult{}, err
	}

	counts := analytics.CountTiers(leads)
	params.Terms = payload.ExecutiveTerms
	entry := models.SearchHistoryEntry{
		ID:             s.newID(),
		Timestamp:      s.now(),
		Query:          payload.Query,
		Params:         params,
		ResultsCount:   len(leads),
		Counts:         counts,
		ConversionRate: analytics.ConversionRate(counts),
	}

	next := st.Clone()
	next.ReplaceLeads(leads)
	next.AppendHistory(entry)

	s.metrics.RecordSearch(metrics.OutcomeSuccess)
	s.metrics.RecordLeads(counts)
	slog.Info("lead search completed",
		"query", payload.Query,
		"leads", len(leads),
		"high", counts.High,
		"medium", counts.Medium,
		"low", counts.Low,
	)

	return next, SearchResult{Entry: entry, Leads: next.CurrentLeads}, nil
}

// RepeatSearch re-runs a history entry's parameters as a new search.
func (s *Service) RepeatSearch(ctx context.Context, st state.SessionState, id uuid.UUID) (state.SessionState, SearchResult, error) {
	entry, err := st.FindEntry(id)
	if err != nil {
		return st, SearchResult{}, err
	}
	return s.Search(ctx, st, entry.Params)
}

// ClearHistory returns st with an empty history. Current leads are kept.
func (s *Service) ClearHistory(st state.SessionState) state.SessionState {
	next := st.Clone()
	next.ClearHistory()
	return next
}

// LoadSample replaces the current leads with demonstration data. History
// is not touched.
func (s *Service) LoadSample(st state.SessionState) state.SessionState {
	next := st.Clone()
	next.ReplaceLeads(SampleLeads())
	return next
}

// FilterLeads returns the current leads matching c.
func FilterLeads(st state.SessionState, c filter.Criteria) []models.Lead {
	return filter.Apply(st.CurrentLeads, c)
}

// Summarize computes the analytics overview for st.
func Summarize(st state.SessionState) Overview {
	return Overview{
		Leads:   analytics.SummarizeLeads(st.CurrentLeads),
		History: analytics.SummarizeHistory(st.History),
		Trends:  analytics.ComputeTrends(st.History),
	}
}

func searchOutcome(err error) string {
	var vErr *query.ValidationError
	var reqErr *webhook.RequestFailedError
	switch {
	case errors.As(err, &vErr):
		return metrics.OutcomeValidationError
	case errors.Is(err, webhook.ErrNotConfigured):
		return metrics.OutcomeNotConfigured
	case errors.As(err, &reqErr):
		return metrics.OutcomeRequestFailed
	default:
		return metrics.OutcomeConnectionError
	}
}

// DefaultParams returns the search parameters a new form starts with.
func DefaultParams(cat *config.Catalog) models.SearchParams {
	return models.SearchParams{
		Sector:     cat.DefaultSector(),
		Location:   cat.DefaultLocation(),
		NumResults: cat.ResultCount.Default,
		StartPage:  cat.StartPage.Default,
	}
}
