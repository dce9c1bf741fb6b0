package models

import "time"

// LeadView is a lead together with its derived tier, as returned by the API.
type LeadView struct {
	Lead
	Potential Tier `json:"potential"`
}

// NewLeadViews derives the tier for each lead, preserving order.
func NewLeadViews(leads []Lead) []LeadView {
	views := make([]LeadView, len(leads))
	for i, l := range leads {
		views[i] = LeadView{Lead: l, Potential: l.Tier()}
	}
	return views
}

// SearchResponse contains the outcome of a successful search.
type SearchResponse struct {
	Query        string     `json:"query"`
	ResultsCount int        `json:"results_count"`
	Counts       TierCounts `json:"counts"`
	Leads        []LeadView `json:"leads"`
}

// QueryPreviewResponse shows what would be sent for the given parameters.
type QueryPreviewResponse struct {
	Query   string `json:"query"`
	Payload any    `json:"payload"`
}

// ProbeStatus reports the webhook reachability as seen by the monitor.
type ProbeStatus struct {
	Reachable bool       `json:"reachable"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
	Error     string     `json:"error,omitempty"`
}
