package models

import (
	"time"

	"github.com/google/uuid"
)

// SearchParams are the user-selected inputs of one lead search.
type SearchParams struct {
	Terms      []string `json:"executive_terms"`
	Sector     string   `json:"sector"`
	Location   string   `json:"location"`
	NumResults int      `json:"num_results"`
	StartPage  int      `json:"start_page"`
}

// TierCounts holds mutually exclusive per-tier lead counts.
type TierCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Total returns the number of leads counted.
func (c TierCounts) Total() int {
	return c.High + c.Medium + c.Low
}

// SearchHistoryEntry records one completed search. Entries are never
// modified after creation.
type SearchHistoryEntry struct {
	ID             uuid.UUID    `json:"id"`
	Timestamp      time.Time    `json:"timestamp"`
	Query          string       `json:"query"`
	Params         SearchParams `json:"params"`
	ResultsCount   int          `json:"results_count"`
	Counts         TierCounts   `json:"counts"`
	ConversionRate float64      `json:"conversion_rate"`
}
