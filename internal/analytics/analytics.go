// Package analytics computes read-only aggregates over leads and search
// history.
package analytics

import (
	"math"
	"sort"

	"leadgen/internal/models"
)

// Insight is the qualitative band for the share of high-potential leads.
type Insight string

// Insight bands
const (
	InsightExcellent       Insight = "excellent"
	InsightGood            Insight = "good"
	InsightNeedsRefinement Insight = "needs_refinement"
)

const (
	excellentThreshold = 30.0
	goodThreshold      = 15.0
)

// LeadSummary aggregates one lead list.
type LeadSummary struct {
	Total       int               `json:"total"`
	Counts      models.TierCounts `json:"counts"`
	HighPercent float64           `json:"high_percent"`
	Insight     Insight           `json:"insight"`
}

// HistorySummary aggregates the search history.
type HistorySummary struct {
	TotalSearches     int     `json:"total_searches"`
	TotalLeads        int     `json:"total_leads"`
	AvgLeadsPerSearch float64 `json:"avg_leads_per_search"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
}

// GroupStats holds per-group means over history entries. Means are rounded
// to one decimal place.
type GroupStats struct {
	Key           string  `json:"key"`
	Searches      int     `json:"searches"`
	AvgResults    float64 `json:"avg_results"`
	AvgConversion float64 `json:"avg_conversion"`
}

// Trends holds the group-by statistics. Available is false until the
// history holds more than one search.
type Trends struct {
	Available  bool         `json:"available"`
	ByLocation []GroupStats `json:"by_location"`
	BySector   []GroupStats `json:"by_sector"`
}

// CountTiers counts leads per derived tier. The three counts sum to len(leads).
func CountTiers(leads []models.Lead) models.TierCounts {
	var c models.TierCounts
	for _, l := range leads {
		switch l.Tier() {
		case models.TierHigh:
			c.High++
		case models.TierMedium:
			c.Medium++
		default:
			c.Low++
		}
	}
	return c
}

// ConversionRate returns High/Total*100, or 0 when there are no leads.
func ConversionRate(c models.TierCounts) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.High) / float64(total) * 100
}

// HighPercent returns the percentage of HIGH leads in the list.
func HighPercent(leads []models.Lead) float64 {
	return ConversionRate(CountTiers(leads))
}

// InsightFor maps a high-potential percentage to its band. Comparisons are
// strict: exactly 30% is "good" and exactly 15% is "needs refinement".
func InsightFor(highPercent float64) Insight {
	switch {
	case highPercent > excellentThreshold:
		return InsightExcellent
	case highPercent > goodThreshold:
		return InsightGood
	default:
		return InsightNeedsRefinement
	}
}

// SummarizeLeads computes counts, high percentage and insight band.
func SummarizeLeads(leads []models.Lead) LeadSummary {
	counts := CountTiers(leads)
	pct := ConversionRate(counts)
	return LeadSummary{
		Total:       len(leads),
		Counts:      counts,
		HighPercent: pct,
		Insight:     InsightFor(pct),
	}
}

// SummarizeHistory computes totals and unweighted means over history.
func SummarizeHistory(history []models.SearchHistoryEntry) HistorySummary {
	s := HistorySummary{TotalSearches: len(history)}
	if len(history) == 0 {
		return s
	}

	var convSum float64
	for _, e := range history {
		s.TotalLeads += e.ResultsCount
		convSum += e.ConversionRate
	}
	s.AvgLeadsPerSearch = float64(s.TotalLeads) / float64(len(history))
	s.AvgConversionRate = convSum / float64(len(history))
	return s
}

// GroupByLocation computes per-location means, ordered by location.
func GroupByLocation(history []models.SearchHistoryEntry) []GroupStats {
	return groupBy(history, func(e models.SearchHistoryEntry) string { return e.Params.Location })
}

// GroupBySector computes per-sector means, ordered by sector label.
func GroupBySector(history []models.SearchHistoryEntry) []GroupStats {
	return groupBy(history, func(e models.SearchHistoryEntry) string { return e.Params.Sector })
}

// ComputeTrends groups history by location and by sector.
func ComputeTrends(history []models.SearchHistoryEntry) Trends {
	return Trends{
		Available:  len(history) > 1,
		ByLocation: GroupByLocation(history),
		BySector:   GroupBySector(history),
	}
}

type accumulator struct {
	n       int
	results int
	conv    float64
}

func groupBy(history []models.SearchHistoryEntry, key func(models.SearchHistoryEntry) string) []GroupStats {
	groups := make(map[string]*accumulator)
	for _, e := range history {
		k := key(e)
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.n++
		acc.results += e.ResultsCount
		acc.conv += e.ConversionRate
	}

	stats := make([]GroupStats, 0, len(groups))
	for k, acc := range groups {
		stats = append(stats, GroupStats{
			Key:           k,
			Searches:      acc.n,
			AvgResults:    Round1(float64(acc.results) / float64(acc.n)),
			AvgConversion: Round1(acc.conv / float64(acc.n)),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
