// Package export serializes leads and search history to CSV for download.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"leadgen/internal/analytics"
	"leadgen/internal/models"
)

// ContentType is the MIME type of the generated files.
const ContentType = "text/csv; charset=utf-8"

const (
	timestampLayout = "2006-01-02 15:04:05"
	filenameLayout  = "20060102_150405"
)

type leadRow struct {
	Title     string `csv:"titulo"`
	Link      string `csv:"link"`
	Summary   string `csv:"resumo"`
	Analysis  string `csv:"analise"`
	Potential string `csv:"potencial"`
}

type historyRow struct {
	Timestamp      string `csv:"timestamp"`
	Query          string `csv:"query"`
	ResultsCount   int    `csv:"results_count"`
	Location       string `csv:"location"`
	Sector         string `csv:"sector"`
	ExecutiveTerms string `csv:"executive_terms"`
	High           int    `csv:"alto_potencial"`
	Medium         int    `csv:"medio_potencial"`
	Low            int    `csv:"baixo_potencial"`
	ConversionRate string `csv:"conversion_rate"`
	NumResults     int    `csv:"num_results"`
	StartPage      int    `csv:"start_page"`
	ID             string `csv:"id"`
}

// LeadsCSV renders leads in record field order followed by the derived tier.
func LeadsCSV(leads []models.Lead) ([]byte, error) {
	rows := make([]leadRow, len(leads))
	for i, l := range leads {
		rows[i] = leadRow{
			Title:     l.Title,
			Link:      l.Link,
			Summary:   l.Summary,
			Analysis:  l.Analysis,
			Potential: string(l.Tier()),
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to export leads: %w", err)
	}
	return out, nil
}

// HistoryCSV renders the search history in chronological order.
func HistoryCSV(history []models.SearchHistoryEntry) ([]byte, error) {
	rows := make([]historyRow, len(history))
	for i, e := range history {
		rows[i] = historyRow{
			Timestamp:      e.Timestamp.Format(timestampLayout),
			Query:          e.Query,
			ResultsCount:   e.ResultsCount,
			Location:       e.Params.Location,
			Sector:         e.Params.Sector,
			ExecutiveTerms: strings.Join(e.Params.Terms, ", "),
			High:           e.Counts.High,
			Medium:         e.Counts.Medium,
			Low:            e.Counts.Low,
			ConversionRate: fmt.Sprintf("%.1f", analytics.Round1(e.ConversionRate)),
			NumResults:     e.Params.NumResults,
			StartPage:      e.Params.StartPage,
			ID:             e.ID.String(),
		}
	}
	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to export history: %w", err)
	}
	return out, nil
}

// LeadsFilename returns the download name for a leads export made at t.
func LeadsFilename(t time.Time) string {
	return "leads_linkedin_" + t.Format(filenameLayout) + ".csv"
}

// HistoryFilename returns the download name for a history export made at t.
func HistoryFilename(t time.Time) string {
	return "historico_buscas_" + t.Format(filenameLayout) + ".csv"
}
