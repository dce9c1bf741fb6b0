package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadgen/internal/models"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v\n%s", err, data)
	}
	return records
}

func TestLeadsCSV(t *testing.T) {
	leads := []models.Lead{
		{Title: "João Silva - CEO", Link: "https://linkedin.com/in/joao", Summary: "CEO, 10+ anos", Analysis: "ALTO POTENCIAL"},
		{Title: `Maria "Mari" Santos`, Link: "https://linkedin.com/in/maria", Summary: "Founder", Analysis: ""},
	}

	out, err := LeadsCSV(leads)
	if err != nil {
		t.Fatalf("LeadsCSV() error = %v", err)
	}

	records := parseCSV(t, out)
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3 (header + 2)", len(records))
	}

	wantHeader := []string{"titulo", "link", "resumo", "analise", "potencial"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	if records[1][2] != "CEO, 10+ anos" {
		t.Errorf("delimiter in field not preserved: %q", records[1][2])
	}
	if records[1][4] != "HIGH" {
		t.Errorf("potencial = %q, want HIGH", records[1][4])
	}
	if records[2][0] != `Maria "Mari" Santos` {
		t.Errorf("quotes not preserved: %q", records[2][0])
	}
	if records[2][4] != "LOW" {
		t.Errorf("potencial = %q, want LOW", records[2][4])
	}
}

func TestHistoryCSV(t *testing.T) {
	id := uuid.New()
	history := []models.SearchHistoryEntry{
		{
			ID:        id,
			Timestamp: time.Date(2025, 5, 4, 13, 2, 1, 0, time.UTC),
			Query:     "site:linkedin.com/in (CEO OR CMO) tecnologia São Paulo",
			Params: models.SearchParams{
				Terms:      []string{"CEO", "CMO"},
				Sector:     "Tecnologia/SaaS",
				Location:   "São Paulo",
				NumResults: 10,
				StartPage:  2,
			},
			ResultsCount:   3,
			Counts:         models.TierCounts{High: 1, Medium: 1, Low: 1},
			ConversionRate: 100.0 / 3,
		},
	}

	out, err := HistoryCSV(history)
	if err != nil {
		t.Fatalf("HistoryCSV() error = %v", err)
	}

	records := parseCSV(t, out)
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}

	row := map[string]string{}
	for i, h := range records[0] {
		row[h] = records[1][i]
	}

	tests := []struct {
		column string
		want   string
	}{
		{"timestamp", "2025-05-04 13:02:01"},
		{"query", "site:linkedin.com/in (CEO OR CMO) tecnologia São Paulo"},
		{"results_count", "3"},
		{"location", "São Paulo"},
		{"sector", "Tecnologia/SaaS"},
		{"executive_terms", "CEO, CMO"},
		{"alto_potencial", "1"},
		{"medio_potencial", "1"},
		{"baixo_potencial", "1"},
		{"conversion_rate", "33.3"},
		{"num_results", "10"},
		{"start_page", "2"},
		{"id", id.String()},
	}
	for _, tt := range tests {
		if row[tt.column] != tt.want {
			t.Errorf("%s = %q, want %q", tt.column, row[tt.column], tt.want)
		}
	}
}

func TestFilenames(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	if got := LeadsFilename(ts); got != "leads_linkedin_20250102_030405.csv" {
		t.Errorf("LeadsFilename() = %q", got)
	}
	if got := HistoryFilename(ts); got != "historico_buscas_20250102_030405.csv" {
		t.Errorf("HistoryFilename() = %q", got)
	}
}
