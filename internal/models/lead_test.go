package models

import "testing"

func TestDeriveTier(t *testing.T) {
	tests := []struct {
		name     string
		analysis string
		expected Tier
	}{
		{"portuguese high", "ALTO POTENCIAL - CEO de empresa de tecnologia", TierHigh},
		{"portuguese medium", "MÉDIO POTENCIAL - Founder de startup", TierMedium},
		{"medium without accent", "MEDIO POTENCIAL", TierMedium},
		{"portuguese low", "BAIXO POTENCIAL - Foco em área financeira", TierLow},
		{"english high", "HIGH POTENTIAL - decision maker", TierHigh},
		{"english medium", "MEDIUM POTENTIAL", TierMedium},
		{"loose english word ignored", "BAIXO POTENCIAL - foco em HIGH TICKET", TierLow},
		{"loose medium word ignored", "BAIXO - MEDIUM sized company", TierLow},
		{"high wins over medium", "MÉDIO no início, mas ALTO POTENCIAL no final", TierHigh},
		{"empty analysis", "", TierLow},
		{"no marker", "sem classificação", TierLow},
		{"lowercase marker ignored", "alto potencial", TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTier(tt.analysis); got != tt.expected {
				t.Errorf("DeriveTier(%q) = %v, want %v", tt.analysis, got, tt.expected)
			}
			lead := Lead{Analysis: tt.analysis}
			if got := lead.Tier(); got != tt.expected {
				t.Errorf("Lead.Tier() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTier_Label(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected string
	}{
		{TierHigh, "Alto"},
		{TierMedium, "Médio"},
		{TierLow, "Baixo"},
		{Tier(""), "Baixo"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			if got := tt.tier.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLeadFromValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected Lead
	}{
		{
			name: "portuguese keys",
			value: map[string]any{
				"titulo":  "João Silva - CEO",
				"link":    "https://linkedin.com/in/joao",
				"resumo":  "CEO da Tech",
				"analise": "ALTO POTENCIAL",
			},
			expected: Lead{Title: "João Silva - CEO", Link: "https://linkedin.com/in/joao", Summary: "CEO da Tech", Analysis: "ALTO POTENCIAL"},
		},
		{
			name: "english keys",
			value: map[string]any{
				"title":    "Jane Doe - CMO",
				"url":      "https://linkedin.com/in/jane",
				"summary":  "Marketing lead",
				"analysis": "MEDIUM",
			},
			expected: Lead{Title: "Jane Doe - CMO", Link: "https://linkedin.com/in/jane", Summary: "Marketing lead", Analysis: "MEDIUM"},
		},
		{
			name:     "non-string values are stringified",
			value:    map[string]any{"titulo": float64(42), "analise": nil},
			expected: Lead{Title: "42"},
		},
		{
			name:     "not an object",
			value:    "just a string",
			expected: Lead{},
		},
		{
			name:     "nil",
			value:    nil,
			expected: Lead{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeadFromValue(tt.value); got != tt.expected {
				t.Errorf("LeadFromValue() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestNewLeadViews(t *testing.T) {
	leads := []Lead{
		{Title: "a", Analysis: "ALTO"},
		{Title: "b", Analysis: "MÉDIO"},
		{Title: "c"},
	}

	views := NewLeadViews(leads)
	if len(views) != 3 {
		t.Fatalf("len(views) = %d, want 3", len(views))
	}
	want := []Tier{TierHigh, TierMedium, TierLow}
	for i, v := range views {
		if v.Title != leads[i].Title {
			t.Errorf("views[%d].Title = %q, want %q", i, v.Title, leads[i].Title)
		}
		if v.Potential != want[i] {
			t.Errorf("views[%d].Potential = %v, want %v", i, v.Potential, want[i])
		}
	}
}

func TestTierCounts_Total(t *testing.T) {
	c := TierCounts{High: 2, Medium: 3, Low: 5}
	if got := c.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
}
