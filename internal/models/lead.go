package models

import (
	"fmt"
	"strings"
)

// Tier is the qualitative sales potential of a lead.
type Tier string

// Potential tier constants
const (
	TierHigh   Tier = "HIGH"
	TierMedium Tier = "MEDIUM"
	TierLow    Tier = "LOW"
)

// Markers searched for in the analysis text, case-sensitive. The scoring
// workflow writes Portuguese markers ("ALTO POTENCIAL ..."). English markers
// must be the full phrase so loose words like "HIGH TICKET" in Portuguese
// text do not change the tier.
var (
	HighMarkers   = []string{"ALTO", "HIGH POTENTIAL"}
	MediumMarkers = []string{"MÉDIO", "MEDIO", "MEDIUM POTENTIAL"}
)

// Label returns the display label for the tier.
func (t Tier) Label() string {
	switch t {
	case TierHigh:
		return "Alto"
	case TierMedium:
		return "Médio"
	default:
		return "Baixo"
	}
}

// Lead is a candidate contact returned by the search workflow.
// Field names on the wire follow the workflow's output.
type Lead struct {
	Title    string `json:"titulo"`
	Link     string `json:"link"`
	Summary  string `json:"resumo"`
	Analysis string `json:"analise"`
}

// Tier derives the potential tier from the analysis text. A high marker
// wins over a medium marker; text with neither, including empty text, is LOW.
func (l Lead) Tier() Tier {
	return DeriveTier(l.Analysis)
}

// DeriveTier classifies free-text analysis by marker substring.
func DeriveTier(analysis string) Tier {
	if containsAny(analysis, HighMarkers) {
		return TierHigh
	}
	if containsAny(analysis, MediumMarkers) {
		return TierMedium
	}
	return TierLow
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// LeadFromValue converts one decoded JSON element into a Lead. Both the
// workflow's Portuguese keys and English keys are accepted. Elements that
// are not objects yield an empty Lead so list positions are preserved.
func LeadFromValue(v any) Lead {
	m, ok := v.(map[string]any)
	if !ok {
		return Lead{}
	}
	return Lead{
		Title:    stringField(m, "titulo", "title"),
		Link:     stringField(m, "link", "url"),
		Summary:  stringField(m, "resumo", "summary"),
		Analysis: stringField(m, "analise", "analysis"),
	}
}

func stringField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return ""
}
