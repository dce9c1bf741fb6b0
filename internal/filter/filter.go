// Package filter derives views of the current lead list. It never modifies
// its input.
package filter

import (
	"errors"
	"fmt"
	"strings"

	"leadgen/internal/models"
)

// TierFilter selects leads by derived tier.
type TierFilter string

// Tier filter values
const (
	TierAll    TierFilter = "all"
	TierHigh   TierFilter = "high"
	TierMedium TierFilter = "medium"
	TierLow    TierFilter = "low"
)

// ErrInvalidTierFilter is returned for an unknown tier filter value.
var ErrInvalidTierFilter = errors.New("invalid potential filter")

// ParseTierFilter parses a filter value case-insensitively. Empty input
// means all tiers.
func ParseTierFilter(s string) (TierFilter, error) {
	switch f := TierFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return TierAll, nil
	case TierAll, TierHigh, TierMedium, TierLow:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTierFilter, s)
	}
}

// Matches reports whether a lead of the given tier passes the filter.
func (f TierFilter) Matches(t models.Tier) bool {
	switch f {
	case TierHigh:
		return t == models.TierHigh
	case TierMedium:
		return t == models.TierMedium
	case TierLow:
		return t == models.TierLow
	default:
		return true
	}
}

// Criteria combines the tier predicate and the title substring predicate.
type Criteria struct {
	Tier TierFilter
	Text string
}

// Apply returns the leads matching both predicates, in their original
// order. The text match is a case-insensitive substring of the title; empty
// text matches everything.
func Apply(leads []models.Lead, c Criteria) []models.Lead {
	needle := strings.ToLower(c.Text)
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if !c.Tier.Matches(l.Tier()) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(l.Title), needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}
