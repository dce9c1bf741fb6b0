// Package query turns search parameters into the LinkedIn search string and
// the payload sent to the automation webhook.
package query

import (
	"fmt"
	"strings"

	"leadgen/internal/config"
	"leadgen/internal/models"
)

// SitePrefix restricts the search engine query to LinkedIn profiles.
const SitePrefix = "site:linkedin.com/in"

// Payload is the JSON body sent to the webhook.
type Payload struct {
	Query          string   `json:"query"`
	NumResults     int      `json:"num_results"`
	StartPage      int      `json:"start_page"`
	Location       string   `json:"location"`
	ExecutiveTerms []string `json:"executive_terms"`
	Sector         string   `json:"sector,omitempty"`
}

// Builder validates parameters against the option catalog and builds payloads.
type Builder struct {
	catalog *config.Catalog
}

// NewBuilder creates a builder. A nil catalog disables the location, sector
// and bounds checks; only the term list is validated.
func NewBuilder(catalog *config.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Build validates params and returns the payload. The returned payload
// carries the cleaned term list.
func (b *Builder) Build(params models.SearchParams) (Payload, error) {
	terms := CleanTerms(params.Terms)
	if len(terms) == 0 {
		return Payload{}, &ValidationError{Field: "executive_terms", Err: ErrEmptyTerms}
	}
	if strings.TrimSpace(params.Location) == "" {
		return Payload{}, &ValidationError{Field: "location", Err: ErrEmptyLocation}
	}

	if b.catalog != nil {
		if !b.catalog.HasLocation(params.Location) {
			return Payload{}, &ValidationError{Field: "location", Err: fmt.Errorf("%w: %q", ErrUnknownLocation, params.Location)}
		}
		if params.Sector != "" && !b.catalog.HasSector(params.Sector) {
			return Payload{}, &ValidationError{Field: "sector", Err: fmt.Errorf("%w: %q", ErrUnknownSector, params.Sector)}
		}
		if rc := b.catalog.ResultCount; !rc.Contains(params.NumResults) {
			return Payload{}, &ValidationError{Field: "num_results", Err: fmt.Errorf("%w: %d not in [%d,%d]", ErrResultsOutOfRange, params.NumResults, rc.Min, rc.Max)}
		}
		if sp := b.catalog.StartPage; !sp.Contains(params.StartPage) {
			return Payload{}, &ValidationError{Field: "start_page", Err: fmt.Errorf("%w: %d not in [%d,%d]", ErrPageOutOfRange, params.StartPage, sp.Min, sp.Max)}
		}
	} else if params.StartPage < 0 {
		return Payload{}, &ValidationError{Field: "start_page", Err: ErrPageOutOfRange}
	}

	return Payload{
		Query:          QueryString(terms, params.Sector, params.Location),
		NumResults:     params.NumResults,
		StartPage:      params.StartPage,
		Location:       params.Location,
		ExecutiveTerms: terms,
		Sector:         params.Sector,
	}, nil
}

// QueryString renders the search engine query:
//
//	site:linkedin.com/in (CEO OR CMO) tecnologia São Paulo
func QueryString(terms []string, sector, location string) string {
	var sb strings.Builder
	sb.WriteString(SitePrefix)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(terms, " OR "))
	sb.WriteString(")")
	if kw := SectorKeyword(sector); kw != "" {
		sb.WriteString(" ")
		sb.WriteString(kw)
	}
	sb.WriteString(" ")
	sb.WriteString(location)
	return sb.String()
}

// SectorKeyword returns the lowercased part of the sector label before the
// first "/", or "" when the label means all sectors.
func SectorKeyword(sector string) string {
	if IsAllSectors(sector) {
		return ""
	}
	head, _, _ := strings.Cut(sector, "/")
	return strings.ToLower(strings.TrimSpace(head))
}

// IsAllSectors reports whether the label places no sector restriction.
func IsAllSectors(sector string) bool {
	s := strings.TrimSpace(sector)
	return s == "" || s == config.AllSectors || strings.EqualFold(s, "all") || strings.EqualFold(s, "all sectors")
}

// CleanTerms trims each term and drops empty ones, preserving order.
func CleanTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
