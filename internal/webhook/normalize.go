package webhook

import (
	"encoding/json"
	"fmt"

	"leadgen/internal/models"
)

// NormalizeLeads extracts the lead list from a webhook response body:
//
//  1. no "leads" field: empty list
//  2. "leads" is an object with a "data" field: that field's value
//  3. "leads" is not an array: a one-element list
//  4. otherwise "leads" as-is
//
// A body that is valid JSON but not an object has no "leads" field. A null
// "leads" (or null "data") yields an empty list.
func NormalizeLeads(body []byte) ([]models.Lead, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return []models.Lead{}, nil
	}
	raw, ok := obj["leads"]
	if !ok {
		return []models.Lead{}, nil
	}

	items := extractItems(raw)
	leads := make([]models.Lead, len(items))
	for i, item := range items {
		leads[i] = models.LeadFromValue(item)
	}
	return leads, nil
}

func extractItems(raw any) []any {
	if m, ok := raw.(map[string]any); ok {
		if data, ok := m["data"]; ok {
			raw = data
		}
	}
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}
