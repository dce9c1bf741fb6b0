// Package state holds the per-session lead store: the current lead list and
// the search history.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"leadgen/internal/models"
)

// ErrEntryNotFound is returned when a history entry ID is unknown.
var ErrEntryNotFound = errors.New("history entry not found")

// SessionState is owned by exactly one session. The zero value is the
// initial state: no leads and no history.
type SessionState struct {
	CurrentLeads []models.Lead               `json:"current_leads"`
	History      []models.SearchHistoryEntry `json:"history"`
}

// Clone returns a copy that shares no slices with s.
func (s SessionState) Clone() SessionState {
	return SessionState{
		CurrentLeads: slices.Clone(s.CurrentLeads),
		History:      slices.Clone(s.History),
	}
}

// ReplaceLeads overwrites the current lead list wholesale. It is the only
// mutator of CurrentLeads.
func (s *SessionState) ReplaceLeads(leads []models.Lead) {
	s.CurrentLeads = slices.Clone(leads)
	if s.CurrentLeads == nil {
		s.CurrentLeads = []models.Lead{}
	}
}

// AppendHistory adds entry at the end of the history. Identical entries are
// kept; nothing is reordered or deduplicated.
func (s *SessionState) AppendHistory(entry models.SearchHistoryEntry) {
	s.History = append(slices.Clip(s.History), entry)
}

// ClearHistory resets the history to empty.
func (s *SessionState) ClearHistory() {
	s.History = nil
}

// FindEntry returns the history entry with the given ID.
func (s SessionState) FindEntry(id uuid.UUID) (models.SearchHistoryEntry, error) {
	for _, e := range s.History {
		if e.ID == id {
			return e, nil
		}
	}
	return models.SearchHistoryEntry{}, ErrEntryNotFound
}

// HistoryNewestFirst returns the history in reverse chronological order for
// display. The stored order is not changed.
func (s SessionState) HistoryNewestFirst() []models.SearchHistoryEntry {
	out := make([]models.SearchHistoryEntry, len(s.History))
	copy(out, s.History)
	slices.Reverse(out)
	return out
}

// Encode serializes the state for session storage.
func Encode(s SessionState) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode session state: %w", err)
	}
	return string(b), nil
}

// Decode restores a state produced by Encode. Empty input yields the
// initial state.
func Decode(data string) (SessionState, error) {
	var s SessionState
	if data == "" {
		return s, nil
	}
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return SessionState{}, fmt.Errorf("failed to decode session state: %w", err)
	}
	return s, nil
}
