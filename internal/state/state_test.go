package state

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadgen/internal/models"
)

func entry(location string, count int) models.SearchHistoryEntry {
	return models.SearchHistoryEntry{
		ID:           uuid.New(),
		Timestamp:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Params:       models.SearchParams{Terms: []string{"CEO"}, Location: location, NumResults: 10},
		ResultsCount: count,
	}
}

func TestSessionState_InitialState(t *testing.T) {
	var s SessionState
	if len(s.CurrentLeads) != 0 {
		t.Errorf("len(CurrentLeads) = %d, want 0", len(s.CurrentLeads))
	}
	if len(s.History) != 0 {
		t.Errorf("len(History) = %d, want 0", len(s.History))
	}
}

func TestSessionState_ReplaceLeads(t *testing.T) {
	var s SessionState
	s.ReplaceLeads([]models.Lead{{Title: "a"}, {Title: "b"}})
	s.ReplaceLeads([]models.Lead{{Title: "c"}})

	if len(s.CurrentLeads) != 1 || s.CurrentLeads[0].Title != "c" {
		t.Errorf("CurrentLeads = %+v, want only c", s.CurrentLeads)
	}

	s.ReplaceLeads(nil)
	if s.CurrentLeads == nil || len(s.CurrentLeads) != 0 {
		t.Errorf("CurrentLeads = %#v, want empty non-nil", s.CurrentLeads)
	}
}

func TestSessionState_ReplaceLeadsCopiesInput(t *testing.T) {
	var s SessionState
	in := []models.Lead{{Title: "a"}}
	s.ReplaceLeads(in)
	in[0].Title = "mutated"

	if s.CurrentLeads[0].Title != "a" {
		t.Errorf("CurrentLeads aliased caller slice: %q", s.CurrentLeads[0].Title)
	}
}

func TestSessionState_AppendAndClearHistory(t *testing.T) {
	var s SessionState
	e := entry("Brasil", 3)

	for i := 0; i < 5; i++ {
		s.AppendHistory(e)
	}
	if len(s.History) != 5 {
		t.Fatalf("len(History) = %d, want 5", len(s.History))
	}
	for i, h := range s.History {
		if h.ID != e.ID {
			t.Errorf("History[%d] changed: repeated entries must be kept as-is", i)
		}
	}

	s.ClearHistory()
	if len(s.History) != 0 {
		t.Errorf("len(History) after clear = %d, want 0", len(s.History))
	}
}

func TestSessionState_AppendHistoryPreservesOrder(t *testing.T) {
	var s SessionState
	first, second, third := entry("Brasil", 1), entry("Recife", 2), entry("Salvador", 3)
	s.AppendHistory(first)
	s.AppendHistory(second)
	s.AppendHistory(third)

	want := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, id := range want {
		if s.History[i].ID != id {
			t.Errorf("History[%d].ID = %v, want %v", i, s.History[i].ID, id)
		}
	}

	newest := s.HistoryNewestFirst()
	if newest[0].ID != third.ID || newest[2].ID != first.ID {
		t.Errorf("HistoryNewestFirst() order wrong")
	}
	if s.History[0].ID != first.ID {
		t.Errorf("HistoryNewestFirst() mutated stored order")
	}
}

func TestSessionState_CloneIsIndependent(t *testing.T) {
	var s SessionState
	s.ReplaceLeads([]models.Lead{{Title: "a"}})
	s.AppendHistory(entry("Brasil", 1))

	c := s.Clone()
	c.ReplaceLeads([]models.Lead{{Title: "b"}})
	c.AppendHistory(entry("Recife", 2))
	c.CurrentLeads[0].Title = "changed"

	if s.CurrentLeads[0].Title != "a" {
		t.Errorf("original leads changed: %q", s.CurrentLeads[0].Title)
	}
	if len(s.History) != 1 {
		t.Errorf("original history len = %d, want 1", len(s.History))
	}
}

func TestSessionState_AppendDoesNotAliasClone(t *testing.T) {
	var s SessionState
	s.AppendHistory(entry("Brasil", 1))
	s.AppendHistory(entry("Recife", 2))

	a := s
	b := s
	a.AppendHistory(entry("Salvador", 3))
	b.AppendHistory(entry("Manaus", 4))

	if a.History[2].Params.Location != "Salvador" {
		t.Errorf("a.History[2] = %q, want Salvador", a.History[2].Params.Location)
	}
}

func TestSessionState_FindEntry(t *testing.T) {
	var s SessionState
	e := entry("Brasil", 1)
	s.AppendHistory(e)

	got, err := s.FindEntry(e.ID)
	if err != nil {
		t.Fatalf("FindEntry() error = %v", err)
	}
	if got.ID != e.ID {
		t.Errorf("FindEntry() ID = %v, want %v", got.ID, e.ID)
	}

	if _, err := s.FindEntry(uuid.New()); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("FindEntry(unknown) error = %v, want ErrEntryNotFound", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	var s SessionState
	s.ReplaceLeads([]models.Lead{{Title: "João", Link: "https://linkedin.com/in/joao", Analysis: "ALTO"}})
	s.AppendHistory(entry("São Paulo", 1))

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.CurrentLeads) != 1 || got.CurrentLeads[0] != s.CurrentLeads[0] {
		t.Errorf("CurrentLeads = %+v", got.CurrentLeads)
	}
	if len(got.History) != 1 || got.History[0].ID != s.History[0].ID {
		t.Errorf("History = %+v", got.History)
	}
	if !got.History[0].Timestamp.Equal(s.History[0].Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.History[0].Timestamp, s.History[0].Timestamp)
	}
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	s, err := Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\") error = %v", err)
	}
	if len(s.CurrentLeads) != 0 || len(s.History) != 0 {
		t.Errorf("Decode(\"\") = %+v, want initial state", s)
	}

	if _, err := Decode("{not json"); err == nil {
		t.Error("Decode(invalid) error = nil, want error")
	}
}
