package state

import (
	"maidadmin/internal/domain"
	"maidadmin/internal/search"
)

// AppState contains all the application state
type AppState struct {
	// Admin data
	Resource domain.Resource  // resource shown in the table
	Data     domain.AdminData // last loaded data
	Loaded   bool             // whether data was loaded at least once
	Loading  bool             // a load is in flight
	Rows     []domain.Record  // rows of Resource matching the search term
	Term     string           // search term Rows were filtered with

	// Selection state
	SelectedIndex int

	// Session
	Username string // signed-in administrator, empty when signed out

	// Pending actions
	DeleteTarget domain.Record // record awaiting delete confirmation
	FormError    string        // validation message shown in forms

	// UI state
	ViewportOffset int
	ViewportHeight int
	ShowHelp       bool
	StatusMessage  string
	StatusIsError  bool
	StatusSeq      int // bumped on every status change so stale clears are ignored
}

// NewAppState creates a new application state
func NewAppState(resource domain.Resource) *AppState {
	return &AppState{
		Resource:       resource,
		Rows:           []domain.Record{},
		ViewportHeight: 20, // Default
	}
}

// SetData replaces the admin data and re-applies the current term
func (s *AppState) SetData(data domain.AdminData) {
	s.Data = data
	s.Loaded = true
	s.Loading = false
	s.Refilter(s.Term)
}

// Refilter recomputes the visible rows for term. The selection stays on the
// same record when it is still visible.
func (s *AppState) Refilter(term string) {
	var keepID string
	if rec, ok := s.CurrentRecord(); ok {
		keepID = rec.RecordID()
	}

	s.Term = term
	s.Rows = search.Filter(s.Data.Records(s.Resource), term)
	if s.Rows == nil {
		s.Rows = []domain.Record{}
	}

	s.SelectedIndex = 0
	if keepID != "" {
		for i, rec := range s.Rows {
			if rec.RecordID() == keepID {
				s.SelectedIndex = i
				break
			}
		}
	}
	s.EnsureVisible()
}

// SetResource switches the table to another resource
func (s *AppState) SetResource(r domain.Resource) {
	if r == s.Resource {
		return
	}
	s.Resource = r
	s.Rows = []domain.Record{}
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	s.Refilter(s.Term)
}

// CycleResource moves to the next (delta > 0) or previous resource tab
func (s *AppState) CycleResource(delta int) {
	idx := 0
	for i, r := range domain.Resources {
		if r == s.Resource {
			idx = i
			break
		}
	}
	n := len(domain.Resources)
	idx = ((idx+delta)%n + n) % n
	s.SetResource(domain.Resources[idx])
}

// CurrentRecord returns the selected row
func (s *AppState) CurrentRecord() (domain.Record, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Rows) {
		return nil, false
	}
	return s.Rows[s.SelectedIndex], true
}

// MoveSelection moves the cursor by delta rows, clamped to the table
func (s *AppState) MoveSelection(delta int) {
	s.SetSelection(s.SelectedIndex + delta)
}

// SetSelection puts the cursor on index, clamped to the table
func (s *AppState) SetSelection(index int) {
	if index >= len(s.Rows) {
		index = len(s.Rows) - 1
	}
	if index < 0 {
		index = 0
	}
	s.SelectedIndex = index
	s.EnsureVisible()
}

// EnsureVisible scrolls the viewport so the selection is on screen
func (s *AppState) EnsureVisible() {
	if s.ViewportHeight <= 0 {
		s.ViewportOffset = 0
		return
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	maxOffset := len(s.Rows) - s.ViewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// VisibleRows returns the rows inside the viewport
func (s *AppState) VisibleRows() []domain.Record {
	if s.ViewportHeight <= 0 || len(s.Rows) <= s.ViewportHeight {
		return s.Rows
	}
	end := s.ViewportOffset + s.ViewportHeight
	if end > len(s.Rows) {
		end = len(s.Rows)
	}
	return s.Rows[s.ViewportOffset:end]
}

// SetUserBlocked updates one user's blocked flag locally
func (s *AppState) SetUserBlocked(id string, blocked bool) {
	if s.Data.SetUserBlocked(id, blocked) {
		s.Refilter(s.Term)
	}
}

// RemoveRecord drops a deleted record locally
func (s *AppState) RemoveRecord(r domain.Resource, id string) {
	if s.Data.Remove(r, id) {
		s.Refilter(s.Term)
	}
}

// SetStatus shows a transient message and returns its sequence number
func (s *AppState) SetStatus(msg string, isError bool) int {
	s.StatusSeq++
	s.StatusMessage = msg
	s.StatusIsError = isError
	return s.StatusSeq
}

// ClearStatus removes the status message if it is still the one identified
// by seq. A seq of 0 clears unconditionally.
func (s *AppState) ClearStatus(seq int) {
	if seq != 0 && seq != s.StatusSeq {
		return
	}
	s.StatusMessage = ""
	s.StatusIsError = false
}

// Reset drops everything tied to the session
func (s *AppState) Reset() {
	s.Data = domain.AdminData{}
	s.Loaded = false
	s.Loading = false
	s.Rows = []domain.Record{}
	s.SelectedIndex = 0
	s.ViewportOffset = 0
	s.Username = ""
	s.DeleteTarget = nil
	s.FormError = ""
	s.ShowHelp = false
}
