package input

import (
	"maidadmin/internal/domain"
	"maidadmin/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Term  func() string
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.Rows)
}

// CurrentRecord returns the selected row
func (c *ModelContext) CurrentRecord() (domain.Record, bool) {
	return c.State.CurrentRecord()
}

// Resource returns the resource shown in the table
func (c *ModelContext) Resource() domain.Resource {
	return c.State.Resource
}

// SearchTerm returns the current search term
func (c *ModelContext) SearchTerm() string {
	if c.Term != nil {
		return c.Term()
	}
	return c.State.Term
}

// HasStatus reports whether a status message is visible
func (c *ModelContext) HasStatus() bool {
	return c.State.StatusMessage != ""
}
