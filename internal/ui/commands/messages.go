package commands

import (
	"maidadmin/internal/auth"
	"maidadmin/internal/domain"
)

// DataLoadedMsg carries the result of a load
type DataLoadedMsg struct {
	Data domain.AdminData
	Err  error
}

// BlockToggledMsg reports a block or unblock. Blocked is the requested state.
type BlockToggledMsg struct {
	UserID   string
	Username string
	Blocked  bool
	Err      error
}

// DeletedMsg reports a delete
type DeletedMsg struct {
	Resource domain.Resource
	Record   domain.Record
	Err      error
}

// AdminCreatedMsg reports the new-admin result
type AdminCreatedMsg struct {
	Username string
	Err      error
}

// LoggedInMsg reports the login result
type LoggedInMsg struct {
	Identity auth.Identity
	Err      error
}

// LoggedOutMsg reports the logout result
type LoggedOutMsg struct {
	Err error
}
