package types

import "maidadmin/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchResourceAction struct {
	Delta    int             // used when Resource is empty
	Resource domain.Resource // jump straight to a tab
}

func (a SwitchResourceAction) Type() string { return "switch_resource" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Search actions
type UpdateSearchAction struct {
	Text string
}

func (a UpdateSearchAction) Type() string { return "update_search" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Record actions
type ToggleBlockAction struct {
	UserID  string
	Blocked bool // current state; the action flips it
}

func (a ToggleBlockAction) Type() string { return "toggle_block" }

type DeleteRecordAction struct {
	Resource domain.Resource
	Record   domain.Record
}

func (a DeleteRecordAction) Type() string { return "delete_record" }

type ShowDetailsAction struct{}

func (a ShowDetailsAction) Type() string { return "show_details" }

// Form actions
type SubmitLoginAction struct {
	Username string
	Password string
}

func (a SubmitLoginAction) Type() string { return "submit_login" }

type SubmitNewAdminAction struct {
	Username string
	Email    string
	Password string
}

func (a SubmitNewAdminAction) Type() string { return "submit_new_admin" }

type FormErrorAction struct {
	Message string // message key
}

func (a FormErrorAction) Type() string { return "form_error" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type ToggleLanguageAction struct{}

func (a ToggleLanguageAction) Type() string { return "toggle_language" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type DismissStatusAction struct{}

func (a DismissStatusAction) Type() string { return "dismiss_status" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
