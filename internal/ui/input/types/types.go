package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeLogin
	ModeNewAdmin
	ModeDeleteConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeLogin:
		return "login"
	case ModeNewAdmin:
		return "new-admin"
	case ModeDeleteConfirm:
		return "delete-confirm"
	default:
		return "normal"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentRecord() (domain.Record, bool)
	Resource() domain.Resource
	SearchTerm() string
	HasStatus() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// TextMode is implemented by modes that own text inputs. Update receives
// every message the mode did not consume.
type TextMode interface {
	ModeHandler
	Update(msg tea.Msg) ([]Action, tea.Cmd)
}
