package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"maidadmin/internal/eventbus"
	"maidadmin/internal/ui/state"
)

// SessionEndedMsg tells the model to return to the login screen
type SessionEndedMsg struct {
	Reason string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	logger *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state:  appState,
		logger: logger.Named("events"),
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoggedInEvent:
		h.state.Username = e.Username

	case eventbus.LoggedOutEvent:
		// The session may end outside the UI, e.g. when the expiry checker fires
		if h.state.Username == "" {
			return nil
		}
		reason := e.Reason
		return func() tea.Msg { return SessionEndedMsg{Reason: reason} }

	case eventbus.UserBlockedEvent:
		h.state.SetUserBlocked(e.UserID, true)

	case eventbus.UserUnblockedEvent:
		h.state.SetUserBlocked(e.UserID, false)

	case eventbus.RecordDeletedEvent:
		h.state.RemoveRecord(e.Resource, e.ID)

	case eventbus.ErrorEvent:
		h.logger.Debug("error event", zap.String("op", e.Message), zap.Error(e.Err))
	}
	return nil
}
