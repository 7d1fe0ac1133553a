package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/ui/input/modes"
	"maidadmin/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler

	search   *modes.SearchMode
	login    *modes.FormMode
	newAdmin *modes.FormMode
	confirm  *modes.ConfirmMode
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		search:      modes.NewSearchMode(),
		login:       modes.NewLoginMode(),
		newAdmin:    modes.NewAdminMode(),
		confirm:     modes.NewConfirmMode(),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = h.search
	h.modes[types.ModeLogin] = h.login
	h.modes[types.ModeNewAdmin] = h.newAdmin
	h.modes[types.ModeDeleteConfirm] = h.confirm

	return h
}

// HandleKey routes a key to the current mode and applies mode changes
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmds []tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			exitActions, enterCmd := h.switchMode(changeMode.Mode, ctx)
			allActions = append(allActions, exitActions...)
			cmds = append(cmds, enterCmd)
		} else {
			allActions = append(allActions, action)
		}
	}

	// Keys the mode did not consume go to its text inputs
	if !consumed {
		if textMode, ok := handler.(types.TextMode); ok {
			updateActions, cmd := textMode.Update(msg)
			allActions = append(allActions, updateActions...)
			cmds = append(cmds, cmd)
		}
	}

	return allActions, tea.Batch(cmds...)
}

// Update handles non-keyboard messages for text inputs
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if textMode, ok := h.modes[h.currentMode].(types.TextMode); ok {
		_, cmd := textMode.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches mode from outside key handling, e.g. after a login
// succeeded
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}

	h.currentMode = mode

	var cmd tea.Cmd
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
		if _, ok := next.(types.TextMode); ok {
			cmd = textinput.Blink
		}
	}
	return actions, cmd
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// SearchInput returns the search text input
func (h *Handler) SearchInput() textinput.Model {
	return h.search.Input()
}

// Form returns the form for a form mode, or nil
func (h *Handler) Form(mode types.Mode) *modes.FormMode {
	switch mode {
	case types.ModeLogin:
		return h.login
	case types.ModeNewAdmin:
		return h.newAdmin
	}
	return nil
}

// Confirm returns the delete confirmation mode
func (h *Handler) Confirm() *modes.ConfirmMode {
	return h.confirm
}
