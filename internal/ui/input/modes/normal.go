package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/domain"
	"maidadmin/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc dismisses the status message first, then clears the search
		if ctx.HasStatus() {
			return []types.Action{types.DismissStatusAction{}}, true
		}
		if ctx.SearchTerm() != "" {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		return nil, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft, tea.KeyShiftTab:
		return []types.Action{types.SwitchResourceAction{Delta: -1}}, true

	case tea.KeyRight, tea.KeyTab:
		return []types.Action{types.SwitchResourceAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if _, ok := ctx.CurrentRecord(); ok {
			return []types.Action{types.ShowDetailsAction{}}, true
		}
		return nil, false

	case tea.KeyDelete:
		return m.confirmDelete(ctx)
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.SwitchResourceAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.SwitchResourceAction{Delta: 1}}, true

	case "1":
		return []types.Action{types.SwitchResourceAction{Resource: domain.ResourceUsers}}, true

	case "2":
		return []types.Action{types.SwitchResourceAction{Resource: domain.ResourceProjects}}, true

	case "3":
		return []types.Action{types.SwitchResourceAction{Resource: domain.ResourceDatasets}}, true

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "b":
		// Block or unblock the current user
		rec, ok := ctx.CurrentRecord()
		if !ok {
			return nil, true
		}
		user, isUser := rec.(domain.User)
		if !isUser {
			return []types.Action{types.ToggleBlockAction{}}, true
		}
		return []types.Action{types.ToggleBlockAction{UserID: user.ID, Blocked: user.IsBlocked}}, true

	case "d":
		return m.confirmDelete(ctx)

	case "n":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNewAdmin}}, true

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "t":
		return []types.Action{types.ToggleThemeAction{}}, true

	case "L":
		return []types.Action{types.ToggleLanguageAction{}}, true

	case "O":
		return []types.Action{types.LogoutAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

func (m *NormalMode) confirmDelete(ctx types.Context) ([]types.Action, bool) {
	if _, ok := ctx.CurrentRecord(); !ok {
		return nil, true
	}
	return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
}
