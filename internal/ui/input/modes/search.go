package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/ui/input/types"
)

// SearchMode edits the search term. Every change is reported so the table
// filters while typing.
type SearchMode struct {
	textInput textinput.Model
}

func NewSearchMode() *SearchMode {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.CharLimit = 0 // terms are stored verbatim, whatever their length
	return &SearchMode{textInput: ti}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.textInput.SetValue(ctx.SearchTerm())
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Blur()
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel clears the filter
		m.textInput.Reset()
		return []types.Action{
			types.ClearSearchAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		// Keep the term and go back to the table
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "up":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	}
	return nil, false
}

// Update edits the term and reports it when it changed
func (m *SearchMode) Update(msg tea.Msg) ([]types.Action, tea.Cmd) {
	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if after := m.textInput.Value(); after != before {
		return []types.Action{types.UpdateSearchAction{Text: after}}, cmd
	}
	return nil, cmd
}

// Input returns the text input for rendering
func (m *SearchMode) Input() textinput.Model {
	return m.textInput
}
