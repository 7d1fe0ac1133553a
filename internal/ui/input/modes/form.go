package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/ui/input/types"
)

// Field describes one input of a form
type Field struct {
	Label    string // message key
	Password bool
}

// FormMode is a base for modes that collect several required values
type FormMode struct {
	mode       types.Mode
	name       string
	fields     []Field
	inputs     []textinput.Model
	focus      int
	cancelable bool
	submit     func(values []string) types.Action
}

// NewFormMode creates a form. submit turns the trimmed values into the action
// emitted on enter; passwords are not trimmed.
func NewFormMode(mode types.Mode, name string, fields []Field, cancelable bool, submit func(values []string) types.Action) *FormMode {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = "" // Prompt is handled in the UI layer
		ti.CharLimit = 128
		if f.Password {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	return &FormMode{
		mode:       mode,
		name:       name,
		fields:     fields,
		inputs:     inputs,
		cancelable: cancelable,
		submit:     submit,
	}
}

func (m *FormMode) Name() string {
	return m.name
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].Reset()
	}
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		if m.cancelable {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return nil, true
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return nil, true
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return nil, true
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return nil, true
		}
		values := m.Values()
		for _, v := range values {
			if v == "" {
				return []types.Action{types.FormErrorAction{Message: "form.required"}}, true
			}
		}
		return []types.Action{m.submit(values)}, true
	}
	// Let Update feed the key to the focused input
	return nil, false
}

// Update forwards a message to the focused input
func (m *FormMode) Update(msg tea.Msg) ([]types.Action, tea.Cmd) {
	if len(m.inputs) == 0 {
		return nil, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return nil, cmd
}

// Values returns the current input values
func (m *FormMode) Values() []string {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		if m.fields[i].Password {
			values[i] = in.Value()
		} else {
			values[i] = strings.TrimSpace(in.Value())
		}
	}
	return values
}

// Fields returns the field descriptions
func (m *FormMode) Fields() []Field {
	return m.fields
}

// Inputs returns the text inputs for rendering
func (m *FormMode) Inputs() []textinput.Model {
	return m.inputs
}

// Focused returns the index of the focused input
func (m *FormMode) Focused() int {
	return m.focus
}

func (m *FormMode) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	n := len(m.inputs)
	i = ((i % n) + n) % n
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
