package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"golang.org/x/text/message"
)

// KeyMap holds the bindings shown in the footer
type KeyMap struct {
	Move     key.Binding
	Tabs     key.Binding
	Search   key.Binding
	Block    key.Binding
	Delete   key.Binding
	NewAdmin key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// newKeyMap builds the bindings with descriptions in the printer's language.
// Key handling itself lives in the input modes.
func newKeyMap(p *message.Printer) KeyMap {
	return KeyMap{
		Move:     key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("↑/↓", p.Sprintf("help.move"))),
		Tabs:     key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab", p.Sprintf("help.tabs"))),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", p.Sprintf("help.search"))),
		Block:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", p.Sprintf("help.block"))),
		Delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", p.Sprintf("help.delete"))),
		NewAdmin: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", p.Sprintf("help.new_admin"))),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", p.Sprintf("help.refresh"))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", p.Sprintf("help.help"))),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", p.Sprintf("help.quit"))),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tabs, k.Block, k.Delete, k.NewAdmin, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Tabs, k.Search},
		{k.Block, k.Delete, k.NewAdmin},
		{k.Refresh, k.Help, k.Quit},
	}
}
