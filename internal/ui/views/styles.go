package views

import (
	"github.com/charmbracelet/lipgloss"

	"maidadmin/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Main          lipgloss.Style
	Title         lipgloss.Style
	User          lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	SearchLabel   lipgloss.Style
	SearchTerm    lipgloss.Style
	Header        lipgloss.Style
	Cell          lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	ChipAdmin     lipgloss.Style
	ChipUser      lipgloss.Style
	ChipActive    lipgloss.Style
	ChipBlocked   lipgloss.Style
	Empty         lipgloss.Style
	Popup         lipgloss.Style
	PopupTitle    lipgloss.Style
	Label         lipgloss.Style
	Confirm       lipgloss.Style
	Help          lipgloss.Style
	Scroll        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusLoading lipgloss.Style
}

type palette struct {
	accent, text, muted, faint, selection, highlight string
	success, danger, warning, info                   string
	chipText                                         string
}

var palettes = map[domain.Theme]palette{
	domain.ThemeDark: {
		accent: "99", text: "252", muted: "245", faint: "241", selection: "238", highlight: "226",
		success: "78", danger: "203", warning: "214", info: "39",
		chipText: "235",
	},
	domain.ThemeLight: {
		accent: "55", text: "235", muted: "240", faint: "246", selection: "254", highlight: "161",
		success: "28", danger: "160", warning: "130", info: "25",
		chipText: "255",
	},
}

func chip(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

// NewStyles creates the styles for a theme
func NewStyles(theme domain.Theme) *Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[domain.ThemeDark]
	}
	color := func(s string) lipgloss.Color { return lipgloss.Color(s) }

	return &Styles{
		Main:        lipgloss.NewStyle().Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(color(p.accent)),
		User:        lipgloss.NewStyle().Foreground(color(p.muted)),
		Tab:         lipgloss.NewStyle().Foreground(color(p.muted)).Padding(0, 1),
		TabActive:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(color(p.accent)).Padding(0, 1),
		SearchLabel: lipgloss.NewStyle().Foreground(color(p.faint)),
		SearchTerm:  lipgloss.NewStyle().Foreground(color(p.warning)),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(color(p.muted)),
		Cell:        lipgloss.NewStyle().Foreground(color(p.text)),
		Dim:         lipgloss.NewStyle().Faint(true),
		Highlight:   lipgloss.NewStyle().Foreground(color(p.highlight)).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(color(p.selection)),
		ChipAdmin:   chip(p.info, p.chipText),
		ChipUser:    chip(p.faint, p.chipText),
		ChipActive:  chip(p.success, p.chipText),
		ChipBlocked: chip(p.danger, p.chipText),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(color(p.muted)).Padding(1, 2),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(p.accent)).
			Padding(1, 2),
		PopupTitle:    lipgloss.NewStyle().Bold(true).Foreground(color(p.accent)).MarginBottom(1),
		Label:         lipgloss.NewStyle().Foreground(color(p.muted)),
		Confirm:       lipgloss.NewStyle().Bold(true).Foreground(color(p.danger)),
		Help:          lipgloss.NewStyle().Faint(true),
		Scroll:        lipgloss.NewStyle().Foreground(color(p.faint)).Italic(true),
		StatusError:   lipgloss.NewStyle().Foreground(color(p.danger)),
		StatusSuccess: lipgloss.NewStyle().Foreground(color(p.success)),
		StatusLoading: lipgloss.NewStyle().Foreground(color(p.faint)),
	}
}
