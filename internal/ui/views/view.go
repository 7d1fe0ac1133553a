package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"maidadmin/internal/domain"
	"maidadmin/internal/i18n"
)

// ChromeLines is the number of lines the layout uses around the table rows
const ChromeLines = 9

// FormView describes a form to render. Labels and keys are message keys.
type FormView struct {
	TitleKey string
	HintKey  string
	Labels   []string
	Inputs   []string // rendered text inputs
	Focused  int
	ErrorKey string
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Resource       domain.Resource
	Counts         map[domain.Resource]int
	Rows           []domain.Record // filtered rows of Resource
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Term           string
	SearchInput    string // rendered search input while typing, empty otherwise
	Username       string
	Loading        bool
	Loaded         bool
	StatusMessage  string
	StatusIsError  bool
	DeleteTarget   domain.Record
	Login          *FormView
	Form           *FormView
	ShowHelp       bool
	ShortHelp      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	printer     *message.Printer
	tableRender *TableRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(theme domain.Theme, lang domain.Language) *Renderer {
	r := &Renderer{printer: i18n.Printer(lang)}
	r.SetTheme(theme)
	return r
}

// SetTheme rebuilds the styles for theme
func (r *Renderer) SetTheme(theme domain.Theme) {
	r.styles = NewStyles(theme)
	r.tableRender = NewTableRenderer(r.styles)
	r.popupRender = NewPopupRenderer(r.styles)
}

// SetLanguage switches the message catalog
func (r *Renderer) SetLanguage(lang domain.Language) {
	r.printer = i18n.Printer(lang)
}

// Printer returns the printer used for translated text
func (r *Renderer) Printer() *message.Printer {
	return r.printer
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Login != nil {
		return r.renderLogin(state)
	}

	p := r.printer
	var lines []string
	lines = append(lines, r.renderTitle(state))
	lines = append(lines, r.renderTabs(state))
	lines = append(lines, r.renderSearch(state))

	if state.DeleteTarget != nil {
		lines = append(lines, r.styles.Confirm.Render(p.Sprintf("confirm.delete",
			state.Resource.Singular(), domain.Label(state.DeleteTarget))))
	} else {
		lines = append(lines, "")
	}

	switch {
	case !state.Loaded && state.Loading:
		lines = append(lines, r.styles.Dim.Render(p.Sprintf("status.loading")))
	case len(state.Rows) == 0:
		lines = append(lines, r.tableRender.RenderEmpty(p, state.Term))
	default:
		lines = append(lines, r.renderTable(state)...)
	}

	content := strings.Join(lines, "\n")

	// Pad so the status and help lines sit at the bottom
	bottom := []string{r.renderStatus(state), r.styles.Help.Render(state.ShortHelp)}
	if state.Height > 0 {
		if gap := state.Height - len(lines) - len(bottom); gap > 0 {
			content += strings.Repeat("\n", gap)
		}
	}
	content += "\n" + strings.Join(bottom, "\n")

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content)

	if state.Form != nil {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderForm(*state.Form), state.Height, state.Width)
	}
	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderHelpContent(), state.Height, state.Width)
	}
	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render(r.printer.Sprintf("app.title"))
	if state.Username == "" {
		return logo
	}

	right := r.styles.User.Render(state.Username)
	if state.Loading {
		right = r.styles.StatusLoading.Render("↻ ") + right
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	gap := termWidth - 2 - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return logo + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderTabs(state ViewState) string {
	tabs := make([]string, 0, len(domain.Resources))
	for _, res := range domain.Resources {
		label := fmt.Sprintf("%s (%d)", r.printer.Sprintf("tab."+string(res)), state.Counts[res])
		if res == state.Resource {
			tabs = append(tabs, r.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, r.styles.Tab.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (r *Renderer) renderSearch(state ViewState) string {
	p := r.printer
	label := r.styles.SearchLabel.Render(p.Sprintf("search.label") + " ")
	if state.SearchInput != "" {
		return label + state.SearchInput
	}
	if state.Term == "" {
		return label + r.styles.Dim.Render(p.Sprintf("search.placeholder"))
	}

	count := p.Sprintf("count", len(state.Rows), state.Counts[state.Resource])
	return label + r.styles.SearchTerm.Render(state.Term) + "  " + r.styles.Dim.Render(count)
}

// renderTable renders the header, the rows inside the viewport and the
// scroll indicators
func (r *Renderer) renderTable(state ViewState) []string {
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Rows) {
		start = 0
	}
	height := state.ViewportHeight
	if height <= 0 {
		height = len(state.Rows)
	}
	end := start + height
	if end > len(state.Rows) {
		end = len(state.Rows)
	}

	above := ""
	if start > 0 {
		above = r.tableRender.ScrollIndicator("↑", start)
	}
	below := ""
	if end < len(state.Rows) {
		below = r.tableRender.ScrollIndicator("↓", len(state.Rows)-end)
	}

	table := r.tableRender.RenderTable(r.printer, state.Resource, state.Rows[start:end], state.SelectedIndex-start, state.Term)
	lines := []string{table[0], above}
	lines = append(lines, table[1:]...)
	return append(lines, below)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		if state.Loading {
			return r.styles.StatusLoading.Render(r.printer.Sprintf("status.loading"))
		}
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.StatusSuccess.Render(state.StatusMessage)
}

func (r *Renderer) renderForm(form FormView) string {
	p := r.printer
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render(p.Sprintf(form.TitleKey)))
	b.WriteString("\n")
	for i, label := range form.Labels {
		labelStyle := r.styles.Label
		if i == form.Focused {
			labelStyle = labelStyle.Bold(true)
		}
		b.WriteString(labelStyle.Render(p.Sprintf(label)))
		b.WriteString("\n")
		if i < len(form.Inputs) {
			b.WriteString(form.Inputs[i])
		}
		b.WriteString("\n")
	}
	if form.ErrorKey != "" {
		b.WriteString(r.styles.StatusError.Render(p.Sprintf(form.ErrorKey)))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Help.Render(p.Sprintf(form.HintKey)))
	return b.String()
}

func (r *Renderer) renderLogin(state ViewState) string {
	box := r.styles.Popup.Render(r.renderForm(*state.Login))
	title := r.styles.Title.Render(r.printer.Sprintf("app.title"))
	content := lipgloss.JoinVertical(lipgloss.Center, title, "", box)
	if status := r.renderStatus(state); status != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", status)
	}
	if state.Width <= 0 || state.Height <= 0 {
		return content
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, content)
}

// helpRows pairs key labels with message keys, in display order
var helpRows = [][2]string{
	{"↑/↓, j/k", "help.move"},
	{"←/→, tab, 1-3", "help.tabs"},
	{"/", "help.search"},
	{"esc", "help.clear"},
	{"enter", "help.details"},
	{"b", "help.block"},
	{"d, del", "help.delete"},
	{"n", "help.new_admin"},
	{"r", "help.refresh"},
	{"t", "help.theme"},
	{"L", "help.language"},
	{"O", "help.logout"},
	{"?", "help.help"},
	{"q", "help.quit"},
}

// renderHelpContent renders the help information
func (r *Renderer) renderHelpContent() string {
	p := r.printer
	keyWidth := 0
	for _, row := range helpRows {
		if w := lipgloss.Width(row[0]); w > keyWidth {
			keyWidth = w
		}
	}

	var help strings.Builder
	help.WriteString(r.styles.PopupTitle.Render(p.Sprintf("help.title")))
	help.WriteString("\n")
	for _, row := range helpRows {
		help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.SearchTerm.Render(pad(row[0], keyWidth)), r.styles.Cell.Render(p.Sprintf(row[1]))))
	}
	help.WriteString(r.styles.Help.Render(p.Sprintf("help.close")))
	return help.String()
}
