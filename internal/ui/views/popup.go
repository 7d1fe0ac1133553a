package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of the greyed-out main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if modalW >= width || modalH >= height {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup)
	}
	x := (width - modalW) / 2
	y := (height - modalH) / 2

	base := strings.Split(ansiRE.ReplaceAllString(mainContent, ""), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	popupLines := strings.Split(styledPopup, "\n")
	out := make([]string, len(base))
	for i, line := range base {
		if i < y || i >= y+len(popupLines) {
			out[i] = dim.Render(line)
			continue
		}
		left, right := splitAround([]rune(line), x, modalW)
		out[i] = dim.Render(left) + popupLines[i-y] + dim.Render(right)
	}
	return strings.Join(out, "\n")
}

// splitAround returns the parts of line left of x and right of x+w, padding
// short lines with spaces
func splitAround(line []rune, x, w int) (string, string) {
	if len(line) < x+w {
		line = append(line, []rune(strings.Repeat(" ", x+w-len(line)))...)
	}
	return string(line[:x]), string(line[x+w:])
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)
