package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/message"

	"maidadmin/internal/domain"
	"maidadmin/internal/search"
)

const (
	maxIDWidth   = 36
	maxTextWidth = 40
)

// column describes one table column
type column struct {
	field  string // record field shown in the column
	header string // message key
	max    int
}

var columns = map[domain.Resource][]column{
	domain.ResourceUsers: {
		{field: "id", header: "col.id", max: maxIDWidth},
		{field: "username", header: "col.username", max: maxTextWidth},
		{field: "role", header: "col.role", max: 16},
		{field: "blocked", header: "col.status", max: 16},
	},
	domain.ResourceProjects: {
		{field: "id", header: "col.id", max: maxIDWidth},
		{field: "name", header: "col.name", max: maxTextWidth},
	},
	domain.ResourceDatasets: {
		{field: "id", header: "col.id", max: maxIDWidth},
		{field: "name", header: "col.name", max: maxTextWidth},
	},
}

// TableRenderer handles rendering of admin-data tables
type TableRenderer struct {
	styles *Styles
}

// NewTableRenderer creates a new table renderer
func NewTableRenderer(styles *Styles) *TableRenderer {
	return &TableRenderer{styles: styles}
}

// cellText returns the plain text shown in a cell
func cellText(p *message.Printer, rec domain.Record, field string) string {
	value := domain.FieldValue(rec, field)
	switch field {
	case "role":
		if strings.EqualFold(value, domain.RoleAdmin) {
			return p.Sprintf("role.admin")
		}
		if value == "" || strings.EqualFold(value, domain.RoleUser) {
			return p.Sprintf("role.user")
		}
		return value
	case "blocked":
		if value == "true" {
			return p.Sprintf("chip.blocked")
		}
		return p.Sprintf("chip.active")
	}
	return value
}

// widths sizes each column to its widest cell, within the column limit
func widths(p *message.Printer, cols []column, rows []domain.Record) []int {
	out := make([]int, len(cols))
	for i, c := range cols {
		out[i] = lipgloss.Width(p.Sprintf(c.header))
		for _, rec := range rows {
			w := lipgloss.Width(cellText(p, rec, c.field))
			if c.field == "role" || c.field == "blocked" {
				w += 2 // chip padding
			}
			if w > out[i] {
				out[i] = w
			}
		}
		if out[i] > c.max {
			out[i] = c.max
		}
	}
	return out
}

// RenderTable renders the header and rows. selected is relative to rows.
func (t *TableRenderer) RenderTable(p *message.Printer, resource domain.Resource, rows []domain.Record, selected int, term string) []string {
	cols := columns[resource]
	ws := widths(p, cols, rows)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = t.styles.Header.Render(pad(truncate(p.Sprintf(c.header), ws[i]), ws[i]))
	}
	lines := []string{"  " + strings.Join(headers, "  ")}

	for i, rec := range rows {
		lines = append(lines, t.renderRow(p, cols, ws, rec, i == selected, term))
	}
	return lines
}

func (t *TableRenderer) renderRow(p *message.Printer, cols []column, ws []int, rec domain.Record, isSelected bool, term string) string {
	q := search.ParseQuery(term)
	cells := make([]string, len(cols))
	for i, c := range cols {
		text := cellText(p, rec, c.field)
		switch c.field {
		case "role":
			style := t.styles.ChipUser
			if u, ok := rec.(domain.User); ok && u.IsAdmin() {
				style = t.styles.ChipAdmin
			}
			cells[i] = pad(style.Render(text), ws[i])
		case "blocked":
			style := t.styles.ChipActive
			if u, ok := rec.(domain.User); ok && u.IsBlocked {
				style = t.styles.ChipBlocked
			}
			cells[i] = pad(style.Render(text), ws[i])
		default:
			text = truncate(text, ws[i])
			cellStyle := t.styles.Cell
			if isSelected {
				cellStyle = cellStyle.Bold(true)
			}
			if q.Value != "" && (q.Field == "" || q.Field == c.field) {
				text = highlightMatch(text, q.Value, t.styles.Highlight, cellStyle)
			} else {
				text = cellStyle.Render(text)
			}
			cells[i] = pad(text, ws[i])
		}
	}

	marker := "  "
	if isSelected {
		marker = t.styles.Title.Render("> ")
	}
	line := marker + strings.Join(cells, "  ")
	if isSelected {
		return t.styles.SelectionBg.Render(line)
	}
	return line
}

// RenderEmpty renders the empty-table message
func (t *TableRenderer) RenderEmpty(p *message.Printer, term string) string {
	if term != "" {
		return t.styles.Empty.Render(p.Sprintf("empty.results", term))
	}
	return t.styles.Empty.Render(p.Sprintf("empty.none"))
}

// highlightMatch highlights the first case-insensitive match of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	index := strings.Index(lowerText, query)
	// Lower-casing can change byte lengths; fall back to plain rendering
	if index == -1 || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// truncate shortens s to width runes, marking the cut with "..."
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// pad right-pads rendered text to width visible columns
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// ScrollIndicator renders the "more above/below" hints
func (t *TableRenderer) ScrollIndicator(arrow string, n int) string {
	return t.styles.Scroll.Render(fmt.Sprintf("%s %d %s", arrow, n, arrow))
}
