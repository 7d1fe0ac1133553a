package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"maidadmin/internal/domain"
)

func userRows() []domain.Record {
	return []domain.Record{
		domain.User{ID: "1", Username: "anna", Role: domain.RoleAdmin},
		domain.User{ID: "2", Username: "bartek", Role: domain.RoleUser, IsBlocked: true},
		domain.User{ID: "3", Username: "celina", Role: domain.RoleUser},
	}
}

func baseState() ViewState {
	rows := userRows()
	return ViewState{
		Width:          100,
		Height:         30,
		Resource:       domain.ResourceUsers,
		Counts:         map[domain.Resource]int{domain.ResourceUsers: len(rows), domain.ResourceProjects: 1},
		Rows:           rows,
		ViewportHeight: 30 - ChromeLines,
		Username:       "root",
		Loaded:         true,
	}
}

func TestRenderUsersTable(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	out := r.Render(baseState())

	for _, want := range []string{"MAID Admin", "root", "Users (3)", "Projects (1)", "Datasets (0)",
		"Username", "Role", "Status", "anna", "bartek", "celina", "Admin", "Blocked", "Active"} {
		assert.Contains(t, out, want)
	}
	assert.LessOrEqual(t, lipgloss.Height(out), 30)
}

func TestRenderProjectsHasNameColumn(t *testing.T) {
	r := NewRenderer(domain.ThemeLight, domain.LanguageEnglish)
	state := baseState()
	state.Resource = domain.ResourceProjects
	state.Rows = []domain.Record{domain.Project{ID: "p1", Name: "churn-model"}}

	out := r.Render(state)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "churn-model")
	assert.NotContains(t, out, "Username")
}

func TestRenderEmptyStates(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)

	state := baseState()
	state.Rows = nil
	state.Term = "zzz"
	assert.Contains(t, r.Render(state), `No results for "zzz"`)

	state.Term = ""
	assert.Contains(t, r.Render(state), "Nothing to show")
}

func TestRenderSearchTermAndCount(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.Term = "an"
	state.Rows = state.Rows[:1]

	out := r.Render(state)
	assert.Contains(t, out, "an")
	assert.Contains(t, out, "1 of 3")
}

func TestRenderScrollIndicators(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	var rows []domain.Record
	for i := 0; i < 20; i++ {
		rows = append(rows, domain.Dataset{ID: string(rune('a' + i)), Name: "set"})
	}
	state := baseState()
	state.Resource = domain.ResourceDatasets
	state.Rows = rows
	state.ViewportHeight = 5
	state.ViewportOffset = 3
	state.SelectedIndex = 4

	out := r.Render(state)
	assert.Contains(t, out, "↑ 3 ↑")
	assert.Contains(t, out, "↓ 12 ↓")
}

func TestRenderDeleteConfirmation(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.DeleteTarget = state.Rows[1]

	assert.Contains(t, r.Render(state), "Delete user bartek? (y/n)")
}

func TestRenderPolish(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	r.SetLanguage(domain.LanguagePolish)

	out := r.Render(baseState())
	assert.Contains(t, out, "Użytkownicy (3)")
}

func TestRenderLoginScreen(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.Login = &FormView{
		TitleKey: "login.title",
		HintKey:  "login.hint",
		Labels:   []string{"login.username", "login.password"},
		Inputs:   []string{"> root", "> ••••"},
		ErrorKey: "form.required",
	}

	out := r.Render(state)
	assert.Contains(t, out, "Sign in")
	assert.Contains(t, out, "Password")
	assert.Contains(t, out, "All fields are required")
	assert.NotContains(t, out, "bartek")
}

func TestRenderFormPopupOverlaysTable(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.Form = &FormView{
		TitleKey: "form.new_admin",
		HintKey:  "form.hint",
		Labels:   []string{"login.username", "form.email", "login.password"},
		Inputs:   []string{"", "", ""},
	}

	out := r.Render(state)
	assert.Contains(t, out, "New administrator")
	assert.Contains(t, out, "Email")
	assert.Equal(t, 30, lipgloss.Height(out))
}

func TestRenderHelpPopup(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.ShowHelp = true

	out := r.Render(state)
	assert.Contains(t, out, "Keyboard shortcuts")
	assert.Contains(t, out, "block / unblock")
}

func TestStatusLine(t *testing.T) {
	r := NewRenderer(domain.ThemeDark, domain.LanguageEnglish)
	state := baseState()
	state.StatusMessage = "Error: boom"
	state.StatusIsError = true

	lines := strings.Split(r.Render(state), "\n")
	assert.Contains(t, lines[len(lines)-2], "Error: boom")
}

func TestHighlightMatch(t *testing.T) {
	plain := lipgloss.NewStyle()
	assert.Equal(t, "report-bot", highlightMatch("report-bot", "bot", plain, plain))
	assert.Equal(t, "anna", highlightMatch("anna", "zzz", plain, plain))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "ab", truncate("abcdefgh", 2))
}
