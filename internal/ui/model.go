package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"maidadmin/internal/api"
	"maidadmin/internal/auth"
	"maidadmin/internal/config"
	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
	"maidadmin/internal/i18n"
	"maidadmin/internal/prefs"
	"maidadmin/internal/search"
	"maidadmin/internal/ui/commands"
	"maidadmin/internal/ui/handlers"
	"maidadmin/internal/ui/input"
	"maidadmin/internal/ui/input/modes"
	inputtypes "maidadmin/internal/ui/input/types"
	"maidadmin/internal/ui/state"
	"maidadmin/internal/ui/views"
)

// Session is what the model needs from the auth provider
type Session interface {
	commands.Session
	CheckAuth() error
	Identity() (auth.Identity, error)
}

// Deps are the collaborators of the model
type Deps struct {
	Config  *config.Config
	Bus     eventbus.EventBus // may be nil
	Search  *search.Store
	Prefs   *prefs.Preferences
	Session Session
	Data    commands.DataService
	Admin   commands.AdminService
	Logger  *zap.Logger
}

// Model represents the UI state
type Model struct {
	deps  Deps
	state *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	theme       domain.Theme
	lang        domain.Language
	printer     *message.Printer
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *PagerOps
	logger       *zap.Logger

	unsubscribe func()
}

// NewModel creates a new UI model
func NewModel(deps Deps) *Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Search == nil {
		deps.Search = search.NewStore()
	}
	logger := deps.Logger.Named("ui")

	theme := deps.Prefs.Theme(domain.DefaultTheme)
	lang := deps.Prefs.Language(domain.DefaultLanguage)

	m := &Model{
		deps:         deps,
		state:        state.NewAppState(deps.Config.DefaultResource()),
		help:         help.New(),
		theme:        theme,
		lang:         lang,
		printer:      i18n.Printer(lang),
		renderer:     views.NewRenderer(theme, lang),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		logger:       logger,
	}
	m.keys = newKeyMap(m.printer)
	m.eventHandler = handlers.NewEventHandler(m.state, deps.Logger)
	m.cmdExecutor = commands.NewExecutor(deps.Data, deps.Admin, deps.Session, deps.Bus, deps.Logger, deps.Config.Timeout())

	// Listeners run inside SetSearchTerm, i.e. on the update loop
	m.unsubscribe = deps.Search.Subscribe(func(term string) {
		m.state.Refilter(term)
	})
	m.state.Refilter(deps.Search.Term())

	if err := deps.Session.CheckAuth(); err != nil {
		logger.Info("no session", zap.Error(err))
		m.inputHandler.ChangeMode(inputtypes.ModeLogin, m.inputContext())
	} else if id, err := deps.Session.Identity(); err == nil {
		m.state.Username = id.Username
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Close detaches the model from the search store
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// State returns the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeLogin {
		return nil
	}
	return m.load()
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{State: m.state, Term: m.deps.Search.Term}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case commands.DataLoadedMsg:
		m.state.Loading = false
		if msg.Err != nil {
			return m, m.handleError(msg.Err)
		}
		m.state.SetData(msg.Data)
		return m, m.setStatus(m.printer.Sprintf("status.loaded",
			len(msg.Data.Users), len(msg.Data.Projects), len(msg.Data.Datasets)), false)

	case commands.BlockToggledMsg:
		if msg.Err != nil {
			return m, m.handleError(msg.Err)
		}
		m.state.SetUserBlocked(msg.UserID, msg.Blocked)
		key := "status.unblocked"
		if msg.Blocked {
			key = "status.blocked"
		}
		return m, m.setStatus(m.printer.Sprintf(key, msg.Username), false)

	case commands.DeletedMsg:
		if msg.Err != nil {
			return m, m.handleError(msg.Err)
		}
		m.state.RemoveRecord(msg.Resource, msg.Record.RecordID())
		return m, m.setStatus(m.printer.Sprintf("status.deleted", msg.Resource.Singular(), domain.Label(msg.Record)), false)

	case commands.AdminCreatedMsg:
		if msg.Err != nil {
			return m, m.handleError(msg.Err)
		}
		_, modeCmd := m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
		return m, tea.Batch(modeCmd,
			m.setStatus(m.printer.Sprintf("status.admin_created", msg.Username), false),
			m.load())

	case commands.LoggedInMsg:
		if msg.Err != nil {
			return m, m.setStatus(m.printer.Sprintf("status.error", msg.Err.Error()), true)
		}
		m.state.Username = msg.Identity.Username
		m.state.FormError = ""
		_, modeCmd := m.inputHandler.ChangeMode(inputtypes.ModeNormal, m.inputContext())
		return m, tea.Batch(modeCmd,
			m.setStatus(m.printer.Sprintf("status.logged_in", msg.Identity.Username), false),
			m.load())

	case commands.LoggedOutMsg:
		if msg.Err != nil {
			m.logger.Warn("logout", zap.Error(msg.Err))
		}
		return m, m.endSession(auth.ReasonUser)

	case handlers.SessionEndedMsg:
		return m, m.endSession(msg.Reason)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	case detailsPagerMsg:
		if msg.err != nil {
			m.logger.Warn("details pager failed", zap.Error(msg.err))
			return m, m.setStatus(m.printer.Sprintf("status.error", msg.err.Error()), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blinks and other messages for the text inputs
	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// The help popup swallows keys until it is closed
	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.state.ShowHelp = false
		case "ctrl+c":
			return tea.Quit
		}
		return nil
	}

	before := m.inputHandler.CurrentMode()
	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
	if m.inputHandler.CurrentMode() != before {
		m.state.FormError = ""
	}

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SwitchResourceAction:
		if a.Resource != "" {
			m.state.SetResource(a.Resource)
		} else {
			m.state.CycleResource(a.Delta)
		}

	case inputtypes.UpdateSearchAction:
		m.deps.Search.SetSearchTerm(a.Text)

	case inputtypes.ClearSearchAction:
		m.deps.Search.ClearSearchTerm()

	case inputtypes.ToggleBlockAction:
		if a.UserID == "" {
			return m.setStatus(m.printer.Sprintf("status.users_only"), true)
		}
		user := domain.User{ID: a.UserID, IsBlocked: a.Blocked}
		if rec, ok := m.state.CurrentRecord(); ok {
			if u, ok := rec.(domain.User); ok && u.ID == a.UserID {
				user = u
			}
		}
		return m.cmdExecutor.ExecuteToggleBlock(user)

	case inputtypes.DeleteRecordAction:
		return m.cmdExecutor.ExecuteDelete(a.Resource, a.Record)

	case inputtypes.ShowDetailsAction:
		rec, ok := m.state.CurrentRecord()
		if !ok {
			return m.setStatus(m.printer.Sprintf("status.no_selection"), true)
		}
		return m.showDetails(recordDetails(m.printer, m.state.Resource, rec))

	case inputtypes.SubmitLoginAction:
		m.state.FormError = ""
		return m.cmdExecutor.ExecuteLogin(a.Username, a.Password)

	case inputtypes.SubmitNewAdminAction:
		m.state.FormError = ""
		return m.cmdExecutor.ExecuteNewAdmin(api.Account{Username: a.Username, Email: a.Email, Password: a.Password})

	case inputtypes.FormErrorAction:
		m.state.FormError = a.Message

	case inputtypes.RefreshAction:
		return m.load()

	case inputtypes.ToggleThemeAction:
		return m.setTheme(m.theme.Toggle())

	case inputtypes.ToggleLanguageAction:
		return m.setLanguage(m.lang.Toggle())

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.DismissStatusAction:
		m.state.ClearStatus(0)

	case inputtypes.LogoutAction:
		return m.cmdExecutor.ExecuteLogout()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	page := m.state.ViewportHeight
	if page < 1 {
		page = 1
	}
	switch direction {
	case "up":
		m.state.MoveSelection(-1)
	case "down":
		m.state.MoveSelection(1)
	case "pageup":
		m.state.MoveSelection(-page)
	case "pagedown":
		m.state.MoveSelection(page)
	case "home":
		m.state.SetSelection(0)
	case "end":
		m.state.SetSelection(len(m.state.Rows) - 1)
	}
}

func (m *Model) load() tea.Cmd {
	m.state.Loading = true
	return m.cmdExecutor.ExecuteLoad()
}

// handleError shows err as a transient status, or returns to the login
// screen when the session is no longer valid
func (m *Model) handleError(err error) tea.Cmd {
	if errors.Is(err, auth.ErrNotAuthenticated) {
		return m.endSession(auth.ReasonUnauthorized)
	}
	return m.setStatus(m.printer.Sprintf("status.error", err.Error()), true)
}

// endSession drops session data and shows the login form
func (m *Model) endSession(reason string) tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeLogin {
		return nil
	}
	m.state.Reset()
	m.deps.Search.ClearSearchTerm()
	_, modeCmd := m.inputHandler.ChangeMode(inputtypes.ModeLogin, m.inputContext())

	key := "status.session_expired"
	if reason == auth.ReasonUser {
		key = "status.logged_out"
	}
	return tea.Batch(modeCmd, m.setStatus(m.printer.Sprintf(key), reason != auth.ReasonUser))
}

// setStatus shows a message and schedules its removal
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	seq := m.state.SetStatus(msg, isError)
	return tea.Tick(m.deps.Config.StatusTimeout(), func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) setTheme(theme domain.Theme) tea.Cmd {
	m.theme = theme
	m.renderer.SetTheme(theme)
	if err := m.deps.Prefs.SetTheme(theme); err != nil {
		m.logger.Warn("save theme", zap.Error(err))
	}
	m.publish(eventbus.ThemeChangedEvent{Theme: theme})
	return m.setStatus(m.printer.Sprintf("status.theme", string(theme)), false)
}

func (m *Model) setLanguage(lang domain.Language) tea.Cmd {
	m.lang = lang
	m.printer = i18n.Printer(lang)
	m.keys = newKeyMap(m.printer)
	m.renderer.SetLanguage(lang)
	if err := m.deps.Prefs.SetLanguage(lang); err != nil {
		m.logger.Warn("save language", zap.Error(err))
	}
	m.publish(eventbus.LanguageChangedEvent{Language: lang})
	return m.setStatus(m.printer.Sprintf("status.language"), false)
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.deps.Bus != nil {
		m.deps.Bus.Publish(event)
	}
}

// showDetails returns a command that shows content in the ov pager
func (m *Model) showDetails(content string) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		if pager.program == nil {
			return detailsPagerMsg{err: errNoProgram}
		}
		// Stop reacting to keys while ov owns the terminal
		pager.program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		pager.program.Send(resumeRenderingMsg{})
		return detailsPagerMsg{err: err}
	}
}

func (m *Model) updateViewportHeight() {
	height := m.height - views.ChromeLines
	if height < 1 {
		height = 1
	}
	m.state.ViewportHeight = height
	m.state.EnsureVisible()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return m.printer.Sprintf("status.loading")
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Resource:       m.state.Resource,
		Counts:         map[domain.Resource]int{},
		Rows:           m.state.Rows,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Term:           m.state.Term,
		Username:       m.state.Username,
		Loading:        m.state.Loading,
		Loaded:         m.state.Loaded,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowHelp:       m.state.ShowHelp,
		ShortHelp:      m.help.View(m.keys),
	}
	for _, r := range domain.Resources {
		vs.Counts[r] = m.state.Data.Count(r)
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		vs.SearchInput = m.inputHandler.SearchInput().View()
	case inputtypes.ModeDeleteConfirm:
		_, vs.DeleteTarget = m.inputHandler.Confirm().Target()
	case inputtypes.ModeLogin:
		vs.Login = m.formView(m.inputHandler.Form(inputtypes.ModeLogin), "login.title", "login.hint")
	case inputtypes.ModeNewAdmin:
		vs.Form = m.formView(m.inputHandler.Form(inputtypes.ModeNewAdmin), "form.new_admin", "form.hint")
	}

	return m.renderer.Render(vs)
}

func (m *Model) formView(form *modes.FormMode, titleKey, hintKey string) *views.FormView {
	fv := &views.FormView{
		TitleKey: titleKey,
		HintKey:  hintKey,
		Focused:  form.Focused(),
		ErrorKey: m.state.FormError,
	}
	for _, f := range form.Fields() {
		fv.Labels = append(fv.Labels, f.Label)
	}
	for _, in := range form.Inputs() {
		fv.Inputs = append(fv.Inputs, in.View())
	}
	return fv
}
