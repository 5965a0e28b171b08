// Package ui is the Bubble Tea adapter over the selection engine. It maps
// keys to engine calls and renders the rows the engine windows for it; the
// selection itself lives in a caller-owned store.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"advselect/internal/config"
	"advselect/internal/domain"
	"advselect/internal/engine"
	"advselect/internal/eventbus"
	"advselect/internal/logic"
	"advselect/internal/ui/handlers"
	"advselect/internal/ui/input"
	inputtypes "advselect/internal/ui/input/types"
	uilogic "advselect/internal/ui/logic"
	"advselect/internal/ui/state"
	"advselect/internal/ui/viewmodels"
	"advselect/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	session   *engine.Session
	catalog   logic.CatalogStore
	selection logic.SelectionStore
	reload    func()

	// UI-specific state not in AppState
	width     int
	height    int
	showHelp  bool // inline help when the pager is unavailable
	statusSeq int

	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
	log     *logrus.Entry
}

// NewModel creates a new UI model. The session must use a row height of
// one terminal line. bus may be nil.
func NewModel(cfg *config.Config, session *engine.Session, catalogStore logic.CatalogStore,
	selection logic.SelectionStore, bus eventbus.EventBus) *Model {
	appState := state.NewAppState()
	appState.CatalogVersion = catalogStore.Version()
	appState.ItemCount = len(catalogStore.Items())

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		session:      session,
		catalog:      catalogStore,
		selection:    selection,
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(),
		log:          logrus.WithField("component", "ui"),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.replaceCatalog)
	m.viewModel = viewmodels.NewViewModel(appState, cfg, textinput.New())

	m.state.ViewportHeight = session.Options().ViewportHeight
	m.syncNavigator()
	m.state.Cursor = m.navigator.First()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// SetReload installs the catalog reload hook bound to the r key
func (m *Model) SetReload(fn func()) {
	m.reload = fn
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "q", "?":
				m.showHelp = false
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State: m.state,
			View:  m.evaluate(),
		}

		oldMode := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)
		if oldMode != inputtypes.ModeSearch && m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.state.SearchBackup = m.session.Query()
		}

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		hint := lipgloss.NewStyle().Faint(true).Render("Press Esc to close")
		return lipgloss.NewStyle().Padding(1, 2).Render(m.helpRenderer.RenderHelpContent() + "\n\n" + hint)
	}

	m.viewModel.SetDimensions(m.width, m.height)
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInputMode(viewmodels.InputModeSearch, m.inputHandler.Prompt())
		m.viewModel.UpdateTextInput(*ti)
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeNormal, "")
	}

	selection := m.selection.Get()
	view := m.session.Evaluate(selection)
	preview := m.session.Resolve(selection, m.config.UI.PreviewLimit)

	return m.renderer.Render(m.viewModel.BuildViewState(view, preview, len(m.session.Catalog())))
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleAction:
		id := a.ID
		if id == "" {
			item, ok := engine.ItemAt(m.evaluate().Rows, m.state.Cursor)
			if !ok {
				return nil
			}
			id = item.ID
		}
		m.selection.Set(m.session.Toggle(m.selection.Get(), id))

	case inputtypes.ToggleAllFilteredAction:
		m.selection.Set(m.session.ToggleAllFiltered(m.selection.Get()))

	case inputtypes.ClearAllAction:
		m.selection.Set(m.session.ClearAll())

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.setQuery(a.Text)
		m.state.SearchBackup = ""

	case inputtypes.CancelTextAction:
		m.setQuery(m.state.SearchBackup)
		m.state.SearchBackup = ""

	case inputtypes.ReloadAction:
		if m.reload != nil {
			m.reload()
		}

	case inputtypes.ToggleHelpAction:
		return m.showHelpPager()

	case inputtypes.QuitAction:
		return func() tea.Msg { return quitMsg{} }
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		m.viewModel.SetStatusError(m.eventHandler.LastWasError())
		return m, tea.Batch(cmd, m.expireStatus())

	case tickMsg, handlers.TickMsg:
		// Keep the spinner going only while a load is in flight
		if m.state.Loading && !m.state.InPagerMode {
			return m, tick()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("help pager failed, showing inline help")
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
			m.viewModel.SetStatusError(false)
		}
		return m, nil

	case quitMsg:
		m.log.WithField("selected", m.selection.Count()).Info("quitting")
		return m, tea.Quit
	}

	return m, nil
}

// Selection returns the current controlled selection
func (m *Model) Selection() []string {
	return m.selection.Get()
}

func (m *Model) evaluate() engine.View {
	return m.session.Evaluate(m.selection.Get())
}

func (m *Model) syncNavigator() engine.View {
	view := m.evaluate()
	m.navigator.UpdateState(view.Rows, m.state.ViewportHeight)
	return view
}

func (m *Model) navigate(direction string) {
	view := m.syncNavigator()
	cursor := m.state.Cursor

	switch direction {
	case "up":
		cursor = m.navigator.Up(cursor)
	case "down":
		cursor = m.navigator.Down(cursor)
	case "pageup":
		cursor = m.navigator.PageUp(cursor)
	case "pagedown":
		cursor = m.navigator.PageDown(cursor)
	case "home":
		cursor = m.navigator.First()
		m.session.SetScrollTop(0)
	case "end":
		cursor = m.navigator.Last()
	}

	m.state.Cursor = cursor
	m.revealCursor(view.Rows)
}

// revealCursor scrolls the cursor into view. The first item of a group
// brings its header along when both fit.
func (m *Model) revealCursor(rows []domain.Row) {
	cursor := m.state.Cursor
	if cursor < 0 || cursor >= len(rows) {
		return
	}
	if cursor > 0 {
		if _, ok := rows[cursor-1].(domain.GroupHeader); ok {
			m.session.Reveal(cursor - 1)
		}
	}
	m.session.Reveal(cursor)
}

// setQuery applies a new query. The session resets its scroll offset, so
// the cursor goes back to the first match.
func (m *Model) setQuery(query string) {
	if !m.session.SetQuery(query) {
		return
	}
	view := m.syncNavigator()
	m.state.Cursor = m.navigator.First()

	if m.bus != nil {
		m.bus.Publish(eventbus.QueryChangedEvent{Query: query, MatchCount: len(view.Filtered)})
	}
}

// replaceCatalog swaps a freshly loaded catalog into the store and session
func (m *Model) replaceCatalog(items []domain.Item) {
	version := m.catalog.Replace(items)
	m.session.ReplaceCatalog(items)
	m.state.FinishLoading(version, len(items))

	view := m.syncNavigator()
	m.state.Cursor = m.navigator.Clamp(m.state.Cursor)
	m.revealCursor(view.Rows)
}

func (m *Model) updateViewportHeight() {
	height := max(1, m.height-views.ChromeHeight)
	if err := m.session.SetViewportHeight(height); err != nil {
		m.log.WithError(err).Warn("viewport resize rejected")
		return
	}
	m.state.ViewportHeight = height

	view := m.syncNavigator()
	m.revealCursor(view.Rows)
}

// showHelpPager opens the help in the ov pager, or inline when no program
// is attached
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent()
	if m.program == nil {
		m.showHelp = true
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// expireStatus clears the current status message after a delay unless a
// newer one replaced it
func (m *Model) expireStatus() tea.Cmd {
	if m.state.StatusMessage == "" || m.state.Loading {
		return nil
	}
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
