package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/booking"
	"flightbook/internal/config"
	"flightbook/internal/domain"
	"flightbook/internal/search"
	"flightbook/internal/ui/commands"
	"flightbook/internal/ui/handlers"
	"flightbook/internal/ui/input"
	inputtypes "flightbook/internal/ui/input/types"
	"flightbook/internal/ui/state"
	"flightbook/internal/ui/views"
)

// ReadyMarker is rendered after the first frame when running under the e2e harness
const ReadyMarker = "__READY__"

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // UI-only state
	engine *booking.Engine // booking state

	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode
	e2e         bool

	// Handlers
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	cmdExecutor  *commands.Executor
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// Option configures a Model
type Option func(*Model)

// WithE2E renders the ready marker for the pty test harness
func WithE2E(enabled bool) Option {
	return func(m *Model) { m.e2e = enabled }
}

// NewModel creates a new UI model. Searches run with ctx and stop when it
// is cancelled.
func NewModel(ctx context.Context, cfg *config.Config, engine *booking.Engine, searcher search.Searcher, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		config:       cfg,
		state:        appState,
		engine:       engine,
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(engine.Criteria()),
		helpOps:      NewHelpOps(nil),
	}
	m.spinner.Style = m.renderer.Styles().Spinner
	m.cmdExecutor = commands.NewExecutor(ctx, appState, engine, searcher)
	m.eventHandler = handlers.NewEventHandler(appState)

	for _, opt := range opts {
		opt(m)
	}

	m.inputHandler.SyncFocus(appState.Focus)
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.inputHandler.SyncFocus(m.state.Focus)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		// Handle the help popup first
		if m.state.ShowHelp {
			return m, m.handleHelpKey(msg)
		}

		ctx := input.NewModelContext(m.state, m.engine)
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if focusCmd := m.inputHandler.SyncFocus(m.state.Focus); focusCmd != nil {
			cmds = append(cmds, focusCmd)
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

func (m *Model) handleHelpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "?", "q", "f1":
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case "j", "down":
		m.state.HelpScrollOffset++
	case "k", "up":
		if m.state.HelpScrollOffset > 0 {
			m.state.HelpScrollOffset--
		}
	case "ctrl+o":
		m.state.ShowHelp = false
		return m.openHelpPager()
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.FocusNextAction:
		m.state.FocusNext(m.engine.Criteria().IsRoundtrip)

	case inputtypes.FocusPrevAction:
		m.state.FocusPrev(m.engine.Criteria().IsRoundtrip)

	case inputtypes.ToggleRoundtripAction:
		return m.cmdExecutor.ExecuteToggleRoundtrip()

	case inputtypes.EditTextAction:
		var value interface{} = a.Text
		if a.Field == domain.FieldPassengerCount {
			value = input.ParsePassengers(a.Text)
		}
		return m.cmdExecutor.ExecuteEditField(a.Field, value)

	case inputtypes.SubmitAction:
		cmd := m.cmdExecutor.ExecuteSubmit()
		if cmd == nil {
			return nil
		}
		m.inputHandler.ChangeMode(inputtypes.ModeForm, input.NewModelContext(m.state, m.engine))
		return tea.Batch(cmd, m.spinner.Tick)

	case inputtypes.MoveCursorAction:
		m.state.MoveCursor(a.Delta, input.NewModelContext(m.state, m.engine).ResultCount())

	case inputtypes.SelectFlightAction:
		return m.cmdExecutor.ExecuteSelect(a.ID)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.OpenHelpPagerAction:
		return m.openHelpPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) openHelpPager() tea.Cmd {
	if m.program == nil {
		m.state.StatusMessage = "Pager unavailable"
		return nil
	}
	return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.SearchResultMsg:
		return m, m.applySearchResult(msg)

	case spinner.TickMsg:
		// Stop ticking once the search is over
		if m.engine.State().Status() != booking.StatusSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Error showing help pager: %v", msg.err)
			m.state.StatusMessage = fmt.Sprintf("Pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Remaining messages drive the cursor blink of the focused input
	return m, m.inputHandler.Update(msg)
}

// applySearchResult resolves the engine with a provider response; stale
// responses are dropped by the engine
func (m *Model) applySearchResult(msg commands.SearchResultMsg) tea.Cmd {
	if !m.engine.Resolve(msg.Seq, msg.Flights, msg.Err) {
		return nil
	}

	ctx := input.NewModelContext(m.state, m.engine)
	m.state.ResultCursor = 0
	if ctx.ResultCount() > 0 {
		m.state.StatusMessage = foundMessage(ctx.ResultCount())
		m.inputHandler.ChangeMode(inputtypes.ModeResults, ctx)
		return m.inputHandler.SyncFocus(m.state.Focus)
	}
	m.state.StatusMessage = ""
	return nil
}

func foundMessage(n int) string {
	if n == 1 {
		return "Found 1 flight"
	}
	return fmt.Sprintf("Found %d flights", n)
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	formMode := m.inputHandler.CurrentMode() == inputtypes.ModeForm
	keys := resultsKeys
	if formMode {
		keys = formKeys
	}

	inputs := make(map[domain.Field]string, len(domain.Fields))
	for _, f := range domain.Fields {
		if f.IsText() {
			inputs[f] = m.inputHandler.InputView(f)
		}
	}

	vs := views.ViewState{
		Width:          m.state.Width,
		Height:         m.state.Height,
		Criteria:       m.engine.Criteria(),
		Inputs:         inputs,
		Focus:          m.state.Focus,
		FormMode:       formMode,
		Booking:        m.engine.State(),
		Summary:        m.engine.Summary(),
		Cursor:         m.state.ResultCursor,
		Spinner:        m.spinner.View(),
		StatusMessage:  m.state.StatusMessage,
		HelpFooter:     m.help.View(keys),
		CurrencySymbol: m.config.UI.CurrencySymbol,
		ShowHelp:       m.state.ShowHelp,
	}
	if vs.ShowHelp {
		vs.HelpContent = m.helpRenderer.renderHelpContent(m.state.Height, m.state.HelpScrollOffset)
	}

	out := m.renderer.Render(vs)
	if m.e2e {
		out += "\n" + ReadyMarker
	}
	return out
}
