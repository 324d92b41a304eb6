package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"luxegems/internal/config"
	"luxegems/internal/domain"
	"luxegems/internal/eventbus"
	"luxegems/internal/inventory"
	"luxegems/internal/ui/commands"
	"luxegems/internal/ui/input"
	inputtypes "luxegems/internal/ui/input/types"
	"luxegems/internal/ui/logic"
	"luxegems/internal/ui/router"
	"luxegems/internal/ui/state"
	"luxegems/internal/ui/viewmodels"
	"luxegems/internal/ui/views"
)

// statusTimeout is how long transient status messages stay on screen
const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  state.AppState // replaced wholesale on every transition

	// UI-specific state not in AppState
	width       int
	height      int
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	fetcher      *commands.FetchController
	router       *router.Router
	navigator    *logic.Navigator
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	help         *HelpRenderer
	pager        *PagerOps
}

// NewModel creates a new UI model. Requests issued by the model are bound
// to ctx; cancelling it aborts everything in flight.
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, lister inventory.Lister) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		spinner:      sp,
		fetcher:      commands.NewFetchController(ctx, lister, bus),
		router:       router.New(bus),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.ShowImageURLs),
		viewModel:    viewmodels.NewViewModel(cfg),
		inputHandler: input.New(),
		help:         NewHelpRenderer(),
		pager:        NewPagerOps(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// State returns the current snapshot
func (m *Model) State() state.AppState {
	return m.state
}

// Route returns the page being shown
func (m *Model) Route() router.Route {
	return m.router.Current()
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init fetches the unfiltered listing and starts the spinner
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), m.spinner.Tick)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.navigator.UpdateLayout(m.viewModel.Columns(), views.VisibleRows(msg.Height-12))
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.handleKey(msg)

	case commands.ItemsFetchedMsg:
		next, _ := m.fetcher.Reconcile(m.state.Fetch, msg)
		m.state = m.state.WithFetch(next)
		return m, nil

	case spinner.TickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, inputCmd := m.inputHandler.HandleKey(msg, m.inputContext())

	cmds := []tea.Cmd{inputCmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	m.syncInputView()
	return tea.Batch(cmds...)
}

// inputContext exposes the current snapshot to the input modes
func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:      m.state,
		Cols:       m.navigator.Columns(),
		Categories: m.config.Categories,
		Materials:  m.config.Materials,
	}
}

// syncInputView mirrors the input handler into the view model
func (m *Model) syncInputView() {
	mode := m.inputHandler.CurrentMode()
	m.viewModel.SetInputMode(mode, m.inputHandler.TextInput())
	if choice := m.inputHandler.Choice(); choice != nil {
		m.viewModel.SetPicker(choice.Field(), choice.Options(), choice.CurrentIndex())
	} else {
		m.viewModel.SetPicker("", nil, 0)
	}
	m.viewModel.SetRoute(m.router.Current())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		target := m.navigator.Target(m.state.SelectedIndex, len(m.state.Fetch.Items), a.Direction)
		m.state = m.state.MoveTo(target)

	case inputtypes.UpdateTextAction:
		return m.applyFilter(domain.FilterSearch, a.Text)

	case inputtypes.SetFilterAction:
		return m.applyFilter(a.Field, a.Value)

	case inputtypes.ClearFiltersAction:
		next, changed := m.state.ReplaceFilters(domain.ClearFilters())
		m.state = next
		if changed {
			log.Printf("Filters cleared")
			m.publishFilters()
			return m.startFetch()
		}

	case inputtypes.RefetchAction:
		return m.startFetch()

	case inputtypes.UpdateChoiceAction:
		// The picker is re-read from the input handler after every key

	case inputtypes.OpenItemAction:
		m.router.Navigate(router.Item(a.ItemID))

	case inputtypes.OpenLoginAction:
		m.router.Navigate(router.Login())

	case inputtypes.BackAction:
		if !m.router.Back() {
			m.router.Navigate(router.Catalog())
		}

	case inputtypes.OpenPagerAction:
		id := a.ItemID
		if route := m.router.Current(); route.Page == router.PageItem {
			id = route.ItemID
		}
		item, ok := m.state.FindItem(id)
		if !ok {
			return m.setStatus("Item is no longer in the listing")
		}
		return m.openPager("item "+item.ItemCode, m.help.RenderItemSheet(item))

	case inputtypes.ToggleHelpAction:
		return m.openPager("help", m.help.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// applyFilter replaces one filter dimension and fetches when the
// snapshot actually changed
func (m *Model) applyFilter(field domain.FilterField, value string) tea.Cmd {
	next, changed := m.state.SetFilter(field, value)
	if !changed {
		return nil
	}
	m.state = next
	m.publishFilters()
	return m.startFetch()
}

func (m *Model) publishFilters() {
	if m.bus != nil {
		m.bus.Publish(eventbus.FiltersChangedEvent{Filters: m.state.Filters})
	}
}

// startFetch issues a listing request for the current filters
func (m *Model) startFetch() tea.Cmd {
	next, cmd := m.fetcher.Start(m.state.Fetch, m.state.Filters)
	m.state = m.state.WithFetch(next)
	return cmd
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state = m.state.WithStatus(msg)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// openPager returns a command that shows content using ov pager
func (m *Model) openPager(what, content string) tea.Cmd {
	if !m.pager.Available() {
		log.Printf("Pager unavailable for %s", what)
		return nil
	}
	program := m.pager.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return pagerMsg{what: what, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Pager for %s failed: %v", msg.what, msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case clearStatusMsg:
		m.state = m.state.WithStatus("")
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetRoute(m.router.Current())
	return m.renderer.Render(m.viewModel.BuildViewState(m.state))
}
