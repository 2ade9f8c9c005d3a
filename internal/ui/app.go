package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/codemarket/internal/market"
	"github.com/five82/codemarket/internal/prefs"
	"github.com/five82/codemarket/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewMarket View = iota
	ViewActivity
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Present   market.PresentOptions
	ThemeName string
	Filter    string
	PrefsPath string
	LogPath   string
	Logger    zerolog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	bridge    *dialogBridge
	present   market.PresentOptions
	prefsPath string
	logPath   string
	log       zerolog.Logger

	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	snapshot state.Snapshot
	filter   Filter
	cursor   int

	detailViewport viewport.Model
	detailFor      market.Selection

	activityViewport viewport.Model
	activity         activityState

	form editorForm

	// dialog is the modal awaiting an answer, if any.
	dialog *dialogRequest
	// busy is set while a prompting operation runs in a command goroutine.
	busy     bool
	showHelp bool
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = DefaultThemeName
	}

	filter := FilterAll
	if prefs.ValidFilter(opts.Filter) {
		filter = Filter(opts.Filter)
	}

	m := Model{
		ctx:       ctx,
		store:     opts.Store,
		bridge:    newDialogBridge(ctx),
		present:   opts.Present,
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		log:       opts.Logger.With().Str("component", "ui").Logger(),
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		filter:    filter,
	}
	if m.present.Currency == "" {
		m.present.Currency = market.DefaultCurrency
	}
	if m.store != nil {
		m.snapshot = m.store.Snapshot()
	}
	m.initDetailViewport()
	m.initActivityViewport()
	m.syncCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.bridge.listen()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDetailViewport()
		m.updateActivityViewport()
		return m, nil

	case dialogMsg:
		req := dialogRequest(msg)
		m.dialog = &req
		return m, m.bridge.listen()

	case dispatchedMsg:
		m.busy = false
		m.applySnapshot(msg.snapshot)
		return m, m.refreshActivity()

	case activityMsg:
		m.handleActivity(msg)
		return m, nil

	case activityTickMsg:
		if m.currentView != ViewActivity || msg.ticker != m.activity.ticker {
			return m, nil
		}
		return m, tea.Batch(m.refreshActivity(), activityTickCmd(m.activity.ticker))
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.dialog != nil {
		return m.renderDialog()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.snapshot.State.FormVisible {
		return m.renderForm()
	}
	return m.renderMain()
}

// handleKey routes a key to whichever layer is on top: dialog, help, form,
// then the current view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.dialog != nil {
		return m.handleDialogKey(msg)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Nothing but dialogs and quitting while an operation is in flight.
	if m.busy {
		return m, nil
	}

	if m.snapshot.State.FormVisible {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateDetailViewport()
		m.activity.version++
		m.updateActivityViewport()
		return m, nil

	case key.Matches(msg, m.keys.Activity) && m.currentView == ViewMarket:
		m.currentView = ViewActivity
		m.activity.follow = true
		m.activity.ticker++
		return m, tea.Batch(m.refreshActivity(), activityTickCmd(m.activity.ticker))
	}

	if m.currentView == ViewActivity {
		return m.handleActivityKey(msg)
	}
	return m.handleMarketKey(msg)
}

func (m Model) handleMarketKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(m.stepCursor(1))
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(m.stepCursor(-1))
	case key.Matches(msg, m.keys.Top):
		return m.moveCursor(m.edgeCursor(1))
	case key.Matches(msg, m.keys.Bottom):
		return m.moveCursor(m.edgeCursor(-1))

	case key.Matches(msg, m.keys.Select):
		rows := m.visibleListings()
		if m.cursor < len(rows) && m.selectable(rows[m.cursor]) {
			return m.dispatch(market.Select{ID: rows[m.cursor].ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		return m.dispatch(market.Deselect{})

	case key.Matches(msg, m.keys.HalfPageDown):
		m.detailViewport.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.HalfPageUp):
		m.detailViewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		next, cmd := m.dispatch(market.OpenCreateForm{})
		nm := next.(Model)
		if nm.snapshot.State.FormVisible {
			nm.form = newEditorForm(market.BlankFields(), false)
		}
		return nm, cmd

	case key.Matches(msg, m.keys.Edit):
		next, cmd := m.dispatch(market.OpenEditForm{})
		nm := next.(Model)
		if l, ok := nm.snapshot.State.SelectedListing(); ok && nm.snapshot.State.EditMode {
			nm.form = newEditorForm(market.FieldsFor(l), true)
		}
		return nm, cmd

	case key.Matches(msg, m.keys.Delete):
		return m.dispatch(market.Delete{})

	case key.Matches(msg, m.keys.Buy):
		return m.dispatch(market.Purchase{})

	case key.Matches(msg, m.keys.CycleFilter):
		m.filter = m.filter.next()
		m.savePrefs()
		return m.reconcileFilter()
	}
	return m, nil
}

// moveCursor puts the cursor on row idx and selects that listing.
func (m Model) moveCursor(idx int) (tea.Model, tea.Cmd) {
	rows := m.visibleListings()
	if idx < 0 || idx >= len(rows) {
		return m, nil
	}
	m.cursor = idx
	return m.dispatch(market.Select{ID: rows[idx].ID})
}

// reconcileFilter keeps the selection on a visible row after the filter
// changes: the first selectable row is selected, or nothing when none is.
func (m Model) reconcileFilter() (tea.Model, tea.Cmd) {
	rows := m.visibleListings()
	if id, ok := m.snapshot.State.Selected.ID(); ok {
		for _, l := range rows {
			if l.ID == id {
				m.syncCursor()
				return m, nil
			}
		}
	}
	m.cursor = 0
	if idx := m.edgeCursor(1); idx >= 0 {
		return m.moveCursor(idx)
	}
	return m.dispatch(market.Deselect{})
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		return m.dispatch(market.CloseForm{})

	case key.Matches(msg, m.keys.Submit):
		draft, err := market.ParseDraft(m.form.fields())
		if err != nil {
			m.log.Debug().Err(err).Bool("edit", m.form.edit).Msg("form rejected")
			m.dialog = &dialogRequest{kind: dialogAlert, text: market.FormMessage(err)}
			return m, nil
		}
		if m.form.edit {
			return m.dispatch(market.Update{Draft: draft})
		}
		return m.dispatch(market.Create{Draft: draft})
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg, m.keys)
	return m, cmd
}

// dispatch runs a on the store. Prompting actions run in a command so their
// dialogs can be answered; the rest complete before dispatch returns.
func (m Model) dispatch(a market.Action) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	if market.Prompts(a) {
		m.busy = true
		return m, dispatchCmd(m.store, a, m.bridge)
	}
	m.applySnapshot(m.store.Dispatch(a, m.bridge))
	return m, m.refreshActivity()
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	m.syncCursor()
	m.updateDetailViewport()
}

func (m Model) refreshActivity() tea.Cmd {
	if m.currentView != ViewActivity {
		return nil
	}
	return loadActivityCmd(m.logPath)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Filter: string(m.filter)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn().Err(err).Str("path", m.prefsPath).Msg("save prefs failed")
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.bridge.close()
	return m, tea.Quit
}

// renderMain renders the header, command bar, content and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	if m.currentView == ViewActivity {
		b.WriteString(m.renderActivity())
	} else {
		b.WriteString(m.renderMarket())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderMarket renders the list and detail panes side by side.
func (m Model) renderMarket() string {
	listWidth := m.listPaneWidth()
	detailWidth, height := m.detailPaneSize()

	listFocused := m.snapshot.State.Selected.IsNone()
	listBg := m.theme.SurfaceAlt
	if listFocused {
		listBg = m.theme.FocusBg
	}
	list := m.renderTitledBox(m.listTitle(), m.renderList(listWidth-2, height-2, listBg), listWidth, height, listFocused)

	detailTitle := "Details"
	if l, ok := m.snapshot.State.SelectedListing(); ok {
		detailTitle = l.Title
	}
	detail := m.renderTitledBox(detailTitle, m.padDetail(m.detailViewport.View()), detailWidth, height, !listFocused)

	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// padDetail indents the detail viewport by one column inside its box.
func (m Model) padDetail(content string) string {
	bg := NewBgStyle(m.detailBg())
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = bg.Space() + line
	}
	return strings.Join(lines, "\n")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	m.bridge.close()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
