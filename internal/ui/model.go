package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"procura/internal/config"
	"procura/internal/eventbus"
	"procura/internal/logic"
	"procura/internal/report"
	"procura/internal/ui/input"
	inputtypes "procura/internal/ui/input/types"
	"procura/internal/ui/pages"
	"procura/internal/ui/services/navigation"
	"procura/internal/ui/services/query"
	"procura/internal/ui/services/search"
	"procura/internal/ui/state"
	"procura/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState

	help help.Model

	// Services
	nav    *navigation.Service
	query  *query.Service
	search *search.Service
	data   logic.DataSource

	renderer     *views.Renderer
	inputHandler *input.Handler

	page          pages.View
	pendingDelete string // entity id awaiting confirmation

	pager Pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, data logic.DataSource, router logic.Router) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	nav := navigation.NewService(bus, router, navigation.DefaultMenu(), navigation.DefaultRoutes())
	nav.SetSidebarCollapsed(cfg.UISettings.SidebarCollapsed)

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		help:         help.New(),
		nav:          nav,
		query:        query.NewService(nav),
		search:       search.NewService(bus),
		data:         data,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}
	m.refresh()
	m.followActive()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// SetPager replaces the pager used for help and report export
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, &modelContext{m: m})

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

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager (%s) failed: %v", msg.kind, msg.err)
		}
		if msg.kind == pagerReport {
			m.bus.Publish(eventbus.ReportExportedEvent{Path: msg.path, Err: msg.err})
			if msg.err != nil {
				m.state.SetError(fmt.Sprintf("Export failed: %v", msg.err))
			} else {
				m.state.SetStatus("Report closed")
			}
		}

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			m.state.SetError(e.Message)
		}

	default:
		return m, m.inputHandler.Update(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	mode := m.inputHandler.CurrentMode()

	vs := views.ViewState{
		Width:  m.state.Width,
		Height: m.state.Height,
		Sidebar: views.SidebarState{
			Rows:      m.query.Rows(),
			Cursor:    m.state.SidebarCursor,
			Focused:   m.state.Focus == state.FocusSidebar,
			Collapsed: m.nav.SidebarCollapsed(),
			Width:     m.config.UISettings.SidebarWidth,
		},
		Page: views.PageState{
			Path:        m.nav.Path(),
			View:        m.page,
			Criteria:    m.search.Criteria(),
			Cursor:      m.state.ContentCursor,
			Focused:     m.state.Focus == state.FocusContent,
			ShowSummary: m.config.UISettings.ShowSummary,
		},
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		Suggestion:    m.state.Suggestion,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
		ShowHelp:      m.state.ShowHelp,
	}

	ti := m.inputHandler.TextInput()
	switch mode {
	case inputtypes.ModeFilter:
		vs.Page.Prompt = m.inputHandler.Prompt()
		if ti != nil {
			vs.Page.Input = ti.View()
		}
	case inputtypes.ModeGoto:
		vs.GotoPrompt = m.inputHandler.Prompt()
		if ti != nil {
			vs.GotoInput = ti.View()
		}
	case inputtypes.ModeConfirm:
		vs.ConfirmTarget = m.inputHandler.ConfirmTarget()
	}

	return m.renderer.Render(vs)
}

// refresh rebuilds the current page from the route and filter criteria
func (m *Model) refresh() {
	path := m.nav.Path()
	m.search.Mount(path)

	ctx := pages.Context{
		Path:     path,
		Title:    m.nav.Label(),
		Data:     m.data,
		Criteria: m.search.Criteria(),
		Currency: m.config.Currency,
	}
	v, err := pages.Build(ctx)
	if err != nil {
		m.state.SetError(err.Error())
	}

	before := m.search.Criteria()
	m.search.SetOptions(v.Options)
	if after := m.search.Criteria(); after != before {
		// The selected category disappeared from the page
		ctx.Criteria = after
		v, err = pages.Build(ctx)
		if err != nil {
			m.state.SetError(err.Error())
		}
	}

	m.page = v
	m.state.ContentCursor = state.ClampCursor(m.state.ContentCursor, len(v.Rows))
}

// navigate moves to path and reports unknown routes in the status bar
func (m *Model) navigate(path string) {
	path = logic.NormalizePath(path)
	m.state.ClearStatus()
	if path != m.nav.Path() {
		m.nav.Navigate(path)
		m.state.ContentCursor = 0
		m.refresh()
		m.followActive()
	}

	if !m.nav.Known(path) {
		m.state.SetError(fmt.Sprintf("No page at %s", path))
		if s, ok := m.nav.Suggest(path); ok {
			m.state.Suggestion = s
		}
	}
}

// followActive moves the sidebar cursor to the active row
func (m *Model) followActive() {
	if i := m.query.IndexOfActive(); i >= 0 {
		m.state.SidebarCursor = i
	}
}

func (m *Model) pageSize() int {
	if n := m.state.Height - 10; n > 1 {
		return n
	}
	return 1
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		if m.state.Focus == state.FocusSidebar {
			m.state.SidebarCursor = state.MoveCursor(m.state.SidebarCursor, m.query.GetMaxIndex()+1, m.pageSize(), a.Direction)
		} else {
			m.state.ContentCursor = state.MoveCursor(m.state.ContentCursor, len(m.page.Rows), m.pageSize(), a.Direction)
		}

	case inputtypes.ActivateAction:
		m.activate()

	case inputtypes.SwitchFocusAction:
		if m.state.Focus == state.FocusSidebar {
			m.state.Focus = state.FocusContent
		} else {
			m.state.Focus = state.FocusSidebar
			m.state.SidebarCursor = state.ClampCursor(m.state.SidebarCursor, m.query.GetMaxIndex()+1)
		}

	case inputtypes.ToggleSidebarAction:
		m.nav.ToggleSidebar()
		m.state.SidebarCursor = state.ClampCursor(m.state.SidebarCursor, m.query.GetMaxIndex()+1)

	case inputtypes.BackAction:
		m.state.ClearStatus()
		if !m.nav.Back() {
			m.state.SetStatus("No previous page")
			return nil
		}
		m.state.ContentCursor = 0
		m.refresh()
		m.followActive()

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeGoto:
			m.state.ClearStatus()
		case inputtypes.ModeConfirm:
			m.pendingDelete = m.currentID()
		}

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.search.SetText(a.Text)
			m.state.ContentCursor = 0
			m.refresh()
		}

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto && strings.TrimSpace(a.Text) != "" {
			m.navigate(strings.TrimSpace(a.Text))
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.search.SetText("")
			m.refresh()
		}

	case inputtypes.CycleCategoryAction:
		m.search.CycleCategory()
		m.state.ContentCursor = 0
		m.refresh()
		m.state.SetStatus(fmt.Sprintf("%s: %s", m.page.FilterLabel, m.search.Criteria().Category))

	case inputtypes.ClearFilterAction:
		m.search.Reset()
		m.refresh()

	case inputtypes.DeleteAction:
		id := m.pendingDelete
		m.pendingDelete = ""
		m.bus.Publish(eventbus.DeleteRequestedEvent{Path: m.nav.Path(), EntityID: id})
		m.state.SetStatus(fmt.Sprintf("Delete of %s is not available: nothing was written", a.Target))

	case inputtypes.ExportAction:
		return m.exportReport()

	case inputtypes.ToggleHelpAction:
		if m.pager != nil {
			return m.showInPager(pagerHelp, m.nav.Path(), RenderHelpContent(m.inputHandler.Keys()))
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) activate() {
	if m.state.Focus == state.FocusSidebar {
		info := m.query.GetIndexInfo(m.state.SidebarCursor)
		if info == nil {
			return
		}
		if info.Type == query.IndexTypeGroup {
			m.nav.Toggle(info.GroupName)
			m.cursorToGroup(info.GroupName)
			return
		}
		m.navigate(info.Path)
		return
	}

	c := m.state.ContentCursor
	if c < 0 || c >= len(m.page.Targets) || m.page.Targets[c] == "" {
		return
	}
	m.navigate(m.page.Targets[c])
}

// cursorToGroup keeps the sidebar cursor on a group header after rows shift
func (m *Model) cursorToGroup(name string) {
	for i, r := range m.query.Rows() {
		if r.Type == query.IndexTypeGroup && r.GroupName == name {
			m.state.SidebarCursor = i
			return
		}
	}
}

func (m *Model) currentID() string {
	c := m.state.ContentCursor
	if c < 0 || c >= len(m.page.IDs) {
		return ""
	}
	return m.page.IDs[c]
}

func (m *Model) exportReport() tea.Cmd {
	if m.page.Report == nil {
		return nil
	}
	if m.pager == nil {
		m.state.SetError("No pager available for export")
		return nil
	}
	content := report.Render(*m.page.Report, m.config.Currency, time.Now())
	return m.showInPager(pagerReport, m.nav.Path(), content)
}

// showInPager returns a command that runs the pager outside the render loop
func (m *Model) showInPager(kind, path, content string) tea.Cmd {
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{kind: kind, path: path, err: pager.Show(content)}
	}
}

// modelContext implements the input handler's Context over the model
type modelContext struct {
	m *Model
}

func (c *modelContext) SidebarFocused() bool {
	return c.m.state.Focus == state.FocusSidebar
}

func (c *modelContext) CanFilter() bool {
	return c.m.page.Filterable()
}

func (c *modelContext) CanDelete() bool {
	return c.m.page.Deletable && c.m.state.Focus == state.FocusContent && len(c.m.page.Rows) > 0
}

func (c *modelContext) CanExport() bool {
	return c.m.page.Report != nil
}

func (c *modelContext) FilterText() string {
	return c.m.search.Criteria().Text
}

func (c *modelContext) DeleteTarget() string {
	if !c.CanDelete() {
		return ""
	}
	cur := c.m.state.ContentCursor
	if cur < 0 || cur >= len(c.m.page.Rows) {
		return ""
	}
	row := c.m.page.Rows[cur]
	if len(row) > 2 {
		row = row[:2]
	}
	return strings.Join(row, " ")
}
