package furrow

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"furrow/board"
	"furrow/detail"
	nt "furrow/entity"
	"furrow/filter"
	"furrow/jobspanel"
	"furrow/message"
	"furrow/style"
	"furrow/wizardpanel"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the job browser.
type Model struct {
	Store      Store
	Layout     *Layout
	LayoutPath string // reloaded with "r" when set

	// Filters is the applied set; every change re-queries the store.
	Filters nt.Set

	CurrentScreen Screen

	JobsPanel   jobspanel.Panel
	DetailPanel detail.Panel
	FilterPanel filter.Panel
	WizardPanel wizardpanel.Panel

	Width  int
	Height int

	errorString  string
	statusString string
	querySeq     int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a new bt model.
func NewModel(ctx context.Context, store Store, layout *Layout, lgr nt.Logger) (model Model, err error) {

	if layout == nil {
		layout = DefaultLayout()
	}

	filterPanel, err := filter.NewPanel(ctx, layout.Filters, lgr)
	if err != nil {
		return
	}
	wizardPanel, err := wizardpanel.NewPanel()
	if err != nil {
		return
	}

	model = Model{
		Store:         store,
		Layout:        layout,
		Filters:       layout.Set(),
		CurrentScreen: ListScreen,
		JobsPanel:     jobspanel.NewPanel(layout.Columns),
		DetailPanel:   detail.NewPanel(),
		FilterPanel:   filterPanel,
		WizardPanel:   wizardPanel,
		ctx:           ctx,
		logger:        lgr,
	}
	return
}

func (m Model) Init() tea.Cmd {
	return m.query(m.Filters)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case jobspanel.JobsMsg:
		if msg.Seq != m.querySeq {
			m.logger.Info(m.ctx, "dropping stale jobs", "seq", msg.Seq, "latest", m.querySeq)
			return m, nil
		}
		m.JobsPanel, _ = m.JobsPanel.Update(msg)
		return m, nil

	case message.SetFilterMsg:
		layout := *m.Layout
		layout.Filters = m.FilterPanel.Rows()
		m.Layout = &layout
		m.Filters = msg.Set
		m.CurrentScreen = ListScreen
		m.querySeq++
		return m, m.query(m.Filters)

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.StatusMsg:
		m.statusString = msg.Text
		return m, nil

	case wizardpanel.SubmittedMsg:
		app := msg.Application
		m.logger.Info(m.ctx, "application submitted",
			"business_type", app.BusinessType, "company", app.CompanyName, "expertise", app.Expertise)
		m.statusString = fmt.Sprintf("application submitted for %s", app.CompanyName)
		m.CurrentScreen = ListScreen
		wizardPanel, err := wizardpanel.NewPanel()
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		m.WizardPanel = wizardPanel
		return m, nil

	case layoutMsg:
		filterPanel, err := m.newFilterPanel(msg.layout.Filters)
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		m.Layout = msg.layout
		m.Filters = msg.layout.Set()
		m.JobsPanel = jobspanel.NewPanel(msg.layout.Columns)
		m.FilterPanel = filterPanel
		m.JobsPanel, _ = m.JobsPanel.Update(jobspanel.SizeMsg{Width: m.Width, Height: m.Height - footerHeight})
		m.statusString = "layout reloaded"
		m.querySeq++
		return m, m.query(m.Filters)

	case board.PieceMsg:
		return m.updateScreen(msg)

	case tea.KeyPressMsg:
		m.errorString = ""
		m.statusString = ""

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.CurrentScreen == ListScreen {
				return m, tea.Quit
			}
			if m.CurrentScreen == FilterScreen {
				// discard unapplied edits
				filterPanel, err := m.newFilterPanel(m.Layout.Filters)
				if err != nil {
					return m, message.ErrorCmd(err)
				}
				m.FilterPanel = filterPanel
			}
			m.CurrentScreen = ListScreen
			return m, nil
		}

		if m.CurrentScreen == ListScreen {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "f":
				m.CurrentScreen = FilterScreen
				return m, nil
			case "w":
				m.CurrentScreen = WizardScreen
				return m, nil
			case "r":
				return m, m.reloadLayout()
			case "enter", "right", "l":
				return m.showDetail(), nil
			}
		}

		if m.CurrentScreen == DetailScreen {
			switch msg.String() {
			case "q", "left", "h":
				m.CurrentScreen = ListScreen
				return m, nil
			}
		}
		return m.updateScreen(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		height := msg.Height - footerHeight
		m.JobsPanel, _ = m.JobsPanel.Update(jobspanel.SizeMsg{Width: msg.Width, Height: height})
		m.DetailPanel, _ = m.DetailPanel.Update(detail.SizeMsg{Width: msg.Width, Height: height})
		m.FilterPanel, _ = m.FilterPanel.Update(filter.SizeMsg{Width: msg.Width, Height: height})
		m.WizardPanel, _ = m.WizardPanel.Update(wizardpanel.SizeMsg{Width: msg.Width, Height: height})
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	switch m.CurrentScreen {
	case DetailScreen:
		canvas.Compose(lipgloss.NewLayer("screen", m.DetailPanel.Render()))
	case WizardScreen:
		canvas.Compose(lipgloss.NewLayer("screen", m.WizardPanel.Render()))
	case FilterScreen:
		x, y := m.FilterPanel.Offset()
		canvas.Compose(lipgloss.NewLayer("screen", m.JobsPanel.Render()))
		canvas.Compose(lipgloss.NewLayer("filter", m.FilterPanel.Render()).X(x).Y(y))
	default:
		canvas.Compose(lipgloss.NewLayer("screen", m.JobsPanel.Render()))
	}

	footerLayer := lipgloss.NewLayer("footer", m.footer()).Y(m.Height - footerHeight)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// updateScreen hands msg to the current screen's panel
func (m Model) updateScreen(msg tea.Msg) (Model, tea.Cmd) {

	var cmd tea.Cmd
	switch m.CurrentScreen {
	case DetailScreen:
		m.DetailPanel, cmd = m.DetailPanel.Update(msg)
	case FilterScreen:
		m.FilterPanel, cmd = m.FilterPanel.Update(msg)
	case WizardScreen:
		m.WizardPanel, cmd = m.WizardPanel.Update(msg)
	default:
		m.JobsPanel, cmd = m.JobsPanel.Update(msg)
	}
	return m, cmd
}

// showDetail switches to the selected job's detail, if there is one
func (m Model) showDetail() Model {

	job, ok := m.JobsPanel.Job()
	if !ok {
		return m
	}

	m.DetailPanel, _ = m.DetailPanel.Update(detail.JobMsg{Job: job})
	m.CurrentScreen = DetailScreen
	return m
}

func (m Model) newFilterPanel(rows []filter.Row) (pnl filter.Panel, err error) {

	pnl, err = filter.NewPanel(m.ctx, rows, m.logger)
	if err != nil {
		return
	}
	pnl, _ = pnl.Update(filter.SizeMsg{Width: m.Width, Height: m.Height - footerHeight})
	return
}

func (m Model) footer() string {

	switch {
	case m.errorString != "":
		return style.ErrorStyle.Render(m.errorString)
	case m.statusString != "":
		return style.MutedStyle.Render(m.statusString)
	}

	left := fmt.Sprintf("%d/%d  %d filters", m.JobsPanel.Selected+1, len(m.JobsPanel.Jobs()), len(m.Filters))
	if len(m.JobsPanel.Jobs()) == 0 {
		left = fmt.Sprintf("0/0  %d filters", len(m.Filters))
	}
	right := fmt.Sprintf("%s  enter: detail  f: filter  w: upgrade  q: quit", m.Store.Name())

	return RenderFooter(left, right, m.Width)
}
