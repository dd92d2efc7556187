// Package app hosts the Bubble Tea program for the roster dashboard.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/roster/pkg/query"
	"tableflip.dev/roster/pkg/roster"
	"tableflip.dev/roster/pkg/source"
	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/components/detailcard"
	"tableflip.dev/roster/pkg/tui/components/gridview"
	"tableflip.dev/roster/pkg/tui/components/statusbar"
	"tableflip.dev/roster/pkg/tui/components/studentform"
	"tableflip.dev/roster/pkg/tui/components/tileview"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/tui/theme"
	"tableflip.dev/roster/pkg/viewstate"
)

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

type loadedMsg struct {
	students []student.Student
}

type loadFailedMsg struct {
	err error
}

// Model is the root Bubble Tea model. It owns the store, the pipeline cache
// and the view state, and routes input to the active component.
type Model struct {
	src    source.Source
	ctx    context.Context
	cancel context.CancelFunc

	roster *roster.Roster
	cache  query.Cache
	state  viewstate.State

	phase   phase
	loadErr error

	grid   *gridview.Model
	tiles  *tileview.Model
	detail *detailcard.Model
	form   *studentform.Model
	bar    *statusbar.Model
	theme  theme.Theme

	termWidth  int
	termHeight int
}

// New constructs the root model around the given data source.
func New(src source.Source, pageSize int) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		src:    src,
		ctx:    ctx,
		cancel: cancel,
		roster: roster.New(),
		state:  viewstate.New(pageSize),
		phase:  phaseLoading,
		grid:   gridview.NewModel(),
		tiles:  tileview.NewModel(),
		detail: detailcard.NewModel(),
		bar:    statusbar.NewModel(),
		theme:  theme.Default(),
	}
}

// Init kicks off the initial load.
func (m *Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *Model) loadCmd() tea.Cmd {
	src := m.src
	ctx := m.ctx
	return func() tea.Msg {
		students, err := src.Load(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{students: students}
	}
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.applySizes(msg.Width, msg.Height)
		return m, nil

	case loadedMsg:
		m.roster.Reset(msg.students)
		m.phase = phaseReady
		m.loadErr = nil
		m.refresh()
		return m, nil

	case loadFailedMsg:
		m.phase = phaseFailed
		m.loadErr = msg.err
		return m, nil

	case events.StudentSelectMsg:
		m.openDetail(msg.Student.ID)
		return m, nil

	case events.FormSubmitMsg:
		return m, m.applyForm(msg)

	case events.FormCancelMsg:
		m.form = nil
		return m, nil

	case events.StudentChangeMsg:
		// store already mutated; recompute derived state
		m.refresh()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancel()
		return m, tea.Quit
	}

	switch m.phase {
	case phaseLoading:
		return m, nil
	case phaseFailed:
		switch msg.String() {
		case "r":
			m.phase = phaseLoading
			return m, m.loadCmd()
		case "q":
			m.cancel()
			return m, tea.Quit
		}
		return m, nil
	}

	if m.form != nil {
		return m, m.forwardForm(msg)
	}

	if m.bar.Searching() {
		switch msg.String() {
		case "enter":
			term := m.bar.StopSearch()
			m.state = m.state.SetSearch(term)
			m.refresh()
			return m, nil
		case "esc":
			m.bar.CancelSearch()
			return m, nil
		}
		return m, m.forward(msg)
	}

	switch msg.String() {
	case "q":
		m.cancel()
		return m, tea.Quit
	case "v":
		m.state = m.state.ToggleMode()
		m.refresh()
		return m, nil
	case "enter":
		if m.state.Mode == viewstate.ModeDetail {
			return m, nil
		}
		if s, ok := m.current(); ok {
			m.openDetail(s.ID)
		}
		return m, nil
	case "esc":
		if m.state.Mode == viewstate.ModeDetail {
			m.state = m.state.Back()
			m.detail.Clear()
			m.refresh()
		}
		return m, nil
	case "/":
		if m.state.Mode != viewstate.ModeDetail {
			return m, m.bar.StartSearch(m.state.Search)
		}
		return m, nil
	case "s":
		m.state = m.state.CycleSortKey()
		m.refresh()
		return m, nil
	case "S":
		m.state = m.state.FlipSortDir()
		m.refresh()
		return m, nil
	case "n":
		m.state = m.state.NextPage(m.result().TotalPages)
		m.refresh()
		return m, nil
	case "p":
		m.state = m.state.PrevPage(m.result().TotalPages)
		m.refresh()
		return m, nil
	case "f":
		return m, m.toggleFlagCurrent()
	case "d":
		return m, m.deleteCurrent()
	case "a":
		m.form = studentform.NewModel()
		m.sizeForm()
		return m, m.form.Init()
	case "e":
		if s, ok := m.current(); ok {
			m.form = studentform.NewEditModel(s)
			m.sizeForm()
			return m, m.form.Init()
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// current resolves the record the next action applies to: the detail subject
// in detail mode, otherwise the cursor of the active page view.
func (m *Model) current() (student.Student, bool) {
	switch m.state.Mode {
	case viewstate.ModeDetail:
		return m.detail.Student()
	case viewstate.ModeTile:
		return m.tiles.Current()
	default:
		return m.grid.Current()
	}
}

func (m *Model) openDetail(id int) {
	s, err := m.roster.Get(id)
	if err != nil {
		m.bar.SetError(err.Error())
		return
	}
	m.state = m.state.Select(id)
	m.detail.SetStudent(s)
	m.refresh()
}

func (m *Model) toggleFlagCurrent() tea.Cmd {
	s, ok := m.current()
	if !ok {
		return nil
	}
	updated, err := m.roster.ToggleFlag(s.ID)
	if err != nil {
		m.bar.SetError(err.Error())
		return nil
	}
	if m.state.Mode == viewstate.ModeDetail {
		m.detail.SetStudent(updated)
	}
	m.refresh()
	return events.StudentChangeCmd("app", events.ChangeFlag, events.RefFrom(updated))
}

func (m *Model) deleteCurrent() tea.Cmd {
	s, ok := m.current()
	if !ok {
		return nil
	}
	m.roster.Delete(s.ID)
	m.state = m.state.RecordDeleted(s.ID)
	if m.state.Mode != viewstate.ModeDetail {
		m.detail.Clear()
	}
	m.refresh()
	return events.StudentChangeCmd("app", events.ChangeDelete, events.RefFrom(s))
}

func (m *Model) applyForm(msg events.FormSubmitMsg) tea.Cmd {
	var (
		saved  student.Student
		action events.ChangeType
		err    error
	)
	if msg.ID == 0 {
		action = events.ChangeCreate
		saved, err = m.roster.Insert(msg.Partial)
	} else {
		action = events.ChangeUpdate
		saved, err = m.roster.Update(msg.ID, msg.Partial)
	}
	if err != nil {
		m.bar.SetError(err.Error())
		return nil
	}
	m.form = nil
	m.bar.ClearError()
	if m.state.Mode == viewstate.ModeDetail && m.state.SelectedID == saved.ID {
		m.detail.SetStudent(saved)
	}
	m.refresh()
	return events.StudentChangeCmd("app", action, events.RefFrom(saved))
}

// refresh recomputes the current page, clamps the page after any shrink and
// pushes the slice into the page views.
func (m *Model) refresh() {
	res := m.result()
	if clamped := m.state.ClampPage(res.TotalPages); clamped != m.state {
		m.state = clamped
		res = m.result()
	}
	m.grid.SetStudents(res.Page)
	m.tiles.SetStudents(res.Page)
}

func (m *Model) result() query.Result {
	return m.cache.Run(m.roster.All(), m.roster.Generation(), m.state.Params())
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.form != nil {
		if key, ok := msg.(tea.KeyPressMsg); ok {
			return m.forwardForm(key)
		}
	}
	if m.bar.Searching() {
		_, cmd := m.bar.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	switch m.state.Mode {
	case viewstate.ModeDetail:
		_, cmd = m.detail.Update(msg)
	case viewstate.ModeTile:
		_, cmd = m.tiles.Update(msg)
	default:
		_, cmd = m.grid.Update(msg)
	}
	return cmd
}

func (m *Model) forwardForm(msg tea.KeyPressMsg) tea.Cmd {
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*studentform.Model); ok {
		m.form = f
	}
	return cmd
}

func (m *Model) applySizes(width, height int) {
	m.termWidth = width
	m.termHeight = height
	bodyHeight := height - 3
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.grid.SetSize(width, bodyHeight)
	m.tiles.SetSize(width, bodyHeight)
	m.detail.SetSize(width, bodyHeight)
	m.bar.SetSize(width, 2)
	m.sizeForm()
}

func (m *Model) sizeForm() {
	if m.form == nil {
		return
	}
	width := m.termWidth
	if width <= 0 {
		width = 80
	}
	m.form.SetSize(width-4, m.termHeight)
}

// View renders the active surface plus the status bar.
func (m *Model) View() string {
	switch m.phase {
	case phaseLoading:
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Overlay.Title.Render("Student Records"),
			"",
			m.theme.Overlay.Body.Render("Loading students…"),
		)
		return m.theme.Overlay.Frame.Render(body)
	case phaseFailed:
		reason := "unknown error"
		if m.loadErr != nil {
			reason = m.loadErr.Error()
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Overlay.Title.Render("Student Records"),
			"",
			m.theme.Overlay.Error.Render(reason),
			"",
			m.theme.Overlay.Body.Render("r to retry · q to quit"),
		)
		return m.theme.Overlay.Frame.Render(body)
	}

	var body string
	switch {
	case m.form != nil:
		body = m.form.View()
	case m.state.Mode == viewstate.ModeDetail:
		body = m.detail.View()
	case m.state.Mode == viewstate.ModeTile:
		body = m.tiles.View()
	default:
		body = m.grid.View()
	}

	res := m.result()
	totalPages := res.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	bar := m.bar.View(statusbar.Status{
		Mode:       string(m.state.Mode),
		Page:       m.state.Page,
		TotalPages: totalPages,
		Total:      res.Total,
		Search:     m.state.Search,
		SortKey:    m.state.SortKey,
		SortDir:    m.state.SortDir,
	})

	return body + "\n\n" + bar
}

// Run launches the interactive dashboard program.
func Run(src source.Source, pageSize int) error {
	p := tea.NewProgram(New(src, pageSize), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
