// Package detailcard renders the full record panel for one student.
package detailcard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/tui/theme"
)

// Model renders every field of the selected student inside a scrollable
// bordered panel.
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	viewport viewport.Model

	student student.Student
	present bool
}

// NewModel constructs an empty detail panel.
func NewModel() *Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{
		id:       events.ComponentID("detailcard"),
		theme:    theme.Default(),
		viewport: vp,
	}
}

// SetStudent replaces the rendered record.
func (m *Model) SetStudent(s student.Student) {
	m.student = s
	m.present = true
	m.refresh()
}

// Clear empties the panel, used after the shown record is deleted.
func (m *Model) Clear() {
	m.present = false
	m.viewport.SetContent("")
}

// Student returns the record currently shown.
func (m *Model) Student() (student.Student, bool) {
	return m.student, m.present
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	frame := m.theme.Detail.Frame
	innerWidth := width - frame.GetHorizontalFrameSize()
	innerHeight := height - frame.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(innerHeight)
	m.refresh()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the bordered panel.
func (m *Model) View() string {
	return m.theme.Detail.Frame.Render(m.viewport.View())
}

func (m *Model) refresh() {
	if !m.present {
		return
	}
	s := m.student

	title := s.Name
	if s.Flagged {
		title = fmt.Sprintf("%s %s", title, m.theme.Detail.Flag.Render(student.FlagMark))
	}
	lines := []string{m.theme.Detail.Title.Render(title), ""}

	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", s.ID)},
		{"Username", s.Display("username")},
		{"Email", s.Display("email")},
		{"Phone", s.Display("phone")},
		{"Website", s.Display("website")},
		{"Company", s.Display("company")},
		{"Address", s.FullAddress()},
		{"Group", s.Display("group")},
		{"Tags", s.Display("tags")},
	}
	for _, r := range rows {
		label := m.theme.Detail.Label.Render(fmt.Sprintf("%-10s", r[0]+":"))
		lines = append(lines, label+" "+m.theme.Detail.Value.Render(r[1]))
	}
	lines = append(lines, "", m.theme.Detail.Label.Render("esc to go back"))

	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, lines...))
	m.viewport.SetYOffset(0)
}
