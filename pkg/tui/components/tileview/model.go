// Package tileview renders the page of students as a grid of cards.
package tileview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/tui/theme"
)

const (
	tileWidth = 30
	tileGap   = 1
)

// Model renders students as selectable cards arranged in rows.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	width int

	students []student.Student
	cursor   int
}

// NewModel constructs an empty tile grid.
func NewModel() *Model {
	return &Model{
		id:    events.ComponentID("tileview"),
		theme: theme.Default(),
	}
}

// SetStudents replaces the rendered page and clamps the cursor.
func (m *Model) SetStudents(students []student.Student) {
	m.students = students
	if m.cursor >= len(students) {
		m.cursor = len(students) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the available width for card layout.
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// Move shifts the cursor by delta cards, clamped to the current page.
func (m *Model) Move(delta int) {
	if len(m.students) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.students) {
		m.cursor = len(m.students) - 1
	}
}

// MoveRow shifts the cursor a full row up or down.
func (m *Model) MoveRow(delta int) {
	m.Move(delta * m.perRow())
}

// Current returns the student under the cursor.
func (m *Model) Current() (student.Student, bool) {
	if m.cursor < 0 || m.cursor >= len(m.students) {
		return student.Student{}, false
	}
	return m.students[m.cursor], true
}

// Cursor exposes the cursor position within the page.
func (m *Model) Cursor() int { return m.cursor }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cursor movement and selection keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "left", "h":
			m.Move(-1)
		case "right", "l":
			m.Move(1)
		case "up", "k":
			m.MoveRow(-1)
		case "down", "j":
			m.MoveRow(1)
		case "enter":
			if s, ok := m.Current(); ok {
				ref := events.RefFrom(s)
				id := m.id
				return m, func() tea.Msg {
					return events.StudentSelectMsg{Component: id, Student: ref}
				}
			}
		}
	}
	return m, nil
}

// View renders the card grid.
func (m *Model) View() string {
	if len(m.students) == 0 {
		return m.theme.Grid.Empty.Render("No students match.")
	}

	perRow := m.perRow()
	rows := make([]string, 0, (len(m.students)+perRow-1)/perRow)
	for start := 0; start < len(m.students); start += perRow {
		end := start + perRow
		if end > len(m.students) {
			end = len(m.students)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.students[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCard(s student.Student, selected bool) string {
	inner := tileWidth - 4
	name := truncate.StringWithTail(s.Name, uint(inner), "…")
	if s.Flagged {
		marked := truncate.StringWithTail(s.Name, uint(inner-2), "…")
		name = marked + " " + m.theme.Tile.Flag.Render(student.FlagMark)
	}

	lines := []string{
		m.theme.Tile.Name.Render(name),
		m.theme.Tile.Email.Render(truncate.StringWithTail(s.Email, uint(inner), "…")),
	}
	if selected {
		lines = append(lines, m.theme.Tile.Hint.Render("View Details ⏎"))
	} else {
		lines = append(lines, "")
	}
	body := strings.Join(lines, "\n")

	frame := m.theme.Tile.Frame
	if selected {
		frame = m.theme.Tile.Selected
	}
	return frame.Width(tileWidth - 2).Render(body)
}

func (m *Model) perRow() int {
	if m.width <= 0 {
		return 1
	}
	n := m.width / (tileWidth + tileGap)
	if n < 1 {
		n = 1
	}
	return n
}
