// Package gridview renders the page of students as a dense table.
package gridview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/tui/theme"
)

type column struct {
	title string
	width int
	value func(student.Student) string
}

// Model renders a page of students in tabular form with a movable cursor.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	width  int
	height int

	students []student.Student
	cursor   int
}

// NewModel constructs an empty grid.
func NewModel() *Model {
	return &Model{
		id:    events.ComponentID("gridview"),
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

// SetSize updates the grid dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Move shifts the cursor by delta, clamped to the current page.
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

// Update handles cursor movement keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "up", "k":
			m.Move(-1)
		case "down", "j":
			m.Move(1)
		}
	}
	return m, nil
}

// View renders the table.
func (m *Model) View() string {
	if len(m.students) == 0 {
		return m.theme.Grid.Empty.Render("No students match.")
	}

	cols := m.columns()
	var b strings.Builder
	b.WriteString(m.theme.Grid.Header.Render(renderRow(cols, headerValues(cols))))
	b.WriteString("\n")

	for i, s := range m.students {
		values := make([]string, 0, len(cols))
		for _, c := range cols {
			values = append(values, c.value(s))
		}
		line := renderRow(cols, values)
		if i == m.cursor {
			line = m.theme.Grid.Selected.Render(line)
		} else {
			line = m.theme.Grid.Row.Render(line)
		}
		b.WriteString(line)
		if i < len(m.students)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) columns() []column {
	wide := m.width >= 120
	cols := []column{
		{"", 2, func(s student.Student) string {
			if s.Flagged {
				return m.theme.Grid.Flag.Render(student.FlagMark)
			}
			return " "
		}},
		{"ID", 4, func(s student.Student) string { return fmt.Sprintf("%d", s.ID) }},
		{"Name", 22, func(s student.Student) string { return s.Name }},
		{"Email", 28, func(s student.Student) string { return s.Email }},
		{"Group", 5, func(s student.Student) string { return string(s.Group) }},
	}
	if wide {
		cols = append(cols,
			column{"Phone", 16, func(s student.Student) string { return s.Phone }},
			column{"Company", 18, func(s student.Student) string { return s.Company.Name }},
			column{"City", 14, func(s student.Student) string { return s.Address.City }},
		)
	}
	cols = append(cols, column{"Tags", 24, func(s student.Student) string {
		return strings.Join(s.Tags, ", ")
	}})
	return cols
}

func headerValues(cols []column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.title)
	}
	return out
}

func renderRow(cols []column, values []string) string {
	cells := make([]string, 0, len(cols))
	for i, c := range cols {
		v := truncate.StringWithTail(values[i], uint(c.width), "…")
		cells = append(cells, lipgloss.NewStyle().Width(c.width).Render(v))
	}
	return strings.Join(cells, "  ")
}
