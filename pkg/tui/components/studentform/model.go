// Package studentform renders the add/edit overlay for a single record.
package studentform

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/tui/theme"
)

type field int

const (
	fieldName field = iota
	fieldUsername
	fieldEmail
	fieldPhone
	fieldWebsite
	fieldCompany
	fieldGroup
	fieldTags
	fieldCount
)

var fieldLabels = map[field]string{
	fieldName:     "Name",
	fieldUsername: "Username",
	fieldEmail:    "Email",
	fieldPhone:    "Phone",
	fieldWebsite:  "Website",
	fieldCompany:  "Company",
	fieldGroup:    "Group",
	fieldTags:     "Tags",
}

// Model collects record fields through a stack of text inputs. Group is a
// cycled selection rather than free text.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	width int

	editID int // zero means insert

	inputs     map[field]*textinput.Model
	focus      field
	groupIndex int
	errorMsg   string
}

// NewModel constructs an empty insert form.
func NewModel() *Model {
	m := &Model{
		id:     events.ComponentID("studentform"),
		theme:  theme.Default(),
		inputs: map[field]*textinput.Model{},
	}
	for f := fieldName; f < fieldCount; f++ {
		if f == fieldGroup {
			continue
		}
		in := textinput.New()
		in.Prompt = ""
		m.inputs[f] = &in
	}
	m.inputs[fieldTags].Placeholder = "comma, separated"
	m.focus = fieldName
	m.applyFocus()
	return m
}

// NewEditModel constructs a form pre-filled from an existing record.
func NewEditModel(s student.Student) *Model {
	m := NewModel()
	m.editID = s.ID
	m.inputs[fieldName].SetValue(s.Name)
	m.inputs[fieldUsername].SetValue(s.Username)
	m.inputs[fieldEmail].SetValue(s.Email)
	m.inputs[fieldPhone].SetValue(s.Phone)
	m.inputs[fieldWebsite].SetValue(s.Website)
	m.inputs[fieldCompany].SetValue(s.Company.Name)
	m.inputs[fieldTags].SetValue(strings.Join(s.Tags, ", "))
	for i, g := range student.Groups() {
		if g == s.Group {
			m.groupIndex = i
			break
		}
	}
	return m
}

// Editing reports whether the form updates an existing record.
func (m *Model) Editing() bool { return m.editID != 0 }

// SetSize updates input widths.
func (m *Model) SetSize(width, _ int) {
	m.width = width
	inputWidth := width - 20
	if inputWidth < 16 {
		inputWidth = 16
	}
	for _, in := range m.inputs {
		in.SetWidth(inputWidth)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.inputs[m.focus].Focus()
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "tab", "down":
		m.advance(1)
		return m, m.applyFocus()
	case "shift+tab", "up":
		m.advance(-1)
		return m, m.applyFocus()
	case "left", "right":
		if m.focus == fieldGroup {
			delta := 1
			if key.String() == "left" {
				delta = -1
			}
			n := len(student.Groups())
			m.groupIndex = (m.groupIndex + n + delta) % n
			return m, nil
		}
	case "enter":
		if cmd := m.submit(); cmd != nil {
			return m, cmd
		}
		return m, nil
	case "esc":
		id := m.id
		return m, func() tea.Msg { return events.FormCancelMsg{Component: id} }
	}

	if in, ok := m.inputs[m.focus]; ok {
		updated, cmd := in.Update(msg)
		*in = updated
		return m, cmd
	}
	return m, nil
}

// View renders the form overlay.
func (m *Model) View() string {
	title := "Add Student"
	if m.Editing() {
		title = "Edit Student"
	}
	lines := []string{m.theme.Form.Title.Render(title), ""}

	for f := fieldName; f < fieldCount; f++ {
		indicator := "  "
		if f == m.focus {
			indicator = m.theme.Status.Search.Render("➤ ")
		}
		label := m.theme.Form.Label.Render(padLabel(fieldLabels[f]))
		var value string
		if f == fieldGroup {
			value = m.renderGroupRow()
		} else {
			value = m.inputs[f].View()
		}
		lines = append(lines, indicator+label+" "+value)
	}

	lines = append(lines, "")
	if m.errorMsg != "" {
		lines = append(lines, m.theme.Form.Error.Render(m.errorMsg))
	} else {
		lines = append(lines, m.theme.Form.Label.Render("Enter to save • Esc to cancel • Tab between fields"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.Form.Frame.Render(body)
}

func (m *Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())

	missing := make([]string, 0, 2)
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		m.errorMsg = "required: " + strings.Join(missing, ", ")
		return nil
	}
	m.errorMsg = ""

	group := student.Groups()[m.groupIndex]
	tags := splitTags(m.inputs[fieldTags].Value())
	p := student.Partial{
		Name:     &name,
		Email:    &email,
		Username: optional(m.inputs[fieldUsername].Value()),
		Phone:    optional(m.inputs[fieldPhone].Value()),
		Website:  optional(m.inputs[fieldWebsite].Value()),
		Group:    &group,
		Tags:     &tags,
	}
	if company := strings.TrimSpace(m.inputs[fieldCompany].Value()); company != "" {
		p.Company = &student.Company{Name: company}
	}

	id := m.id
	editID := m.editID
	return func() tea.Msg {
		return events.FormSubmitMsg{Component: id, ID: editID, Partial: p}
	}
}

func (m *Model) advance(delta int) {
	m.focus = field((int(m.focus) + int(fieldCount) + delta) % int(fieldCount))
}

func (m *Model) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for f, in := range m.inputs {
		if f == m.focus {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (m *Model) renderGroupRow() string {
	parts := make([]string, 0, len(student.Groups()))
	for i, g := range student.Groups() {
		label := string(g)
		if i == m.groupIndex {
			label = m.theme.Status.Search.Render("[" + label + "]")
		} else {
			label = " " + label + " "
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func padLabel(label string) string {
	const width = 10
	label += ":"
	for len(label) < width {
		label += " "
	}
	return label
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func splitTags(v string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
