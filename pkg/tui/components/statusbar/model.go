// Package statusbar renders the bottom bar: search input, pagination,
// sort status and key hints.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/roster/pkg/query"
	"tableflip.dev/roster/pkg/tui/theme"
)

// Status carries the per-frame facts the bar displays.
type Status struct {
	Mode       string
	Page       int
	TotalPages int
	Total      int
	Search     string
	SortKey    string
	SortDir    query.Direction
}

// Model owns the search input and renders the status line under the views.
type Model struct {
	theme theme.Theme
	width int

	input     textinput.Model
	searching bool
	errorMsg  string
}

// NewModel constructs the bar with a blurred search input.
func NewModel() *Model {
	in := textinput.New()
	in.Prompt = "/"
	in.Placeholder = "name or email"
	return &Model{
		theme: theme.Default(),
		input: in,
	}
}

// SetSize updates the bar width.
func (m *Model) SetSize(width, _ int) {
	m.width = width
	inputWidth := width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.SetWidth(inputWidth)
}

// StartSearch focuses the search input, seeding it with the current term.
func (m *Model) StartSearch(term string) tea.Cmd {
	m.searching = true
	m.input.SetValue(term)
	return m.input.Focus()
}

// StopSearch blurs the input and returns the entered term.
func (m *Model) StopSearch() string {
	m.searching = false
	m.input.Blur()
	return m.input.Value()
}

// CancelSearch blurs the input discarding the entered term.
func (m *Model) CancelSearch() {
	m.searching = false
	m.input.Blur()
}

// Searching reports whether the search input has focus.
func (m *Model) Searching() bool { return m.searching }

// SetError shows a transient error message in place of the hints.
func (m *Model) SetError(msg string) { m.errorMsg = msg }

// ClearError removes the transient error message.
func (m *Model) ClearError() { m.errorMsg = "" }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards typed characters to the search input while searching.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.searching {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the bar for the given status.
func (m *Model) View(st Status) string {
	if m.searching {
		return m.theme.Status.Bar.Render("  ") + m.input.View()
	}

	left := fmt.Sprintf("%s · page %d/%d · %d students · sort %s %s",
		st.Mode, st.Page, st.TotalPages, st.Total, st.SortKey, st.SortDir)
	if st.Search != "" {
		left += " · " + m.theme.Status.Search.Render("/"+st.Search)
	}

	if m.errorMsg != "" {
		return m.theme.Status.Bar.Render(left) + "\n" + m.theme.Status.Error.Render(m.errorMsg)
	}

	help := "v view · / search · s sort · S dir · n/p page · f flag · a add · e edit · d delete · q quit"
	return m.theme.Status.Bar.Render(left) + "\n" + m.theme.Status.Help.Render(help)
}
