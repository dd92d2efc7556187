package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/roster/pkg/source"
	"tableflip.dev/roster/pkg/student"
	"tableflip.dev/roster/pkg/tui/events"
	"tableflip.dev/roster/pkg/viewstate"
)

type stubSource struct {
	students []student.Student
	err      error
}

func (s *stubSource) Load(ctx context.Context) ([]student.Student, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.students, nil
}

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func makeStudents(count int) []student.Student {
	out := make([]student.Student, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, student.Student{
			ID:    i + 1,
			Name:  fmt.Sprintf("Student %02d", i+1),
			Email: fmt.Sprintf("s%02d@example.com", i+1),
			Group: student.GroupA,
		})
	}
	return out
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

// press runs one message through Update and delivers the app's own follow-up
// messages back into the model, the way the runtime would. Runtime-internal
// messages (cursor blinks etc.) are not followed.
func press(t *testing.T, m *Model, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	switch out := cmd().(type) {
	case loadedMsg, loadFailedMsg,
		events.StudentSelectMsg, events.StudentChangeMsg,
		events.FormSubmitMsg, events.FormCancelMsg:
		press(t, m, out)
	}
}

func newReadyModel(t *testing.T, students []student.Student) *Model {
	t.Helper()
	m := New(&stubSource{students: students}, 10)
	press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	msg := m.Init()()
	if _, ok := msg.(loadedMsg); !ok {
		t.Fatalf("expected loadedMsg, got %T", msg)
	}
	press(t, m, msg)
	return m
}

func TestLoadSuccessRendersGrid(t *testing.T) {
	m := newReadyModel(t, makeStudents(3))

	view := stripANSIString(m.View())
	if !strings.Contains(view, "Student 01") {
		t.Fatalf("expected first student in view:\n%s", view)
	}
	if !strings.Contains(view, "page 1/1") {
		t.Fatalf("expected pagination in view:\n%s", view)
	}
	if !strings.Contains(view, "grid") {
		t.Fatalf("expected grid mode in view:\n%s", view)
	}
}

func TestLoadFailureOffersRetry(t *testing.T) {
	src := &stubSource{err: &source.LoadError{Err: errors.New("network down")}}
	m := New(src, 10)
	press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	press(t, m, m.Init()())

	view := stripANSIString(m.View())
	if !strings.Contains(view, "network down") {
		t.Fatalf("expected failure reason in view:\n%s", view)
	}
	if !strings.Contains(view, "r to retry") {
		t.Fatalf("expected retry hint in view:\n%s", view)
	}

	// recovery: the source comes back, r reloads
	src.err = nil
	src.students = makeStudents(2)
	press(t, m, key("r"))

	view = stripANSIString(m.View())
	if !strings.Contains(view, "Student 01") {
		t.Fatalf("expected students after retry:\n%s", view)
	}
}

func TestViewToggleGridTile(t *testing.T) {
	m := newReadyModel(t, makeStudents(3))

	press(t, m, key("v"))
	if m.state.Mode != viewstate.ModeTile {
		t.Fatalf("expected tile mode, got %s", m.state.Mode)
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "View Details") {
		t.Fatalf("expected tile hint in view:\n%s", view)
	}

	press(t, m, key("v"))
	if m.state.Mode != viewstate.ModeGrid {
		t.Fatalf("expected grid mode back, got %s", m.state.Mode)
	}
}

func TestSelectAndBack(t *testing.T) {
	m := newReadyModel(t, makeStudents(3))

	press(t, m, key("v")) // tile
	press(t, m, tea.KeyPressMsg{Code: tea.KeyRight})
	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.state.Mode != viewstate.ModeDetail {
		t.Fatalf("expected detail mode, got %s", m.state.Mode)
	}
	if m.state.SelectedID != 2 {
		t.Fatalf("expected selected id 2, got %d", m.state.SelectedID)
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "s02@example.com") {
		t.Fatalf("expected record fields in detail view:\n%s", view)
	}

	press(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.state.Mode != viewstate.ModeTile {
		t.Fatalf("expected tile mode after back, got %s", m.state.Mode)
	}
	if m.state.SelectedID != 0 {
		t.Fatalf("expected selection cleared, got %d", m.state.SelectedID)
	}
}

func TestDeleteSelectedFallsBackToTile(t *testing.T) {
	m := newReadyModel(t, makeStudents(3))

	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}) // detail on id 1 from grid
	if m.state.Mode != viewstate.ModeDetail {
		t.Fatalf("expected detail mode, got %s", m.state.Mode)
	}

	press(t, m, key("d"))
	if m.state.Mode != viewstate.ModeTile {
		t.Fatalf("expected tile mode after deleting subject, got %s", m.state.Mode)
	}
	if m.state.SelectedID != 0 {
		t.Fatalf("expected selection cleared, got %d", m.state.SelectedID)
	}
	if m.roster.Len() != 2 {
		t.Fatalf("expected 2 students left, got %d", m.roster.Len())
	}
	view := stripANSIString(m.View())
	if strings.Contains(view, "Student 01") {
		t.Fatalf("expected deleted record gone from view:\n%s", view)
	}
}

func TestSearchFiltersAndResetsPage(t *testing.T) {
	m := newReadyModel(t, makeStudents(23))

	press(t, m, key("n"))
	if m.state.Page != 2 {
		t.Fatalf("expected page 2, got %d", m.state.Page)
	}

	press(t, m, key("/"))
	for _, r := range "student 2" {
		press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.state.Search != "student 2" {
		t.Fatalf("expected search term applied, got %q", m.state.Search)
	}
	if m.state.Page != 1 {
		t.Fatalf("expected page reset to 1, got %d", m.state.Page)
	}
	res := m.result()
	if res.Total != 4 { // 20, 21, 22, 23
		t.Fatalf("expected 4 matches, got %d", res.Total)
	}
}

func TestPaginationClamps(t *testing.T) {
	m := newReadyModel(t, makeStudents(23))

	for i := 0; i < 5; i++ {
		press(t, m, key("n"))
	}
	if m.state.Page != 3 {
		t.Fatalf("expected page clamped to 3, got %d", m.state.Page)
	}
	for i := 0; i < 5; i++ {
		press(t, m, key("p"))
	}
	if m.state.Page != 1 {
		t.Fatalf("expected page clamped to 1, got %d", m.state.Page)
	}
}

func TestFlagToggleShowsMark(t *testing.T) {
	m := newReadyModel(t, makeStudents(2))

	press(t, m, key("f"))
	s, err := m.roster.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Flagged {
		t.Fatal("expected first student flagged")
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, student.FlagMark) {
		t.Fatalf("expected flag mark in view:\n%s", view)
	}

	press(t, m, key("f"))
	s, _ = m.roster.Get(1)
	if s.Flagged {
		t.Fatal("expected flag toggled back off")
	}
}

func TestAddFormInsertsRecord(t *testing.T) {
	m := newReadyModel(t, makeStudents(2))

	press(t, m, key("a"))
	if m.form == nil {
		t.Fatal("expected form open")
	}

	for _, r := range "Ada" {
		press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	press(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	press(t, m, tea.KeyPressMsg{Code: tea.KeyTab}) // skip username
	for _, r := range "ada@x.io" {
		press(t, m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.form != nil {
		t.Fatal("expected form closed after submit")
	}
	if m.roster.Len() != 3 {
		t.Fatalf("expected 3 students, got %d", m.roster.Len())
	}
	s, err := m.roster.Get(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Ada" || s.Email != "ada@x.io" {
		t.Fatalf("unexpected inserted record: %+v", s)
	}
}

func TestEditFormUpdatesSubject(t *testing.T) {
	m := newReadyModel(t, makeStudents(2))

	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter}) // detail on id 1
	press(t, m, key("e"))
	if m.form == nil || !m.form.Editing() {
		t.Fatal("expected edit form open")
	}

	press(t, m, tea.KeyPressMsg{Code: 'X', Text: "X"})
	press(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	s, err := m.roster.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(s.Name, "X") {
		t.Fatalf("expected name edited, got %q", s.Name)
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, s.Name) {
		t.Fatalf("expected detail refreshed with new name:\n%s", view)
	}
}
