package detailcard

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/roster/pkg/student"
)

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

func TestViewShowsEveryField(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 24)
	m.SetStudent(student.Student{
		ID:      7,
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1-555-0100",
		Group:   student.GroupB,
		Flagged: true,
		Address: student.Address{Street: "12 Engine St", City: "London"},
		Tags:    []string{"alumni", "senior"},
	})

	view := stripANSIString(m.View())
	for _, want := range []string{
		"Ada Lovelace", "ada@example.com", "+1-555-0100",
		"12 Engine St, London", "alumni, senior", student.FlagMark,
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestPlaceholderForMissingFields(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 24)
	m.SetStudent(student.Student{ID: 1, Name: "Min", Email: "min@example.com"})

	view := stripANSIString(m.View())
	if !strings.Contains(view, student.Placeholder) {
		t.Fatalf("expected placeholder for empty fields:\n%s", view)
	}
}

func TestClearEmptiesPanel(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 24)
	m.SetStudent(student.Student{ID: 1, Name: "Min", Email: "min@example.com"})
	m.Clear()

	if _, ok := m.Student(); ok {
		t.Fatal("expected no student after Clear")
	}
	if view := stripANSIString(m.View()); strings.Contains(view, "Min") {
		t.Fatalf("expected cleared panel:\n%s", view)
	}
}
