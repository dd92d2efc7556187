package statusbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/roster/pkg/query"
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

func TestSearchRoundTrip(t *testing.T) {
	m := NewModel()
	m.SetSize(80, 2)

	m.StartSearch("gra")
	if !m.Searching() {
		t.Fatal("expected searching after StartSearch")
	}
	m.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})

	term := m.StopSearch()
	if term != "grah" {
		t.Fatalf("expected term %q, got %q", "grah", term)
	}
	if m.Searching() {
		t.Fatal("expected searching to stop")
	}
}

func TestCancelSearchKeepsState(t *testing.T) {
	m := NewModel()
	m.StartSearch("abc")
	m.CancelSearch()
	if m.Searching() {
		t.Fatal("expected searching cancelled")
	}
}

func TestViewShowsPaginationAndSort(t *testing.T) {
	m := NewModel()
	m.SetSize(120, 2)

	view := stripANSIString(m.View(Status{
		Mode:       "grid",
		Page:       2,
		TotalPages: 3,
		Total:      23,
		Search:     "gra",
		SortKey:    "name",
		SortDir:    query.Desc,
	}))

	for _, want := range []string{"page 2/3", "23 students", "sort name desc", "/gra"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewShowsError(t *testing.T) {
	m := NewModel()
	m.SetError("student not found")

	view := stripANSIString(m.View(Status{Mode: "grid", Page: 1, TotalPages: 1}))
	if !strings.Contains(view, "student not found") {
		t.Fatalf("expected error in view:\n%s", view)
	}

	m.ClearError()
	view = stripANSIString(m.View(Status{Mode: "grid", Page: 1, TotalPages: 1}))
	if strings.Contains(view, "student not found") {
		t.Fatalf("expected error cleared:\n%s", view)
	}
}
