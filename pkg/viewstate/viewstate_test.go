package viewstate

import (
	"testing"

	"tableflip.dev/roster/pkg/query"
)

func TestToggleModeFlipsGridAndTile(t *testing.T) {
	s := New(10)
	if s.Mode != ModeGrid {
		t.Fatalf("initial mode = %q", s.Mode)
	}
	s = s.ToggleMode()
	if s.Mode != ModeTile {
		t.Fatalf("toggle from grid gave %q", s.Mode)
	}
	s.SelectedID = 3 // toggling views must not disturb a selection
	s = s.ToggleMode()
	if s.Mode != ModeGrid || s.SelectedID != 3 {
		t.Fatalf("toggle from tile gave %q selected=%d", s.Mode, s.SelectedID)
	}
}

func TestSelectAndBack(t *testing.T) {
	s := New(10).SetMode(ModeTile).Select(7)
	if s.Mode != ModeDetail || s.SelectedID != 7 {
		t.Fatalf("select: %+v", s)
	}
	s = s.Back()
	if s.Mode != ModeTile || s.SelectedID != 0 {
		t.Fatalf("back should return to tile with cleared selection: %+v", s)
	}
}

func TestDeletingSelectedRecordLeavesDetail(t *testing.T) {
	s := New(10).SetMode(ModeTile).Select(5)
	s = s.RecordDeleted(5)
	if s.Mode != ModeTile {
		t.Fatalf("detail view survived its subject: mode %q", s.Mode)
	}
	if s.SelectedID != 0 {
		t.Fatalf("selection not cleared: %d", s.SelectedID)
	}
}

func TestDeletingOtherRecordKeepsDetail(t *testing.T) {
	s := New(10).SetMode(ModeTile).Select(5)
	s = s.RecordDeleted(6)
	if s.Mode != ModeDetail || s.SelectedID != 5 {
		t.Fatalf("unrelated delete disturbed view: %+v", s)
	}
}

func TestSearchChangeResetsPage(t *testing.T) {
	s := New(10)
	s.Page = 4
	s = s.SetSearch("ann")
	if s.Page != 1 {
		t.Fatalf("page = %d after new search, want 1", s.Page)
	}
	s.Page = 3
	s = s.SetSearch("ann") // unchanged term keeps the page position
	if s.Page != 3 {
		t.Fatalf("page reset on identical term")
	}
}

func TestToggleSortSameKeyFlipsNewKeyResets(t *testing.T) {
	s := New(10)
	s = s.ToggleSort("id")
	if s.SortKey != "id" || s.SortDir != query.Desc {
		t.Fatalf("re-selecting active key should flip: %+v", s)
	}
	s = s.ToggleSort("name")
	if s.SortKey != "name" || s.SortDir != query.Asc {
		t.Fatalf("new key should start ascending: %+v", s)
	}
}

func TestCycleSortKeyWalksOfferedKeys(t *testing.T) {
	s := New(10)
	seen := []string{}
	for range query.SortKeys {
		s = s.CycleSortKey()
		seen = append(seen, s.SortKey)
	}
	if seen[len(seen)-1] != "id" {
		t.Fatalf("cycle did not wrap: %v", seen)
	}
}

func TestPageClamping(t *testing.T) {
	s := New(10)
	s = s.SetPage(9, 3)
	if s.Page != 3 {
		t.Fatalf("page not clamped down: %d", s.Page)
	}
	s = s.SetPage(0, 3)
	if s.Page != 1 {
		t.Fatalf("page not clamped up: %d", s.Page)
	}
	// Filtered count collapsed to nothing: show page 1 of 1.
	s = s.ClampPage(0)
	if s.Page != 1 {
		t.Fatalf("empty result should pin page 1, got %d", s.Page)
	}
}

func TestParamsProjection(t *testing.T) {
	s := New(25)
	s = s.SetSearch("gra").ToggleSort("name").ToggleSort("name")
	p := s.Params()
	want := query.Params{Search: "gra", SortKey: "name", SortDir: query.Desc, Page: 1, PageSize: 25}
	if p != want {
		t.Fatalf("params = %+v, want %+v", p, want)
	}
}
