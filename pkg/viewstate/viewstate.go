// Package viewstate models the session's UI state as an explicit value with
// pure transition methods, so every transition is unit-testable without a
// terminal attached.
package viewstate

import "tableflip.dev/roster/pkg/query"

// Mode is the active rendering surface.
type Mode string

const (
	// ModeGrid is the table rendering of the current page.
	ModeGrid Mode = "grid"
	// ModeTile is the card rendering of the current page.
	ModeTile Mode = "tile"
	// ModeDetail shows the selected record.
	ModeDetail Mode = "detail"
)

// State is the whole session-local UI state. The zero value is not useful;
// use New.
type State struct {
	Mode       Mode
	SelectedID int // 0 means nothing selected
	Page       int
	PageSize   int
	Search     string
	SortKey    string
	SortDir    query.Direction
}

// New returns the initial state: grid view, first page, id ascending.
func New(pageSize int) State {
	if pageSize <= 0 {
		pageSize = 10
	}
	return State{
		Mode:     ModeGrid,
		Page:     1,
		PageSize: pageSize,
		SortKey:  "id",
		SortDir:  query.Asc,
	}
}

// Params projects the state into pipeline parameters.
func (s State) Params() query.Params {
	return query.Params{
		Search:   s.Search,
		SortKey:  s.SortKey,
		SortDir:  s.SortDir,
		Page:     s.Page,
		PageSize: s.PageSize,
	}
}

// SetMode switches between grid and tile without touching the selection.
// Detail is only entered through Select.
func (s State) SetMode(m Mode) State {
	if m != ModeGrid && m != ModeTile {
		return s
	}
	s.Mode = m
	return s
}

// ToggleMode flips grid ⇄ tile. In detail mode it is a no-op; leave via Back.
func (s State) ToggleMode() State {
	switch s.Mode {
	case ModeGrid:
		s.Mode = ModeTile
	case ModeTile:
		s.Mode = ModeGrid
	}
	return s
}

// Select opens the detail view for the given record.
func (s State) Select(id int) State {
	s.SelectedID = id
	s.Mode = ModeDetail
	return s
}

// Back leaves the detail view, clearing the selection.
func (s State) Back() State {
	if s.Mode == ModeDetail {
		s.Mode = ModeTile
	}
	s.SelectedID = 0
	return s
}

// RecordDeleted reacts to a record leaving the store. If it was the detail
// subject the view falls back to tile with the selection cleared; this is a
// required recovery path, not a nicety.
func (s State) RecordDeleted(id int) State {
	if s.SelectedID != id {
		return s
	}
	s.SelectedID = 0
	if s.Mode == ModeDetail {
		s.Mode = ModeTile
	}
	return s
}

// SetSearch replaces the filter term. A new filter invalidates any prior
// page position, so the page resets to 1.
func (s State) SetSearch(term string) State {
	if s.Search == term {
		return s
	}
	s.Search = term
	s.Page = 1
	return s
}

// ToggleSort applies click-to-sort semantics: re-selecting the current key
// flips the direction, a new key starts ascending.
func (s State) ToggleSort(key string) State {
	if key == s.SortKey {
		s.SortDir = s.SortDir.Flip()
		return s
	}
	s.SortKey = key
	s.SortDir = query.Asc
	return s
}

// CycleSortKey advances to the next offered sort key, ascending.
func (s State) CycleSortKey() State {
	for i, k := range query.SortKeys {
		if k == s.SortKey {
			s.SortKey = query.SortKeys[(i+1)%len(query.SortKeys)]
			s.SortDir = query.Asc
			return s
		}
	}
	s.SortKey = query.SortKeys[0]
	s.SortDir = query.Asc
	return s
}

// FlipSortDir reverses the current direction without changing the key.
func (s State) FlipSortDir() State {
	s.SortDir = s.SortDir.Flip()
	return s
}

// SetPage jumps to the requested page, clamped to [1, totalPages].
func (s State) SetPage(page, totalPages int) State {
	s.Page = page
	return s.ClampPage(totalPages)
}

// NextPage and PrevPage step one page, clamped.

func (s State) NextPage(totalPages int) State { return s.SetPage(s.Page+1, totalPages) }

func (s State) PrevPage(totalPages int) State { return s.SetPage(s.Page-1, totalPages) }

// ClampPage pulls the page back into range after the filtered count shrank,
// e.g. following a delete. An empty result shows page 1 of 1.
func (s State) ClampPage(totalPages int) State {
	if totalPages < 1 {
		totalPages = 1
	}
	if s.Page > totalPages {
		s.Page = totalPages
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}
