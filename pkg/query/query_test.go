package query

import (
	"fmt"
	"testing"

	"tableflip.dev/roster/pkg/student"
)

func roster(n int) []student.Student {
	out := make([]student.Student, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, student.Student{
			ID:    i,
			Name:  fmt.Sprintf("Student %02d", i),
			Email: fmt.Sprintf("s%02d@example.com", i),
		})
	}
	return out
}

func TestFilterIsIdempotent(t *testing.T) {
	records := []student.Student{
		{ID: 1, Name: "Leanne Graham", Email: "sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Email: "shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Email: "nathan@yesenia.net"},
	}
	once := Filter(records, "an")
	twice := Filter(once, "an")
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("record %d differs after refilter", i)
		}
	}
}

func TestFilterMatchesEmailOnly(t *testing.T) {
	records := []student.Student{
		{ID: 1, Name: "Leanne Graham", Email: "sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Email: "shanna@melissa.tv"},
	}
	got := Filter(records, "melissa")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("email-only substring missed: %+v", got)
	}
}

func TestSortNameIsCaseInsensitive(t *testing.T) {
	records := []student.Student{
		{ID: 1, Name: "Bob"},
		{ID: 2, Name: "alice"},
	}
	got := Sort(records, "name", Asc)
	if got[0].Name != "alice" || got[1].Name != "Bob" {
		t.Fatalf("case-insensitive sort failed: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestSortIsStableOnEqualKeys(t *testing.T) {
	records := []student.Student{
		{ID: 10, Name: "Same"},
		{ID: 11, Name: "Same"},
		{ID: 12, Name: "Same"},
		{ID: 13, Name: "Aardvark"},
	}
	got := Sort(records, "name", Asc)
	if got[0].ID != 13 {
		t.Fatalf("expected Aardvark first, got id %d", got[0].ID)
	}
	for i, want := range []int{10, 11, 12} {
		if got[i+1].ID != want {
			t.Fatalf("equal keys reordered: position %d has id %d, want %d", i+1, got[i+1].ID, want)
		}
	}
}

func TestSortFlaggedAscPutsUnflaggedFirst(t *testing.T) {
	records := []student.Student{
		{ID: 1, Flagged: true},
		{ID: 2},
		{ID: 3, Flagged: true},
	}
	got := Sort(records, "flagged", Asc)
	if got[0].ID != 2 {
		t.Fatalf("unflagged should sort first ascending, got id %d", got[0].ID)
	}
	got = Sort(records, "flagged", Desc)
	if !got[0].Flagged {
		t.Fatalf("flagged should sort first descending")
	}
}

func TestSortUnknownKeyKeepsOriginalOrder(t *testing.T) {
	records := roster(5)
	got := Sort(records, "shoesize", Desc)
	for i := range records {
		if got[i].ID != records[i].ID {
			t.Fatalf("unknown key reordered records at %d", i)
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	records := []student.Student{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	_ = Sort(records, "name", Asc)
	if records[0].ID != 2 {
		t.Fatalf("input slice reordered in place")
	}
}

func TestPaginationBounds(t *testing.T) {
	records := roster(23)

	if got := TotalPages(23, 10); got != 3 {
		t.Fatalf("TotalPages(23,10) = %d, want 3", got)
	}
	if got := Paginate(records, 3, 10); len(got) != 3 {
		t.Fatalf("page 3 has %d records, want 3", len(got))
	}
	if got := Paginate(records, 4, 10); len(got) != 0 {
		t.Fatalf("page 4 should be empty, has %d", len(got))
	}
	if got := Paginate(records, 0, 10); got != nil {
		t.Fatalf("page 0 should be empty")
	}
}

func TestPaginationCoversCollectionExactlyOnce(t *testing.T) {
	records := roster(23)
	p := Params{SortKey: "name", SortDir: Desc, PageSize: 10}
	sorted := Sorted(records, p)

	var joined []student.Student
	for page := 1; page <= TotalPages(len(sorted), p.PageSize); page++ {
		joined = append(joined, Paginate(sorted, page, p.PageSize)...)
	}
	if len(joined) != len(sorted) {
		t.Fatalf("pages cover %d records, want %d", len(joined), len(sorted))
	}
	for i := range sorted {
		if joined[i].ID != sorted[i].ID {
			t.Fatalf("page concatenation diverges at %d", i)
		}
	}
}

func TestRunComposesStages(t *testing.T) {
	records := roster(30)
	res := Run(records, Params{Search: "s0", SortKey: "id", SortDir: Desc, Page: 1, PageSize: 5})
	// s01..s09 match "s0" in the email
	if res.Total != 9 {
		t.Fatalf("total = %d, want 9", res.Total)
	}
	if res.TotalPages != 2 {
		t.Fatalf("totalPages = %d, want 2", res.TotalPages)
	}
	if len(res.Page) != 5 || res.Page[0].ID != 9 {
		t.Fatalf("descending first page wrong: %+v", res.Page)
	}
}

func TestCacheReusesResultUntilInvalidated(t *testing.T) {
	records := roster(10)
	p := Params{SortKey: "id", SortDir: Asc, Page: 1, PageSize: 10}

	var c Cache
	first := c.Run(records, 1, p)
	// Same generation and params: the memo must serve, even if the caller
	// hands in a different (stale) slice.
	second := c.Run(nil, 1, p)
	if len(second.Page) != len(first.Page) {
		t.Fatalf("memo not used: %d vs %d", len(second.Page), len(first.Page))
	}
	// New generation recomputes.
	third := c.Run(nil, 2, p)
	if len(third.Page) != 0 {
		t.Fatalf("stale result served after generation change")
	}
}
