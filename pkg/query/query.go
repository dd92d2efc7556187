// Package query is the pure filter → sort → paginate pipeline every view
// consumes. It is total over its domain: malformed parameters degrade to
// harmless defaults instead of errors.
package query

import (
	"sort"
	"strings"

	"tableflip.dev/roster/pkg/student"
)

// Direction orders a sorted result.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// SortKeys lists the keys the dashboard offers, in cycle order.
var SortKeys = []string{"id", "name", "email", "flagged"}

// Params fully determines a pipeline run for a given collection.
type Params struct {
	Search   string
	SortKey  string
	SortDir  Direction
	Page     int // 1-based
	PageSize int
}

// Result is one computed page plus the totals the chrome needs.
type Result struct {
	Page       []student.Student
	Total      int // records after filtering
	TotalPages int
}

// Filter keeps records whose name or email contains term case-insensitively.
func Filter(records []student.Student, term string) []student.Student {
	if term == "" {
		return records
	}
	out := make([]student.Student, 0, len(records))
	for _, s := range records {
		if s.Matches(term) {
			out = append(out, s)
		}
	}
	return out
}

// Sort orders records by key and direction. The sort is stable, so records
// that compare equal keep their insertion order. An unknown key makes every
// pair compare equal, which degrades to the original order.
func Sort(records []student.Student, key string, dir Direction) []student.Student {
	out := append([]student.Student(nil), records...)
	less := comparator(key)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func comparator(key string) func(a, b student.Student) bool {
	switch key {
	case "id":
		return func(a, b student.Student) bool { return a.ID < b.ID }
	case "flagged":
		// unflagged first when ascending
		return func(a, b student.Student) bool { return !a.Flagged && b.Flagged }
	case "name", "username", "email", "phone", "website", "company",
		"street", "city", "zipcode", "group", "tags":
		return func(a, b student.Student) bool {
			return strings.ToLower(a.Field(key)) < strings.ToLower(b.Field(key))
		}
	default:
		return nil
	}
}

// Paginate slices out the 1-based page. Out-of-range pages yield an empty
// slice, never an error.
func Paginate(records []student.Student, page, pageSize int) []student.Student {
	if pageSize <= 0 || page <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(records) {
		return nil
	}
	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages is ceil(total/pageSize); zero when the filtered set is empty.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Run executes the full pipeline.
func Run(records []student.Student, p Params) Result {
	filtered := Filter(records, p.Search)
	sorted := Sort(filtered, p.SortKey, p.SortDir)
	return Result{
		Page:       Paginate(sorted, p.Page, p.PageSize),
		Total:      len(sorted),
		TotalPages: TotalPages(len(sorted), p.PageSize),
	}
}

// Sorted returns the filtered and sorted collection without pagination,
// which is what the export adapters consume.
func Sorted(records []student.Student, p Params) []student.Student {
	return Sort(Filter(records, p.Search), p.SortKey, p.SortDir)
}

// Cache memoizes the last pipeline run by store generation and parameters.
// A single slot is enough: the UI only ever renders one tuple at a time.
type Cache struct {
	valid      bool
	generation uint64
	params     Params
	result     Result
}

// Run returns the cached result when the generation and params match the
// previous call, otherwise recomputes and remembers it.
func (c *Cache) Run(records []student.Student, generation uint64, p Params) Result {
	if c.valid && c.generation == generation && c.params == p {
		return c.result
	}
	c.result = Run(records, p)
	c.generation = generation
	c.params = p
	c.valid = true
	return c.result
}

// Invalidate drops the memo.
func (c *Cache) Invalidate() { c.valid = false }
