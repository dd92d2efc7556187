package ls

import (
	"context"
	"errors"

	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/query"
	"tableflip.dev/roster/pkg/source"
)

// Ls loads the roster and prints one page (or everything) of the filtered
// and sorted collection.
type Ls struct {
	Source   source.Source
	ShowID   bool
	Search   string
	SortKey  string
	SortDir  query.Direction
	Page     int
	PageSize int
	All      bool
}

func (n *Ls) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list, no data source")
	}
	students, err := n.Source.Load(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	sorted := query.Sorted(students, query.Params{
		Search:  n.Search,
		SortKey: n.SortKey,
		SortDir: n.SortDir,
	})

	if n.All {
		pp.TitleWithCount("Students", len(sorted))
		pp.Roster(sorted...)
		return nil
	}

	page := n.Page
	if page <= 0 {
		page = 1
	}
	size := n.PageSize
	if size <= 0 {
		size = 10
	}
	pp.TitleWithCount("Students", len(sorted))
	pp.Roster(query.Paginate(sorted, page, size)...)
	return nil
}
