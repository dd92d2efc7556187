package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/roster/pkg/export"
	"tableflip.dev/roster/pkg/query"
	"tableflip.dev/roster/pkg/source"
)

// Format selects the export document type.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

// Export loads the roster and writes the full filtered+sorted collection
// to Out (or a file when Path is set).
type Export struct {
	Source  source.Source
	Format  Format
	Path    string
	Out     io.Writer
	Search  string
	SortKey string
	SortDir query.Direction
}

func (n *Export) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not export, no data source")
	}
	students, err := n.Source.Load(ctx)
	if err != nil {
		return err
	}
	sorted := query.Sorted(students, query.Params{
		Search:  n.Search,
		SortKey: n.SortKey,
		SortDir: n.SortDir,
	})

	out := n.Out
	if n.Path != "" {
		f, err := os.Create(n.Path)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", n.Path, err)
		}
		defer f.Close()
		out = f
	}
	if out == nil {
		out = os.Stdout
	}

	switch n.Format {
	case FormatCSV, "":
		return export.CSV(out, sorted)
	case FormatTable:
		return export.Table(out, sorted)
	default:
		return fmt.Errorf("unknown export format %q", n.Format)
	}
}
