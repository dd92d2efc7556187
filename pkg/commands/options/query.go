// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/query"
)

// QueryOptions captures the filter/sort/page flags shared by ls and export.
type QueryOptions struct {
	Search   string
	SortKey  string
	Desc     bool
	Page     int
	PageSize int
	All      bool
}

// Direction resolves the flag pair into a pipeline direction.
func (o *QueryOptions) Direction() query.Direction {
	if o.Desc {
		return query.Desc
	}
	return query.Asc
}

// AddQueryArgs wires the filter and sort flags on the provided command.
func AddQueryArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Filter by case-insensitive substring of name or email.")
	cmd.Flags().StringVar(&o.SortKey, "sort", "id",
		"Sort key: id, name, email or flagged.")
	cmd.Flags().BoolVar(&o.Desc, "desc", false,
		"Sort descending.")
}

// AddPageArgs wires the pagination flags.
func AddPageArgs(cmd *cobra.Command, o *QueryOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page to print (1-based).")
	cmd.Flags().IntVar(&o.PageSize, "page-size", 0,
		"Records per page; 0 uses the configured default.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Print every record instead of one page.")
}
