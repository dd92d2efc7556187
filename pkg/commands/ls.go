package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/runner/ls"
	"tableflip.dev/roster/pkg/source"
)

func addLs(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	so := &options.SourceOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "print a page of the roster",
		Example: `
roster ls
roster ls --search ann --sort name --desc
roster ls --all --sample
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.LoadConfig()
			if err != nil {
				return err
			}
			size := qo.PageSize
			if size <= 0 {
				size = cfg.PageSize
			}
			s := ls.Ls{
				Source:   so.Build(cfg),
				ShowID:   oo.ShowID,
				Search:   qo.Search,
				SortKey:  qo.SortKey,
				SortDir:  qo.Direction(),
				Page:     qo.Page,
				PageSize: size,
				All:      qo.All,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddQueryArgs(cmd, qo)
	options.AddPageArgs(cmd, qo)
	options.AddSourceArgs(cmd, so)
	options.AddShowIDArg(cmd, oo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
