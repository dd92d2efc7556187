package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	exportrunner "tableflip.dev/roster/pkg/runner/export"
	"tableflip.dev/roster/pkg/source"
)

func addExport(topLevel *cobra.Command) {
	qo := &options.QueryOptions{}
	so := &options.SourceOptions{}
	oo := &options.OutputOptions{}
	out := ""

	cmd := &cobra.Command{
		Use:       "export [csv|table]",
		Short:     "export the filtered, sorted roster",
		ValidArgs: []string{"csv", "table"},
		Example: `
roster export csv --out students.csv
roster export table --search ann --sort name
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("too many formats, confused")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.LoadConfig()
			if err != nil {
				return err
			}
			format := exportrunner.FormatCSV
			if len(args) == 1 {
				format = exportrunner.Format(args[0])
			}
			s := exportrunner.Export{
				Source:  so.Build(cfg),
				Format:  format,
				Path:    out,
				Out:     cmd.OutOrStdout(),
				Search:  qo.Search,
				SortKey: qo.SortKey,
				SortDir: qo.Direction(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "",
		"Write to this file instead of stdout.")

	options.AddQueryArgs(cmd, qo)
	options.AddSourceArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
