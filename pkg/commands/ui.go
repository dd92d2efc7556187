package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	"tableflip.dev/roster/pkg/source"
	"tableflip.dev/roster/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	so := &options.SourceOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the dashboard",
		Example: `
roster ui
roster ui --sample
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.LoadConfig()
			if err != nil {
				return err
			}
			return app.Run(so.Build(cfg), cfg.PageSize)
		},
	}

	options.AddSourceArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
