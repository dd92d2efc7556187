package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/commands/options"
	addrunner "tableflip.dev/roster/pkg/runner/add"
	"tableflip.dev/roster/pkg/source"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SourceOptions{}
	oo := &options.OutputOptions{}
	s := &addrunner.Add{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a student to a loaded roster",
		Long: `Load the roster, insert one student and print the result. The session is
in-memory only; nothing is persisted.`,
		Example: `
roster add --name "Nick Fury" --email nick@example.com --group B
roster add -i
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := source.LoadConfig()
			if err != nil {
				return err
			}
			s.Source = so.Build(cfg)
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&s.Interactive, "interactive", "i", false,
		"Prompt for each field.")
	cmd.Flags().StringVar(&s.Name, "name", "", "Full name (required unless -i).")
	cmd.Flags().StringVar(&s.Email, "email", "", "Email address (required unless -i).")
	cmd.Flags().StringVar(&s.Phone, "phone", "", "Phone number.")
	cmd.Flags().StringVar(&s.Website, "website", "", "Website.")
	cmd.Flags().StringVar(&s.Group, "group", "", "Cohort label: A, B, C or D.")
	cmd.Flags().StringSliceVar(&s.Tags, "tag", nil, "Tag label; repeatable.")

	options.AddSourceArgs(cmd, so)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
