package cmd

import (
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] <input-path>...",
		Aliases: []string{"ls"},
		Short:   "List the documentation examples found in input files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scan(opts, args)
			if err != nil {
				return err
			}

			tbl := table.New("File", "Line", "Lines", "Name").WithWriter(cmd.OutOrStdout())

			for _, example := range doc.Examples {
				tbl.AddRow(example.Path, example.StartLine, len(example.Code), example.Name)
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
