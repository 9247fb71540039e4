package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gouzil/cmake-lint/pkg/lint"
)

// NewCategoriesCommand lists the recognized check categories.
func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the recognized check categories",
		Long: `List every check category together with a short description.

Category names are used in filter specs: a comma-separated list of
+category/-category tokens, where a token matches every category it is
a prefix of (e.g. -whitespace disables all whitespace checks).`,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Category", "Description"})
			for _, rule := range lint.Rules() {
				t.AppendRow(table.Row{string(rule.Category), rule.Description})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
		},
	}
}
