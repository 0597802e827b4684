// List command prints projects in a chosen order.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workbench/pkg/types"
)

var (
	listByCreated bool
	listByName    bool
	listInvert    bool
	listFilter    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long: `List prints all projects, most recently accessed first by default.
--created orders by creation time, --name alphabetically, and --invert
reverses the order. --filter keeps only projects whose name or tags match
the given prefix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		order := listOrder(listByCreated, listByName)
		var projects []*types.Project
		if listFilter != "" {
			projects = st.Search(listFilter, order)
		} else {
			projects = st.Projects(order)
		}
		if listInvert {
			for i, j := 0, len(projects)-1; i < j; i, j = i+1, j-1 {
				projects[i], projects[j] = projects[j], projects[i]
			}
		}

		for _, p := range projects {
			line := accentStyle.Render(p.Name)
			if len(p.Tags) > 0 {
				line += mutedStyle.Render(fmt.Sprintf("  [%s]", p.Tags))
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listByCreated, "created", false, "order by creation time")
	listCmd.Flags().BoolVar(&listByName, "name", false, "order by name")
	listCmd.Flags().BoolVar(&listInvert, "invert", false, "reverse the order")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "only projects whose name or tags match this prefix")
}
