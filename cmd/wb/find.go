// Find command interactively selects a project and acts on it.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	findByCreated bool
	findByName    bool
	findInvert    bool
	findRename    bool
	findModify    bool
	findCommand   string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Pick a project interactively and open, rename, or retag it",
	Long: `Find shows a selection prompt over all projects, most recently accessed
first by default. The chosen project is opened unless --rename or --modify
selects a different action.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		name, err := selectProject(st, listOrder(findByCreated, findByName), findInvert)
		if err != nil {
			return err
		}

		switch {
		case findRename:
			var newName string
			if err := promptText("New name", &newName); err != nil {
				return err
			}
			if err := st.Rename(name, newName); err != nil {
				fail(err)
			}
			fmt.Printf("Renamed %s to %s\n", name, accentStyle.Render(newName))
		case findModify:
			p, err := st.Find(name)
			if err != nil {
				fail(err)
			}
			tags := p.Tags.Clone()
			if err := chooseTags(st, tags); err != nil {
				return err
			}
			if err := st.Modify(name, tags); err != nil {
				fail(err)
			}
			fmt.Printf("Tags for %s: %s\n", accentStyle.Render(name), tags)
		default:
			if err := st.Exec(name, configExecutor, findCommand); err != nil {
				fail(err)
			}
		}
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&findByCreated, "created", false, "order by creation time")
	findCmd.Flags().BoolVar(&findByName, "name", false, "order by name")
	findCmd.Flags().BoolVar(&findInvert, "invert", false, "reverse the order")
	findCmd.Flags().BoolVar(&findRename, "rename", false, "rename the selected project")
	findCmd.Flags().BoolVar(&findModify, "modify", false, "retag the selected project")
	findCmd.Flags().StringVarP(&findCommand, "command", "c", "", "command to run when opening (default: configured executor)")
}
