// Rename command for the wb CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a project and its backing directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		if err := st.Rename(args[0], args[1]); err != nil {
			fail(err)
		}
		fmt.Printf("Renamed %s to %s\n", args[0], accentStyle.Render(args[1]))
		return nil
	},
}
