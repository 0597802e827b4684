// Create command for the wb CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createTags        string
	createInteractive bool
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project under the projects root",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st, err := loadStore()
		if err != nil {
			return err
		}

		tags, err := parseTags(createTags)
		if err != nil {
			return err
		}
		if createInteractive {
			if err := chooseTags(st, tags); err != nil {
				return err
			}
		}

		if err := st.Create(name, tags); err != nil {
			fail(err)
		}
		fmt.Printf("Created project %s at %s\n", accentStyle.Render(name), st.Path(name))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTags, "tags", "", "comma-separated tags")
	createCmd.Flags().BoolVarP(&createInteractive, "interactive", "i", false, "choose tags interactively")
}
