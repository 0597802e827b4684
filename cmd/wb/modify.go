// Modify command updates a project's tags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workbench/pkg/types"
)

var modifyTags string

var modifyCmd = &cobra.Command{
	Use:   "modify <name>",
	Short: "Replace a project's tags",
	Long: `Modify replaces the named project's tag set. With --tags the new set is
taken from the flag; otherwise an interactive prompt starts from the
project's current tags, where entering an existing tag removes it and a new
tag adds it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		st, err := loadStore()
		if err != nil {
			return err
		}

		var tags types.TagSet
		if cmd.Flags().Changed("tags") {
			tags, err = parseTags(modifyTags)
			if err != nil {
				return err
			}
		} else {
			p, err := st.Find(name)
			if err != nil {
				fail(err)
			}
			tags = p.Tags.Clone()
			if err := chooseTags(st, tags); err != nil {
				return err
			}
		}

		if err := st.Modify(name, tags); err != nil {
			fail(err)
		}
		fmt.Printf("Tags for %s: %s\n", accentStyle.Render(name), tags)
		return nil
	},
}

func init() {
	modifyCmd.Flags().StringVar(&modifyTags, "tags", "", "comma-separated replacement tags")
}
