// Tags command prints the accumulated tag index.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Print every tag known to the store, one per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		for _, tag := range st.Tags().Sorted() {
			fmt.Println(tag)
		}
		return nil
	},
}
