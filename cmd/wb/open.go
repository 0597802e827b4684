// Open command spawns a command inside a project directory.
package main

import (
	"github.com/spf13/cobra"
)

var openCommand string

var openCmd = &cobra.Command{
	Use:     "open <name>",
	Aliases: []string{"exec"},
	Short:   "Open a project by spawning a command inside it",
	Long: `Open refreshes the project's accessed time, then spawns a command with
the project directory as its working directory and waits for it to exit.
The command defaults to the configured executor; occurrences of {} in the
command are replaced with the absolute project path. The command is split
on single spaces, with no shell quoting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		if err := st.Exec(args[0], configExecutor, openCommand); err != nil {
			fail(err)
		}
		return nil
	},
}

func init() {
	openCmd.Flags().StringVarP(&openCommand, "command", "c", "", "command to run (default: configured executor)")
}
