// Root command for the wb CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/workbench/internal/paths"
	"github.com/mesh-intelligence/workbench/pkg/workbench"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagRoot      string
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configRoot     string
	configExecutor string
)

var rootCmd = &cobra.Command{
	Use:     "wb",
	Short:   "Workbench bookmarks the project directories you work in",
	Version: workbench.Version,
	Long: `Workbench treats subdirectories of a configured root as projects. It
attaches tags and timestamps to each one, keeps them sorted by recency,
and opens a project by spawning a command inside its directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Version needs no configuration.
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configRoot = cfg.GetString(cfgKeyRoot)
		configExecutor = cfg.GetString(cfgKeyExecutor)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "projects root directory (default: ~/projects)")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveRoot returns the projects root following the precedence chain:
// --root flag > config.yaml root > WORKBENCH_ROOT env > ~/projects.
func resolveRoot() (string, error) {
	return paths.ResolveRoot(flagRoot, configRoot)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > WORKBENCH_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
