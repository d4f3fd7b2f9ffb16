// Package commands implements the loopforge CLI's command tree.
package commands

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	debug      bool
)

// RootCmd is the base command invoked when loopforge is run without a
// subcommand.
var RootCmd = &cobra.Command{
	Use:   "loopforge",
	Short: "loopforge - CFG loop-recognition benchmark harness",
	Long: `loopforge builds synthetic control-flow graphs of known loop structure
and drives them through two loop-recognition engines, Tarjan's classic
SCC decomposition and a divide-and-conquer Forward/Backward-Trim engine,
reporting loop counts, timings, and cross-engine agreement.

Commands:
  run      Run every configured scenario through every configured engine
  scale    Run the configured scaling sweep
  version  Print the module's version string

Use "loopforge [command] --help" for more information about a command.`,
}

// Execute runs the command tree.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML scenario config (defaults to the built-in sweep)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "dump each resulting loop structure graph to stderr")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "additionally dump full loop-structure-graph internals via go-spew")

	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(scaleCmd)
	RootCmd.AddCommand(versionCmd)
}
