package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the module's version string, overridable at link time via
// -ldflags "-X github.com/gophloop/loopforge/cmd/loopforge/commands.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the module's version string",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(Version)
		return nil
	},
}
