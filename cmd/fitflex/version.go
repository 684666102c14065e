package fitflex

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "fitflex %s\n", version)
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "go %s\n", info.GoVersion)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
