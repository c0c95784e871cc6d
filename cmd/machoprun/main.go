package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "machoprun: %v\n", err)
		os.Exit(1)
	}
}

// Flag parsing is disabled on purpose: machoprun has no flags of its own,
// and everything on the command line belongs to the linker.
var rootCmd = &cobra.Command{
	Use:   "machoprun [linker arguments...]",
	Short: "Build the machop linker and run it",
	Long: `machoprun rebuilds the machop linker with cargo before every invocation,
then replaces itself with the freshly built binary so machop's exit status,
output, and signals are the caller's. Every argument is forwarded to machop
verbatim.

Environment:
  MACHOP_DEBUG=lldb   run machop under lldb instead of directly
  RUST_LOG=<filter>   override the default log filter (warn,machop=debug)`,
	Version:            Version,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLaunch,
}
