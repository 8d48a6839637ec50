package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tsplain/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tsplain",
	Short: "TypeScript compiler diagnostics, explained",
	Long:  `tsplain reads tsc output and turns each error into plain-language advice`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-errors", 0, "maximum number of diagnostics to explain (0 = unlimited)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
