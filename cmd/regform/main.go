// Regform is a terminal registration form with live validation.
//
// It presents a four-field registration form (name, email, password, phone)
// as a full-screen TUI with real-time per-field feedback, and gates
// submission until every field is valid. A non-interactive check command
// validates values from the command line for scripting.
//
// Usage:
//
//	regform [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'regform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/regform/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "regform",
	Short: "Terminal registration form with live validation",
	Long: `A terminal registration form with real-time validation feedback.

Presents name, email, password and phone fields with per-field feedback
as you type, and enables submission only once every field is valid.

If no command is specified, the interactive form will launch.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the form when no subcommand provided
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("regform %s (commit: %s)\n", version.Version, version.Commit)
	},
}
