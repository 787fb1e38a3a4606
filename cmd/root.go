// Package cmd defines the root of the command tree. Subcommands live in
// cmd/server and cmd/cli and attach themselves via their own init()
// functions, which keeps the root free of import cycles.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is stamped into traces and the serve banner. Overridable at build
// time with -ldflags "-X github.com/autokursai/landing-api/cmd.Version=...".
var Version = "1.0.0"

// RootCmd is the base command; `serve`, `export`, and `stats` hang off it.
var RootCmd = &cobra.Command{
	Use:   "landing-api",
	Short: "Backend for the driving-school landing page",
	Long: `Backend for the driving-school landing page: visitor tracking with
device and city classification, contact-form capture, and a
password-protected admin dashboard over SQLite.`,
}

// Execute runs the command tree. Called from main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
