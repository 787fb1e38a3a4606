package main

import (
	"github.com/autokursai/landing-api/cmd"

	// Subcommands register themselves with the root command via init().
	_ "github.com/autokursai/landing-api/cmd/cli"
	_ "github.com/autokursai/landing-api/cmd/server"
)

// @title           Landing Page API
// @version         1.0
// @description     Visitor tracking, contact-form capture, and the admin dashboard API for the driving-school landing page.
// @BasePath        /
func main() {
	cmd.Execute()
}
