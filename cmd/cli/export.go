// Package cli provides offline maintenance subcommands that work straight
// against the SQLite database, without a running server.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/autokursai/landing-api/cmd"
	"github.com/autokursai/landing-api/internal/config"
	"github.com/autokursai/landing-api/internal/repo"
)

var exportOut string

// ExportCmd dumps all contact-form submissions as CSV.
var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export contact-form submissions as CSV",
	Long: `Reads the configured SQLite database and writes every contact-form
submission as CSV, to stdout or to the file given with --out.`,
	RunE: runExport,
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write CSV to this file instead of stdout")
	cmd.RootCmd.AddCommand(ExportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}

	csv, err := repo.SubmissionsCSV(context.Background(), db)
	if err != nil {
		return fmt.Errorf("export submissions: %w", err)
	}

	if exportOut == "" {
		fmt.Println(csv)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(csv+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Printf("wrote %s\n", exportOut)
	return nil
}
