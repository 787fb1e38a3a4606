package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/autokursai/landing-api/cmd"
	"github.com/autokursai/landing-api/internal/config"
	"github.com/autokursai/landing-api/internal/repo"
)

// StatsCmd prints the visitor counters shown on the admin dashboard.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print visitor statistics",
	Long:  `Reads the configured SQLite database and prints unique visitor, total visit, and today's visitor counts.`,
	RunE:  runStats,
}

func init() {
	cmd.RootCmd.AddCommand(StatsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DBPath, err)
	}

	stats, err := repo.VisitorStats(context.Background(), db, time.Now())
	if err != nil {
		return fmt.Errorf("read visitor stats: %w", err)
	}

	fmt.Printf("Unique visitors: %d\n", stats.TotalUnique)
	fmt.Printf("Total visits:    %d\n", stats.TotalVisits)
	fmt.Printf("Today:           %d\n", stats.TodayVisitors)
	return nil
}
