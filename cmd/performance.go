package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

var performanceDays int

var performanceCmd = &cobra.Command{
	Use:   "performance <player>",
	Short: "Career record, streaks, and a daily results histogram for one player",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerformance,
}

func init() {
	performanceCmd.Flags().IntVar(&performanceDays, "days", 30, "histogram window in days")
}

func runPerformance(cmd *cobra.Command, args []string) error {
	if performanceDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	p, err := db.FindPlayer(args[0])
	if err != nil {
		return err
	}
	matches, err := db.ListMatches()
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}

	perf := stats.Performance(p.ID, matches)
	report.PrintPerformance(os.Stdout, perf, p.Name)
	if perf.Played > 0 {
		buckets := stats.Histogram(p.ID, matches, performanceDays, time.Now())
		report.PrintHistogram(os.Stdout, buckets)
	}
	return nil
}
