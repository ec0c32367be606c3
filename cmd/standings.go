package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

var standingsView string

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the league table",
	Long: `Show the league under one of three ranking views:

  normalised  regression-adjusted points per game plus a bounded
              goal-difference bonus (the default, fairest for uneven
              match counts)
  ppg         raw points per game
  table       classic table: raw points, then GD, then GF`,
	Args: cobra.NoArgs,
	RunE: runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsView, "view", "normalised", "ranking view: normalised|ppg|table")
}

func parseView(s string) (stats.View, error) {
	switch s {
	case "normalised", "normalized":
		return stats.ViewNormalised, nil
	case "ppg":
		return stats.ViewPPG, nil
	case "table":
		return stats.ViewTable, nil
	}
	return 0, fmt.Errorf("unknown view %q: want normalised, ppg, or table", s)
}

func runStandings(cmd *cobra.Command, args []string) error {
	view, err := parseView(standingsView)
	if err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	players, matches, err := loadLeague(db)
	if err != nil {
		return err
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players yet. Run 'leaguectl player add <name>' to add one.")
		return nil
	}

	derived := stats.Recompute(players, matches)
	report.PrintStandings(os.Stdout, stats.Rank(derived, view), view)
	report.PrintLeader(os.Stdout, derived, view)
	return nil
}
