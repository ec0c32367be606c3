package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

// summaryCmd is the dashboard view: league-wide KPIs plus the leader under
// each ranking formula.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "League-wide overview",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	players, matches, err := loadLeague(db)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded yet. Run 'leaguectl match add' to record one.")
		return nil
	}

	report.PrintLeague(os.Stdout, stats.League(matches))

	derived := stats.Recompute(players, matches)
	fmt.Fprintf(os.Stdout, "\n  Players         : %d\n\n", len(players))
	for _, view := range []stats.View{stats.ViewNormalised, stats.ViewPPG, stats.ViewTable} {
		if leader, ok := stats.Leader(derived, view); ok {
			fmt.Fprintf(os.Stdout, "  Leader (%-10s): %s\n", view, leader.Name)
		}
	}
	return nil
}
