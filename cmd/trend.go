package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

var trendCmd = &cobra.Command{
	Use:   "trend <player>",
	Short: "Chronological normalised-score trajectory for a player",
	Long: `Replay a player's match history oldest first and show how their
normalised ranking score evolved after each result.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrend,
}

func runTrend(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	p, err := db.FindPlayer(args[0])
	if err != nil {
		return err
	}
	matches, err := db.ListMatchesForPlayer(p.ID)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded for", p.Name)
		return nil
	}

	report.PrintTrend(os.Stdout, p.Name, buildTrajectory(p.ID, matches))
	return nil
}

// buildTrajectory replays the player's matches and reconstructs the
// normalised score from cumulative totals after each one. Reconstructing
// from raw (played, points, gd) triples matches what a live recompute of the
// same point in history would produce.
func buildTrajectory(playerID string, matches []model.Match) []report.TrendRow {
	var played, points, gd int
	rows := make([]report.TrendRow, 0, len(matches))

	for _, m := range stats.Chronological(matches) {
		var mine, theirs int
		if m.Player1ID == playerID {
			mine, theirs = m.Score1, m.Score2
		} else {
			mine, theirs = m.Score2, m.Score1
		}

		played++
		gd += mine - theirs
		var outcome model.Outcome
		switch {
		case mine > theirs:
			points += 3
			outcome = model.OutcomeWin
		case mine < theirs:
			outcome = model.OutcomeLoss
		default:
			points++
			outcome = model.OutcomeDraw
		}

		rows = append(rows, report.TrendRow{
			TimestampMS: m.TimestampMS,
			Outcome:     outcome,
			Played:      played,
			Points:      points,
			GoalDiff:    gd,
			Score:       stats.NormalisedScoreFromTotals(played, points, gd),
		})
	}
	return rows
}
