package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

var h2hRecent int

var h2hCmd = &cobra.Command{
	Use:   "h2h <playerA> <playerB>",
	Short: "Head-to-head record between two players",
	Args:  cobra.ExactArgs(2),
	RunE:  runH2H,
}

func init() {
	h2hCmd.Flags().IntVar(&h2hRecent, "recent", 5, "number of recent meetings to list")
}

func runH2H(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	a, err := db.FindPlayer(args[0])
	if err != nil {
		return err
	}
	b, err := db.FindPlayer(args[1])
	if err != nil {
		return err
	}
	if a.ID == b.ID {
		return fmt.Errorf("pick two different players")
	}

	players, matches, err := loadLeague(db)
	if err != nil {
		return err
	}

	h := stats.HeadToHead(a.ID, b.ID, matches)
	report.PrintHeadToHead(os.Stdout, h, a.Name, b.Name)
	report.PrintRecentMeetings(os.Stdout, h, nameIndex(players), h2hRecent)
	return nil
}
