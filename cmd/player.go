package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/auth"
	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/stats"
	"github.com/pable/leaguectl/internal/storage"
)

var playerAvatarURL string

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage league players",
}

var playerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a player to the league (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerAdd,
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List players with their current records",
	Args:  cobra.NoArgs,
	RunE:  runPlayerList,
}

var playerRemoveCmd = &cobra.Command{
	Use:   "remove <player>",
	Short: "Remove a player (admin); their matches stay in the log",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayerRemove,
}

func init() {
	playerAddCmd.Flags().StringVar(&playerAvatarURL, "avatar", "", "profile image URL")

	playerCmd.AddCommand(playerAddCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerRemoveCmd)
}

func runPlayerAdd(cmd *cobra.Command, args []string) error {
	if _, err := auth.Require(sessionPath()); err != nil {
		return err
	}
	name := args[0]
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	if err := ensureDBDir(); err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	p := model.Player{
		ID:        uuid.NewString(),
		Name:      name,
		AvatarURL: playerAvatarURL,
	}
	if err := db.InsertPlayer(p, time.Now().UnixMilli()); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Added %s (%s)\n", p.Name, p.ID)
	return nil
}

func runPlayerList(cmd *cobra.Command, args []string) error {
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
	fmt.Fprintf(os.Stdout, "%-36s  %-16s  %3s  %3s  %3s  %3s  %5s\n",
		"ID", "NAME", "P", "W", "D", "L", "PTS")
	for _, p := range derived {
		fmt.Fprintf(os.Stdout, "%-36s  %-16s  %3d  %3d  %3d  %3d  %5d\n",
			p.ID, p.Name, p.Played, p.Wins, p.Draws, p.Losses, p.Points)
	}
	return nil
}

func runPlayerRemove(cmd *cobra.Command, args []string) error {
	if _, err := auth.Require(sessionPath()); err != nil {
		return err
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
	if err := db.DeletePlayer(p.ID); err != nil {
		return fmt.Errorf("remove player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Removed %s\n", p.Name)
	return nil
}

// loadLeague loads the full snapshot the stats engine needs.
func loadLeague(db *storage.DB) ([]model.Player, []model.Match, error) {
	players, err := db.ListPlayers()
	if err != nil {
		return nil, nil, fmt.Errorf("list players: %w", err)
	}
	matches, err := db.ListMatches()
	if err != nil {
		return nil, nil, fmt.Errorf("list matches: %w", err)
	}
	return players, matches, nil
}

// nameIndex maps player ids to display names.
func nameIndex(players []model.Player) map[string]string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names
}
