package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/auth"
	"github.com/pable/leaguectl/internal/commentary"
	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/report"
	"github.com/pable/leaguectl/internal/storage"
)

var (
	matchCommentate bool
	matchModel      string
	matchAPIKey     string
	matchListPlayer string
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Record and browse match results",
}

var matchAddCmd = &cobra.Command{
	Use:   "add <player1> <player2> <score1>-<score2>",
	Short: "Record a result (admin)",
	Long: `Record a match result. Players can be referenced by id, exact name, or a
unique name prefix. The score is written home-away, e.g.:

  leaguectl match add alice bob 3-1`,
	Args: cobra.ExactArgs(3),
	RunE: runMatchAdd,
}

var matchListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the match log, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMatchList,
}

var matchRemoveCmd = &cobra.Command{
	Use:   "remove <match-id>",
	Short: "Remove a mistyped result (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatchRemove,
}

func init() {
	matchAddCmd.Flags().BoolVar(&matchCommentate, "commentary", false, "generate AI commentary for the result")
	matchAddCmd.Flags().StringVar(&matchModel, "model", commentary.DefaultModel, "Anthropic model for commentary")
	matchAddCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")
	matchListCmd.Flags().StringVar(&matchListPlayer, "player", "", "only matches involving this player")

	matchCmd.AddCommand(matchAddCmd)
	matchCmd.AddCommand(matchListCmd)
	matchCmd.AddCommand(matchRemoveCmd)
}

func runMatchAdd(cmd *cobra.Command, args []string) error {
	if _, err := auth.Require(sessionPath()); err != nil {
		return err
	}
	if err := ensureDBDir(); err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	p1, err := db.FindPlayer(args[0])
	if err != nil {
		return err
	}
	p2, err := db.FindPlayer(args[1])
	if err != nil {
		return err
	}
	if p1.ID == p2.ID {
		return fmt.Errorf("a match needs two different players")
	}
	score1, score2, err := parseScore(args[2])
	if err != nil {
		return err
	}

	m := model.Match{
		ID:          uuid.NewString(),
		TimestampMS: time.Now().UnixMilli(),
		Player1ID:   p1.ID,
		Player2ID:   p2.ID,
		Score1:      score1,
		Score2:      score2,
	}
	if err := db.InsertMatch(m); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Recorded %s %d - %d %s\n", p1.Name, score1, score2, p2.Name)

	if matchCommentate {
		// Commentary is garnish: the match is already saved, so any failure
		// here only costs the banter.
		line, err := generateCommentary(cmd, p1.Name, p2.Name, score1, score2)
		if err != nil {
			fmt.Fprintf(os.Stderr, "commentary skipped: %v\n", err)
			return nil
		}
		if err := db.SetMatchCommentary(m.ID, line); err != nil {
			fmt.Fprintf(os.Stderr, "commentary not saved: %v\n", err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "  %q\n", line)
	}
	return nil
}

func generateCommentary(cmd *cobra.Command, name1, name2 string, s1, s2 int) (string, error) {
	gen, err := commentary.NewGenerator(matchAPIKey, matchModel)
	if err != nil {
		return "", err
	}
	return gen.Generate(cmd.Context(), commentary.MatchResult{
		Player1Name: name1,
		Player2Name: name2,
		Score1:      s1,
		Score2:      s2,
	})
}

func runMatchList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	players, err := db.ListPlayers()
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}

	var matches []model.Match
	if matchListPlayer != "" {
		p, err := db.FindPlayer(matchListPlayer)
		if err != nil {
			return err
		}
		matches, err = db.ListMatchesForPlayer(p.ID)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
	} else {
		matches, err = db.ListMatches()
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches recorded yet. Run 'leaguectl match add' to record one.")
		return nil
	}

	report.PrintMatchList(os.Stdout, matches, nameIndex(players))
	return nil
}

func runMatchRemove(cmd *cobra.Command, args []string) error {
	if _, err := auth.Require(sessionPath()); err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.DeleteMatch(args[0]); err != nil {
		return fmt.Errorf("remove match %s: %w", args[0], err)
	}
	fmt.Fprintln(os.Stdout, "Match removed.")
	return nil
}

// parseScore splits "3-1" into its two non-negative halves.
func parseScore(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid score %q: want e.g. 3-1", s)
	}
	s1, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	s2, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid score %q: %w", s, err)
	}
	if s1 < 0 || s2 < 0 {
		return 0, 0, fmt.Errorf("scores must be non-negative")
	}
	return s1, s2, nil
}
