package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pable/leaguectl/internal/auth"
	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/storage"
)

var exportOut string

// leagueFile is the JSON backup schema shared by export and import.
type leagueFile struct {
	ExportedAt string         `json:"exported_at"`
	Players    []playerRecord `json:"players"`
	Matches    []matchRecord  `json:"matches"`
}

type playerRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type matchRecord struct {
	ID          string `json:"id"`
	TimestampMS int64  `json:"timestamp"`
	Player1ID   string `json:"player1_id"`
	Player2ID   string `json:"player2_id"`
	Score1      int    `json:"score1"`
	Score2      int    `json:"score2"`
	Commentary  string `json:"commentary,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export players and the match log as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore players and matches from an export file (admin, replaces everything)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	players, matches, err := loadLeague(db)
	if err != nil {
		return err
	}

	doc := leagueFile{
		ExportedAt: time.Now().Format(time.RFC3339),
		Players:    make([]playerRecord, 0, len(players)),
		Matches:    make([]matchRecord, 0, len(matches)),
	}
	for _, p := range players {
		doc.Players = append(doc.Players, playerRecord{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL})
	}
	for _, m := range matches {
		doc.Matches = append(doc.Matches, matchRecord{
			ID: m.ID, TimestampMS: m.TimestampMS,
			Player1ID: m.Player1ID, Player2ID: m.Player2ID,
			Score1: m.Score1, Score2: m.Score2, Commentary: m.Commentary,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if exportOut == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Exported %d players and %d matches to %s\n",
		len(doc.Players), len(doc.Matches), exportOut)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if _, err := auth.Require(sessionPath()); err != nil {
		return err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	var doc leagueFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode import file: %w", err)
	}

	players := make([]model.Player, 0, len(doc.Players))
	for _, p := range doc.Players {
		if p.ID == "" || p.Name == "" {
			return fmt.Errorf("import: player with empty id or name")
		}
		players = append(players, model.Player{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL})
	}
	matches := make([]model.Match, 0, len(doc.Matches))
	for _, m := range doc.Matches {
		if m.Score1 < 0 || m.Score2 < 0 {
			return fmt.Errorf("import: match %s has a negative score", m.ID)
		}
		matches = append(matches, model.Match{
			ID: m.ID, TimestampMS: m.TimestampMS,
			Player1ID: m.Player1ID, Player2ID: m.Player2ID,
			Score1: m.Score1, Score2: m.Score2, Commentary: m.Commentary,
		})
	}

	if err := ensureDBDir(); err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceAll(players, matches, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d players and %d matches\n", len(players), len(matches))
	return nil
}
