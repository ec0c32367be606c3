package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "leaguectl",
	Short: "Office FIFA league tracker",
	Long:  "Record match results and track standings, head-to-head records, and personal performance for a friendly FIFA league.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// .env is optional; it usually just carries ANTHROPIC_API_KEY.
	_ = godotenv.Load()

	defaultDB := filepath.Join(dataDir(), "league.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(performanceCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(adminCmd)
}

func dataDir() string {
	return filepath.Join(mustUserHome(), ".leaguectl")
}

// sessionPath derives the session file location from the database path, so a
// --db override gets its own login state.
func sessionPath() string {
	return filepath.Join(filepath.Dir(dbPath), "session.json")
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// ensureDBDir creates the directory holding the database.
func ensureDBDir() error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	return nil
}
