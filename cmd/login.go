package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pable/leaguectl/internal/auth"
	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/storage"
)

var auditLimit int

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a league admin",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the admin session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Logout(sessionPath()); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current admin session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		admin, ok := auth.CurrentAdmin(sessionPath())
		if !ok {
			fmt.Fprintln(os.Stdout, "Not logged in.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Logged in as %s\n", admin.Name)
		return nil
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent admin login attempts",
	Args:  cobra.NoArgs,
	RunE:  runAudit,
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin credentials",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an admin with a new password",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminAdd,
}

func init() {
	auditCmd.Flags().IntVar(&auditLimit, "limit", 20, "number of entries to show")
	adminCmd.AddCommand(adminAddCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	admin, err := auth.Login(db, sessionPath(), password)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Logged in as %s (valid %s)\n", admin.Name, auth.SessionTTL)
	return nil
}

func runAudit(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	entries, err := db.ListLoginAudit(auditLimit)
	if err != nil {
		return fmt.Errorf("list audit: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No login attempts recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-14s  %-7s  %-12s  %s\n", "WHEN", "ADMIN", "RESULT", "HOST", "AGENT")
	for _, e := range entries {
		result := "ok"
		if !e.Success {
			result = "FAILED"
		}
		fmt.Fprintf(os.Stdout, "%-19s  %-14s  %-7s  %-12s  %s\n",
			time.UnixMilli(e.LoginAtMS).Format("2006-01-02 15:04:05"),
			e.AdminName, result, e.Host, e.UserAgent)
	}
	return nil
}

func runAdminAdd(cmd *cobra.Command, args []string) error {
	if err := ensureDBDir(); err != nil {
		return err
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	// The first admin bootstraps itself; adding more requires a session.
	admins, _, err := db.ListAdminHashes()
	if err != nil {
		return fmt.Errorf("load admins: %w", err)
	}
	if len(admins) > 0 {
		if _, err := auth.Require(sessionPath()); err != nil {
			return err
		}
	}

	password, err := readPassword("New password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.Admin{ID: uuid.NewString(), Name: args[0]}
	if err := db.InsertAdmin(admin, hash); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Admin %s created.\n", admin.Name)
	return nil
}

// readPassword prompts without echo when stdin is a terminal, and falls back
// to a plain line read otherwise (tests, pipes).
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(data), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return line, nil
}
