// Package auth gates write commands behind an admin password. Credentials
// live as bcrypt hashes in the store; a successful login drops a JSON session
// file next to the database, valid for 24 hours. Every attempt, failed or
// not, lands in the login audit trail.
package auth

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/storage"
)

// SessionTTL is how long a login stays valid.
const SessionTTL = 24 * time.Hour

// ErrBadCredentials is returned when no stored admin password matches.
var ErrBadCredentials = fmt.Errorf("invalid password")

// HashPassword bcrypt-hashes a new admin password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Login verifies the password against every stored admin hash, audits the
// attempt, and on success writes a session file and returns the admin.
func Login(db *storage.DB, sessionPath, password string) (model.Admin, error) {
	admins, hashes, err := db.ListAdminHashes()
	if err != nil {
		return model.Admin{}, fmt.Errorf("load admins: %w", err)
	}
	if len(admins) == 0 {
		return model.Admin{}, fmt.Errorf("no admins configured: run 'leaguectl admin add' first")
	}

	now := time.Now()
	var matched *model.Admin
	for i := range admins {
		if bcrypt.CompareHashAndPassword([]byte(hashes[i]), []byte(password)) == nil {
			matched = &admins[i]
			break
		}
	}

	entry := model.LoginAuditEntry{
		AdminName: "UNKNOWN",
		LoginAtMS: now.UnixMilli(),
		Host:      hostname(),
		UserAgent: userAgent(),
	}
	if matched != nil {
		entry.AdminID = matched.ID
		entry.AdminName = matched.Name
		entry.Success = true
	}
	if err := db.InsertLoginAudit(entry); err != nil {
		return model.Admin{}, fmt.Errorf("audit login: %w", err)
	}

	if matched == nil {
		return model.Admin{}, ErrBadCredentials
	}
	if err := db.TouchAdmin(matched.ID, now.UnixMilli()); err != nil {
		return model.Admin{}, fmt.Errorf("touch admin: %w", err)
	}
	if err := writeSession(sessionPath, *matched, now); err != nil {
		return model.Admin{}, err
	}
	return *matched, nil
}

// Logout removes the session file. Missing is fine.
func Logout(sessionPath string) error {
	if err := os.Remove(sessionPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// CurrentAdmin returns the logged-in admin, or ok=false when there is no
// valid session. Expired sessions are cleaned up on the way out.
func CurrentAdmin(sessionPath string) (model.Admin, bool) {
	s, err := readSession(sessionPath)
	if err != nil {
		return model.Admin{}, false
	}
	if time.Since(time.UnixMilli(s.IssuedAtMS)) > SessionTTL {
		os.Remove(sessionPath)
		return model.Admin{}, false
	}
	return s.Admin, true
}

// Require returns the current admin or an actionable error for write commands.
func Require(sessionPath string) (model.Admin, error) {
	admin, ok := CurrentAdmin(sessionPath)
	if !ok {
		return model.Admin{}, fmt.Errorf("admin access required: run 'leaguectl login' first")
	}
	return admin, nil
}

func hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return host
}

func userAgent() string {
	return fmt.Sprintf("leaguectl/%s-%s", runtime.GOOS, runtime.GOARCH)
}
