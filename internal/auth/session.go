package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pable/leaguectl/internal/model"
)

// session is the on-disk login record.
type session struct {
	Admin      model.Admin `json:"admin"`
	IssuedAtMS int64       `json:"issued_at_ms"`
}

func writeSession(path string, admin model.Admin, now time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	data, err := json.Marshal(session{Admin: admin, IssuedAtMS: now.UnixMilli()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// Session grants write access; keep it owner-readable only.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func readSession(path string) (session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return session{}, err
	}
	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		return session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}
