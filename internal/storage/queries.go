package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/pable/leaguectl/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ---- Players ----

// InsertPlayer stores a new league member.
func (db *DB) InsertPlayer(p model.Player, createdAtMS int64) error {
	_, err := db.conn.Exec(`
		INSERT INTO players(id, name, avatar_url, created_at)
		VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.AvatarURL, createdAtMS,
	)
	if err != nil {
		return fmt.Errorf("insert player %s: %w", p.Name, err)
	}
	return nil
}

// ListPlayers returns all players in creation order, counters zeroed. Callers
// derive the counters with stats.Recompute.
func (db *DB) ListPlayers() ([]model.Player, error) {
	rows, err := db.conn.Query(`
		SELECT id, name, avatar_url FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarURL); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// GetPlayer looks up a player by exact id.
func (db *DB) GetPlayer(id string) (model.Player, error) {
	var p model.Player
	err := db.conn.QueryRow(`
		SELECT id, name, avatar_url FROM players WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.AvatarURL)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Player{}, ErrNotFound
	}
	return p, err
}

// FindPlayer resolves an id, exact name, or unique name prefix
// (case-insensitive) to a player. Ambiguous prefixes are an error.
func (db *DB) FindPlayer(ref string) (model.Player, error) {
	if p, err := db.GetPlayer(ref); err == nil {
		return p, nil
	}
	rows, err := db.conn.Query(`
		SELECT id, name, avatar_url FROM players
		WHERE name LIKE ? COLLATE NOCASE ORDER BY name`, ref+"%")
	if err != nil {
		return model.Player{}, err
	}
	defer rows.Close()

	var found []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarURL); err != nil {
			return model.Player{}, err
		}
		found = append(found, p)
	}
	if err := rows.Err(); err != nil {
		return model.Player{}, err
	}
	switch len(found) {
	case 0:
		return model.Player{}, fmt.Errorf("player %q: %w", ref, ErrNotFound)
	case 1:
		return found[0], nil
	}
	// An exact name wins over a longer prefix match (e.g. "Dan" vs "Danny").
	for _, p := range found {
		if p.Name == ref {
			return p, nil
		}
	}
	return model.Player{}, fmt.Errorf("player %q is ambiguous (%d matches)", ref, len(found))
}

// DeletePlayer removes a player. Their matches stay in the log; the stats
// engine skips matches whose participants are unknown.
func (db *DB) DeletePlayer(id string) error {
	res, err := db.conn.Exec(`DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Matches ----

// InsertMatch appends a result to the match log.
func (db *DB) InsertMatch(m model.Match) error {
	_, err := db.conn.Exec(`
		INSERT INTO matches(id, timestamp_ms, player1_id, player2_id, score1, score2, commentary)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.TimestampMS, m.Player1ID, m.Player2ID, m.Score1, m.Score2, m.Commentary,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

// ListMatches returns the full log oldest first, insertion (rowid) order
// breaking timestamp ties.
func (db *DB) ListMatches() ([]model.Match, error) {
	return db.queryMatches(`
		SELECT id, timestamp_ms, player1_id, player2_id, score1, score2, commentary
		FROM matches ORDER BY timestamp_ms, rowid`)
}

// ListMatchesForPlayer returns the matches a player took part in, oldest first.
func (db *DB) ListMatchesForPlayer(playerID string) ([]model.Match, error) {
	return db.queryMatches(`
		SELECT id, timestamp_ms, player1_id, player2_id, score1, score2, commentary
		FROM matches WHERE player1_id = ? OR player2_id = ?
		ORDER BY timestamp_ms, rowid`, playerID, playerID)
}

func (db *DB) queryMatches(query string, args ...any) ([]model.Match, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.TimestampMS, &m.Player1ID, &m.Player2ID,
			&m.Score1, &m.Score2, &m.Commentary); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// SetMatchCommentary attaches generated commentary to an existing match.
func (db *DB) SetMatchCommentary(matchID, commentary string) error {
	res, err := db.conn.Exec(`UPDATE matches SET commentary = ? WHERE id = ?`, commentary, matchID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMatch removes a mistyped result from the log.
func (db *DB) DeleteMatch(id string) error {
	res, err := db.conn.Exec(`DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll swaps the entire players and matches tables for the given data
// in one transaction. Used by import to restore a backup atomically.
func (db *DB) ReplaceAll(players []model.Player, matches []model.Match, nowMS int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM matches`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM players`); err != nil {
		return err
	}

	pstmt, err := tx.Prepare(`
		INSERT INTO players(id, name, avatar_url, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer pstmt.Close()
	for i, p := range players {
		// Preserve input order as creation order.
		if _, err := pstmt.Exec(p.ID, p.Name, p.AvatarURL, nowMS+int64(i)); err != nil {
			return fmt.Errorf("import player %s: %w", p.Name, err)
		}
	}

	mstmt, err := tx.Prepare(`
		INSERT INTO matches(id, timestamp_ms, player1_id, player2_id, score1, score2, commentary)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer mstmt.Close()
	for _, m := range matches {
		if _, err := mstmt.Exec(m.ID, m.TimestampMS, m.Player1ID, m.Player2ID,
			m.Score1, m.Score2, m.Commentary); err != nil {
			return fmt.Errorf("import match %s: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

// ---- Admins & audit ----

// InsertAdmin stores an admin with an already-hashed password.
func (db *DB) InsertAdmin(a model.Admin, passwordHash string) error {
	_, err := db.conn.Exec(`
		INSERT INTO admins(id, name, password_hash) VALUES (?, ?, ?)`,
		a.ID, a.Name, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("insert admin %s: %w", a.Name, err)
	}
	return nil
}

// ListAdminHashes returns every admin with their password hash, for login
// verification against all stored passwords.
func (db *DB) ListAdminHashes() ([]model.Admin, []string, error) {
	rows, err := db.conn.Query(`SELECT id, name, password_hash FROM admins ORDER BY name`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var admins []model.Admin
	var hashes []string
	for rows.Next() {
		var a model.Admin
		var hash string
		if err := rows.Scan(&a.ID, &a.Name, &hash); err != nil {
			return nil, nil, err
		}
		admins = append(admins, a)
		hashes = append(hashes, hash)
	}
	return admins, hashes, rows.Err()
}

// TouchAdmin records a successful credential use.
func (db *DB) TouchAdmin(id string, nowMS int64) error {
	_, err := db.conn.Exec(`UPDATE admins SET last_used_at = ? WHERE id = ?`, nowMS, id)
	return err
}

// InsertLoginAudit appends one attempt to the audit trail.
func (db *DB) InsertLoginAudit(e model.LoginAuditEntry) error {
	var adminID any
	if e.AdminID != "" {
		adminID = e.AdminID
	}
	_, err := db.conn.Exec(`
		INSERT INTO login_audit(admin_id, admin_name_snapshot, login_at_ms, success, host, user_agent)
		VALUES (?, ?, ?, ?, ?, ?)`,
		adminID, e.AdminName, e.LoginAtMS, boolInt(e.Success), e.Host, e.UserAgent,
	)
	return err
}

// ListLoginAudit returns the most recent attempts, newest first.
func (db *DB) ListLoginAudit(limit int) ([]model.LoginAuditEntry, error) {
	rows, err := db.conn.Query(`
		SELECT id, COALESCE(admin_id, ''), admin_name_snapshot, login_at_ms, success, host, user_agent
		FROM login_audit ORDER BY login_at_ms DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LoginAuditEntry
	for rows.Next() {
		var e model.LoginAuditEntry
		var success int
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminName, &e.LoginAtMS,
			&success, &e.Host, &e.UserAgent); err != nil {
			return nil, err
		}
		e.Success = success != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
