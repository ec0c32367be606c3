package storage

import (
	"errors"
	"testing"

	"github.com/pable/leaguectl/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedPlayer(t *testing.T, db *DB, id, name string, createdAt int64) {
	t.Helper()
	if err := db.InsertPlayer(model.Player{ID: id, Name: name}, createdAt); err != nil {
		t.Fatalf("InsertPlayer %s: %v", name, err)
	}
}

func TestPlayerInsertListDelete(t *testing.T) {
	db := openMemDB(t)

	seedPlayer(t, db, "p1", "Alice", 100)
	seedPlayer(t, db, "p2", "Bob", 200)

	players, err := db.ListPlayers()
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	// Creation order.
	if players[0].Name != "Alice" || players[1].Name != "Bob" {
		t.Errorf("order = %s,%s; want Alice,Bob", players[0].Name, players[1].Name)
	}

	if err := db.DeletePlayer("p1"); err != nil {
		t.Fatalf("DeletePlayer: %v", err)
	}
	if err := db.DeletePlayer("p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestFindPlayer(t *testing.T) {
	db := openMemDB(t)
	seedPlayer(t, db, "p1", "Dan", 1)
	seedPlayer(t, db, "p2", "Danny", 2)
	seedPlayer(t, db, "p3", "Maya", 3)

	if p, err := db.FindPlayer("p3"); err != nil || p.Name != "Maya" {
		t.Errorf("by id: %v %v", p, err)
	}
	if p, err := db.FindPlayer("may"); err != nil || p.Name != "Maya" {
		t.Errorf("by case-insensitive prefix: %v %v", p, err)
	}
	// "Dan" prefixes both, but matches one name exactly.
	if p, err := db.FindPlayer("Dan"); err != nil || p.Name != "Dan" {
		t.Errorf("exact name over prefix: %v %v", p, err)
	}
	if _, err := db.FindPlayer("Da"); err == nil {
		t.Error("ambiguous prefix should error")
	}
	if _, err := db.FindPlayer("zoe"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown ref: got %v, want ErrNotFound", err)
	}
}

func TestMatchLogOrdering(t *testing.T) {
	db := openMemDB(t)
	seedPlayer(t, db, "p1", "Alice", 1)
	seedPlayer(t, db, "p2", "Bob", 2)

	// Equal timestamps must come back in insertion order.
	matches := []model.Match{
		{ID: "m1", TimestampMS: 500, Player1ID: "p1", Player2ID: "p2", Score1: 1, Score2: 0},
		{ID: "m2", TimestampMS: 100, Player1ID: "p2", Player2ID: "p1", Score1: 2, Score2: 2},
		{ID: "m3", TimestampMS: 500, Player1ID: "p1", Player2ID: "p2", Score1: 0, Score2: 3},
	}
	for _, m := range matches {
		if err := db.InsertMatch(m); err != nil {
			t.Fatalf("InsertMatch %s: %v", m.ID, err)
		}
	}

	got, err := db.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(got) != 3 || got[0].ID != "m2" || got[1].ID != "m1" || got[2].ID != "m3" {
		ids := make([]string, len(got))
		for i, m := range got {
			ids[i] = m.ID
		}
		t.Errorf("order = %v, want [m2 m1 m3]", ids)
	}
}

func TestListMatchesForPlayer(t *testing.T) {
	db := openMemDB(t)
	seedPlayer(t, db, "p1", "Alice", 1)
	seedPlayer(t, db, "p2", "Bob", 2)
	seedPlayer(t, db, "p3", "Carol", 3)

	for _, m := range []model.Match{
		{ID: "m1", TimestampMS: 1, Player1ID: "p1", Player2ID: "p2"},
		{ID: "m2", TimestampMS: 2, Player1ID: "p2", Player2ID: "p3"},
		{ID: "m3", TimestampMS: 3, Player1ID: "p3", Player2ID: "p1"},
	} {
		if err := db.InsertMatch(m); err != nil {
			t.Fatalf("InsertMatch: %v", err)
		}
	}

	mine, err := db.ListMatchesForPlayer("p1")
	if err != nil {
		t.Fatalf("ListMatchesForPlayer: %v", err)
	}
	if len(mine) != 2 || mine[0].ID != "m1" || mine[1].ID != "m3" {
		t.Errorf("p1 matches = %v, want m1,m3", mine)
	}
}

func TestSetMatchCommentary(t *testing.T) {
	db := openMemDB(t)
	seedPlayer(t, db, "p1", "Alice", 1)
	seedPlayer(t, db, "p2", "Bob", 2)
	m := model.Match{ID: "m1", TimestampMS: 1, Player1ID: "p1", Player2ID: "p2", Score1: 4, Score2: 0}
	if err := db.InsertMatch(m); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	if err := db.SetMatchCommentary("m1", "What a demolition."); err != nil {
		t.Fatalf("SetMatchCommentary: %v", err)
	}
	got, _ := db.ListMatches()
	if got[0].Commentary != "What a demolition." {
		t.Errorf("commentary = %q", got[0].Commentary)
	}
	if err := db.SetMatchCommentary("nope", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown match: got %v, want ErrNotFound", err)
	}
}

func TestReplaceAll(t *testing.T) {
	db := openMemDB(t)
	seedPlayer(t, db, "old", "Old", 1)
	if err := db.InsertMatch(model.Match{ID: "om", TimestampMS: 1, Player1ID: "old", Player2ID: "old"}); err != nil {
		t.Fatalf("InsertMatch: %v", err)
	}

	players := []model.Player{{ID: "p1", Name: "Alice"}, {ID: "p2", Name: "Bob"}}
	matches := []model.Match{{ID: "m1", TimestampMS: 10, Player1ID: "p1", Player2ID: "p2", Score1: 1, Score2: 1}}
	if err := db.ReplaceAll(players, matches, 1000); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	gotPlayers, _ := db.ListPlayers()
	gotMatches, _ := db.ListMatches()
	if len(gotPlayers) != 2 || len(gotMatches) != 1 {
		t.Errorf("after import: %d players, %d matches; want 2, 1", len(gotPlayers), len(gotMatches))
	}
	if gotPlayers[0].Name != "Alice" || gotPlayers[1].Name != "Bob" {
		t.Errorf("import order lost: %v", gotPlayers)
	}
}

func TestAdminAndAudit(t *testing.T) {
	db := openMemDB(t)

	if err := db.InsertAdmin(model.Admin{ID: "a1", Name: "commissioner"}, "hash-1"); err != nil {
		t.Fatalf("InsertAdmin: %v", err)
	}
	admins, hashes, err := db.ListAdminHashes()
	if err != nil {
		t.Fatalf("ListAdminHashes: %v", err)
	}
	if len(admins) != 1 || admins[0].Name != "commissioner" || hashes[0] != "hash-1" {
		t.Errorf("admins = %v, hashes = %v", admins, hashes)
	}

	entries := []model.LoginAuditEntry{
		{AdminID: "a1", AdminName: "commissioner", LoginAtMS: 100, Success: true, Host: "laptop"},
		{AdminName: "UNKNOWN", LoginAtMS: 200, Success: false, Host: "laptop"},
	}
	for _, e := range entries {
		if err := db.InsertLoginAudit(e); err != nil {
			t.Fatalf("InsertLoginAudit: %v", err)
		}
	}

	audit, err := db.ListLoginAudit(10)
	if err != nil {
		t.Fatalf("ListLoginAudit: %v", err)
	}
	if len(audit) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(audit))
	}
	// Newest first.
	if audit[0].Success || audit[0].AdminName != "UNKNOWN" {
		t.Errorf("first entry = %+v, want the failed attempt", audit[0])
	}
	if !audit[1].Success || audit[1].AdminID != "a1" {
		t.Errorf("second entry = %+v, want the successful login", audit[1])
	}
}
