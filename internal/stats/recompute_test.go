package stats

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/pable/leaguectl/internal/model"
)

// IDs for test players.
const (
	alice = "p-alice"
	bob   = "p-bob"
	carol = "p-carol"
	dave  = "p-dave"
)

// makePlayers builds zeroed players with the given ids (name = id).
func makePlayers(ids ...string) []model.Player {
	players := make([]model.Player, len(ids))
	for i, id := range ids {
		players[i] = model.Player{ID: id, Name: id}
	}
	return players
}

// makeMatch builds a match with an id derived from the timestamp.
func makeMatch(ts int64, p1, p2 string, s1, s2 int) model.Match {
	return model.Match{
		ID:          fmt.Sprintf("m%d", ts),
		TimestampMS: ts,
		Player1ID:   p1,
		Player2ID:   p2,
		Score1:      s1,
		Score2:      s2,
	}
}

// findPlayer returns the player with the given id, failing the test if absent.
func findPlayer(t *testing.T, players []model.Player, id string) model.Player {
	t.Helper()
	for _, p := range players {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("player %q not found", id)
	return model.Player{}
}

func TestRecompute_BasicAggregation(t *testing.T) {
	players := makePlayers(alice, bob)
	matches := []model.Match{
		makeMatch(1, alice, bob, 3, 1),
		makeMatch(2, bob, alice, 2, 2),
	}

	out := Recompute(players, matches)

	a := findPlayer(t, out, alice)
	if a.Played != 2 || a.Wins != 1 || a.Draws != 1 || a.Losses != 0 {
		t.Errorf("alice record = P%d W%d D%d L%d, want P2 W1 D1 L0", a.Played, a.Wins, a.Draws, a.Losses)
	}
	if a.GoalsFor != 5 || a.GoalsAgainst != 3 || a.GoalDiff != 2 {
		t.Errorf("alice goals = %d/%d/%d, want 5/3/+2", a.GoalsFor, a.GoalsAgainst, a.GoalDiff)
	}
	if a.Points != 4 {
		t.Errorf("alice points = %d, want 4", a.Points)
	}
	if want := []model.Outcome{model.OutcomeWin, model.OutcomeDraw}; !reflect.DeepEqual(a.Form, want) {
		t.Errorf("alice form = %v, want %v", a.Form, want)
	}

	b := findPlayer(t, out, bob)
	if b.Played != 2 || b.Wins != 0 || b.Draws != 1 || b.Losses != 1 {
		t.Errorf("bob record = P%d W%d D%d L%d, want P2 W0 D1 L1", b.Played, b.Wins, b.Draws, b.Losses)
	}
	if b.GoalsFor != 3 || b.GoalsAgainst != 5 || b.GoalDiff != -2 || b.Points != 1 {
		t.Errorf("bob goals/points = %d/%d/%d/%d, want 3/5/-2/1", b.GoalsFor, b.GoalsAgainst, b.GoalDiff, b.Points)
	}
	if want := []model.Outcome{model.OutcomeLoss, model.OutcomeDraw}; !reflect.DeepEqual(b.Form, want) {
		t.Errorf("bob form = %v, want %v", b.Form, want)
	}
}

func TestRecompute_FormFollowsTimestampsNotInputOrder(t *testing.T) {
	players := makePlayers(alice, bob)
	// Newest first in the input, as the app stores them.
	matches := []model.Match{
		makeMatch(200, alice, bob, 0, 1),
		makeMatch(100, alice, bob, 2, 0),
	}

	a := findPlayer(t, Recompute(players, matches), alice)
	if want := []model.Outcome{model.OutcomeWin, model.OutcomeLoss}; !reflect.DeepEqual(a.Form, want) {
		t.Errorf("form = %v, want %v", a.Form, want)
	}
}

func TestRecompute_UnknownPlayerSkippedSilently(t *testing.T) {
	players := makePlayers(alice)
	matches := []model.Match{
		makeMatch(1, alice, "ghost", 4, 0),
		makeMatch(2, "ghost", "phantom", 1, 1),
	}

	out := Recompute(players, matches)
	if len(out) != 1 {
		t.Fatalf("expected 1 player, got %d", len(out))
	}
	if out[0].Played != 0 {
		t.Errorf("matches with unknown opponents should not count, got played=%d", out[0].Played)
	}
}

func TestRecompute_Invariants(t *testing.T) {
	players := makePlayers(alice, bob, carol, dave)
	matches := []model.Match{
		makeMatch(1, alice, bob, 3, 1),
		makeMatch(2, carol, dave, 0, 0),
		makeMatch(3, alice, carol, 2, 5),
		makeMatch(4, bob, dave, 1, 1),
		makeMatch(5, dave, alice, 4, 2),
	}

	out := Recompute(players, matches)

	var totalGF, totalGA, totalScored int
	for _, p := range out {
		if p.Played != p.Wins+p.Draws+p.Losses {
			t.Errorf("%s: played %d != W+D+L %d", p.ID, p.Played, p.Wins+p.Draws+p.Losses)
		}
		if p.GoalDiff != p.GoalsFor-p.GoalsAgainst {
			t.Errorf("%s: gd %d != gf-ga %d", p.ID, p.GoalDiff, p.GoalsFor-p.GoalsAgainst)
		}
		if p.Points != 3*p.Wins+p.Draws {
			t.Errorf("%s: points %d != 3W+D %d", p.ID, p.Points, 3*p.Wins+p.Draws)
		}
		if len(p.Form) != p.Played {
			t.Errorf("%s: form length %d != played %d", p.ID, len(p.Form), p.Played)
		}
		totalGF += p.GoalsFor
		totalGA += p.GoalsAgainst
	}
	for _, m := range matches {
		totalScored += m.Score1 + m.Score2
	}
	// Conservation: every goal scored appears once on each side of the ledger.
	if totalGF != totalScored || totalGA != totalScored {
		t.Errorf("goal totals gf=%d ga=%d, want both %d", totalGF, totalGA, totalScored)
	}
}

func TestRecompute_IdempotentAndNonMutating(t *testing.T) {
	players := makePlayers(alice, bob)
	matches := []model.Match{
		makeMatch(1, alice, bob, 3, 1),
		makeMatch(2, bob, alice, 2, 2),
	}

	first := Recompute(players, matches)
	second := Recompute(players, matches)
	if !reflect.DeepEqual(first, second) {
		t.Error("two recomputes over the same input differ")
	}
	for _, p := range players {
		if p.Played != 0 || p.Points != 0 || p.Form != nil {
			t.Errorf("input player %s was mutated: %+v", p.ID, p)
		}
	}
}

func TestRecompute_PassesThroughIdentityFields(t *testing.T) {
	players := []model.Player{{
		ID: alice, Name: "Alice", AvatarURL: "https://example.com/a.png",
		// Stale persisted counters must be overwritten, not trusted.
		Played: 99, Points: 99,
	}}

	out := Recompute(players, nil)
	if out[0].Name != "Alice" || out[0].AvatarURL != "https://example.com/a.png" {
		t.Errorf("identity fields changed: %+v", out[0])
	}
	if out[0].Played != 0 || out[0].Points != 0 {
		t.Errorf("stale counters survived recompute: %+v", out[0])
	}
}

func TestRecompute_EmptyInputs(t *testing.T) {
	if out := Recompute(nil, nil); len(out) != 0 {
		t.Errorf("expected empty output, got %v", out)
	}
	out := Recompute(makePlayers(alice), nil)
	if len(out) != 1 || out[0].Played != 0 {
		t.Errorf("player with no matches should stay zeroed: %+v", out)
	}
}
