package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/pable/leaguectl/internal/model"
)

func perfFixture() []model.Match {
	return []model.Match{
		makeMatch(10, alice, bob, 3, 1),
		makeMatch(20, carol, alice, 2, 2),
		makeMatch(30, alice, dave, 0, 4),
		makeMatch(40, bob, carol, 1, 0), // alice not involved
		makeMatch(50, dave, alice, 1, 5),
	}
}

func TestPerformance_CareerRecord(t *testing.T) {
	s := Performance(alice, perfFixture())

	if s.Played != 4 || s.Wins != 2 || s.Draws != 1 || s.Losses != 1 {
		t.Errorf("record = P%d W%d D%d L%d, want P4 W2 D1 L1", s.Played, s.Wins, s.Draws, s.Losses)
	}
	if s.GoalsFor != 10 || s.GoalsAgainst != 8 || s.GoalDiff != 2 {
		t.Errorf("goals = %d/%d/%d, want 10/8/+2", s.GoalsFor, s.GoalsAgainst, s.GoalDiff)
	}
	if s.Points != 7 {
		t.Errorf("points = %d, want 7", s.Points)
	}
	if s.WinRate != 50 {
		t.Errorf("win rate = %v, want 50", s.WinRate)
	}
	want := []model.Outcome{model.OutcomeWin, model.OutcomeDraw, model.OutcomeLoss, model.OutcomeWin}
	if !reflect.DeepEqual(s.Form, want) {
		t.Errorf("form = %v, want %v", s.Form, want)
	}
	if s.Streak != "W" {
		t.Errorf("streak = %q, want W", s.Streak)
	}
}

func TestPerformance_Superlatives(t *testing.T) {
	s := Performance(alice, perfFixture())
	if s.BiggestWinScore != "5-1" || s.BiggestWinMargin != 4 {
		t.Errorf("biggest win = %q (+%d), want 5-1 (+4)", s.BiggestWinScore, s.BiggestWinMargin)
	}
	if s.BiggestLossScore != "0-4" || s.BiggestLossMargin != 4 {
		t.Errorf("biggest loss = %q (%d), want 0-4 (4)", s.BiggestLossScore, s.BiggestLossMargin)
	}
}

func TestPerformance_NoMatches(t *testing.T) {
	s := Performance(dave, nil)
	if s.Played != 0 || s.Points != 0 || s.WinRate != 0 {
		t.Errorf("expected zeroed stats, got %+v", s)
	}
	if s.Streak != "-" {
		t.Errorf("streak = %q, want -", s.Streak)
	}
	if s.BiggestWinScore != "" || s.BiggestLossScore != "" {
		t.Errorf("expected no superlatives")
	}
}

func TestPerformance_MatchesAgainstSelfDontPanic(t *testing.T) {
	// Self-play is a caller bug but must not crash the engine.
	s := Performance(alice, []model.Match{makeMatch(1, alice, alice, 2, 1)})
	if s.Played != 1 {
		t.Errorf("played = %d, want 1", s.Played)
	}
}

// histNow anchors histogram tests to a fixed local time, mid-afternoon so the
// window edges are unambiguous.
var histNow = time.Date(2025, time.June, 30, 15, 0, 0, 0, time.Local)

// onDay returns an epoch-millis timestamp daysAgo days before histNow.
func onDay(daysAgo int) int64 {
	return histNow.AddDate(0, 0, -daysAgo).UnixMilli()
}

func TestHistogram_ExactlyWindowDaysBuckets(t *testing.T) {
	buckets := Histogram(alice, nil, 30, histNow)
	if len(buckets) != 30 {
		t.Fatalf("bucket count = %d, want 30", len(buckets))
	}
	for i, b := range buckets {
		if b.Total() != 0 {
			t.Errorf("bucket %d not empty: %+v", i, b)
		}
	}
	// Oldest first, one calendar day apart.
	for i := 1; i < len(buckets); i++ {
		if buckets[i].DayStartMS <= buckets[i-1].DayStartMS {
			t.Fatalf("buckets not ascending at %d", i)
		}
	}
	last := buckets[len(buckets)-1].DayStartMS
	if today := dayStart(histNow).UnixMilli(); last != today {
		t.Errorf("last bucket = %d, want today %d", last, today)
	}
}

func TestHistogram_CountsFallIntoCalendarDays(t *testing.T) {
	matches := []model.Match{
		makeMatch(onDay(0), alice, bob, 2, 0),
		makeMatch(onDay(0), bob, alice, 3, 1), // same day, loss
		makeMatch(onDay(5), alice, carol, 1, 1),
		makeMatch(onDay(29), alice, dave, 0, 2),
		makeMatch(onDay(31), alice, bob, 9, 0), // outside the window
		makeMatch(onDay(3), bob, carol, 1, 0),  // not alice's match
	}

	buckets := Histogram(alice, matches, 30, histNow)

	today := buckets[29]
	if today.Wins != 1 || today.Losses != 1 || today.Draws != 0 {
		t.Errorf("today = %+v, want W1 L1", today)
	}
	if b := buckets[24]; b.Draws != 1 || b.Total() != 1 {
		t.Errorf("day -5 = %+v, want one draw", b)
	}
	if b := buckets[0]; b.Losses != 1 || b.Total() != 1 {
		t.Errorf("oldest day = %+v, want one loss", b)
	}

	var total int
	for _, b := range buckets {
		total += b.Total()
	}
	if total != 4 {
		t.Errorf("window total = %d, want 4 (out-of-window and others' matches excluded)", total)
	}
}

func TestHistogram_WindowSizeIsParameterised(t *testing.T) {
	matches := []model.Match{makeMatch(onDay(6), alice, bob, 1, 0)}
	if got := len(Histogram(alice, matches, 7, histNow)); got != 7 {
		t.Errorf("len = %d, want 7", got)
	}
	buckets := Histogram(alice, matches, 7, histNow)
	if buckets[0].Wins != 1 {
		t.Errorf("oldest bucket of 7-day window should hold the win: %+v", buckets[0])
	}
}
