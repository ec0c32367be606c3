package cmd

import (
	"testing"

	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/stats"
)

func TestBuildTrajectory(t *testing.T) {
	matches := []model.Match{
		// Out of order on purpose; the trajectory must replay by timestamp.
		{ID: "m2", TimestampMS: 200, Player1ID: "me", Player2ID: "them", Score1: 1, Score2: 1},
		{ID: "m1", TimestampMS: 100, Player1ID: "them", Player2ID: "me", Score1: 0, Score2: 3},
		{ID: "m3", TimestampMS: 300, Player1ID: "me", Player2ID: "them", Score1: 0, Score2: 2},
	}

	rows := buildTrajectory("me", matches)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	// After m1 (win 3-0): 1 played, 3 points, +3 gd.
	if rows[0].Outcome != model.OutcomeWin || rows[0].Played != 1 || rows[0].Points != 3 || rows[0].GoalDiff != 3 {
		t.Errorf("step 1 = %+v", rows[0])
	}
	// After m2 (draw): 2 played, 4 points, +3 gd.
	if rows[1].Outcome != model.OutcomeDraw || rows[1].Points != 4 || rows[1].GoalDiff != 3 {
		t.Errorf("step 2 = %+v", rows[1])
	}
	// After m3 (loss 0-2): 3 played, 4 points, +1 gd.
	if rows[2].Outcome != model.OutcomeLoss || rows[2].Points != 4 || rows[2].GoalDiff != 1 {
		t.Errorf("step 3 = %+v", rows[2])
	}

	// Each step's score must equal the canonical formula on its totals.
	for i, r := range rows {
		want := stats.NormalisedScoreFromTotals(r.Played, r.Points, r.GoalDiff)
		if r.Score != want {
			t.Errorf("step %d score = %v, want %v", i+1, r.Score, want)
		}
	}
}
