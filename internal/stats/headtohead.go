package stats

import (
	"fmt"

	"github.com/pable/leaguectl/internal/model"
)

// HeadToHead computes the bilateral series between two players: records, goal
// tallies, current streaks, and each side's biggest win and loss. Equal ids
// or an empty series yield a zeroed result with "-" streaks, never an error.
func HeadToHead(playerAID, playerBID string, matches []model.Match) model.HeadToHeadStats {
	h := model.HeadToHeadStats{
		PlayerAID: playerAID,
		PlayerBID: playerBID,
		Between:   []model.Match{},
		StreakA:   "-",
		StreakB:   "-",
	}
	if playerAID == playerBID {
		return h
	}

	for _, m := range Chronological(matches) {
		if (m.Player1ID == playerAID && m.Player2ID == playerBID) ||
			(m.Player1ID == playerBID && m.Player2ID == playerAID) {
			h.Between = append(h.Between, m)
		}
	}

	var formA []model.Outcome
	for _, m := range h.Between {
		// Re-orient per match: A is not always player1.
		scoreA, scoreB := perspective(m, playerAID)
		h.GoalsForA += scoreA
		h.GoalsAgainstA += scoreB
		h.GoalsForB += scoreB
		h.GoalsAgainstB += scoreA

		switch {
		case scoreA > scoreB:
			h.WinsA++
			formA = append(formA, model.OutcomeWin)
			margin := scoreA - scoreB
			if margin > h.BiggestWinMarginA {
				h.BiggestWinMarginA = margin
				h.BiggestWinScoreA = fmt.Sprintf("%d-%d", scoreA, scoreB)
			}
			if margin > h.BiggestLossMarginB {
				h.BiggestLossMarginB = margin
				h.BiggestLossScoreB = fmt.Sprintf("%d-%d", scoreB, scoreA)
			}
		case scoreB > scoreA:
			h.WinsB++
			formA = append(formA, model.OutcomeLoss)
			margin := scoreB - scoreA
			if margin > h.BiggestWinMarginB {
				h.BiggestWinMarginB = margin
				h.BiggestWinScoreB = fmt.Sprintf("%d-%d", scoreB, scoreA)
			}
			if margin > h.BiggestLossMarginA {
				h.BiggestLossMarginA = margin
				h.BiggestLossScoreA = fmt.Sprintf("%d-%d", scoreA, scoreB)
			}
		default:
			h.Draws++
			formA = append(formA, model.OutcomeDraw)
		}
	}

	h.GoalDiffA = h.GoalsForA - h.GoalsAgainstA
	h.GoalDiffB = h.GoalsForB - h.GoalsAgainstB
	h.StreakA = streakLabel(formA)
	h.StreakB = streakLabel(mirror(formA))
	return h
}

// perspective returns (mine, theirs) scores for the given player in a match.
func perspective(m model.Match, playerID string) (int, int) {
	if m.Player1ID == playerID {
		return m.Score1, m.Score2
	}
	return m.Score2, m.Score1
}

// streakLabel counts consecutive identical outcomes backward from the most
// recent one. "W3", "L" (count omitted when 1), or "-" for an empty sequence.
func streakLabel(chronological []model.Outcome) string {
	if len(chronological) == 0 {
		return "-"
	}
	last := chronological[len(chronological)-1]
	count := 0
	for i := len(chronological) - 1; i >= 0 && chronological[i] == last; i-- {
		count++
	}
	if count > 1 {
		return fmt.Sprintf("%s%d", last, count)
	}
	return string(last)
}

// mirror flips a run of outcomes to the opposing side's perspective.
func mirror(outcomes []model.Outcome) []model.Outcome {
	out := make([]model.Outcome, len(outcomes))
	for i, o := range outcomes {
		switch o {
		case model.OutcomeWin:
			out[i] = model.OutcomeLoss
		case model.OutcomeLoss:
			out[i] = model.OutcomeWin
		default:
			out[i] = model.OutcomeDraw
		}
	}
	return out
}
