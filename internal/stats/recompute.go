// Package stats is the league's derivation engine: pure functions that turn
// the append-only match log into player records, rankings, head-to-head
// series, personal performance, and league-wide aggregates. Nothing in here
// does I/O or mutates its inputs; stored counters are treated as a cache and
// rebuilt from the log on every call.
package stats

import (
	"sort"

	"github.com/pable/leaguectl/internal/model"
)

// Recompute derives every player's cumulative record from the match log.
// The result has the same players in the same order as the input, with all
// statistical counters replaced; identity fields (id, name, avatar) pass
// through untouched. Matches referencing an unknown player id are skipped —
// a partially loaded player list must not fail the whole computation.
func Recompute(players []model.Player, matches []model.Match) []model.Player {
	out := make([]model.Player, len(players))
	index := make(map[string]int, len(players))
	for i, p := range players {
		out[i] = model.Player{ID: p.ID, Name: p.Name, AvatarURL: p.AvatarURL}
		index[p.ID] = i
	}

	// Form is order-sensitive: walk the log oldest first, insertion order
	// breaking timestamp ties.
	ordered := Chronological(matches)

	for _, m := range ordered {
		i1, ok1 := index[m.Player1ID]
		i2, ok2 := index[m.Player2ID]
		if !ok1 || !ok2 {
			continue
		}
		p1, p2 := &out[i1], &out[i2]

		p1.Played++
		p2.Played++
		p1.GoalsFor += m.Score1
		p1.GoalsAgainst += m.Score2
		p2.GoalsFor += m.Score2
		p2.GoalsAgainst += m.Score1

		switch {
		case m.Score1 > m.Score2:
			p1.Wins++
			p2.Losses++
			p1.Points += 3
			p1.Form = append(p1.Form, model.OutcomeWin)
			p2.Form = append(p2.Form, model.OutcomeLoss)
		case m.Score2 > m.Score1:
			p2.Wins++
			p1.Losses++
			p2.Points += 3
			p2.Form = append(p2.Form, model.OutcomeWin)
			p1.Form = append(p1.Form, model.OutcomeLoss)
		default:
			p1.Draws++
			p2.Draws++
			p1.Points++
			p2.Points++
			p1.Form = append(p1.Form, model.OutcomeDraw)
			p2.Form = append(p2.Form, model.OutcomeDraw)
		}
	}

	for i := range out {
		out[i].GoalDiff = out[i].GoalsFor - out[i].GoalsAgainst
	}
	return out
}

// Chronological returns a copy of matches sorted oldest first. The sort is
// stable so equal timestamps keep their insertion order.
func Chronological(matches []model.Match) []model.Match {
	ordered := make([]model.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TimestampMS < ordered[j].TimestampMS
	})
	return ordered
}
