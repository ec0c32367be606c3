package stats

import (
	"sort"

	"github.com/pable/leaguectl/internal/model"
)

// View selects which standings formula orders the league.
type View int

const (
	// ViewNormalised ranks by the regression-adjusted score (the default).
	ViewNormalised View = iota
	// ViewPPG ranks by raw points per game.
	ViewPPG
	// ViewTable ranks by raw points, classic league-table style.
	ViewTable
)

func (v View) String() string {
	switch v {
	case ViewPPG:
		return "ppg"
	case ViewTable:
		return "table"
	default:
		return "normalised"
	}
}

// Tuned ranking constants. The competitive fairness of the league is defined
// by these exact numbers; do not retune them.
const (
	// phantomGames regresses small samples: 2 wins in 2 games should not
	// outrank 10 wins in 15.
	phantomGames = 2
	// gdClamp bounds goal-difference-per-game so one blowout cannot
	// dominate the ranking.
	gdClamp = 2.0
	// gdWeight scales the clamped GD/game into a bonus of at most ±0.10.
	gdWeight = 0.05
)

// NormalisedScore is the league's primary ranking score: points per game with
// phantom games added to the denominator, plus a bounded goal-difference
// bonus. 0 for an unplayed player.
func NormalisedScore(p model.Player) float64 {
	return NormalisedScoreFromTotals(p.Played, p.Points, p.GoalDiff)
}

// NormalisedScoreFromTotals computes the normalised score from raw cumulative
// totals. Given the same (played, points, gd) it returns exactly what
// NormalisedScore returns for a live record; trend reconstruction over match
// history relies on the two paths agreeing.
func NormalisedScoreFromTotals(played, points, gd int) float64 {
	if played <= 0 {
		return 0
	}
	adjustedPPG := float64(points) / float64(played+phantomGames)
	gdPerGame := float64(gd) / float64(played)
	if gdPerGame > gdClamp {
		gdPerGame = gdClamp
	} else if gdPerGame < -gdClamp {
		gdPerGame = -gdClamp
	}
	return adjustedPPG + gdWeight*gdPerGame
}

// Rank returns the players best first under the given view. The sort is
// stable: players equal under the full tie-break chain keep their input
// order. The input slice is not touched.
func Rank(players []model.Player, view View) []model.Player {
	out := make([]model.Player, len(players))
	copy(out, players)

	var less func(a, b *model.Player) bool
	switch view {
	case ViewPPG:
		less = lessPPG
	case ViewTable:
		less = lessTable
	default:
		less = lessNormalised
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// Leader returns the best-ranked player who has actually played. The explicit
// played>0 filter matters in table view, where an unplayed player can tie on
// 0 points with a played one and sit above them on insertion order.
func Leader(players []model.Player, view View) (model.Player, bool) {
	for _, p := range Rank(players, view) {
		if p.Played > 0 {
			return p, true
		}
	}
	return model.Player{}, false
}

// lessTable: points desc, then GD desc, then GF desc.
func lessTable(a, b *model.Player) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDiff != b.GoalDiff {
		return a.GoalDiff > b.GoalDiff
	}
	return a.GoalsFor > b.GoalsFor
}

// lessPPG: points/game desc, then win rate desc, then GD desc.
func lessPPG(a, b *model.Player) bool {
	if pa, pb := a.PPG(), b.PPG(); pa != pb {
		return pa > pb
	}
	if wa, wb := winRatio(a), winRatio(b); wa != wb {
		return wa > wb
	}
	return a.GoalDiff > b.GoalDiff
}

// lessNormalised: normalised score desc, then GD/game desc, then win rate desc.
func lessNormalised(a, b *model.Player) bool {
	if na, nb := NormalisedScore(*a), NormalisedScore(*b); na != nb {
		return na > nb
	}
	if ga, gb := gdPerGame(a), gdPerGame(b); ga != gb {
		return ga > gb
	}
	return winRatio(a) > winRatio(b)
}

func winRatio(p *model.Player) float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Played)
}

func gdPerGame(p *model.Player) float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.GoalDiff) / float64(p.Played)
}
