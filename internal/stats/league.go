package stats

import "github.com/pable/leaguectl/internal/model"

// League computes the whole-league aggregate over the match log. Draws, home
// wins and away wins always sum to the total match count.
func League(matches []model.Match) model.LeagueStats {
	var s model.LeagueStats
	for _, m := range matches {
		s.TotalGoals += m.Score1 + m.Score2
		switch {
		case m.Score1 == m.Score2:
			s.TotalDraws++
		case m.Score1 > m.Score2:
			s.TotalHomeWins++
		default:
			s.TotalAwayWins++
		}
	}
	s.TotalMatches = len(matches)
	if s.TotalMatches > 0 {
		s.AvgGoalsPerMatch = float64(s.TotalGoals) / float64(s.TotalMatches)
	}
	return s
}
