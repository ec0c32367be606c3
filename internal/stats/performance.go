package stats

import (
	"fmt"
	"time"

	"github.com/pable/leaguectl/internal/model"
)

// Performance computes one player's full career record from every match they
// took part in: W/D/L, goals, points, win rate, form, current streak and the
// biggest win/loss. A player with no matches gets a zeroed record with streak
// "-".
func Performance(playerID string, matches []model.Match) model.PerformanceStats {
	s := model.PerformanceStats{
		PlayerID:      playerID,
		Chronological: []model.Match{},
		Streak:        "-",
	}

	for _, m := range Chronological(matches) {
		if m.Involves(playerID) {
			s.Chronological = append(s.Chronological, m)
		}
	}

	for _, m := range s.Chronological {
		mine, theirs := perspective(m, playerID)
		s.GoalsFor += mine
		s.GoalsAgainst += theirs

		switch {
		case mine > theirs:
			s.Wins++
			s.Form = append(s.Form, model.OutcomeWin)
			if margin := mine - theirs; margin > s.BiggestWinMargin {
				s.BiggestWinMargin = margin
				s.BiggestWinScore = fmt.Sprintf("%d-%d", mine, theirs)
			}
		case mine < theirs:
			s.Losses++
			s.Form = append(s.Form, model.OutcomeLoss)
			if margin := theirs - mine; margin > s.BiggestLossMargin {
				s.BiggestLossMargin = margin
				s.BiggestLossScore = fmt.Sprintf("%d-%d", mine, theirs)
			}
		default:
			s.Draws++
			s.Form = append(s.Form, model.OutcomeDraw)
		}
	}

	s.Played = len(s.Chronological)
	s.GoalDiff = s.GoalsFor - s.GoalsAgainst
	s.Points = 3*s.Wins + s.Draws
	if s.Played > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Played) * 100
	}
	s.Streak = streakLabel(s.Form)
	return s
}

// Histogram buckets a player's results into one bucket per calendar day for
// the windowDays days ending at now, oldest first. Day boundaries are local
// midnights. Every day gets a bucket even when empty, so the series is always
// exactly windowDays long and chartable as-is.
func Histogram(playerID string, matches []model.Match, windowDays int, now time.Time) []model.DayBucket {
	buckets := make([]model.DayBucket, 0, windowDays)
	byDay := make(map[int64]int, windowDays)

	for i := windowDays - 1; i >= 0; i-- {
		day := dayStart(now.AddDate(0, 0, -i))
		byDay[day.UnixMilli()] = len(buckets)
		buckets = append(buckets, model.DayBucket{
			DayStartMS: day.UnixMilli(),
			Label:      day.Format("Jan 2"),
		})
	}

	for _, m := range matches {
		if !m.Involves(playerID) {
			continue
		}
		key := dayStart(time.UnixMilli(m.TimestampMS)).UnixMilli()
		i, ok := byDay[key]
		if !ok {
			continue // outside the window
		}
		mine, theirs := perspective(m, playerID)
		switch {
		case mine > theirs:
			buckets[i].Wins++
		case mine < theirs:
			buckets[i].Losses++
		default:
			buckets[i].Draws++
		}
	}
	return buckets
}

// dayStart truncates t to local midnight.
func dayStart(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
