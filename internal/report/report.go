// Package report renders engine output as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/leaguectl/internal/model"
	"github.com/pable/leaguectl/internal/stats"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintStandings writes the ranked league table. The score column after PTS
// depends on the view: normalised score, raw PPG, or nothing for table mode.
func PrintStandings(w io.Writer, ranked []model.Player, view stats.View) {
	table := newTable(w)

	header := []any{"POS", "NAME", "P", "W", "D", "L", "GF", "GA", "GD", "PTS"}
	switch view {
	case stats.ViewNormalised:
		header = append(header, "SCORE")
	case stats.ViewPPG:
		header = append(header, "PPG")
	}
	header = append(header, "FORM")
	table.Header(header...)

	for i, p := range ranked {
		row := []any{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.Played),
			strconv.Itoa(p.Wins),
			strconv.Itoa(p.Draws),
			strconv.Itoa(p.Losses),
			strconv.Itoa(p.GoalsFor),
			strconv.Itoa(p.GoalsAgainst),
			fmt.Sprintf("%+d", p.GoalDiff),
			strconv.Itoa(p.Points),
		}
		switch view {
		case stats.ViewNormalised:
			row = append(row, fmt.Sprintf("%.2f", stats.NormalisedScore(p)))
		case stats.ViewPPG:
			row = append(row, fmt.Sprintf("%.2f", p.PPG()))
		}
		row = append(row, lastN(p.FormString(), 5))
		table.Append(row...)
	}
	table.Render()
}

// PrintLeader writes the one-line leader banner under a standings table.
func PrintLeader(w io.Writer, players []model.Player, view stats.View) {
	leader, ok := stats.Leader(players, view)
	if !ok {
		fmt.Fprintln(w, "No leader yet — nobody has played a match.")
		return
	}
	fmt.Fprintf(w, "Leader (%s): %s\n", view, leader.Name)
}

// PrintHeadToHead writes the bilateral series as a two-column comparison.
func PrintHeadToHead(w io.Writer, h model.HeadToHeadStats, nameA, nameB string) {
	if h.Played() == 0 {
		fmt.Fprintf(w, "%s and %s have never played each other.\n", nameA, nameB)
		return
	}
	fmt.Fprintf(w, "\n%s vs %s — %d meetings\n\n", nameA, nameB, h.Played())

	table := newTable(w)
	table.Header(nameA, "", nameB)
	table.Append(strconv.Itoa(h.WinsA), "WINS", strconv.Itoa(h.WinsB))
	table.Append(strconv.Itoa(h.Draws), "DRAWS", strconv.Itoa(h.Draws))
	table.Append(strconv.Itoa(h.GoalsForA), "GOALS", strconv.Itoa(h.GoalsForB))
	table.Append(fmt.Sprintf("%+d", h.GoalDiffA), "GD", fmt.Sprintf("%+d", h.GoalDiffB))
	table.Append(h.StreakA, "STREAK", h.StreakB)
	table.Append(orDash(h.BiggestWinScoreA), "BIGGEST WIN", orDash(h.BiggestWinScoreB))
	table.Append(orDash(h.BiggestLossScoreA), "BIGGEST LOSS", orDash(h.BiggestLossScoreB))
	table.Render()
}

// PrintRecentMeetings lists the last n meetings of a series, newest first.
func PrintRecentMeetings(w io.Writer, h model.HeadToHeadStats, names map[string]string, n int) {
	if h.Played() == 0 {
		return
	}
	fmt.Fprintf(w, "\nRecent meetings:\n")
	meetings := h.Between
	if len(meetings) > n {
		meetings = meetings[len(meetings)-n:]
	}
	for i := len(meetings) - 1; i >= 0; i-- {
		m := meetings[i]
		fmt.Fprintf(w, "  %s  %s %d - %d %s\n",
			time.UnixMilli(m.TimestampMS).Format("2006-01-02"),
			names[m.Player1ID], m.Score1, m.Score2, names[m.Player2ID])
	}
}

// PrintPerformance writes a player's career summary block.
func PrintPerformance(w io.Writer, s model.PerformanceStats, name string) {
	fmt.Fprintf(w, "\n=== %s ===\n\n", name)
	if s.Played == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		return
	}
	fmt.Fprintf(w, "  Record     : %d-%d-%d in %d matches\n", s.Wins, s.Draws, s.Losses, s.Played)
	fmt.Fprintf(w, "  Goals      : %d for, %d against (%+d)\n", s.GoalsFor, s.GoalsAgainst, s.GoalDiff)
	fmt.Fprintf(w, "  Points     : %d\n", s.Points)
	fmt.Fprintf(w, "  Win rate   : %.1f%%\n", s.WinRate)
	fmt.Fprintf(w, "  Form       : %s\n", formString(s.Form))
	fmt.Fprintf(w, "  Streak     : %s\n", s.Streak)
	if s.BiggestWinScore != "" {
		fmt.Fprintf(w, "  Best win   : %s (+%d)\n", s.BiggestWinScore, s.BiggestWinMargin)
	}
	if s.BiggestLossScore != "" {
		fmt.Fprintf(w, "  Worst loss : %s (-%d)\n", s.BiggestLossScore, s.BiggestLossMargin)
	}
}

// PrintHistogram draws the daily W/D/L buckets as text bars, skipping nothing:
// every day in the window gets a line so gaps are visible.
func PrintHistogram(w io.Writer, buckets []model.DayBucket) {
	fmt.Fprintf(w, "\nDaily results (last %d days):\n\n", len(buckets))
	for _, b := range buckets {
		bar := strings.Repeat("W", b.Wins) + strings.Repeat("D", b.Draws) + strings.Repeat("L", b.Losses)
		if bar == "" {
			bar = "·"
		}
		fmt.Fprintf(w, "  %-6s  %s\n", b.Label, bar)
	}
}

// PrintLeague writes the dashboard KPI block.
func PrintLeague(w io.Writer, s model.LeagueStats) {
	fmt.Fprintf(w, "\n=== League ===\n\n")
	fmt.Fprintf(w, "  Matches         : %d\n", s.TotalMatches)
	fmt.Fprintf(w, "  Goals           : %d (%.2f per match)\n", s.TotalGoals, s.AvgGoalsPerMatch)
	fmt.Fprintf(w, "  Home wins       : %d\n", s.TotalHomeWins)
	fmt.Fprintf(w, "  Away wins       : %d\n", s.TotalAwayWins)
	fmt.Fprintf(w, "  Draws           : %d\n", s.TotalDraws)
}

// PrintMatchList writes the match log, newest first.
func PrintMatchList(w io.Writer, matches []model.Match, names map[string]string) {
	table := newTable(w)
	table.Header("DATE", "HOME", "SCORE", "AWAY", "ID")
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		table.Append(
			time.UnixMilli(m.TimestampMS).Format("2006-01-02 15:04"),
			playerName(names, m.Player1ID),
			fmt.Sprintf("%d - %d", m.Score1, m.Score2),
			playerName(names, m.Player2ID),
			shortID(m.ID),
		)
	}
	table.Render()
}

// PrintTrend writes a player's normalised-score trajectory, one row per match.
func PrintTrend(w io.Writer, name string, rows []TrendRow) {
	fmt.Fprintf(w, "\n%s — ranking trajectory\n\n", name)
	table := newTable(w)
	table.Header("#", "DATE", "RESULT", "P", "PTS", "GD", "SCORE")
	for i, r := range rows {
		table.Append(
			strconv.Itoa(i+1),
			time.UnixMilli(r.TimestampMS).Format("2006-01-02"),
			string(r.Outcome),
			strconv.Itoa(r.Played),
			strconv.Itoa(r.Points),
			fmt.Sprintf("%+d", r.GoalDiff),
			fmt.Sprintf("%.2f", r.Score),
		)
	}
	table.Render()
}

// TrendRow is one step of a player's cumulative trajectory.
type TrendRow struct {
	TimestampMS int64
	Outcome     model.Outcome
	Played      int
	Points      int
	GoalDiff    int
	Score       float64
}

func playerName(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	// Deleted players stay visible in the log by id.
	return shortID(id)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formString(form []model.Outcome) string {
	if len(form) == 0 {
		return "-"
	}
	var b strings.Builder
	for _, o := range form {
		b.WriteString(string(o))
	}
	return lastN(b.String(), 10)
}

func lastN(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	if s == "" {
		return "-"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
