package model

// Outcome is a single match result from one player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// Player is a league member plus their cumulative record. The counters are
// always derived from the match log (stats.Recompute); the store persists only
// the identity fields.
type Player struct {
	ID        string
	Name      string
	AvatarURL string

	Played int
	Wins   int
	Draws  int
	Losses int

	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int

	Points int
	Form   []Outcome
}

// PPG returns raw points per game, 0 for an unplayed player.
func (p *Player) PPG() float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Points) / float64(p.Played)
}

// WinRate returns the win percentage (0–100).
func (p *Player) WinRate() float64 {
	if p.Played == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Played) * 100
}

// FormString renders the form sequence as e.g. "WWDLW".
func (p *Player) FormString() string {
	s := make([]byte, len(p.Form))
	for i, o := range p.Form {
		s[i] = o[0]
	}
	return string(s)
}

// Match is one recorded result. Matches are append-only; timestamps order the
// log, with insertion order breaking ties.
type Match struct {
	ID          string
	TimestampMS int64
	Player1ID   string
	Player2ID   string
	Score1      int
	Score2      int
	Commentary  string // optional AI banter, never parsed
}

// Winner returns the winning player's id, or "" on a draw.
func (m *Match) Winner() string {
	switch {
	case m.Score1 > m.Score2:
		return m.Player1ID
	case m.Score2 > m.Score1:
		return m.Player2ID
	default:
		return ""
	}
}

// Involves reports whether the given player took part in the match.
func (m *Match) Involves(playerID string) bool {
	return m.Player1ID == playerID || m.Player2ID == playerID
}

// HeadToHeadStats is the bilateral series between two players, all "A" fields
// from playerA's perspective and mirrored for B.
type HeadToHeadStats struct {
	PlayerAID string
	PlayerBID string

	// Between holds the restricted match set in chronological order
	// (oldest first).
	Between []Match

	WinsA int
	WinsB int
	Draws int

	GoalsForA     int
	GoalsAgainstA int
	GoalsForB     int
	GoalsAgainstB int
	GoalDiffA     int
	GoalDiffB     int

	// StreakA/StreakB label the run of identical results ending at the most
	// recent meeting, e.g. "W3", "L", "D2"; "-" when the series is empty.
	StreakA string
	StreakB string

	BiggestWinMarginA  int
	BiggestWinMarginB  int
	BiggestLossMarginA int
	BiggestLossMarginB int

	// Score strings are "mine-theirs", e.g. "5-1"; empty if the side never
	// won (or never lost).
	BiggestWinScoreA  string
	BiggestWinScoreB  string
	BiggestLossScoreA string
	BiggestLossScoreB string
}

// Played returns the number of meetings in the series.
func (h *HeadToHeadStats) Played() int {
	return len(h.Between)
}

// PerformanceStats is a single player's full career record derived from every
// match they took part in.
type PerformanceStats struct {
	PlayerID string

	// Chronological holds the player's matches oldest first.
	Chronological []Match

	Played int
	Wins   int
	Draws  int
	Losses int

	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int

	WinRate float64 // 0–100
	Form    []Outcome
	Streak  string

	BiggestWinScore   string
	BiggestLossScore  string
	BiggestWinMargin  int
	BiggestLossMargin int
}

// DayBucket is one calendar day's W/D/L counts for a player. Histograms are
// gap-free: days without matches still produce a zeroed bucket.
type DayBucket struct {
	// DayStartMS is local midnight of the bucket's day, epoch millis.
	DayStartMS int64
	Label      string // e.g. "Jan 2"

	Wins   int
	Draws  int
	Losses int
}

// Total returns the number of matches in the bucket.
func (b *DayBucket) Total() int {
	return b.Wins + b.Draws + b.Losses
}

// LeagueStats is the whole-league aggregate used for the dashboard KPIs.
type LeagueStats struct {
	TotalMatches     int
	TotalGoals       int
	AvgGoalsPerMatch float64
	TotalDraws       int
	TotalHomeWins    int // player1 won
	TotalAwayWins    int // player2 won
}

// Admin identifies a league administrator allowed to record results.
type Admin struct {
	ID   string
	Name string
}

// LoginAuditEntry is one row of the admin login audit trail.
type LoginAuditEntry struct {
	ID        int64
	AdminID   string // empty for failed attempts
	AdminName string // snapshot at login time, "UNKNOWN" on failure
	LoginAtMS int64
	Success   bool
	Host      string
	UserAgent string
}
