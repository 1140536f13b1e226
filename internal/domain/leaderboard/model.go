package leaderboard

import "time"

// TeamScore is one team's settled score for one gameweek in a league.
type TeamScore struct {
	LeagueID     string
	TeamID       string
	Gameweek     int
	Points       int
	CalculatedAt time.Time
}

// CumulativeEntry is a team's running total in a league, together with
// the watermark of the last gameweek whose points were credited to it.
type CumulativeEntry struct {
	LeagueID             string
	TeamID               string
	TotalPoints          int
	LastCreditedGameweek int
	UpdatedAt            time.Time
}

// Row is one ranked leaderboard line. LatestGwPoints is the team's
// score in the most recent gameweek the query covers, zero when the
// team has no score there.
type Row struct {
	Rank           int
	TeamID         string
	TeamName       string
	OwnerID        string
	Points         int
	LatestGwPoints int
	Gameweeks      int
}
