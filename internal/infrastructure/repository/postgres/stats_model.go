package postgres

import "time"

type playerGameweekStatTableModel struct {
	ID             int64      `db:"id"`
	PlayerID       string     `db:"player_id"`
	Gameweek       int        `db:"gameweek"`
	FixtureID      string     `db:"fixture_id"`
	RunsScored     int        `db:"runs_scored"`
	Fours          int        `db:"fours"`
	Sixes          int        `db:"sixes"`
	IsDuck         bool       `db:"is_duck"`
	Wickets        int        `db:"wickets"`
	MaidenOvers    int        `db:"maiden_overs"`
	DotBalls       int        `db:"dot_balls"`
	Catches        int        `db:"catches"`
	Stumpings      int        `db:"stumpings"`
	RunOuts        int        `db:"run_outs"`
	BattingPoints  int        `db:"batting_points"`
	BowlingPoints  int        `db:"bowling_points"`
	FieldingPoints int        `db:"fielding_points"`
	TotalPoints    int        `db:"total_points"`
	RecordedAt     time.Time  `db:"recorded_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}
