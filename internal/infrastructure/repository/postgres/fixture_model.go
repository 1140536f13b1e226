package postgres

import "time"

type fixtureTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	Gameweek   int        `db:"gameweek"`
	HomeTeamID string     `db:"home_team_id"`
	AwayTeamID string     `db:"away_team_id"`
	VenueName  string     `db:"venue_name"`
	StartsAt   time.Time  `db:"starts_at"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
