package postgres

import "time"

type teamGameweekScoreTableModel struct {
	ID             int64      `db:"id"`
	LeaguePublicID string     `db:"league_public_id"`
	TeamPublicID   string     `db:"team_public_id"`
	Gameweek       int        `db:"gameweek"`
	Points         int        `db:"points"`
	CalculatedAt   time.Time  `db:"calculated_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type cumulativeTotalTableModel struct {
	ID                   int64      `db:"id"`
	LeaguePublicID       string     `db:"league_public_id"`
	TeamPublicID         string     `db:"team_public_id"`
	TotalPoints          int        `db:"total_points"`
	LastCreditedGameweek int        `db:"last_credited_gameweek"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
	DeletedAt            *time.Time `db:"deleted_at"`
}
