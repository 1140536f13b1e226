package postgres

import "time"

type leagueTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Name        string     `db:"name"`
	Code        string     `db:"code"`
	OwnerUserID string     `db:"owner_user_id"`
	IsPublic    bool       `db:"is_public"`
	MaxMembers  int        `db:"max_members"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type leagueInsertModel struct {
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	OwnerUserID string `db:"owner_user_id"`
	IsPublic    bool   `db:"is_public"`
	MaxMembers  int    `db:"max_members"`
}

type leagueMembershipTableModel struct {
	ID             int64      `db:"id"`
	LeaguePublicID string     `db:"league_public_id"`
	TeamPublicID   string     `db:"team_public_id"`
	JoinedAt       time.Time  `db:"joined_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}
