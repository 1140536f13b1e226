package postgres

import "time"

type fantasyTeamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	UserID        string     `db:"user_id"`
	Name          string     `db:"name"`
	CaptainID     string     `db:"captain_id"`
	ViceCaptainID string     `db:"vice_captain_id"`
	BudgetCap     int64      `db:"budget_cap"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type fantasyTeamSlotTableModel struct {
	ID           int64      `db:"id"`
	TeamPublicID string     `db:"team_public_id"`
	SlotRole     string     `db:"slot_role"`
	PlayerID     string     `db:"player_id"`
	PlayerRole   string     `db:"player_role"`
	RealTeamID   string     `db:"real_team_id"`
	Cost         int64      `db:"cost"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
