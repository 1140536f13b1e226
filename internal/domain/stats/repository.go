package stats

import "context"

// UpsertOutcome reports what a batch upsert did to a single row.
type UpsertOutcome struct {
	PlayerID string
	Gameweek int
	Inserted bool
}

// GameweekRow pairs a stored stat row with its derived breakdown.
type GameweekRow struct {
	Stat      PlayerMatchStat
	Breakdown PointBreakdown
}

// Repository persists raw stat rows together with their derived points.
//
// UpsertBatch applies all rows in one transaction: either every row in the
// batch commits or none does. Rows are keyed by (player_id, gameweek).
type Repository interface {
	UpsertBatch(ctx context.Context, rows []PlayerMatchStat) ([]UpsertOutcome, error)
	ListByGameweek(ctx context.Context, gameweek int) ([]GameweekRow, error)
	ListByPlayer(ctx context.Context, playerID string) ([]GameweekRow, error)
	GetByPlayerGameweek(ctx context.Context, playerID string, gameweek int) (GameweekRow, bool, error)
	// TotalPointsByGameweek returns player id -> total points for every
	// player with a recorded stat row in the gameweek. Key presence is the
	// "played" signal downstream; a present zero means played and scored 0.
	TotalPointsByGameweek(ctx context.Context, gameweek int) (map[string]int, error)
}
