package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// UpsertBatch writes every row in one transaction. Derived point columns
// are recomputed from the raw counters on each write so stored points
// never drift from the scoring rules.
func (r *StatsRepository) UpsertBatch(ctx context.Context, rows []stats.PlayerMatchStat) ([]stats.UpsertOutcome, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx for stats upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
INSERT INTO player_gameweek_stats (
    player_id,
    gameweek,
    fixture_id,
    runs_scored,
    fours,
    sixes,
    is_duck,
    wickets,
    maiden_overs,
    dot_balls,
    catches,
    stumpings,
    run_outs,
    batting_points,
    bowling_points,
    fielding_points,
    total_points,
    recorded_at
) VALUES (
    :player_id, :gameweek, :fixture_id,
    :runs_scored, :fours, :sixes, :is_duck,
    :wickets, :maiden_overs, :dot_balls,
    :catches, :stumpings, :run_outs,
    :batting_points, :bowling_points, :fielding_points, :total_points,
    :recorded_at
)
ON CONFLICT (player_id, gameweek) WHERE deleted_at IS NULL
DO UPDATE SET
    fixture_id = EXCLUDED.fixture_id,
    runs_scored = EXCLUDED.runs_scored,
    fours = EXCLUDED.fours,
    sixes = EXCLUDED.sixes,
    is_duck = EXCLUDED.is_duck,
    wickets = EXCLUDED.wickets,
    maiden_overs = EXCLUDED.maiden_overs,
    dot_balls = EXCLUDED.dot_balls,
    catches = EXCLUDED.catches,
    stumpings = EXCLUDED.stumpings,
    run_outs = EXCLUDED.run_outs,
    batting_points = EXCLUDED.batting_points,
    bowling_points = EXCLUDED.bowling_points,
    fielding_points = EXCLUDED.fielding_points,
    total_points = EXCLUDED.total_points,
    recorded_at = EXCLUDED.recorded_at,
    updated_at = NOW(),
    deleted_at = NULL
RETURNING (xmax = 0) AS inserted`

	out := make([]stats.UpsertOutcome, 0, len(rows))
	for _, row := range rows {
		breakdown := stats.ComputePoints(row)

		sqlQuery, sqlArgs, err := sqlx.Named(query, map[string]any{
			"player_id":       row.PlayerID,
			"gameweek":        row.Gameweek,
			"fixture_id":      row.FixtureID,
			"runs_scored":     row.RunsScored,
			"fours":           row.Fours,
			"sixes":           row.Sixes,
			"is_duck":         row.IsDuck,
			"wickets":         row.Wickets,
			"maiden_overs":    row.MaidenOvers,
			"dot_balls":       row.DotBalls,
			"catches":         row.Catches,
			"stumpings":       row.Stumpings,
			"run_outs":        row.RunOuts,
			"batting_points":  breakdown.BattingPoints,
			"bowling_points":  breakdown.BowlingPoints,
			"fielding_points": breakdown.FieldingPoints,
			"total_points":    breakdown.TotalPoints,
			"recorded_at":     row.RecordedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("bind upsert stat player=%s gw=%d query: %w", row.PlayerID, row.Gameweek, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)

		var inserted bool
		if err := tx.GetContext(ctx, &inserted, sqlQuery, sqlArgs...); err != nil {
			return nil, fmt.Errorf("upsert stat player=%s gw=%d: %w", row.PlayerID, row.Gameweek, err)
		}

		out = append(out, stats.UpsertOutcome{
			PlayerID: row.PlayerID,
			Gameweek: row.Gameweek,
			Inserted: inserted,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit stats upsert tx: %w", err)
	}

	return out, nil
}

func (r *StatsRepository) ListByGameweek(ctx context.Context, gameweek int) ([]stats.GameweekRow, error) {
	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gameweek stats query: %w", err)
	}

	var rows []playerGameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats for gameweek %d: %w", gameweek, err)
	}

	out := make([]stats.GameweekRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweekRowFromModel(row))
	}

	return out, nil
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]stats.GameweekRow, error) {
	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(
			qb.Eq("player_id", playerID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player stats query: %w", err)
	}

	var rows []playerGameweekStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stats for player %s: %w", playerID, err)
	}

	out := make([]stats.GameweekRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweekRowFromModel(row))
	}

	return out, nil
}

func (r *StatsRepository) GetByPlayerGameweek(ctx context.Context, playerID string, gameweek int) (stats.GameweekRow, bool, error) {
	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(
			qb.Eq("player_id", playerID),
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return stats.GameweekRow{}, false, fmt.Errorf("build get stat query: %w", err)
	}

	var row playerGameweekStatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return stats.GameweekRow{}, false, nil
		}
		return stats.GameweekRow{}, false, fmt.Errorf("get stat player=%s gw=%d: %w", playerID, gameweek, err)
	}

	return gameweekRowFromModel(row), true, nil
}

func (r *StatsRepository) TotalPointsByGameweek(ctx context.Context, gameweek int) (map[string]int, error) {
	query, args, err := qb.Select("player_id", "total_points").From("player_gameweek_stats").
		Where(
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build total points query: %w", err)
	}

	var rows []struct {
		PlayerID    string `db:"player_id"`
		TotalPoints int    `db:"total_points"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select total points for gameweek %d: %w", gameweek, err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.TotalPoints
	}

	return out, nil
}

func gameweekRowFromModel(row playerGameweekStatTableModel) stats.GameweekRow {
	return stats.GameweekRow{
		Stat: stats.PlayerMatchStat{
			PlayerID:    row.PlayerID,
			Gameweek:    row.Gameweek,
			FixtureID:   row.FixtureID,
			RunsScored:  row.RunsScored,
			Fours:       row.Fours,
			Sixes:       row.Sixes,
			IsDuck:      row.IsDuck,
			Wickets:     row.Wickets,
			MaidenOvers: row.MaidenOvers,
			DotBalls:    row.DotBalls,
			Catches:     row.Catches,
			Stumpings:   row.Stumpings,
			RunOuts:     row.RunOuts,
			RecordedAt:  row.RecordedAt,
		},
		Breakdown: stats.PointBreakdown{
			BattingPoints:  row.BattingPoints,
			BowlingPoints:  row.BowlingPoints,
			FieldingPoints: row.FieldingPoints,
			TotalPoints:    row.TotalPoints,
		},
	}
}
