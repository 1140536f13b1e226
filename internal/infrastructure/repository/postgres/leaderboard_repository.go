package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db *sqlx.DB
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Upsert(ctx context.Context, score leaderboard.TeamScore) error {
	const query = `
INSERT INTO team_gameweek_scores (league_public_id, team_public_id, gameweek, points, calculated_at)
VALUES (:league_public_id, :team_public_id, :gameweek, :points, :calculated_at)
ON CONFLICT (league_public_id, team_public_id, gameweek) WHERE deleted_at IS NULL
DO UPDATE SET
    points = EXCLUDED.points,
    calculated_at = EXCLUDED.calculated_at,
    updated_at = NOW(),
    deleted_at = NULL`

	sqlQuery, sqlArgs, err := sqlx.Named(query, map[string]any{
		"league_public_id": score.LeagueID,
		"team_public_id":   score.TeamID,
		"gameweek":         score.Gameweek,
		"points":           score.Points,
		"calculated_at":    score.CalculatedAt,
	})
	if err != nil {
		return fmt.Errorf("bind upsert team score query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	if _, err := r.db.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
		return fmt.Errorf("upsert score league=%s team=%s gw=%d: %w", score.LeagueID, score.TeamID, score.Gameweek, err)
	}

	return nil
}

func (r *ScoreRepository) ListByLeague(ctx context.Context, leagueID string) ([]leaderboard.TeamScore, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
	)
}

func (r *ScoreRepository) ListByLeagueGameweek(ctx context.Context, leagueID string, gameweek int) ([]leaderboard.TeamScore, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.Eq("gameweek", gameweek),
	)
}

func (r *ScoreRepository) ListByLeagueUpTo(ctx context.Context, leagueID string, gameweek int) ([]leaderboard.TeamScore, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.Lte("gameweek", gameweek),
	)
}

func (r *ScoreRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]leaderboard.TeamScore, error) {
	return r.list(ctx,
		qb.Eq("league_public_id", leagueID),
		qb.Eq("team_public_id", teamID),
	)
}

func (r *ScoreRepository) list(ctx context.Context, matches ...qb.Condition) ([]leaderboard.TeamScore, error) {
	conditions := append(matches, qb.IsNull("deleted_at"))

	query, args, err := qb.Select("*").From("team_gameweek_scores").
		Where(conditions...).
		OrderBy("gameweek", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team scores query: %w", err)
	}

	var rows []teamGameweekScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team scores: %w", err)
	}

	out := make([]leaderboard.TeamScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.TeamScore{
			LeagueID:     row.LeaguePublicID,
			TeamID:       row.TeamPublicID,
			Gameweek:     row.Gameweek,
			Points:       row.Points,
			CalculatedAt: row.CalculatedAt,
		})
	}

	return out, nil
}

type CumulativeRepository struct {
	db *sqlx.DB
}

func NewCumulativeRepository(db *sqlx.DB) *CumulativeRepository {
	return &CumulativeRepository{db: db}
}

// Credit applies the points in one statement. The conflict branch only
// fires when the stored watermark is behind the credited gameweek, so
// replays of an already-settled gameweek touch no rows.
func (r *CumulativeRepository) Credit(ctx context.Context, leagueID, teamID string, gameweek, points int) (bool, error) {
	const query = `
INSERT INTO league_cumulative_totals (league_public_id, team_public_id, total_points, last_credited_gameweek)
VALUES (:league_public_id, :team_public_id, :total_points, :last_credited_gameweek)
ON CONFLICT (league_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    total_points = league_cumulative_totals.total_points + EXCLUDED.total_points,
    last_credited_gameweek = EXCLUDED.last_credited_gameweek,
    updated_at = NOW()
WHERE league_cumulative_totals.last_credited_gameweek < EXCLUDED.last_credited_gameweek
RETURNING id`

	sqlQuery, sqlArgs, err := sqlx.Named(query, map[string]any{
		"league_public_id":       leagueID,
		"team_public_id":         teamID,
		"total_points":           points,
		"last_credited_gameweek": gameweek,
	})
	if err != nil {
		return false, fmt.Errorf("bind credit cumulative query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	var id int64
	if err := r.db.GetContext(ctx, &id, sqlQuery, sqlArgs...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("credit cumulative league=%s team=%s gw=%d: %w", leagueID, teamID, gameweek, err)
	}

	return true, nil
}

func (r *CumulativeRepository) ListByLeague(ctx context.Context, leagueID string) ([]leaderboard.CumulativeEntry, error) {
	query, args, err := qb.Select("*").From("league_cumulative_totals").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("total_points DESC", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cumulative totals query: %w", err)
	}

	var rows []cumulativeTotalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cumulative totals for league %s: %w", leagueID, err)
	}

	out := make([]leaderboard.CumulativeEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, cumulativeFromRow(row))
	}

	return out, nil
}

func (r *CumulativeRepository) Get(ctx context.Context, leagueID, teamID string) (leaderboard.CumulativeEntry, bool, error) {
	query, args, err := qb.Select("*").From("league_cumulative_totals").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return leaderboard.CumulativeEntry{}, false, fmt.Errorf("build get cumulative total query: %w", err)
	}

	var row cumulativeTotalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return leaderboard.CumulativeEntry{}, false, nil
		}
		return leaderboard.CumulativeEntry{}, false, fmt.Errorf("get cumulative total league=%s team=%s: %w", leagueID, teamID, err)
	}

	return cumulativeFromRow(row), true, nil
}

func (r *CumulativeRepository) Remove(ctx context.Context, leagueID, teamID string) error {
	query, args, err := qb.Update("league_cumulative_totals").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove cumulative total query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove cumulative total league=%s team=%s: %w", leagueID, teamID, err)
	}

	return nil
}

func cumulativeFromRow(row cumulativeTotalTableModel) leaderboard.CumulativeEntry {
	return leaderboard.CumulativeEntry{
		LeagueID:             row.LeaguePublicID,
		TeamID:               row.TeamPublicID,
		TotalPoints:          row.TotalPoints,
		LastCreditedGameweek: row.LastCreditedGameweek,
		UpdatedAt:            row.UpdatedAt,
	}
}
