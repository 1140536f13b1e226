package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) Upsert(ctx context.Context, fx fixture.Fixture) error {
	const query = `
INSERT INTO fixtures (public_id, gameweek, home_team_id, away_team_id, venue_name, starts_at, status)
VALUES (:public_id, :gameweek, :home_team_id, :away_team_id, :venue_name, :starts_at, :status)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    gameweek = EXCLUDED.gameweek,
    home_team_id = EXCLUDED.home_team_id,
    away_team_id = EXCLUDED.away_team_id,
    venue_name = EXCLUDED.venue_name,
    starts_at = EXCLUDED.starts_at,
    status = EXCLUDED.status,
    updated_at = NOW(),
    deleted_at = NULL`

	args := map[string]any{
		"public_id":    fx.ID,
		"gameweek":     fx.Gameweek,
		"home_team_id": fx.HomeTeamID,
		"away_team_id": fx.AwayTeamID,
		"venue_name":   fx.VenueName,
		"starts_at":    fx.StartsAt,
		"status":       string(fx.Status),
	}
	sqlQuery, sqlArgs, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind upsert fixture query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	if _, err := r.db.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
		return fmt.Errorf("upsert fixture %s: %w", fx.ID, err)
	}

	return nil
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, gameweek int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		OrderBy("starts_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fixtures for gameweek %d: %w", gameweek, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureFromRow(row))
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture %s: %w", fixtureID, err)
	}

	return fixtureFromRow(row), true, nil
}

func (r *FixtureRepository) UpdateStatus(ctx context.Context, fixtureID string, status fixture.Status) error {
	query, args, err := qb.Update("fixtures").
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture status query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fixture %s status: %w", fixtureID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read update fixture status result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("fixture %s not found", fixtureID)
	}

	return nil
}

func fixtureFromRow(row fixtureTableModel) fixture.Fixture {
	return fixture.Fixture{
		ID:         row.PublicID,
		Gameweek:   row.Gameweek,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		VenueName:  row.VenueName,
		StartsAt:   row.StartsAt,
		Status:     fixture.Status(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
