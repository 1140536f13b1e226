package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) Upsert(ctx context.Context, gw gameweek.Gameweek) error {
	const query = `
INSERT INTO gameweeks (number, name, starts_at, ends_at, is_active, is_completed)
VALUES (:number, :name, :starts_at, :ends_at, :is_active, :is_completed)
ON CONFLICT (number) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    starts_at = EXCLUDED.starts_at,
    ends_at = EXCLUDED.ends_at,
    is_active = EXCLUDED.is_active,
    is_completed = EXCLUDED.is_completed,
    updated_at = NOW(),
    deleted_at = NULL`

	args := map[string]any{
		"number":       gw.Number,
		"name":         gw.Name,
		"starts_at":    gw.StartsAt,
		"ends_at":      gw.EndsAt,
		"is_active":    gw.IsActive,
		"is_completed": gw.IsCompleted,
	}
	sqlQuery, sqlArgs, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("bind upsert gameweek query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	if _, err := r.db.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
		return fmt.Errorf("upsert gameweek %d: %w", gw.Number, err)
	}

	return nil
}

func (r *GameweekRepository) List(ctx context.Context) ([]gameweek.Gameweek, error) {
	query, args, err := qb.Select("*").From("gameweeks").
		Where(qb.IsNull("deleted_at")).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gameweeks query: %w", err)
	}

	var rows []gameweekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gameweeks: %w", err)
	}

	out := make([]gameweek.Gameweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweekFromRow(row))
	}

	return out, nil
}

func (r *GameweekRepository) GetByNumber(ctx context.Context, number int) (gameweek.Gameweek, bool, error) {
	query, args, err := qb.Select("*").From("gameweeks").
		Where(
			qb.Eq("number", number),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return gameweek.Gameweek{}, false, fmt.Errorf("build get gameweek query: %w", err)
	}

	var row gameweekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get gameweek %d: %w", number, err)
	}

	return gameweekFromRow(row), true, nil
}

func (r *GameweekRepository) GetActive(ctx context.Context) (gameweek.Gameweek, bool, error) {
	query, args, err := qb.Select("*").From("gameweeks").
		Where(
			qb.EqLiteral("is_active", "TRUE"),
			qb.IsNull("deleted_at"),
		).
		OrderBy("number").
		Limit(1).
		ToSQL()
	if err != nil {
		return gameweek.Gameweek{}, false, fmt.Errorf("build get active gameweek query: %w", err)
	}

	var row gameweekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get active gameweek: %w", err)
	}

	return gameweekFromRow(row), true, nil
}

func (r *GameweekRepository) MarkCompleted(ctx context.Context, number int) error {
	query, args, err := qb.Update("gameweeks").
		Set("is_completed", true).
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("number", number),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build mark gameweek completed query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark gameweek %d completed: %w", number, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read mark completed result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("gameweek %d not found", number)
	}

	return nil
}

func (r *GameweekRepository) Delete(ctx context.Context, number int) error {
	query, args, err := qb.Update("gameweeks").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("number", number),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete gameweek query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete gameweek %d: %w", number, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read delete gameweek result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("gameweek %d not found", number)
	}

	return nil
}

func gameweekFromRow(row gameweekTableModel) gameweek.Gameweek {
	return gameweek.Gameweek{
		Number:      row.Number,
		Name:        row.Name,
		StartsAt:    row.StartsAt,
		EndsAt:      row.EndsAt,
		IsActive:    row.IsActive,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
