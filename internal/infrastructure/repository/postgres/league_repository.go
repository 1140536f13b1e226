package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) Create(ctx context.Context, lg league.League) error {
	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID:    lg.ID,
		Name:        lg.Name,
		Code:        lg.Code,
		OwnerUserID: lg.OwnerUserID,
		IsPublic:    lg.IsPublic,
		MaxMembers:  lg.MaxMembers,
	}, "")
	if err != nil {
		return fmt.Errorf("build create league query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create league %s: %w", lg.ID, err)
	}

	return nil
}

func (r *LeagueRepository) List(ctx context.Context, publicOnly bool) ([]league.League, error) {
	conditions := []qb.Condition{qb.IsNull("deleted_at")}
	if publicOnly {
		conditions = append(conditions, qb.EqLiteral("is_public", "TRUE"))
	}

	query, args, err := qb.Select("*").From("leagues").
		Where(conditions...).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueFromRow(row))
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", leagueID))
}

func (r *LeagueRepository) GetByCode(ctx context.Context, code string) (league.League, bool, error) {
	return r.getOne(ctx, qb.Eq("code", code))
}

func (r *LeagueRepository) getOne(ctx context.Context, match qb.Condition) (league.League, bool, error) {
	query, args, err := qb.Select("*").From("leagues").
		Where(
			match,
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	return leagueFromRow(row), true, nil
}

func (r *LeagueRepository) AddMembership(ctx context.Context, membership league.Membership) error {
	const query = `
INSERT INTO league_memberships (league_public_id, team_public_id, joined_at)
VALUES (:league_public_id, :team_public_id, :joined_at)
ON CONFLICT (league_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    updated_at = NOW(),
    deleted_at = NULL`

	sqlQuery, sqlArgs, err := sqlx.Named(query, map[string]any{
		"league_public_id": membership.LeagueID,
		"team_public_id":   membership.TeamID,
		"joined_at":        membership.JoinedAt,
	})
	if err != nil {
		return fmt.Errorf("bind add membership query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)

	if _, err := r.db.ExecContext(ctx, sqlQuery, sqlArgs...); err != nil {
		return fmt.Errorf("add membership league=%s team=%s: %w", membership.LeagueID, membership.TeamID, err)
	}

	return nil
}

func (r *LeagueRepository) RemoveMembership(ctx context.Context, leagueID, teamID string) error {
	query, args, err := qb.Update("league_memberships").
		SetExpr("deleted_at", "NOW()").
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build remove membership query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove membership league=%s team=%s: %w", leagueID, teamID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read remove membership result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("membership league=%s team=%s not found", leagueID, teamID)
	}

	return nil
}

func (r *LeagueRepository) ListMemberships(ctx context.Context, leagueID string) ([]league.Membership, error) {
	query, args, err := qb.Select("*").From("league_memberships").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("joined_at", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list memberships query: %w", err)
	}

	var rows []leagueMembershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list memberships for league %s: %w", leagueID, err)
	}

	out := make([]league.Membership, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Membership{
			LeagueID:  row.LeaguePublicID,
			TeamID:    row.TeamPublicID,
			JoinedAt:  row.JoinedAt,
			CreatedAt: row.CreatedAt,
		})
	}

	return out, nil
}

func (r *LeagueRepository) CountMemberships(ctx context.Context, leagueID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("league_memberships").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count memberships query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count memberships for league %s: %w", leagueID, err)
	}

	return count, nil
}

func (r *LeagueRepository) IsMember(ctx context.Context, leagueID, teamID string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("league_memberships").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build is member query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check membership league=%s team=%s: %w", leagueID, teamID, err)
	}

	return count > 0, nil
}

func leagueFromRow(row leagueTableModel) league.League {
	return league.League{
		ID:          row.PublicID,
		Name:        row.Name,
		Code:        row.Code,
		OwnerUserID: row.OwnerUserID,
		IsPublic:    row.IsPublic,
		MaxMembers:  row.MaxMembers,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
