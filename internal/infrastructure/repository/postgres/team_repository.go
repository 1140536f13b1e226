package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	qb "github.com/riskibarqy/fantasy-cricket/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Upsert(ctx context.Context, team fantasy.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertTeamQuery = `
INSERT INTO fantasy_teams (public_id, user_id, name, captain_id, vice_captain_id, budget_cap)
VALUES (:public_id, :user_id, :name, :captain_id, :vice_captain_id, :budget_cap)
ON CONFLICT (public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    captain_id = EXCLUDED.captain_id,
    vice_captain_id = EXCLUDED.vice_captain_id,
    budget_cap = EXCLUDED.budget_cap,
    updated_at = NOW(),
    deleted_at = NULL`

	upsertSQL, upsertArgs, err := sqlx.Named(upsertTeamQuery, map[string]any{
		"public_id":       team.ID,
		"user_id":         team.UserID,
		"name":            team.Name,
		"captain_id":      team.CaptainID,
		"vice_captain_id": team.ViceCaptainID,
		"budget_cap":      team.BudgetCap,
	})
	if err != nil {
		return fmt.Errorf("bind upsert fantasy team query: %w", err)
	}
	upsertSQL = tx.Rebind(upsertSQL)
	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
		return fmt.Errorf("upsert fantasy team %s: %w", team.ID, err)
	}

	const clearSlotsQuery = `
UPDATE fantasy_team_slots
SET deleted_at = NOW()
WHERE team_public_id = :team_public_id
  AND deleted_at IS NULL`
	clearSQL, clearArgs, err := sqlx.Named(clearSlotsQuery, map[string]any{
		"team_public_id": team.ID,
	})
	if err != nil {
		return fmt.Errorf("bind clear team slots query: %w", err)
	}
	clearSQL = tx.Rebind(clearSQL)
	if _, err := tx.ExecContext(ctx, clearSQL, clearArgs...); err != nil {
		return fmt.Errorf("soft delete existing team slots: %w", err)
	}

	const upsertSlotQuery = `
INSERT INTO fantasy_team_slots (
    team_public_id,
    slot_role,
    player_id,
    player_role,
    real_team_id,
    cost
) VALUES (:team_public_id, :slot_role, :player_id, :player_role, :real_team_id, :cost)
ON CONFLICT (team_public_id, player_id) WHERE deleted_at IS NULL
DO UPDATE SET
    slot_role = EXCLUDED.slot_role,
    player_role = EXCLUDED.player_role,
    real_team_id = EXCLUDED.real_team_id,
    cost = EXCLUDED.cost,
    updated_at = NOW(),
    deleted_at = NULL`

	for _, slot := range team.Slots {
		slotSQL, slotArgs, err := sqlx.Named(upsertSlotQuery, map[string]any{
			"team_public_id": team.ID,
			"slot_role":      string(slot.Role),
			"player_id":      slot.PlayerID,
			"player_role":    string(slot.PlayerRole),
			"real_team_id":   slot.RealTeamID,
			"cost":           slot.Cost,
		})
		if err != nil {
			return fmt.Errorf("bind upsert team slot player=%s query: %w", slot.PlayerID, err)
		}
		slotSQL = tx.Rebind(slotSQL)
		if _, err := tx.ExecContext(ctx, slotSQL, slotArgs...); err != nil {
			return fmt.Errorf("upsert team slot player=%s: %w", slot.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team upsert tx: %w", err)
	}

	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (fantasy.Team, bool, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fantasy.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasy.Team{}, false, nil
		}
		return fantasy.Team{}, false, fmt.Errorf("get fantasy team %s: %w", teamID, err)
	}

	slots, err := r.slotsByTeamIDs(ctx, []string{row.PublicID})
	if err != nil {
		return fantasy.Team{}, false, err
	}

	return teamFromRow(row, slots[row.PublicID]), true, nil
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID string) ([]fantasy.Team, error) {
	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.Eq("user_id", userID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by user query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy teams for user %s: %w", userID, err)
	}

	return r.hydrateTeams(ctx, rows)
}

func (r *TeamRepository) ListByIDs(ctx context.Context, teamIDs []string) ([]fantasy.Team, error) {
	if len(teamIDs) == 0 {
		return []fantasy.Team{}, nil
	}

	ids := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("fantasy_teams").
		Where(
			qb.In("public_id", ids),
			qb.IsNull("deleted_at"),
		).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams by ids query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy teams by ids: %w", err)
	}

	return r.hydrateTeams(ctx, rows)
}

func (r *TeamRepository) hydrateTeams(ctx context.Context, rows []fantasyTeamTableModel) ([]fantasy.Team, error) {
	teamIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		teamIDs = append(teamIDs, row.PublicID)
	}

	slots, err := r.slotsByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]fantasy.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row, slots[row.PublicID]))
	}

	return out, nil
}

func (r *TeamRepository) slotsByTeamIDs(ctx context.Context, teamIDs []string) (map[string][]fantasy.Slot, error) {
	if len(teamIDs) == 0 {
		return map[string][]fantasy.Slot{}, nil
	}

	ids := make([]any, 0, len(teamIDs))
	for _, id := range teamIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("fantasy_team_slots").
		Where(
			qb.In("team_public_id", ids),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team slots query: %w", err)
	}

	var rows []fantasyTeamSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team slots: %w", err)
	}

	out := make(map[string][]fantasy.Slot, len(teamIDs))
	for _, row := range rows {
		out[row.TeamPublicID] = append(out[row.TeamPublicID], fantasy.Slot{
			Role:       fantasy.SlotRole(row.SlotRole),
			PlayerID:   row.PlayerID,
			PlayerRole: player.Role(row.PlayerRole),
			RealTeamID: row.RealTeamID,
			Cost:       row.Cost,
		})
	}

	return out, nil
}

func teamFromRow(row fantasyTeamTableModel, slots []fantasy.Slot) fantasy.Team {
	return fantasy.Team{
		ID:            row.PublicID,
		UserID:        row.UserID,
		Name:          row.Name,
		Slots:         slots,
		CaptainID:     row.CaptainID,
		ViceCaptainID: row.ViceCaptainID,
		BudgetCap:     row.BudgetCap,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
