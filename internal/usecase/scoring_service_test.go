package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
)

func seededGameweekRepo() *memory.GameweekRepository {
	start := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	return memory.NewGameweekRepository([]gameweek.Gameweek{
		{Number: 1, Name: "Gameweek 1", StartsAt: start, EndsAt: start.AddDate(0, 0, 6), IsActive: true},
		{Number: 2, Name: "Gameweek 2", StartsAt: start.AddDate(0, 0, 7), EndsAt: start.AddDate(0, 0, 13)},
	})
}

func TestScoringService_BulkUpsertPlayerStats_PartialRejection(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())

	rows := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 45, Fours: 5, Sixes: 2},
		{PlayerID: "p2", Gameweek: 1, FixtureID: "fx-001", Wickets: -1},
		{PlayerID: "", Gameweek: 1, FixtureID: "fx-001"},
		{PlayerID: "p3", Gameweek: 1, FixtureID: "fx-002", Catches: 2},
	}

	result, err := service.BulkUpsertPlayerStats(context.Background(), rows)
	if err != nil {
		t.Fatalf("BulkUpsertPlayerStats error: %v", err)
	}

	if result.Inserted != 2 || result.Updated != 0 {
		t.Fatalf("expected 2 inserted, 0 updated, got %+v", result)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %+v", result.Errors)
	}
	if result.Errors[0].Index != 1 || result.Errors[1].Index != 2 {
		t.Fatalf("row errors must carry source indexes: %+v", result.Errors)
	}
}

func TestScoringService_BulkUpsertPlayerStats_CountsUpdates(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())
	ctx := context.Background()

	first := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 10},
	}
	if _, err := service.BulkUpsertPlayerStats(ctx, first); err != nil {
		t.Fatalf("first bulk upsert error: %v", err)
	}

	second := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 25},
		{PlayerID: "p2", Gameweek: 1, FixtureID: "fx-001", Wickets: 3},
	}
	result, err := service.BulkUpsertPlayerStats(ctx, second)
	if err != nil {
		t.Fatalf("second bulk upsert error: %v", err)
	}
	if result.Inserted != 1 || result.Updated != 1 {
		t.Fatalf("expected 1 inserted and 1 updated, got %+v", result)
	}

	row, err := service.GetPlayerGameweekPoints(ctx, "p1", 1)
	if err != nil {
		t.Fatalf("GetPlayerGameweekPoints error: %v", err)
	}
	if row.Stat.RunsScored != 25 || row.Breakdown.TotalPoints != 25 {
		t.Fatalf("second write must win: %+v", row)
	}
}

func TestScoringService_BulkUpsertPlayerStats_RejectsDuplicateRows(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())

	rows := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 10},
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-002", RunsScored: 99},
	}

	result, err := service.BulkUpsertPlayerStats(context.Background(), rows)
	if err != nil {
		t.Fatalf("BulkUpsertPlayerStats error: %v", err)
	}
	if result.Inserted != 1 || len(result.Errors) != 1 {
		t.Fatalf("duplicate in-batch row must be rejected: %+v", result)
	}
	if result.Errors[0].Index != 1 {
		t.Fatalf("second occurrence is the duplicate: %+v", result.Errors)
	}
}

func TestScoringService_BulkUpsertPlayerStats_UnknownGameweekFailsBatch(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())

	rows := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 9, FixtureID: "fx-001", RunsScored: 10},
	}

	_, err := service.BulkUpsertPlayerStats(context.Background(), rows)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown gameweek, got %v", err)
	}
}

func TestScoringService_GetPlayerStatsSummary(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())
	ctx := context.Background()

	rows := []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 30},
		{PlayerID: "p1", Gameweek: 2, FixtureID: "fx-003", RunsScored: 15},
	}
	if _, err := service.BulkUpsertPlayerStats(ctx, rows); err != nil {
		t.Fatalf("bulk upsert error: %v", err)
	}

	summary, err := service.GetPlayerStatsSummary(ctx, "p1")
	if err != nil {
		t.Fatalf("GetPlayerStatsSummary error: %v", err)
	}

	if summary.TotalPoints != 45 || summary.MatchesPlayed != 2 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.AveragePoints != 22.5 {
		t.Fatalf("average must round to one decimal: %v", summary.AveragePoints)
	}
	if len(summary.RecentForm) != 2 || summary.RecentForm[0] != 30 || summary.RecentForm[1] != 15 {
		t.Fatalf("recent form must be gameweek-ordered: %+v", summary.RecentForm)
	}
}

func TestScoringService_GetPlayerGameweekPoints_NotFound(t *testing.T) {
	t.Parallel()

	service := NewScoringService(memory.NewStatsRepository(), seededGameweekRepo())

	_, err := service.GetPlayerGameweekPoints(context.Background(), "ghost", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
