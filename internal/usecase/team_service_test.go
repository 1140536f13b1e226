package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/id"
)

func newTeamService() (*TeamService, *memory.StatsRepository) {
	teamRepo := memory.NewTeamRepository(nil)
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	statsRepo := memory.NewStatsRepository()
	service := NewTeamService(teamRepo, playerRepo, statsRepo, id.NewRandomGenerator())
	return service, statsRepo
}

func validRosterInput() CreateTeamInput {
	return CreateTeamInput{
		UserID: "u1",
		Name:   "Border Gavaskar XI",
		Slots: []CreateTeamSlot{
			{Role: fantasy.SlotBatting, PlayerID: "ind-bat-02"},
			{Role: fantasy.SlotBatting, PlayerID: "ind-bat-03"},
			{Role: fantasy.SlotBatting, PlayerID: "ind-bat-04"},
			{Role: fantasy.SlotKeeper, PlayerID: "ind-wk-02"},
			{Role: fantasy.SlotBowling, PlayerID: "ind-bowl-02"},
			{Role: fantasy.SlotBowling, PlayerID: "ind-bowl-03"},
			{Role: fantasy.SlotBowling, PlayerID: "ind-bowl-04"},
			{Role: fantasy.SlotFlex, PlayerID: "ind-bat-05"},
			{Role: fantasy.SlotFlex, PlayerID: "ind-wk-01"},
			{Role: fantasy.SlotFlex, PlayerID: "ind-ar-03"},
			{Role: fantasy.SlotFlex, PlayerID: "ind-bat-01"},
		},
		CaptainID:     "ind-bat-01",
		ViceCaptainID: "ind-bowl-02",
	}
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Parallel()

	service, _ := newTeamService()

	team, err := service.CreateTeam(context.Background(), validRosterInput())
	if err != nil {
		t.Fatalf("CreateTeam error: %v", err)
	}

	if team.ID == "" {
		t.Fatal("team must get a generated id")
	}
	if len(team.Slots) != 11 {
		t.Fatalf("expected 11 resolved slots, got %d", len(team.Slots))
	}
	// Slot metadata is resolved from the catalog, not trusted from input.
	for _, slot := range team.Slots {
		if slot.PlayerRole == "" || slot.RealTeamID == "" || slot.Cost <= 0 {
			t.Fatalf("slot must carry catalog data: %+v", slot)
		}
	}

	stored, err := service.GetTeam(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("GetTeam error: %v", err)
	}
	if stored.Name != "Border Gavaskar XI" {
		t.Fatalf("unexpected stored team: %+v", stored)
	}
}

func TestTeamService_CreateTeamRejections(t *testing.T) {
	t.Parallel()

	service, _ := newTeamService()
	ctx := context.Background()

	unknown := validRosterInput()
	unknown.Slots[0].PlayerID = "ghost"
	if _, err := service.CreateTeam(ctx, unknown); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown player must fail, got %v", err)
	}

	inactive := validRosterInput()
	inactive.Slots[0].PlayerID = "ind-bowl-05"
	if _, err := service.CreateTeam(ctx, inactive); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("inactive player must fail, got %v", err)
	}

	short := validRosterInput()
	short.Slots = short.Slots[:10]
	short.CaptainID = "ind-bat-02"
	if _, err := service.CreateTeam(ctx, short); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("short roster must fail, got %v", err)
	}

	badCaptain := validRosterInput()
	badCaptain.CaptainID = "ind-bowl-05"
	if _, err := service.CreateTeam(ctx, badCaptain); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("captain outside roster must fail, got %v", err)
	}
}

func TestTeamService_GetTeamGameweekScore(t *testing.T) {
	t.Parallel()

	service, statsRepo := newTeamService()
	ctx := context.Background()

	team, err := service.CreateTeam(ctx, validRosterInput())
	if err != nil {
		t.Fatalf("CreateTeam error: %v", err)
	}

	_, err = statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{
		{PlayerID: "ind-bat-01", Gameweek: 1, FixtureID: "fx-001", RunsScored: 40},
		{PlayerID: "ind-ar-03", Gameweek: 1, FixtureID: "fx-001", Wickets: 2},
	})
	if err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	score, err := service.GetTeamGameweekScore(ctx, team.ID, 1)
	if err != nil {
		t.Fatalf("GetTeamGameweekScore error: %v", err)
	}

	// Captain ind-bat-01 played: 2*40; ind-ar-03 adds 2*25 wickets points.
	if score.Total != 130 {
		t.Fatalf("unexpected total: %d", score.Total)
	}
	if len(score.Slots) != 11 {
		t.Fatalf("breakdown must cover every slot, got %d", len(score.Slots))
	}
}
