package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func settlementTeam(id, userID string, captainID, viceID string, playerIDs ...string) fantasy.Team {
	slots := make([]fantasy.Slot, 0, len(playerIDs))
	for _, pid := range playerIDs {
		slots = append(slots, fantasy.Slot{
			Role:       fantasy.SlotFlex,
			PlayerID:   pid,
			PlayerRole: player.RoleBatter,
			RealTeamID: "rt-" + pid,
			Cost:       50,
		})
	}
	return fantasy.Team{
		ID:            id,
		UserID:        userID,
		Name:          "Team " + id,
		Slots:         slots,
		CaptainID:     captainID,
		ViceCaptainID: viceID,
		BudgetCap:     1000,
	}
}

type recalcFixture struct {
	leagueRepo     *memory.LeagueRepository
	teamRepo       *memory.TeamRepository
	statsRepo      *memory.StatsRepository
	scoreRepo      *memory.ScoreRepository
	cumulativeRepo *memory.CumulativeRepository
	service        *RecalcService
}

func newRecalcFixture(t *testing.T, lg league.League, teams []fantasy.Team) recalcFixture {
	t.Helper()

	leagueRepo := memory.NewLeagueRepository([]league.League{lg})
	teamRepo := memory.NewTeamRepository(teams)
	statsRepo := memory.NewStatsRepository()
	scoreRepo := memory.NewScoreRepository()
	cumulativeRepo := memory.NewCumulativeRepository()

	ctx := context.Background()
	for _, team := range teams {
		err := leagueRepo.AddMembership(ctx, league.Membership{
			LeagueID: lg.ID,
			TeamID:   team.ID,
			JoinedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("add membership: %v", err)
		}
	}

	service := NewRecalcService(leagueRepo, teamRepo, statsRepo, scoreRepo, cumulativeRepo, cache.NewStore(time.Minute), logging.NewNop())

	return recalcFixture{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		statsRepo:      statsRepo,
		scoreRepo:      scoreRepo,
		cumulativeRepo: cumulativeRepo,
		service:        service,
	}
}

func TestRecalcService_SettleLeagueGameweek(t *testing.T) {
	t.Parallel()

	lg := league.League{ID: "lg1", Name: "Test League", Code: "TL1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}
	fx := newRecalcFixture(t, lg, []fantasy.Team{
		settlementTeam("t1", "u1", "p1", "p2", "p1", "p2", "p3"),
		settlementTeam("t2", "u2", "p4", "p3", "p3", "p4", "p5"),
	})
	ctx := context.Background()

	// p1 scores 30, p2 scores 20, p3 scores 10; p4 and p5 do not play.
	_, err := fx.statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 30},
		{PlayerID: "p2", Gameweek: 1, FixtureID: "fx-001", RunsScored: 20},
		{PlayerID: "p3", Gameweek: 1, FixtureID: "fx-001", RunsScored: 10},
	})
	if err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	result, err := fx.service.SettleLeagueGameweek(ctx, lg.ID, 1)
	if err != nil {
		t.Fatalf("SettleLeagueGameweek error: %v", err)
	}
	if result.Teams != 2 || result.Credited != 2 || result.Skipped != 0 {
		t.Fatalf("unexpected settlement result: %+v", result)
	}

	// t1: captain p1 played, so 2*30 + 20 + 10 = 90.
	// t2: captain p4 absent, vice p3 played, so 2*10 = 20.
	scores, err := fx.scoreRepo.ListByLeagueGameweek(ctx, lg.ID, 1)
	if err != nil {
		t.Fatalf("list scores: %v", err)
	}
	got := make(map[string]int, len(scores))
	for _, sc := range scores {
		got[sc.TeamID] = sc.Points
	}
	if got["t1"] != 90 || got["t2"] != 20 {
		t.Fatalf("unexpected settled scores: %+v", got)
	}

	entry, ok, err := fx.cumulativeRepo.Get(ctx, lg.ID, "t1")
	if err != nil || !ok {
		t.Fatalf("cumulative entry missing: ok=%v err=%v", ok, err)
	}
	if entry.TotalPoints != 90 || entry.LastCreditedGameweek != 1 {
		t.Fatalf("unexpected cumulative entry: %+v", entry)
	}
}

func TestRecalcService_SettlementIsIdempotent(t *testing.T) {
	t.Parallel()

	lg := league.League{ID: "lg1", Name: "Test League", Code: "TL1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}
	fx := newRecalcFixture(t, lg, []fantasy.Team{
		settlementTeam("t1", "u1", "p1", "p2", "p1", "p2"),
	})
	ctx := context.Background()

	_, err := fx.statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 25},
	})
	if err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	first, err := fx.service.SettleLeagueGameweek(ctx, lg.ID, 1)
	if err != nil {
		t.Fatalf("first settlement error: %v", err)
	}
	if first.Credited != 1 {
		t.Fatalf("first run must credit: %+v", first)
	}

	second, err := fx.service.SettleLeagueGameweek(ctx, lg.ID, 1)
	if err != nil {
		t.Fatalf("second settlement error: %v", err)
	}
	if second.Credited != 0 || second.Skipped != 1 {
		t.Fatalf("second run must not double-credit: %+v", second)
	}

	entry, _, err := fx.cumulativeRepo.Get(ctx, lg.ID, "t1")
	if err != nil {
		t.Fatalf("get cumulative: %v", err)
	}
	if entry.TotalPoints != 50 {
		t.Fatalf("captain-doubled 25 must be credited exactly once, got %d", entry.TotalPoints)
	}
}

func TestRecalcService_SettleGameweek_FansOutAcrossLeagues(t *testing.T) {
	t.Parallel()

	lgA := league.League{ID: "lgA", Name: "League A", Code: "LA1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}
	lgB := league.League{ID: "lgB", Name: "League B", Code: "LB1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}

	leagueRepo := memory.NewLeagueRepository([]league.League{lgA, lgB})
	teamRepo := memory.NewTeamRepository([]fantasy.Team{
		settlementTeam("t1", "u1", "p1", "p2", "p1", "p2"),
		settlementTeam("t2", "u2", "p1", "p2", "p1", "p2"),
	})
	statsRepo := memory.NewStatsRepository()
	scoreRepo := memory.NewScoreRepository()
	cumulativeRepo := memory.NewCumulativeRepository()
	ctx := context.Background()

	if err := leagueRepo.AddMembership(ctx, league.Membership{LeagueID: "lgA", TeamID: "t1"}); err != nil {
		t.Fatalf("add membership: %v", err)
	}
	if err := leagueRepo.AddMembership(ctx, league.Membership{LeagueID: "lgB", TeamID: "t2"}); err != nil {
		t.Fatalf("add membership: %v", err)
	}
	if _, err := statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 10},
	}); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	service := NewRecalcService(leagueRepo, teamRepo, statsRepo, scoreRepo, cumulativeRepo, cache.NewStore(time.Minute), logging.NewNop())

	results, err := service.SettleGameweek(ctx, 1)
	if err != nil {
		t.Fatalf("SettleGameweek error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected results for both leagues, got %+v", results)
	}
	for _, r := range results {
		if r.Teams != 1 || r.Credited != 1 {
			t.Fatalf("unexpected league result: %+v", r)
		}
	}
}

func TestRecalcService_SettleGameweek_ReportsPartialResultsOnSubmitFailure(t *testing.T) {
	t.Parallel()

	lgA := league.League{ID: "lgA", Name: "League A", Code: "LA1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}
	lgB := league.League{ID: "lgB", Name: "League B", Code: "LB1", OwnerUserID: "owner", IsPublic: true, MaxMembers: 10}

	leagueRepo := memory.NewLeagueRepository([]league.League{lgA, lgB})
	teamRepo := memory.NewTeamRepository([]fantasy.Team{
		settlementTeam("t1", "u1", "p1", "p2", "p1", "p2"),
	})
	statsRepo := memory.NewStatsRepository()
	scoreRepo := memory.NewScoreRepository()
	cumulativeRepo := memory.NewCumulativeRepository()
	ctx := context.Background()

	if err := leagueRepo.AddMembership(ctx, league.Membership{LeagueID: "lgA", TeamID: "t1"}); err != nil {
		t.Fatalf("add membership: %v", err)
	}
	if _, err := statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{
		{PlayerID: "p1", Gameweek: 1, FixtureID: "fx-001", RunsScored: 10},
	}); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	service := NewRecalcService(leagueRepo, teamRepo, statsRepo, scoreRepo, cumulativeRepo, cache.NewStore(time.Minute), logging.NewNop())

	// The pool rejects the second task; the first league's settlement
	// must still come back alongside the error.
	realSubmit := service.submit
	var calls int
	service.submit = func(p *ants.Pool, task func()) error {
		calls++
		if calls > 1 {
			return errors.New("pool rejected task")
		}
		return realSubmit(p, task)
	}

	results, err := service.SettleGameweek(ctx, 1)
	if err == nil {
		t.Fatal("expected submit failure to surface")
	}
	if len(results) != 1 || results[0].LeagueID != "lgA" {
		t.Fatalf("settled leagues must still be reported, got %+v", results)
	}
}
