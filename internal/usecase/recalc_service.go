package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const defaultRecalcWorkers = 4

// RecalcService settles gameweek scores into the leaderboard stores.
// Settlement is idempotent: re-running a gameweek recomputes scores but
// credits cumulative totals at most once per team and gameweek.
type RecalcService struct {
	leagueRepo     league.Repository
	teamRepo       fantasy.Repository
	statsRepo      stats.Repository
	scoreRepo      leaderboard.ScoreRepository
	cumulativeRepo leaderboard.CumulativeRepository
	store          *cache.Store
	logger         *logging.Logger
	workers        int
	now            func() time.Time
	submit         func(p *ants.Pool, task func()) error
}

func NewRecalcService(
	leagueRepo league.Repository,
	teamRepo fantasy.Repository,
	statsRepo stats.Repository,
	scoreRepo leaderboard.ScoreRepository,
	cumulativeRepo leaderboard.CumulativeRepository,
	store *cache.Store,
	logger *logging.Logger,
) *RecalcService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecalcService{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		statsRepo:      statsRepo,
		scoreRepo:      scoreRepo,
		cumulativeRepo: cumulativeRepo,
		store:          store,
		logger:         logger,
		workers:        defaultRecalcWorkers,
		now:            time.Now,
		submit:         (*ants.Pool).Submit,
	}
}

// LeagueSettlement summarizes one league's settlement run.
type LeagueSettlement struct {
	LeagueID string
	Gameweek int
	Teams    int
	Credited int
	Skipped  int
}

// SettleLeagueGameweek recomputes every member team's score for the
// gameweek, stores it, and credits cumulative totals behind the
// watermark check.
func (s *RecalcService) SettleLeagueGameweek(ctx context.Context, leagueID string, gw int) (LeagueSettlement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalcService.SettleLeagueGameweek")
	defer span.End()

	if leagueID == "" {
		return LeagueSettlement{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	if gw <= 0 {
		return LeagueSettlement{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueSettlement{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueSettlement{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	memberships, err := s.leagueRepo.ListMemberships(ctx, leagueID)
	if err != nil {
		return LeagueSettlement{}, fmt.Errorf("list memberships: %w", err)
	}

	points, err := s.statsRepo.TotalPointsByGameweek(ctx, gw)
	if err != nil {
		return LeagueSettlement{}, fmt.Errorf("load gameweek points: %w", err)
	}

	result := LeagueSettlement{LeagueID: leagueID, Gameweek: gw}
	calculatedAt := s.now().UTC()

	for _, m := range memberships {
		team, teamExists, err := s.teamRepo.GetByID(ctx, m.TeamID)
		if err != nil {
			return LeagueSettlement{}, fmt.Errorf("get team %s: %w", m.TeamID, err)
		}
		if !teamExists {
			s.logger.WarnContext(ctx, "settlement skipped missing team",
				"league_id", leagueID, "team_id", m.TeamID)
			continue
		}

		score, err := fantasy.ComputeGameweekScore(team, points)
		if err != nil {
			return LeagueSettlement{}, fmt.Errorf("compute score for team %s: %w", team.ID, err)
		}

		if err := s.scoreRepo.Upsert(ctx, leaderboard.TeamScore{
			LeagueID:     leagueID,
			TeamID:       team.ID,
			Gameweek:     gw,
			Points:       score.Total,
			CalculatedAt: calculatedAt,
		}); err != nil {
			return LeagueSettlement{}, fmt.Errorf("store team score: %w", err)
		}

		applied, err := s.cumulativeRepo.Credit(ctx, leagueID, team.ID, gw, score.Total)
		if err != nil {
			return LeagueSettlement{}, fmt.Errorf("credit cumulative total: %w", err)
		}
		if applied {
			result.Credited++
		} else {
			result.Skipped++
		}
		result.Teams++
	}

	s.store.DeletePrefix(ctx, "leaderboard:"+leagueID+":")

	s.logger.InfoContext(ctx, "gameweek settled",
		"league_id", leagueID,
		"gameweek", gw,
		"teams", result.Teams,
		"credited", result.Credited,
		"skipped", result.Skipped)

	return result, nil
}

// SettleGameweek fans settlement out across all leagues on a bounded
// worker pool. Per-league failures are collected, not fatal.
func (s *RecalcService) SettleGameweek(ctx context.Context, gw int) ([]LeagueSettlement, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecalcService.SettleGameweek")
	defer span.End()

	if gw <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	leagues, err := s.leagueRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	if len(leagues) == 0 {
		return nil, nil
	}

	workerCount := s.workers
	if workerCount > len(leagues) {
		workerCount = len(leagues)
	}

	p, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	results := make(chan LeagueSettlement, len(leagues))
	var workers sync.WaitGroup
	var submitErr error
	for _, lg := range leagues {
		lg := lg
		workers.Add(1)
		if err := s.submit(p, func() {
			defer workers.Done()

			settlement, runErr := s.SettleLeagueGameweek(ctx, lg.ID, gw)
			if runErr != nil {
				s.logger.ErrorContext(ctx, "league settlement failed",
					"league_id", lg.ID, "gameweek", gw, "error", runErr)
				return
			}
			results <- settlement
		}); err != nil {
			workers.Done()
			submitErr = fmt.Errorf("submit settlement task: %w", err)
			break
		}
	}

	// Wait even when a submit failed, so settlements already running
	// finish and get reported.
	workers.Wait()
	close(results)

	out := make([]LeagueSettlement, 0, len(leagues))
	for settlement := range results {
		out = append(out, settlement)
	}

	if submitErr != nil {
		return out, submitErr
	}

	return out, nil
}
