package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/jobqueue"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-cricket/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

type repositories struct {
	leagues     league.Repository
	teams       fantasy.Repository
	players     player.Repository
	stats       stats.Repository
	scores      leaderboard.ScoreRepository
	cumulatives leaderboard.CumulativeRepository
	gameweeks   gameweek.Repository
	fixtures    fixture.Repository
	closer      func() error
}

// NewHTTPServer wires repositories, use cases, and the HTTP layer
// into a ready-to-run server.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	generator := idgen.NewRandomGenerator()

	scoringSvc := usecase.NewScoringService(repos.stats, repos.gameweeks)
	teamSvc := usecase.NewTeamService(repos.teams, repos.players, repos.stats, generator)
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.teams, repos.cumulatives, generator)
	leaderboardSvc := usecase.NewLeaderboardService(repos.leagues, repos.teams, repos.scores, repos.cumulatives, store)
	recalcSvc := usecase.NewRecalcService(repos.leagues, repos.teams, repos.stats, repos.scores, repos.cumulatives, store, logger)
	gameweekSvc := usecase.NewGameweekService(repos.gameweeks)
	fixtureSvc := usecase.NewFixtureService(repos.fixtures, repos.gameweeks)
	playerSvc := usecase.NewPlayerService(repos.players)

	var settlementQueue httpapi.SettlementQueue
	if cfg.QStashEnabled {
		settlementQueue = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			Timeout:          cfg.QStashTimeout,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.QStashCircuitEnabled,
				FailureThreshold: cfg.QStashCircuitFailureCount,
				OpenTimeout:      cfg.QStashCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.QStashCircuitHalfOpenMaxReq,
			},
		}, logger)
	}

	handler := httpapi.NewHandler(
		scoringSvc,
		teamSvc,
		leagueSvc,
		leaderboardSvc,
		recalcSvc,
		gameweekSvc,
		fixtureSvc,
		playerSvc,
		settlementQueue,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = repos.closer()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, repos.closer, nil
}

func buildRepositories(cfg config.Config) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			leagues:     postgres.NewLeagueRepository(db),
			teams:       postgres.NewTeamRepository(db),
			players:     postgres.NewPlayerRepository(db),
			stats:       postgres.NewStatsRepository(db),
			scores:      postgres.NewScoreRepository(db),
			cumulatives: postgres.NewCumulativeRepository(db),
			gameweeks:   postgres.NewGameweekRepository(db),
			fixtures:    postgres.NewFixtureRepository(db),
			closer:      db.Close,
		}, nil
	case config.StorageMemory:
		return repositories{
			leagues:     memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:       memory.NewTeamRepository(nil),
			players:     memory.NewPlayerRepository(memory.SeedPlayers()),
			stats:       memory.NewStatsRepository(),
			scores:      memory.NewScoreRepository(),
			cumulatives: memory.NewCumulativeRepository(),
			gameweeks:   memory.NewGameweekRepository(memory.SeedGameweeks()),
			fixtures:    memory.NewFixtureRepository(memory.SeedFixtures()),
			closer:      func() error { return nil },
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
