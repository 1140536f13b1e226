package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// SettlementQueue enqueues deferred settlement jobs that call back into
// the internal job routes.
type SettlementQueue interface {
	EnqueueSettlement(ctx context.Context, gameweek int, delay time.Duration) error
}

type Handler struct {
	scoringService     *usecase.ScoringService
	teamService        *usecase.TeamService
	leagueService      *usecase.LeagueService
	leaderboardService *usecase.LeaderboardService
	recalcService      *usecase.RecalcService
	gameweekService    *usecase.GameweekService
	fixtureService     *usecase.FixtureService
	playerService      *usecase.PlayerService
	settlementQueue    SettlementQueue
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	scoringService *usecase.ScoringService,
	teamService *usecase.TeamService,
	leagueService *usecase.LeagueService,
	leaderboardService *usecase.LeaderboardService,
	recalcService *usecase.RecalcService,
	gameweekService *usecase.GameweekService,
	fixtureService *usecase.FixtureService,
	playerService *usecase.PlayerService,
	settlementQueue SettlementQueue,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoringService:     scoringService,
		teamService:        teamService,
		leagueService:      leagueService,
		leaderboardService: leaderboardService,
		recalcService:      recalcService,
		gameweekService:    gameweekService,
		fixtureService:     fixtureService,
		playerService:      playerService,
		settlementQueue:    settlementQueue,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
