package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/player"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) ListGameweeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameweeks")
	defer span.End()

	items, err := h.gameweekService.ListGameweeks(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list gameweeks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]gameweekDTO, 0, len(items))
	for _, gw := range items {
		out = append(out, gameweekToDTO(ctx, gw))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetActiveGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActiveGameweek")
	defer span.End()

	gw, err := h.gameweekService.GetActiveGameweek(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get active gameweek failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweekToDTO(ctx, gw))
}

func (h *Handler) GetGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameweek")
	defer span.End()

	number, err := parseGameweek(r.PathValue("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gw, err := h.gameweekService.GetGameweek(ctx, number)
	if err != nil {
		h.logger.WarnContext(ctx, "get gameweek failed", "gameweek", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweekToDTO(ctx, gw))
}

func (h *Handler) UpsertGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertGameweek")
	defer span.End()

	var req upsertGameweekRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startsAt, err := parseTimestamp("startsAt", req.StartsAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	endsAt, err := parseTimestamp("endsAt", req.EndsAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gw, err := h.gameweekService.UpsertGameweek(ctx, gameweek.Gameweek{
		Number:   req.Number,
		Name:     req.Name,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert gameweek failed", "gameweek", req.Number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweekToDTO(ctx, gw))
}

func (h *Handler) CompleteGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteGameweek")
	defer span.End()

	number, err := parseGameweek(r.PathValue("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameweekService.CompleteGameweek(ctx, number); err != nil {
		h.logger.WarnContext(ctx, "complete gameweek failed", "gameweek", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"gameweek": number, "completed": true})
}

func (h *Handler) DeleteGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGameweek")
	defer span.End()

	number, err := parseGameweek(r.PathValue("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameweekService.DeleteGameweek(ctx, number); err != nil {
		h.logger.WarnContext(ctx, "delete gameweek failed", "gameweek", number, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"gameweek": number, "deleted": true})
}

func (h *Handler) ListFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtures")
	defer span.End()

	gw, err := parseGameweek(r.URL.Query().Get("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.fixtureService.ListFixturesByGameweek(ctx, gw)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "gameweek", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, fx := range fixtures {
		items = append(items, fixtureToDTO(ctx, fx))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixture")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	fx, err := h.fixtureService.GetFixture(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, fx))
}

func (h *Handler) UpsertFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertFixture")
	defer span.End()

	var req upsertFixtureRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startsAt, err := parseTimestamp("startsAt", req.StartsAt)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	status := fixture.Status(strings.TrimSpace(req.Status))
	if status == "" {
		status = fixture.StatusScheduled
	}

	fx, err := h.fixtureService.UpsertFixture(ctx, fixture.Fixture{
		ID:         req.ID,
		Gameweek:   req.Gameweek,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
		VenueName:  req.VenueName,
		StartsAt:   startsAt,
		Status:     status,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "upsert fixture failed", "fixture_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(ctx, fx))
}

func (h *Handler) UpdateFixtureStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixtureStatus")
	defer span.End()

	fixtureID := r.PathValue("fixtureID")
	var req fixtureStatusRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.fixtureService.UpdateFixtureStatus(ctx, fixtureID, fixture.Status(req.Status)); err != nil {
		h.logger.WarnContext(ctx, "update fixture status failed", "fixture_id", fixtureID, "status", req.Status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": fixtureID, "status": req.Status})
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	filter := player.Filter{
		Role:       player.Role(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("role")))),
		RealTeamID: strings.TrimSpace(r.URL.Query().Get("real_team_id")),
		ActiveOnly: strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("active_only")), "true"),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("max_cost")); raw != "" {
		maxCost, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxCost < 0 {
			writeError(ctx, w, fmt.Errorf("%w: max_cost must be a non-negative integer", usecase.ErrInvalidInput))
			return
		}
		filter.MaxCost = maxCost
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	p, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, p))
}

func parseTimestamp(field, raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an RFC3339 timestamp", usecase.ErrInvalidInput, field)
	}
	return ts, nil
}
