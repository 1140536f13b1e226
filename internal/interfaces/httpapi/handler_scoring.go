package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

func (h *Handler) IngestPlayerStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayerStat")
	defer span.End()

	var req playerStatRequest
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

	outcome, err := h.scoringService.UpsertPlayerStat(ctx, statRequestToDomain(req))
	if err != nil {
		h.logger.WarnContext(ctx, "ingest player stat failed", "player_id", req.PlayerID, "gameweek", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertOutcomeDTO{
		PlayerID: outcome.PlayerID,
		Gameweek: outcome.Gameweek,
		Inserted: outcome.Inserted,
	})
}

// IngestPlayerStats accepts a whole gameweek feed at once. Rows that fail
// validation are reported back per index; the rest commit together.
func (h *Handler) IngestPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayerStats")
	defer span.End()

	var req bulkPlayerStatsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(req.Rows) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: rows are required", usecase.ErrInvalidInput))
		return
	}

	rows := make([]stats.PlayerMatchStat, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, statRequestToDomain(row))
	}

	result, err := h.scoringService.BulkUpsertPlayerStats(ctx, rows)
	if err != nil {
		h.logger.WarnContext(ctx, "bulk ingest player stats failed", "rows", len(rows), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bulkResultToDTO(ctx, result))
}

func (h *Handler) GetPlayerGameweekPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerGameweekPoints")
	defer span.End()

	playerID := r.PathValue("playerID")
	gw, err := parseGameweek(r.PathValue("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	row, err := h.scoringService.GetPlayerGameweekPoints(ctx, playerID, gw)
	if err != nil {
		h.logger.WarnContext(ctx, "get player gameweek points failed", "player_id", playerID, "gameweek", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statRowToDTO(ctx, row))
}

func (h *Handler) ListGameweekStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameweekStats")
	defer span.End()

	gw, err := parseGameweek(r.PathValue("gameweek"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.scoringService.ListGameweekStats(ctx, gw)
	if err != nil {
		h.logger.WarnContext(ctx, "list gameweek stats failed", "gameweek", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]statRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, statRowToDTO(ctx, row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerStatsSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStatsSummary")
	defer span.End()

	playerID := r.PathValue("playerID")
	summary, err := h.scoringService.GetPlayerStatsSummary(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats summary failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(ctx, summary))
}

func parseGameweek(raw string) (int, error) {
	gw, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || gw <= 0 {
		return 0, fmt.Errorf("%w: gameweek must be a positive integer", usecase.ErrInvalidInput)
	}
	return gw, nil
}
