package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// RunSettleGameweekJob settles one gameweek across every league. Invoked
// by the job queue callback; safe to re-run thanks to credit watermarks.
func (h *Handler) RunSettleGameweekJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSettleGameweekJob")
	defer span.End()

	var req settleGameweekJobRequest
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

	results, err := h.recalcService.SettleGameweek(ctx, req.Gameweek)
	if err != nil {
		h.logger.ErrorContext(ctx, "settle gameweek job failed", "gameweek", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]settlementDTO, 0, len(results))
	for _, result := range results {
		items = append(items, settlementToDTO(ctx, result))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) RunSettleLeagueJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSettleLeagueJob")
	defer span.End()

	var req settleLeagueJobRequest
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

	result, err := h.recalcService.SettleLeagueGameweek(ctx, req.LeagueID, req.Gameweek)
	if err != nil {
		h.logger.ErrorContext(ctx, "settle league job failed",
			"league_id", req.LeagueID, "gameweek", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, settlementToDTO(ctx, result))
}

// ScheduleSettlementJob defers settlement through the job queue instead
// of running it inline.
func (h *Handler) ScheduleSettlementJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleSettlementJob")
	defer span.End()

	if h.settlementQueue == nil {
		writeError(ctx, w, fmt.Errorf("%w: settlement queue is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req scheduleSettlementJobRequest
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

	delay := time.Duration(req.DelaySeconds) * time.Second
	if err := h.settlementQueue.EnqueueSettlement(ctx, req.Gameweek, delay); err != nil {
		h.logger.ErrorContext(ctx, "schedule settlement job failed", "gameweek", req.Gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]any{
		"gameweek":     req.Gameweek,
		"delaySeconds": req.DelaySeconds,
		"scheduled":    true,
	})
}
