package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
)

// ScoringService ingests raw match statistics and answers point queries.
type ScoringService struct {
	statsRepo    stats.Repository
	gameweekRepo gameweek.Repository
}

func NewScoringService(statsRepo stats.Repository, gameweekRepo gameweek.Repository) *ScoringService {
	return &ScoringService{
		statsRepo:    statsRepo,
		gameweekRepo: gameweekRepo,
	}
}

// RowError reports one rejected row of a bulk ingestion request.
type RowError struct {
	Index    int
	PlayerID string
	Message  string
}

// BulkUpsertResult summarizes a bulk ingestion: how many rows were
// inserted, how many updated existing stats, and which rows failed
// validation. Failed rows are excluded; the rest commit together.
type BulkUpsertResult struct {
	Inserted int
	Updated  int
	Errors   []RowError
}

func (s *ScoringService) UpsertPlayerStat(ctx context.Context, stat stats.PlayerMatchStat) (stats.UpsertOutcome, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.UpsertPlayerStat")
	defer span.End()

	if err := stat.Validate(); err != nil {
		return stats.UpsertOutcome{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureGameweek(ctx, stat.Gameweek); err != nil {
		return stats.UpsertOutcome{}, err
	}

	outcomes, err := s.statsRepo.UpsertBatch(ctx, []stats.PlayerMatchStat{stat})
	if err != nil {
		return stats.UpsertOutcome{}, fmt.Errorf("upsert player stat: %w", err)
	}
	if len(outcomes) != 1 {
		return stats.UpsertOutcome{}, fmt.Errorf("upsert player stat: expected one outcome, got %d", len(outcomes))
	}

	return outcomes[0], nil
}

// BulkUpsertPlayerStats validates every row first, then persists all
// valid rows in a single batch. A validation failure rejects only its
// own row; a storage failure rejects the whole batch.
func (s *ScoringService) BulkUpsertPlayerStats(ctx context.Context, rows []stats.PlayerMatchStat) (BulkUpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.BulkUpsertPlayerStats")
	defer span.End()

	if len(rows) == 0 {
		return BulkUpsertResult{}, fmt.Errorf("%w: at least one stat row is required", ErrInvalidInput)
	}

	result := BulkUpsertResult{}
	valid := make([]stats.PlayerMatchStat, 0, len(rows))
	seenGameweeks := make(map[int]struct{})
	seenKeys := make(map[string]int)

	for i, row := range rows {
		if err := row.Validate(); err != nil {
			result.Errors = append(result.Errors, RowError{Index: i, PlayerID: row.PlayerID, Message: err.Error()})
			continue
		}
		key := fmt.Sprintf("%s:%d", row.PlayerID, row.Gameweek)
		if firstIdx, dup := seenKeys[key]; dup {
			result.Errors = append(result.Errors, RowError{
				Index:    i,
				PlayerID: row.PlayerID,
				Message:  fmt.Sprintf("duplicate of row %d for the same player and gameweek", firstIdx),
			})
			continue
		}
		seenKeys[key] = i
		seenGameweeks[row.Gameweek] = struct{}{}
		valid = append(valid, row)
	}

	for gw := range seenGameweeks {
		if err := s.ensureGameweek(ctx, gw); err != nil {
			return BulkUpsertResult{}, err
		}
	}

	if len(valid) == 0 {
		return result, nil
	}

	outcomes, err := s.statsRepo.UpsertBatch(ctx, valid)
	if err != nil {
		return BulkUpsertResult{}, fmt.Errorf("bulk upsert player stats: %w", err)
	}
	for _, outcome := range outcomes {
		if outcome.Inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (s *ScoringService) GetPlayerGameweekPoints(ctx context.Context, playerID string, gw int) (stats.GameweekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetPlayerGameweekPoints")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return stats.GameweekRow{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if gw <= 0 {
		return stats.GameweekRow{}, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	row, exists, err := s.statsRepo.GetByPlayerGameweek(ctx, playerID, gw)
	if err != nil {
		return stats.GameweekRow{}, fmt.Errorf("get player gameweek stat: %w", err)
	}
	if !exists {
		return stats.GameweekRow{}, fmt.Errorf("%w: player=%s gameweek=%d", ErrNotFound, playerID, gw)
	}

	return row, nil
}

func (s *ScoringService) ListGameweekStats(ctx context.Context, gw int) ([]stats.GameweekRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListGameweekStats")
	defer span.End()

	if gw <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	rows, err := s.statsRepo.ListByGameweek(ctx, gw)
	if err != nil {
		return nil, fmt.Errorf("list gameweek stats: %w", err)
	}

	return rows, nil
}

// PlayerStatsSummary aggregates one player's season so far.
type PlayerStatsSummary struct {
	PlayerID      string
	TotalPoints   int
	MatchesPlayed int
	AveragePoints float64
	RecentForm    []int
}

const recentFormWindow = 5

func (s *ScoringService) GetPlayerStatsSummary(ctx context.Context, playerID string) (PlayerStatsSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.GetPlayerStatsSummary")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerStatsSummary{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	rows, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerStatsSummary{}, fmt.Errorf("list player stats: %w", err)
	}

	summary := PlayerStatsSummary{PlayerID: playerID}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Stat.Gameweek < rows[j].Stat.Gameweek
	})

	for _, row := range rows {
		summary.TotalPoints += row.Breakdown.TotalPoints
		summary.MatchesPlayed++
	}
	if summary.MatchesPlayed > 0 {
		avg := float64(summary.TotalPoints) / float64(summary.MatchesPlayed)
		summary.AveragePoints = math.Round(avg*10) / 10
	}

	start := len(rows) - recentFormWindow
	if start < 0 {
		start = 0
	}
	for _, row := range rows[start:] {
		summary.RecentForm = append(summary.RecentForm, row.Breakdown.TotalPoints)
	}

	return summary, nil
}

func (s *ScoringService) ensureGameweek(ctx context.Context, gw int) error {
	if gw <= 0 {
		return fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}
	_, exists, err := s.gameweekRepo.GetByNumber(ctx, gw)
	if err != nil {
		return fmt.Errorf("get gameweek: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: gameweek=%d", ErrNotFound, gw)
	}
	return nil
}
