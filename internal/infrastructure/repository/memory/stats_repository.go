package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/stats"
)

// StatsRepository keeps player gameweek stats keyed by player+gameweek.
type StatsRepository struct {
	mu     sync.RWMutex
	items  map[string]stats.PlayerMatchStat
	orders []string
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{
		items: make(map[string]stats.PlayerMatchStat),
	}
}

func statKey(playerID string, gw int) string {
	return fmt.Sprintf("%s:%d", playerID, gw)
}

func (r *StatsRepository) UpsertBatch(_ context.Context, rows []stats.PlayerMatchStat) ([]stats.UpsertOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]stats.UpsertOutcome, 0, len(rows))
	for _, row := range rows {
		key := statKey(row.PlayerID, row.Gameweek)
		_, exists := r.items[key]
		if !exists {
			r.orders = append(r.orders, key)
		}
		r.items[key] = row
		out = append(out, stats.UpsertOutcome{
			PlayerID: row.PlayerID,
			Gameweek: row.Gameweek,
			Inserted: !exists,
		})
	}

	return out, nil
}

func (r *StatsRepository) ListByGameweek(_ context.Context, gw int) ([]stats.GameweekRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.GameweekRow, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.Gameweek != gw {
			continue
		}
		out = append(out, stats.GameweekRow{Stat: item, Breakdown: stats.ComputePoints(item)})
	}

	return out, nil
}

func (r *StatsRepository) ListByPlayer(_ context.Context, playerID string) ([]stats.GameweekRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.GameweekRow, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.PlayerID != playerID {
			continue
		}
		out = append(out, stats.GameweekRow{Stat: item, Breakdown: stats.ComputePoints(item)})
	}

	return out, nil
}

func (r *StatsRepository) GetByPlayerGameweek(_ context.Context, playerID string, gw int) (stats.GameweekRow, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[statKey(playerID, gw)]
	if !ok {
		return stats.GameweekRow{}, false, nil
	}

	return stats.GameweekRow{Stat: item, Breakdown: stats.ComputePoints(item)}, true, nil
}

func (r *StatsRepository) TotalPointsByGameweek(_ context.Context, gw int) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int)
	for _, item := range r.items {
		if item.Gameweek != gw {
			continue
		}
		out[item.PlayerID] = stats.ComputePoints(item).TotalPoints
	}

	return out, nil
}
