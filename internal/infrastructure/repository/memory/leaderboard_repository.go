package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
)

// ScoreRepository keeps settled team scores keyed by league+team+gameweek.
type ScoreRepository struct {
	mu     sync.RWMutex
	items  map[string]leaderboard.TeamScore
	orders []string
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{
		items: make(map[string]leaderboard.TeamScore),
	}
}

func scoreKey(leagueID, teamID string, gw int) string {
	return fmt.Sprintf("%s:%s:%d", leagueID, teamID, gw)
}

func (r *ScoreRepository) Upsert(_ context.Context, score leaderboard.TeamScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := scoreKey(score.LeagueID, score.TeamID, score.Gameweek)
	if _, exists := r.items[key]; !exists {
		r.orders = append(r.orders, key)
	}
	r.items[key] = score

	return nil
}

func (r *ScoreRepository) ListByLeague(_ context.Context, leagueID string) ([]leaderboard.TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaderboard.TeamScore, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *ScoreRepository) ListByLeagueGameweek(_ context.Context, leagueID string, gw int) ([]leaderboard.TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaderboard.TeamScore, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.LeagueID == leagueID && item.Gameweek == gw {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *ScoreRepository) ListByLeagueUpTo(_ context.Context, leagueID string, gw int) ([]leaderboard.TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaderboard.TeamScore, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.LeagueID == leagueID && item.Gameweek <= gw {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *ScoreRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]leaderboard.TeamScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leaderboard.TeamScore, 0)
	for _, key := range r.orders {
		item := r.items[key]
		if item.LeagueID == leagueID && item.TeamID == teamID {
			out = append(out, item)
		}
	}

	return out, nil
}

// CumulativeRepository keeps running totals with their watermark.
type CumulativeRepository struct {
	mu     sync.Mutex
	items  map[string]leaderboard.CumulativeEntry
	orders []string
}

func NewCumulativeRepository() *CumulativeRepository {
	return &CumulativeRepository{
		items: make(map[string]leaderboard.CumulativeEntry),
	}
}

func cumulativeKey(leagueID, teamID string) string {
	return leagueID + ":" + teamID
}

// Credit applies the points only when gw advances the watermark. The
// check and the write happen under one lock, mirroring the conditional
// update the SQL implementation issues.
func (r *CumulativeRepository) Credit(_ context.Context, leagueID, teamID string, gw, points int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cumulativeKey(leagueID, teamID)
	entry, exists := r.items[key]
	if !exists {
		entry = leaderboard.CumulativeEntry{LeagueID: leagueID, TeamID: teamID}
		r.orders = append(r.orders, key)
	}
	if exists && gw <= entry.LastCreditedGameweek {
		return false, nil
	}

	entry.TotalPoints += points
	entry.LastCreditedGameweek = gw
	entry.UpdatedAt = time.Now().UTC()
	r.items[key] = entry

	return true, nil
}

func (r *CumulativeRepository) ListByLeague(_ context.Context, leagueID string) ([]leaderboard.CumulativeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]leaderboard.CumulativeEntry, 0)
	for _, key := range r.orders {
		if item, ok := r.items[key]; ok && item.LeagueID == leagueID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *CumulativeRepository) Get(_ context.Context, leagueID, teamID string) (leaderboard.CumulativeEntry, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.items[cumulativeKey(leagueID, teamID)]
	if !ok {
		return leaderboard.CumulativeEntry{}, false, nil
	}

	return entry, true, nil
}

func (r *CumulativeRepository) Remove(_ context.Context, leagueID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cumulativeKey(leagueID, teamID)
	delete(r.items, key)
	// Drop the order slot too, or a rejoining team would be listed twice.
	for i, k := range r.orders {
		if k == key {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
