package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[string]fantasy.Team
	orders []string
}

func NewTeamRepository(teams []fantasy.Team) *TeamRepository {
	items := make(map[string]fantasy.Team, len(teams))
	orders := make([]string, 0, len(teams))

	for _, t := range teams {
		items[t.ID] = t
		orders = append(orders, t.ID)
	}

	return &TeamRepository{
		items:  items,
		orders: orders,
	}
}

func (r *TeamRepository) Upsert(_ context.Context, team fantasy.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[team.ID]; !exists {
		r.orders = append(r.orders, team.ID)
	}
	r.items[team.ID] = team

	return nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (fantasy.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	if !ok {
		return fantasy.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) ListByUser(_ context.Context, userID string) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0)
	for _, id := range r.orders {
		if r.items[id].UserID == userID {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *TeamRepository) ListByIDs(_ context.Context, teamIDs []string) ([]fantasy.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fantasy.Team, 0, len(teamIDs))
	for _, id := range teamIDs {
		if t, ok := r.items[id]; ok {
			out = append(out, t)
		}
	}

	return out, nil
}
