package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
)

type LeagueRepository struct {
	mu          sync.RWMutex
	items       map[string]league.League
	orders      []string
	memberships map[string][]league.Membership
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}

	return &LeagueRepository{
		items:       items,
		orders:      orders,
		memberships: make(map[string][]league.Membership),
	}
}

func (r *LeagueRepository) Create(_ context.Context, lg league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[lg.ID]; exists {
		return fmt.Errorf("league %s already exists", lg.ID)
	}
	for _, existing := range r.items {
		if existing.Code == lg.Code {
			return fmt.Errorf("league code %s already exists", lg.Code)
		}
	}

	r.items[lg.ID] = lg
	r.orders = append(r.orders, lg.ID)
	return nil
}

func (r *LeagueRepository) List(_ context.Context, publicOnly bool) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		item := r.items[id]
		if publicOnly && !item.IsPublic {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByCode(_ context.Context, code string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if r.items[id].Code == code {
			return r.items[id], true, nil
		}
	}

	return league.League{}, false, nil
}

func (r *LeagueRepository) AddMembership(_ context.Context, membership league.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.memberships[membership.LeagueID] {
		if m.TeamID == membership.TeamID {
			return fmt.Errorf("team %s already in league %s", membership.TeamID, membership.LeagueID)
		}
	}

	r.memberships[membership.LeagueID] = append(r.memberships[membership.LeagueID], membership)
	return nil
}

func (r *LeagueRepository) RemoveMembership(_ context.Context, leagueID, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.memberships[leagueID]
	for i, m := range members {
		if m.TeamID == teamID {
			r.memberships[leagueID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}

	return nil
}

func (r *LeagueRepository) ListMemberships(_ context.Context, leagueID string) ([]league.Membership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Membership, len(r.memberships[leagueID]))
	copy(out, r.memberships[leagueID])

	return out, nil
}

func (r *LeagueRepository) CountMemberships(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.memberships[leagueID]), nil
}

func (r *LeagueRepository) IsMember(_ context.Context, leagueID, teamID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.memberships[leagueID] {
		if m.TeamID == teamID {
			return true, nil
		}
	}

	return false, nil
}
