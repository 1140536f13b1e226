package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
)

type FixtureRepository struct {
	mu     sync.RWMutex
	items  map[string]fixture.Fixture
	orders []string
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := make(map[string]fixture.Fixture, len(fixtures))
	orders := make([]string, 0, len(fixtures))

	for _, fx := range fixtures {
		items[fx.ID] = fx
		orders = append(orders, fx.ID)
	}

	return &FixtureRepository{
		items:  items,
		orders: orders,
	}
}

func (r *FixtureRepository) Upsert(_ context.Context, fx fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[fx.ID]; !exists {
		r.orders = append(r.orders, fx.ID)
	}
	r.items[fx.ID] = fx

	return nil
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, gw int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, id := range r.orders {
		if r.items[id].Gameweek == gw {
			out = append(out, r.items[id])
		}
	}

	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fx, ok := r.items[fixtureID]
	if !ok {
		return fixture.Fixture{}, false, nil
	}

	return fx, true, nil
}

func (r *FixtureRepository) UpdateStatus(_ context.Context, fixtureID string, status fixture.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fx, ok := r.items[fixtureID]
	if !ok {
		return nil
	}
	fx.Status = status
	r.items[fixtureID] = fx

	return nil
}
