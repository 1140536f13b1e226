package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu    sync.RWMutex
	items map[int]gameweek.Gameweek
}

func NewGameweekRepository(gameweeks []gameweek.Gameweek) *GameweekRepository {
	items := make(map[int]gameweek.Gameweek, len(gameweeks))
	for _, gw := range gameweeks {
		items[gw.Number] = gw
	}

	return &GameweekRepository{items: items}
}

func (r *GameweekRepository) Upsert(_ context.Context, gw gameweek.Gameweek) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[gw.Number] = gw
	return nil
}

func (r *GameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]gameweek.Gameweek, 0, len(r.items))
	for _, gw := range r.items {
		out = append(out, gw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out, nil
}

func (r *GameweekRepository) GetByNumber(_ context.Context, number int) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gw, ok := r.items[number]
	if !ok {
		return gameweek.Gameweek{}, false, nil
	}

	return gw, true, nil
}

func (r *GameweekRepository) GetActive(_ context.Context) (gameweek.Gameweek, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, gw := range r.items {
		if gw.IsActive {
			return gw, true, nil
		}
	}

	return gameweek.Gameweek{}, false, nil
}

func (r *GameweekRepository) MarkCompleted(_ context.Context, number int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	gw, ok := r.items[number]
	if !ok {
		return nil
	}
	gw.IsCompleted = true
	gw.IsActive = false
	r.items[number] = gw

	return nil
}

func (r *GameweekRepository) Delete(_ context.Context, number int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, number)
	return nil
}
