package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
)

func testGameweek(number int) gameweek.Gameweek {
	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*number)
	return gameweek.Gameweek{
		Number:   number,
		Name:     "Gameweek",
		StartsAt: start,
		EndsAt:   start.AddDate(0, 0, 6),
	}
}

func TestGameweekService_DeleteGameweek(t *testing.T) {
	t.Parallel()

	repo := memory.NewGameweekRepository(nil)
	service := NewGameweekService(repo)
	ctx := context.Background()

	if _, err := service.UpsertGameweek(ctx, testGameweek(1)); err != nil {
		t.Fatalf("upsert gameweek: %v", err)
	}
	if _, err := service.UpsertGameweek(ctx, testGameweek(2)); err != nil {
		t.Fatalf("upsert gameweek: %v", err)
	}

	if err := service.DeleteGameweek(ctx, 1); err != nil {
		t.Fatalf("DeleteGameweek error: %v", err)
	}

	if _, err := service.GetGameweek(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted gameweek must be gone, got %v", err)
	}
	if _, err := service.GetGameweek(ctx, 2); err != nil {
		t.Fatalf("other gameweeks must survive, got %v", err)
	}

	items, err := service.ListGameweeks(ctx)
	if err != nil {
		t.Fatalf("list gameweeks: %v", err)
	}
	if len(items) != 1 || items[0].Number != 2 {
		t.Fatalf("expected only gameweek 2 to remain, got %+v", items)
	}
}

func TestGameweekService_DeleteGameweekValidation(t *testing.T) {
	t.Parallel()

	service := NewGameweekService(memory.NewGameweekRepository(nil))
	ctx := context.Background()

	if err := service.DeleteGameweek(ctx, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero gameweek must fail validation, got %v", err)
	}
	if err := service.DeleteGameweek(ctx, 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing gameweek must not be deletable, got %v", err)
	}
}
