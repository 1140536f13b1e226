package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
)

type GameweekService struct {
	gameweekRepo gameweek.Repository
	now          func() time.Time
}

func NewGameweekService(gameweekRepo gameweek.Repository) *GameweekService {
	return &GameweekService{
		gameweekRepo: gameweekRepo,
		now:          time.Now,
	}
}

func (s *GameweekService) UpsertGameweek(ctx context.Context, gw gameweek.Gameweek) (gameweek.Gameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.UpsertGameweek")
	defer span.End()

	if err := gw.Validate(); err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now().UTC()
	if gw.CreatedAt.IsZero() {
		gw.CreatedAt = now
	}
	gw.UpdatedAt = now

	if err := s.gameweekRepo.Upsert(ctx, gw); err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("upsert gameweek: %w", err)
	}

	return gw, nil
}

func (s *GameweekService) ListGameweeks(ctx context.Context) ([]gameweek.Gameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.ListGameweeks")
	defer span.End()

	items, err := s.gameweekRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gameweeks: %w", err)
	}

	return items, nil
}

func (s *GameweekService) GetGameweek(ctx context.Context, number int) (gameweek.Gameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.GetGameweek")
	defer span.End()

	if number <= 0 {
		return gameweek.Gameweek{}, fmt.Errorf("%w: gameweek number must be greater than zero", ErrInvalidInput)
	}

	gw, exists, err := s.gameweekRepo.GetByNumber(ctx, number)
	if err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("get gameweek: %w", err)
	}
	if !exists {
		return gameweek.Gameweek{}, fmt.Errorf("%w: gameweek=%d", ErrNotFound, number)
	}

	return gw, nil
}

func (s *GameweekService) GetActiveGameweek(ctx context.Context) (gameweek.Gameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.GetActiveGameweek")
	defer span.End()

	gw, exists, err := s.gameweekRepo.GetActive(ctx)
	if err != nil {
		return gameweek.Gameweek{}, fmt.Errorf("get active gameweek: %w", err)
	}
	if !exists {
		return gameweek.Gameweek{}, fmt.Errorf("%w: no active gameweek", ErrNotFound)
	}

	return gw, nil
}

func (s *GameweekService) CompleteGameweek(ctx context.Context, number int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.CompleteGameweek")
	defer span.End()

	if _, err := s.GetGameweek(ctx, number); err != nil {
		return err
	}
	if err := s.gameweekRepo.MarkCompleted(ctx, number); err != nil {
		return fmt.Errorf("mark gameweek completed: %w", err)
	}

	return nil
}

func (s *GameweekService) DeleteGameweek(ctx context.Context, number int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameweekService.DeleteGameweek")
	defer span.End()

	if _, err := s.GetGameweek(ctx, number); err != nil {
		return err
	}
	if err := s.gameweekRepo.Delete(ctx, number); err != nil {
		return fmt.Errorf("delete gameweek: %w", err)
	}

	return nil
}
