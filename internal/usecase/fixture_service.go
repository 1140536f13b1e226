package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/gameweek"
)

type FixtureService struct {
	fixtureRepo  fixture.Repository
	gameweekRepo gameweek.Repository
	now          func() time.Time
}

func NewFixtureService(fixtureRepo fixture.Repository, gameweekRepo gameweek.Repository) *FixtureService {
	return &FixtureService{
		fixtureRepo:  fixtureRepo,
		gameweekRepo: gameweekRepo,
		now:          time.Now,
	}
}

func (s *FixtureService) UpsertFixture(ctx context.Context, fx fixture.Fixture) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.UpsertFixture")
	defer span.End()

	if fx.Status == "" {
		fx.Status = fixture.StatusScheduled
	}
	if err := fx.Validate(); err != nil {
		return fixture.Fixture{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	_, exists, err := s.gameweekRepo.GetByNumber(ctx, fx.Gameweek)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get gameweek: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: gameweek=%d", ErrNotFound, fx.Gameweek)
	}

	now := s.now().UTC()
	if fx.CreatedAt.IsZero() {
		fx.CreatedAt = now
	}
	fx.UpdatedAt = now

	if err := s.fixtureRepo.Upsert(ctx, fx); err != nil {
		return fixture.Fixture{}, fmt.Errorf("upsert fixture: %w", err)
	}

	return fx, nil
}

func (s *FixtureService) ListFixturesByGameweek(ctx context.Context, gw int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListFixturesByGameweek")
	defer span.End()

	if gw <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be greater than zero", ErrInvalidInput)
	}

	items, err := s.fixtureRepo.ListByGameweek(ctx, gw)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}

	return items, nil
}

func (s *FixtureService) GetFixture(ctx context.Context, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetFixture")
	defer span.End()

	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	fx, exists, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return fx, nil
}

func (s *FixtureService) UpdateFixtureStatus(ctx context.Context, fixtureID string, status fixture.Status) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.UpdateFixtureStatus")
	defer span.End()

	if _, ok := fixture.AllStatuses[status]; !ok {
		return fmt.Errorf("%w: unknown fixture status %q", ErrInvalidInput, status)
	}
	if _, err := s.GetFixture(ctx, fixtureID); err != nil {
		return err
	}

	if err := s.fixtureRepo.UpdateStatus(ctx, fixtureID, status); err != nil {
		return fmt.Errorf("update fixture status: %w", err)
	}

	return nil
}
