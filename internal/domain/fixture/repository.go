package fixture

import "context"

// Repository describes fixture persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, fx Fixture) error
	ListByGameweek(ctx context.Context, gameweek int) ([]Fixture, error)
	GetByID(ctx context.Context, fixtureID string) (Fixture, bool, error)
	UpdateStatus(ctx context.Context, fixtureID string, status Status) error
}
