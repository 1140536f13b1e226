package gameweek

import "context"

// Repository describes gameweek persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, gw Gameweek) error
	List(ctx context.Context) ([]Gameweek, error)
	GetByNumber(ctx context.Context, number int) (Gameweek, bool, error)
	GetActive(ctx context.Context) (Gameweek, bool, error)
	MarkCompleted(ctx context.Context, number int) error
	Delete(ctx context.Context, number int) error
}
