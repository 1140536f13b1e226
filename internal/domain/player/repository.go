package player

import "context"

// Filter narrows player listings.
type Filter struct {
	Role       Role
	RealTeamID string
	MaxCost    int64
	ActiveOnly bool
}

// Repository describes player pool persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Player, error)
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
}
