package fantasy

import "context"

// Repository describes fantasy team persistence needs from use cases.
type Repository interface {
	Upsert(ctx context.Context, team Team) error
	GetByID(ctx context.Context, teamID string) (Team, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Team, error)
	ListByIDs(ctx context.Context, teamIDs []string) ([]Team, error)
}
