package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, lg League) error
	List(ctx context.Context, publicOnly bool) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByCode(ctx context.Context, code string) (League, bool, error)

	AddMembership(ctx context.Context, membership Membership) error
	RemoveMembership(ctx context.Context, leagueID, teamID string) error
	ListMemberships(ctx context.Context, leagueID string) ([]Membership, error)
	CountMemberships(ctx context.Context, leagueID string) (int, error)
	IsMember(ctx context.Context, leagueID, teamID string) (bool, error)
}
