package leaderboard

import "context"

// ScoreRepository stores settled per-gameweek team scores.
type ScoreRepository interface {
	Upsert(ctx context.Context, score TeamScore) error
	ListByLeague(ctx context.Context, leagueID string) ([]TeamScore, error)
	ListByLeagueGameweek(ctx context.Context, leagueID string, gameweek int) ([]TeamScore, error)
	ListByLeagueUpTo(ctx context.Context, leagueID string, gameweek int) ([]TeamScore, error)
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]TeamScore, error)
}

// CumulativeRepository stores running totals with a gameweek watermark.
type CumulativeRepository interface {
	// Credit adds points to the team's total when gameweek is strictly
	// greater than the stored watermark, advancing the watermark in the
	// same step. It reports whether the credit was applied, so repeated
	// settlement of the same gameweek is a no-op.
	Credit(ctx context.Context, leagueID, teamID string, gameweek, points int) (bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]CumulativeEntry, error)
	Get(ctx context.Context, leagueID, teamID string) (CumulativeEntry, bool, error)
	Remove(ctx context.Context, leagueID, teamID string) error
}
