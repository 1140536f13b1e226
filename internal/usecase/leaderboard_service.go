package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/leaderboard"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/league"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
)

// LeaderboardMode selects which totals a leaderboard query ranks.
type LeaderboardMode string

const (
	// ModeCumulative ranks credited season totals.
	ModeCumulative LeaderboardMode = "cumulative"
	// ModeGameweek ranks a single gameweek's settled scores.
	ModeGameweek LeaderboardMode = "gameweek"
	// ModeAsOf ranks totals accumulated up to and including a gameweek.
	ModeAsOf LeaderboardMode = "as_of"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// LeaderboardService answers ranked leaderboard queries over settled
// scores. It never recomputes points; settlement happens elsewhere.
type LeaderboardService struct {
	leagueRepo     league.Repository
	teamRepo       fantasy.Repository
	scoreRepo      leaderboard.ScoreRepository
	cumulativeRepo leaderboard.CumulativeRepository
	store          *cache.Store
}

func NewLeaderboardService(
	leagueRepo league.Repository,
	teamRepo fantasy.Repository,
	scoreRepo leaderboard.ScoreRepository,
	cumulativeRepo leaderboard.CumulativeRepository,
	store *cache.Store,
) *LeaderboardService {
	return &LeaderboardService{
		leagueRepo:     leagueRepo,
		teamRepo:       teamRepo,
		scoreRepo:      scoreRepo,
		cumulativeRepo: cumulativeRepo,
		store:          store,
	}
}

type LeaderboardQuery struct {
	LeagueID string
	UserID   string
	Mode     LeaderboardMode
	Gameweek int
	Page     int
	PageSize int
}

type LeaderboardPage struct {
	LeagueID    string
	Mode        LeaderboardMode
	Gameweek    int
	Page        int
	PageSize    int
	TotalTeams  int
	Rows        []leaderboard.Row
	GeneratedAt time.Time
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, query LeaderboardQuery) (LeaderboardPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.GetLeaderboard")
	defer span.End()

	query, err := normalizeLeaderboardQuery(query)
	if err != nil {
		return LeaderboardPage{}, err
	}

	lg, exists, err := s.leagueRepo.GetByID(ctx, query.LeagueID)
	if err != nil {
		return LeaderboardPage{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeaderboardPage{}, fmt.Errorf("%w: league=%s", ErrNotFound, query.LeagueID)
	}

	if err := s.authorizeView(ctx, lg, query.UserID); err != nil {
		return LeaderboardPage{}, err
	}

	ranked, err := s.rankedRows(ctx, lg.ID, query.Mode, query.Gameweek)
	if err != nil {
		return LeaderboardPage{}, err
	}

	page := LeaderboardPage{
		LeagueID:    lg.ID,
		Mode:        query.Mode,
		Gameweek:    query.Gameweek,
		Page:        query.Page,
		PageSize:    query.PageSize,
		TotalTeams:  len(ranked),
		GeneratedAt: time.Now().UTC(),
	}

	// Ranks are assigned over the full league before slicing, so a page
	// boundary never distorts tie handling.
	start := (query.Page - 1) * query.PageSize
	if start >= len(ranked) {
		page.Rows = []leaderboard.Row{}
		return page, nil
	}
	end := start + query.PageSize
	if end > len(ranked) {
		end = len(ranked)
	}
	page.Rows = ranked[start:end]

	return page, nil
}

// rankedRows loads memberships, totals, and team metadata in parallel,
// then ranks the merged rows. Results are cached per league+mode+gameweek;
// settlement invalidates by league prefix.
func (s *LeaderboardService) rankedRows(ctx context.Context, leagueID string, mode LeaderboardMode, gw int) ([]leaderboard.Row, error) {
	key := fmt.Sprintf("leaderboard:%s:%s:%d", leagueID, mode, gw)
	value, err := s.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.loadRankedRows(ctx, leagueID, mode, gw)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]leaderboard.Row)
	if !ok {
		return nil, fmt.Errorf("unexpected cached leaderboard type %T", value)
	}
	return rows, nil
}

func (s *LeaderboardService) loadRankedRows(ctx context.Context, leagueID string, mode LeaderboardMode, gw int) ([]leaderboard.Row, error) {
	var (
		memberships []league.Membership
		totals      teamTotals
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.leagueRepo.ListMemberships(ctx, leagueID)
		if err != nil {
			return fmt.Errorf("list memberships: %w", err)
		}
		memberships = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		loaded, err := s.totalsForMode(ctx, leagueID, mode, gw)
		if err != nil {
			return err
		}
		totals = loaded
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	teamIDs := make([]string, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}
	teams, err := s.teamRepo.ListByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list member teams: %w", err)
	}
	teamByID := make(map[string]fantasy.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	// Every member appears even with no settled scores yet; absent
	// totals read as zero.
	rows := make([]leaderboard.Row, 0, len(memberships))
	for _, m := range memberships {
		row := leaderboard.Row{
			TeamID:         m.TeamID,
			Points:         totals.points[m.TeamID],
			LatestGwPoints: totals.latest[m.TeamID],
			Gameweeks:      totals.counts[m.TeamID],
		}
		if t, ok := teamByID[m.TeamID]; ok {
			row.TeamName = t.Name
			row.OwnerID = t.UserID
		}
		rows = append(rows, row)
	}

	return leaderboard.Rank(rows), nil
}

// teamTotals carries the per-team figures one leaderboard query ranks:
// the total, the latest covered gameweek's score, and how many
// gameweeks the total spans.
type teamTotals struct {
	points map[string]int
	latest map[string]int
	counts map[string]int
}

func newTeamTotals() teamTotals {
	return teamTotals{
		points: make(map[string]int),
		latest: make(map[string]int),
		counts: make(map[string]int),
	}
}

func (s *LeaderboardService) totalsForMode(ctx context.Context, leagueID string, mode LeaderboardMode, gw int) (teamTotals, error) {
	totals := newTeamTotals()

	switch mode {
	case ModeCumulative:
		entries, err := s.cumulativeRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return teamTotals{}, fmt.Errorf("list cumulative totals: %w", err)
		}
		scores, err := s.scoreRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return teamTotals{}, fmt.Errorf("list league scores: %w", err)
		}

		watermark := make(map[string]int, len(entries))
		for _, e := range entries {
			totals.points[e.TeamID] = e.TotalPoints
			watermark[e.TeamID] = e.LastCreditedGameweek
		}
		latestGw := make(map[string]int)
		for _, sc := range scores {
			if sc.Gameweek > latestGw[sc.TeamID] {
				latestGw[sc.TeamID] = sc.Gameweek
				totals.latest[sc.TeamID] = sc.Points
			}
			if sc.Gameweek <= watermark[sc.TeamID] {
				totals.counts[sc.TeamID]++
			}
		}
	case ModeGameweek:
		scores, err := s.scoreRepo.ListByLeagueGameweek(ctx, leagueID, gw)
		if err != nil {
			return teamTotals{}, fmt.Errorf("list gameweek scores: %w", err)
		}
		for _, sc := range scores {
			totals.points[sc.TeamID] = sc.Points
			totals.latest[sc.TeamID] = sc.Points
			totals.counts[sc.TeamID] = 1
		}
	case ModeAsOf:
		scores, err := s.scoreRepo.ListByLeagueUpTo(ctx, leagueID, gw)
		if err != nil {
			return teamTotals{}, fmt.Errorf("list scores up to gameweek: %w", err)
		}
		for _, sc := range scores {
			totals.points[sc.TeamID] += sc.Points
			totals.counts[sc.TeamID]++
			// Latest is the score at exactly the cutoff gameweek;
			// teams without a score there stay at zero.
			if sc.Gameweek == gw {
				totals.latest[sc.TeamID] = sc.Points
			}
		}
	default:
		return teamTotals{}, fmt.Errorf("%w: unknown leaderboard mode %q", ErrInvalidInput, mode)
	}

	return totals, nil
}

// authorizeView lets anyone read public leagues; private leagues are
// visible to the owner and to users with a member team.
func (s *LeaderboardService) authorizeView(ctx context.Context, lg league.League, userID string) error {
	if lg.IsPublic {
		return nil
	}
	if userID == "" {
		return fmt.Errorf("%w: private league %s", ErrUnauthorized, lg.ID)
	}
	if lg.OwnerUserID == userID {
		return nil
	}

	teams, err := s.teamRepo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list user teams: %w", err)
	}
	for _, t := range teams {
		member, err := s.leagueRepo.IsMember(ctx, lg.ID, t.ID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if member {
			return nil
		}
	}

	return fmt.Errorf("%w: private league %s", ErrUnauthorized, lg.ID)
}

func normalizeLeaderboardQuery(query LeaderboardQuery) (LeaderboardQuery, error) {
	query.LeagueID = strings.TrimSpace(query.LeagueID)
	query.UserID = strings.TrimSpace(query.UserID)
	if query.LeagueID == "" {
		return query, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	if query.Mode == "" {
		query.Mode = ModeCumulative
	}
	switch query.Mode {
	case ModeCumulative:
		query.Gameweek = 0
	case ModeGameweek, ModeAsOf:
		if query.Gameweek <= 0 {
			return query, fmt.Errorf("%w: gameweek is required for mode %s", ErrInvalidInput, query.Mode)
		}
	default:
		return query, fmt.Errorf("%w: unknown leaderboard mode %q", ErrInvalidInput, query.Mode)
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultPageSize
	}
	if query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}

	return query, nil
}
